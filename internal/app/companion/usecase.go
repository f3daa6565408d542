package companion

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"petverse/internal/app/ports"
	"petverse/internal/app/session"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	ErrInvalidRequest   = errors.New("invalid companion request")
	ErrCapacityExceeded = game.ErrCapacityExceeded
)

const fallbackName = "Buddy"

type UseCase struct {
	Session    session.Store
	Engine     *game.Engine
	Classifier ports.Classifier
	Now        func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

// Create classifies the description once, then adds the companion. A failing
// classifier degrades to the caller's own labels and description.
func (u UseCase) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" && len(req.Labels) == 0 {
		return CreateResponse{}, ErrInvalidRequest
	}
	if req.Personality != "" && !req.Personality.Valid() {
		return CreateResponse{}, ErrInvalidRequest
	}
	analysis := u.analyze(ctx, req)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = nameFromLabels(analysis.Labels)
	}
	kind := ""
	if len(analysis.Labels) > 0 {
		kind = analysis.Labels[0]
	}

	now := u.now()
	var created pet.Companion
	_, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		next, c, err := u.Engine.CreateCompanion(s, game.CreateInput{
			Name:        name,
			Kind:        kind,
			Description: firstNonEmpty(analysis.Description, req.Description),
			Labels:      analysis.Labels,
			Personality: req.Personality,
		}, now)
		if err != nil {
			return s, err
		}
		created = c
		return next, nil
	})
	if err != nil {
		return CreateResponse{}, err
	}
	return CreateResponse{Companion: created, Analysis: analysis}, nil
}

func (u UseCase) analyze(ctx context.Context, req CreateRequest) ports.Analysis {
	fallback := ports.Analysis{
		Labels:      append([]string(nil), req.Labels...),
		Description: req.Description,
	}
	if u.Classifier == nil || req.Description == "" {
		return fallback
	}
	a, err := u.Classifier.Analyze(ctx, req.Description)
	if err != nil {
		hlog.CtxWarnf(ctx, "classifier fallback owner=%s err=%v", req.OwnerID, err)
		return fallback
	}
	a.Labels = append(append([]string(nil), req.Labels...), a.Labels...)
	if strings.TrimSpace(a.Description) == "" {
		a.Description = req.Description
	}
	return a
}

func (u UseCase) Switch(ctx context.Context, req SwitchRequest) (Response, error) {
	if strings.TrimSpace(req.CompanionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()
	s, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		return u.Engine.SwitchActive(s, req.CompanionID, now)
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(s), nil
}

func (u UseCase) Remove(ctx context.Context, req RemoveRequest) (Response, error) {
	if strings.TrimSpace(req.CompanionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()
	s, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		return u.Engine.RemoveCompanion(s, req.CompanionID, now)
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(s), nil
}

func toResponse(s game.State) Response {
	return Response{ActiveCompanionID: s.ActiveCompanionID, Companions: s.Companions}
}

func nameFromLabels(labels []string) string {
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		r := []rune(l)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return fallbackName
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
