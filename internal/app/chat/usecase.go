package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/narrative"
	"petverse/internal/app/session"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid message request")

type Request struct {
	OwnerID string `json:"-"`
	Text    string `json:"text"`
}

type Response struct {
	User      game.Conversation    `json:"user"`
	Reply     game.Conversation    `json:"reply"`
	Actions   []pet.DialogueAction `json:"actions"`
	Companion pet.Companion        `json:"companion"`
	LevelUp   bool                 `json:"level_up"`
}

type UseCase struct {
	Session  session.Store
	Engine   *game.Engine
	Narrator narrative.Enricher
	Now      func() time.Time
}

// Send applies the message in one transaction, then asks for a generated reply
// and stores it in a second one. The reply never changes vitals.
func (u UseCase) Send(ctx context.Context, req Request) (Response, error) {
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var res game.MessageResult
	state, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		out, err := u.Engine.SendMessage(s, req.Text, now)
		if err != nil {
			return s, err
		}
		res = out
		return out.State, nil
	})
	if err != nil {
		return Response{}, err
	}

	out := Response{
		User:    res.User,
		Reply:   res.Reply,
		Actions: res.Actions,
		LevelUp: res.Change.LeveledUp(),
	}
	out.Companion, _ = state.Companion(res.Reply.CompanionID)

	if res.Request.Kind == "" {
		return out, nil
	}
	reqs := []game.NarrativeRequest{res.Request}
	narrations := u.Narrator.Generate(ctx, state, reqs)
	if narrations[0].Content == "" {
		return out, nil
	}
	_, err = u.Session.Update(ctx, req.OwnerID, nowFn(), func(s game.State) (game.State, error) {
		return game.Narrate(s, reqs, narrations, nowFn()), nil
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "store generated reply owner=%s err=%v", req.OwnerID, err)
		return out, nil
	}
	out.Reply.Content = narrations[0].Content
	if narrations[0].Action != "" {
		out.Reply.Action = narrations[0].Action
	}
	return out, nil
}
