package tick

import (
	"context"
	"time"

	"petverse/internal/app/narrative"
	"petverse/internal/app/ports"
	"petverse/internal/app/session"
	"petverse/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Request struct {
	OwnerID string
}

type Response struct {
	Report  game.TickReport `json:"report"`
	Version int64           `json:"version"`
}

type UseCase struct {
	Session  session.Store
	Engine   *game.Engine
	Narrator narrative.Enricher
	Metrics  ports.EngineMetrics
	Now      func() time.Time
}

// Run advances the owner's session to now. Numeric state is saved first;
// generated narrative is fetched afterwards and stored in a second write that
// only replaces fallback text.
func (u UseCase) Run(ctx context.Context, req Request) (Response, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var res game.TickResult
	state, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		res = u.Engine.Tick(s, now)
		return res.State, nil
	})
	if err != nil {
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick(res.Report)
	}
	out := Response{Report: res.Report, Version: state.Version}
	if len(res.Requests) == 0 {
		return out, nil
	}

	narrations := u.Narrator.Generate(ctx, state, res.Requests)
	final, err := u.Session.Update(ctx, req.OwnerID, nowFn(), func(s game.State) (game.State, error) {
		return game.Narrate(s, res.Requests, narrations, nowFn()), nil
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "store tick narrative owner=%s err=%v", req.OwnerID, err)
		return out, nil
	}
	out.Version = final.Version
	return out, nil
}
