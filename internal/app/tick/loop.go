package tick

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// OwnerLister enumerates the owners that have a stored session.
type OwnerLister interface {
	ListOwners(ctx context.Context) ([]string, error)
}

// Loop is the host loop that ticks every stored session at a fixed cadence.
// A failing owner is logged and skipped; the others still tick.
type Loop struct {
	UseCase  UseCase
	Owners   OwnerLister
	Interval time.Duration
}

func (l Loop) Run(ctx context.Context) {
	if l.Interval <= 0 || l.Owners == nil {
		return
	}
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Once(ctx)
		}
	}
}

// Once ticks every owner a single time and returns how many succeeded.
func (l Loop) Once(ctx context.Context) int {
	owners, err := l.Owners.ListOwners(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "tick loop: list owners: %v", err)
		return 0
	}
	ok := 0
	for _, owner := range owners {
		if ctx.Err() != nil {
			return ok
		}
		if _, err := l.UseCase.Run(ctx, Request{OwnerID: owner}); err != nil {
			hlog.CtxErrorf(ctx, "tick loop: owner=%s err=%v", owner, err)
			continue
		}
		ok++
	}
	return ok
}
