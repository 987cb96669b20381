package launch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/fetch"
)

// DefaultLimit is how many upcoming launches are requested per resolve.
const DefaultLimit = 5

// Resolver picks the countdown target.
type Resolver struct {
	Source Source
	Limit  int
	Logger *zap.Logger
	Now    func() time.Time
}

// Resolve fetches upcoming launches and returns the first strictly-future
// one, or the simulated target when anything goes wrong.
func (r Resolver) Resolve(ctx context.Context) Target {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	nowFn := r.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	result := fetch.Empty[[]Launch]("no launch source configured")
	if r.Source != nil {
		result = r.Source.Upcoming(ctx, limit)
	}
	now := nowFn()
	if result.OK() {
		result = nextFuture(result.Value, now)
	}
	if !result.OK() {
		logger.Warn("launch api unavailable, starting simulation",
			zap.Stringer("kind", result.Kind),
			zap.Error(result.Err))
		return SimulatedTarget(now)
	}

	target := LiveTarget(result.Value[0])
	logger.Info("launch target resolved",
		zap.String("provider", target.Provider),
		zap.String("mission", target.Mission),
		zap.Time("net", target.At))
	return target
}

func nextFuture(launches []Launch, now time.Time) fetch.Result[[]Launch] {
	for _, l := range launches {
		if !l.NET.IsZero() && l.NET.After(now) {
			return fetch.OK([]Launch{l})
		}
	}
	return fetch.Empty[[]Launch]("no future launches found")
}
