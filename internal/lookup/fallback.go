package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
	"go.uber.org/zap"
)

type named interface {
	Name() string
}

// firstSuccess asks providers in order and returns the first answer. Each
// attempt gets its own timeout when timeout is positive. Failures are logged
// and swallowed; once the list is exhausted the returned error unwraps to the
// last real cause. Cancellation of ctx stops the iteration immediately.
func firstSuccess[P named, T any](
	ctx context.Context,
	s *Service,
	capability string,
	timeout time.Duration,
	providers []P,
	call func(ctx context.Context, p P) (T, error),
) (T, P, error) {
	var (
		zero    T
		none    P
		failure = &exhaustedError{capability: capability}
	)

	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return zero, none, err
		}

		value, err := attempt(ctx, timeout, p, call)
		if errors.Is(err, provider.ErrUnsupported) {
			s.logger.Debug("provider does not support capability",
				zap.String("capability", capability),
				zap.String("provider", p.Name()))
			if failure.last == nil {
				failure.last = err
			}
			continue
		}
		s.metrics.ObserveAttempt(capability, p.Name(), err)
		if err == nil {
			return value, p, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, none, ctxErr
		}

		s.logger.Debug("provider attempt failed",
			zap.String("capability", capability),
			zap.String("provider", p.Name()),
			zap.Error(err))
		failure.attempts++
		failure.last = err
		if errors.Is(err, provider.ErrInvalidAddress) {
			failure.rejected = true
		}
	}

	if failure.last == nil {
		failure.last = errNoProviders
	}
	return zero, none, failure
}

func attempt[P any, T any](ctx context.Context, timeout time.Duration, p P, call func(context.Context, P) (T, error)) (T, error) {
	if timeout <= 0 {
		return call(ctx, p)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return call(attemptCtx, p)
}
