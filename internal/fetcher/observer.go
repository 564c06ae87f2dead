package fetcher

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Observer is told about every attempt, successful or not. Implementations must not
// block; the chain continues as soon as ObserveAttempt returns.
type Observer interface {
	ObserveAttempt(ctx context.Context, attempt Attempt)
}

type ObserverFunc func(ctx context.Context, attempt Attempt)

func (fn ObserverFunc) ObserveAttempt(ctx context.Context, attempt Attempt) {
	fn(ctx, attempt)
}

type Observers []Observer

func (o Observers) ObserveAttempt(ctx context.Context, attempt Attempt) {
	for _, observer := range o {
		if observer != nil {
			observer.ObserveAttempt(ctx, attempt)
		}
	}
}

// LogObserver writes failed attempts as warnings and successful ones at debug level,
// using the request-scoped logger when one is attached to ctx.
type LogObserver struct{}

func (LogObserver) ObserveAttempt(ctx context.Context, attempt Attempt) {
	logger := contextLogger(ctx)
	if attempt.Succeeded() {
		logger.Debug().Str("component", "Fetcher").
			Str("candidate", attempt.Candidate).
			Int("status", attempt.Status).
			Dur("duration", attempt.Duration).
			Msg("candidate succeeded")
		return
	}

	logger.Warn().Err(attempt.Err).Str("component", "Fetcher").
		Str("candidate", attempt.Candidate).
		Int("status", attempt.Status).
		Dur("duration", attempt.Duration).
		Msg("candidate failed, trying next")
}

func contextLogger(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return logger
}
