package scheduler

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CreateScheduler returns a gocron scheduler that reports through the global zerolog
// logger. The caller starts it and shuts it down.
func CreateScheduler() (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLogger(zerologAdapter{}))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	return s, nil
}

type zerologAdapter struct{}

func (zerologAdapter) Debug(msg string, args ...any) { write(log.Debug(), msg, args) }
func (zerologAdapter) Info(msg string, args ...any)  { write(log.Info(), msg, args) }
func (zerologAdapter) Warn(msg string, args ...any)  { write(log.Warn(), msg, args) }
func (zerologAdapter) Error(msg string, args ...any) { write(log.Error(), msg, args) }

// write turns gocron's alternating key/value args into zerolog fields.
func write(event *zerolog.Event, msg string, args []any) {
	event = event.Str("component", "Scheduler")
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		event = event.Interface(key, args[i+1])
	}
	event.Msg(msg)
}
