package scheduler

import (
	"testing"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchedulerRunsJobs(t *testing.T) {
	s, err := CreateScheduler()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown() })

	ran := make(chan struct{}, 1)
	_, err = s.NewJob(
		gocron.DurationJob(10*time.Millisecond),
		gocron.NewTask(func() {
			select {
			case ran <- struct{}{}:
			default:
			}
		}),
	)
	require.NoError(t, err)
	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		assert.Fail(t, "job did not run")
	}
}
