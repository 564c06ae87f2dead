package countdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Scheduler is the part of gocron.Scheduler the clock needs.
type Scheduler interface {
	NewJob(definition gocron.JobDefinition, task gocron.Task, options ...gocron.JobOption) (gocron.Job, error)
	RemoveJob(id uuid.UUID) error
}

// Clock holds a TimeRemaining advanced by a scheduled tick job. At most one job is
// registered per clock.
type Clock struct {
	mu        sync.Mutex
	state     TimeRemaining
	scheduler Scheduler
	jobID     uuid.UUID
	mounted   bool
}

func NewClock(initial TimeRemaining) *Clock {
	return &Clock{state: initial}
}

func (c *Clock) Tick() {
	c.mu.Lock()
	c.state = c.state.Tick()
	c.mu.Unlock()
}

func (c *Clock) Remaining() TimeRemaining {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done reports whether the countdown reached zero. The tick job keeps running after
// that; the state just stays frozen.
func (c *Clock) Done() bool {
	return c.Remaining().IsZero()
}

// Mount registers the tick job on s. Mounting again first removes the job registered
// by the previous mount, so repeated mounts never stack timers.
func (c *Clock) Mount(s Scheduler, interval time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.unmountLocked(); err != nil {
		return err
	}

	job, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(c.Tick),
		gocron.WithName("countdown-tick"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("scheduling countdown tick: %w", err)
	}

	c.scheduler = s
	c.jobID = job.ID()
	c.mounted = true
	return nil
}

// Unmount removes the tick job. It is safe to call on a clock that is not mounted.
func (c *Clock) Unmount() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unmountLocked()
}

func (c *Clock) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

func (c *Clock) unmountLocked() error {
	if !c.mounted {
		return nil
	}
	if err := c.scheduler.RemoveJob(c.jobID); err != nil {
		return fmt.Errorf("removing countdown tick: %w", err)
	}
	c.scheduler = nil
	c.jobID = uuid.Nil
	c.mounted = false
	return nil
}
