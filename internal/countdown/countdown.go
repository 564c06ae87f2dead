// Package countdown implements the promotional countdown shown on the storefront.
// The clock counts down a configured duration one tick at a time; it has no
// wall-clock deadline, so time spent without ticks is not made up.
package countdown

import (
	"fmt"
	"time"
)

type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FromDuration splits d into days, hours, minutes and seconds. Negative durations
// become zero and sub-second remainders are dropped.
func FromDuration(d time.Duration) TimeRemaining {
	if d <= 0 {
		return TimeRemaining{}
	}
	total := int(d / time.Second)
	return TimeRemaining{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// Tick returns the state one second later. Once every field is zero the state no
// longer changes.
func (t TimeRemaining) Tick() TimeRemaining {
	switch {
	case t.Seconds > 0:
		t.Seconds--
	case t.Minutes > 0:
		t.Minutes--
		t.Seconds = 59
	case t.Hours > 0:
		t.Hours--
		t.Minutes, t.Seconds = 59, 59
	case t.Days > 0:
		t.Days--
		t.Hours, t.Minutes, t.Seconds = 23, 59, 59
	}
	return t
}

func (t TimeRemaining) IsZero() bool {
	return t == TimeRemaining{}
}

func (t TimeRemaining) Duration() time.Duration {
	return time.Duration(t.Days)*24*time.Hour +
		time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
}

func (t TimeRemaining) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", t.Days, t.Hours, t.Minutes, t.Seconds)
}
