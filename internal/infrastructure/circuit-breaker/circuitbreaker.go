package circuitbreaker

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const openStateTimeout = 30 * time.Second

func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = openStateTimeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = isHealthyResponse
	st.OnStateChange = func(name string, from gobreaker.State, to gobreaker.State) {
		log.Warn().Str("component", "CircuitBreaker").
			Str("candidate", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("circuit breaker state changed")
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](st)

	return cb
}

// a 4xx answer means the upstream is up, it just has nothing for this request.
// A call abandoned by its own caller says nothing about the upstream either.
func isHealthyResponse(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		code := coded.StatusCode()
		return code >= http.StatusBadRequest && code < http.StatusInternalServerError
	}
	return false
}

// Registry hands out one breaker per upstream candidate so that a failing
// endpoint trips independently of its fallbacks.
type Registry struct {
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

func NewRegistry() *Registry {
	return &Registry{breakers: make(map[string]*gobreaker.CircuitBreaker[[]byte])}
}

func (r *Registry) Get(name string) *gobreaker.CircuitBreaker[[]byte] {
	r.mu.Lock()
	defer r.mu.Unlock()

	cb, ok := r.breakers[name]
	if !ok {
		cb = CreateCircuitBreaker(name)
		r.breakers[name] = cb
	}
	return cb
}
