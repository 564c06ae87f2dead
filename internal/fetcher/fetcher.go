// Package fetcher resolves a logical resource by trying an ordered list of
// upstream candidates until one of them yields a usable payload.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMalformedPayload = errors.New("malformed payload")

// Outcome is what a single candidate produced. A non-nil Err marks the attempt as
// failed; strategies never panic to signal failure.
type Outcome struct {
	Payload []byte
	Status  int
	Err     error
}

// Strategy is one upstream candidate for a logical resource.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context) Outcome
}

type Attempt struct {
	Candidate string
	Status    int
	Err       error
	Duration  time.Duration
}

func (a Attempt) Succeeded() bool {
	return a.Err == nil
}

// Result describes a resolution run. Candidate is empty when every candidate failed.
// Skipped counts list records of the winning payload that could not be decoded.
type Result struct {
	Candidate string
	Payload   json.RawMessage
	Attempts  []Attempt
	Skipped   int
}

// Exhausted reports the soft "no data available" condition.
func (r Result) Exhausted() bool {
	return r.Candidate == ""
}

// Failures returns the failed attempts in the order they were made.
func (r Result) Failures() []Attempt {
	var failed []Attempt
	for _, attempt := range r.Attempts {
		if !attempt.Succeeded() {
			failed = append(failed, attempt)
		}
	}
	return failed
}

type Fetcher struct {
	observer Observer
	now      func() time.Time
}

func New(observers ...Observer) *Fetcher {
	return &Fetcher{
		observer: Observers(observers),
		now:      time.Now,
	}
}

// First returns the unwrapped payload of the first candidate that succeeds. Exhausting
// every candidate is not an error; the returned error is only ever the context's.
func (f *Fetcher) First(ctx context.Context, strategies ...Strategy) (Result, error) {
	return f.first(ctx, func(json.RawMessage) error { return nil }, strategies)
}

// FetchList resolves a list resource. When every candidate fails the list is empty
// and Result.Exhausted reports it. Records that fail to decode are logged and skipped;
// a candidate is malformed only when its payload is not a list or none of its records
// decode.
func FetchList[T any](ctx context.Context, f *Fetcher, strategies ...Strategy) ([]T, Result, error) {
	records := []T{}
	skipped := 0
	res, err := f.first(ctx, func(payload json.RawMessage) error {
		var elements []json.RawMessage
		if err := json.Unmarshal(payload, &elements); err != nil {
			return err
		}

		decoded := make([]T, 0, len(elements))
		var lastErr error
		for i, element := range elements {
			var record T
			if err := json.Unmarshal(element, &record); err != nil {
				contextLogger(ctx).Warn().Err(err).Str("component", "Fetcher").
					Int("index", i).
					Msg("skipping undecodable record")
				lastErr = err
				continue
			}
			decoded = append(decoded, record)
		}
		if len(elements) > 0 && len(decoded) == 0 {
			return fmt.Errorf("no record could be decoded: %w", lastErr)
		}

		records = decoded
		skipped = len(elements) - len(decoded)
		return nil
	}, strategies)
	if err != nil || res.Exhausted() {
		return []T{}, res, err
	}
	res.Skipped = skipped
	return records, res, nil
}

// FetchOne resolves a single entity. Callers decide whether exhaustion is fatal.
func FetchOne[T any](ctx context.Context, f *Fetcher, strategies ...Strategy) (T, Result, error) {
	var record T
	res, err := f.first(ctx, func(payload json.RawMessage) error {
		var decoded T
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return err
		}
		record = decoded
		return nil
	}, strategies)
	if err != nil || res.Exhausted() {
		var zero T
		return zero, res, err
	}
	return record, res, nil
}

func (f *Fetcher) first(ctx context.Context, accept func(json.RawMessage) error, strategies []Strategy) (Result, error) {
	var res Result
	for _, strategy := range strategies {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := f.now()
		outcome := strategy.Fetch(ctx)
		attempt := Attempt{
			Candidate: strategy.Name(),
			Status:    outcome.Status,
			Err:       outcome.Err,
		}

		var payload json.RawMessage
		if attempt.Err == nil {
			var err error
			payload, err = Unwrap(outcome.Payload)
			if err == nil {
				err = accept(payload)
			}
			if err != nil {
				attempt.Err = fmt.Errorf("%w: %v", ErrMalformedPayload, err)
			}
		}
		attempt.Duration = f.now().Sub(start)

		res.Attempts = append(res.Attempts, attempt)
		f.observer.ObserveAttempt(ctx, attempt)

		if attempt.Succeeded() {
			res.Candidate = attempt.Candidate
			res.Payload = payload
			return res, nil
		}
	}
	return res, nil
}

// Unwrap applies `body.data ?? body ?? []`: an envelope's data field when it is set,
// otherwise the body itself, and an empty list for an empty or null body.
func Unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("[]"), nil
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("invalid JSON")
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		data := bytes.TrimSpace(envelope.Data)
		if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
			return json.RawMessage(data), nil
		}
	}
	return json.RawMessage(trimmed), nil
}
