package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/errs"
)

// exhaustedLookupError classifies a detail lookup that no candidate could answer:
// not found when every candidate said 404, an upstream failure otherwise.
func exhaustedLookupError(res fetcher.Result) error {
	failures := res.Failures()
	for _, attempt := range failures {
		var statusErr *fetcher.StatusError
		if !errors.As(attempt.Err, &statusErr) || statusErr.Code != http.StatusNotFound {
			return fmt.Errorf("%w: %d candidates failed, last: %v", errs.ErrUpstream, len(failures), failures[len(failures)-1].Err)
		}
	}
	return errs.ErrNotFound
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", errs.ErrTimeout, err)
	}
	return err
}
