package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alimikegami/point-of-sales/storefront-service/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

// Transport is the request primitive used to reach the upstream backend.
type Transport interface {
	SendRequest(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error)
}

// BreakerSource hands out the circuit breaker guarding a named candidate.
type BreakerSource interface {
	Get(name string) *gobreaker.CircuitBreaker[[]byte]
}

// StatusError is returned for upstream responses outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.Code)
}

func (e *StatusError) StatusCode() int {
	return e.Code
}

// HTTPStrategy reads one upstream path with a GET request.
type HTTPStrategy struct {
	name      string
	url       string
	headers   map[string]string
	transport Transport
	breaker   *gobreaker.CircuitBreaker[[]byte]
}

func NewHTTPStrategy(transport Transport, breaker *gobreaker.CircuitBreaker[[]byte], name, baseURL, path string, headers map[string]string) *HTTPStrategy {
	return &HTTPStrategy{
		name:      name,
		url:       strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"),
		headers:   headers,
		transport: transport,
		breaker:   breaker,
	}
}

func (s *HTTPStrategy) Name() string {
	return s.name
}

func (s *HTTPStrategy) Fetch(ctx context.Context) Outcome {
	var status int
	call := func() ([]byte, error) {
		code, body, err := s.transport.SendRequest(ctx, httpclient.HttpRequest{
			URL:     s.url,
			Method:  http.MethodGet,
			Headers: s.headers,
		})
		status = code
		if err != nil {
			return nil, err
		}
		if code < http.StatusOK || code >= http.StatusMultipleChoices {
			return nil, &StatusError{Code: code}
		}
		return body, nil
	}

	var (
		body []byte
		err  error
	)
	if s.breaker != nil {
		body, err = s.breaker.Execute(call)
	} else {
		body, err = call()
	}
	return Outcome{Payload: body, Status: status, Err: err}
}

// HTTPCandidates builds one strategy per path, in order, each behind its own breaker.
func HTTPCandidates(transport Transport, breakers BreakerSource, baseURL string, paths []string, headers map[string]string) []Strategy {
	return HTTPTemplateCandidates(transport, breakers, baseURL, paths, nil, headers)
}

// HTTPTemplateCandidates expands {name} placeholders in each path template with the
// escaped params. Strategy names and breakers are keyed by the template, so every
// product detail lookup shares one breaker per candidate.
func HTTPTemplateCandidates(transport Transport, breakers BreakerSource, baseURL string, templates []string, params map[string]string, headers map[string]string) []Strategy {
	var pairs []string
	for key, value := range params {
		pairs = append(pairs, "{"+key+"}", url.PathEscape(value))
	}
	replacer := strings.NewReplacer(pairs...)

	strategies := make([]Strategy, 0, len(templates))
	for _, template := range templates {
		name := "GET " + template
		var breaker *gobreaker.CircuitBreaker[[]byte]
		if breakers != nil {
			breaker = breakers.Get(baseURL + " " + name)
		}
		strategies = append(strategies, NewHTTPStrategy(transport, breaker, name, baseURL, replacer.Replace(template), headers))
	}
	return strategies
}
