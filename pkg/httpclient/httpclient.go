package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HttpRequest is a struct to hold request parameters
type HttpRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// DefaultMaxBodyBytes applies when NewClient is given a non-positive limit.
const DefaultMaxBodyBytes int64 = 10 << 20

var ErrBodyTooLarge = errors.New("response body too large")

// Client sends requests to the upstream backend with a fixed timeout and refuses
// response bodies larger than maxBody bytes.
type Client struct {
	http    *http.Client
	maxBody int64
}

func NewClient(timeout time.Duration, maxBodyBytes int64) *Client {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxBody: maxBodyBytes,
	}
}

// SendRequest sends an HTTP request based on the given HttpRequest struct
func (c *Client) SendRequest(ctx context.Context, req HttpRequest) (int, []byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	request, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(response.Body, c.maxBody+1))
	if err != nil {
		return response.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(respBody)) > c.maxBody {
		return response.StatusCode, nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, c.maxBody)
	}

	return response.StatusCode, respBody, nil
}
