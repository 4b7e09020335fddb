package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"epic-relay-api/internal/metrics"
)

// maxBodySize caps how much of a remote response is read.
const maxBodySize = 4 << 20

// Request describes a single outbound call.
type Request struct {
	Service string // label for logs and metrics, e.g. "account"
	Method  string
	URL     string
	Header  http.Header

	// At most one of JSON and Form is set.
	JSON interface{}
	Form url.Values
}

// Response is a completed remote call, whatever its status.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the remote answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Client issues outbound calls to the remote services.
type Client struct {
	http *http.Client
}

// NewClient creates a client whose calls are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP wraps an existing http.Client.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Do performs req. A non-nil error is always a *TransportError; any HTTP
// status, including 4xx/5xx, is returned as a Response.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := c.do(ctx, req)

	status := "transport_error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.UpstreamRequests.WithLabelValues(req.Service, req.Method, status).Inc()
	metrics.UpstreamDuration.WithLabelValues(req.Service).Observe(time.Since(start).Seconds())

	return resp, err
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, &TransportError{Service: req.Service, Method: req.Method, URL: req.URL, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &TransportError{Service: req.Service, Method: req.Method, URL: req.URL, Err: err}
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Service: req.Service, Method: req.Method, URL: req.URL, Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Service: req.Service, Method: req.Method, URL: req.URL, Err: err}
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: data}, nil
}

func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	case req.Form != nil:
		return bytes.NewBufferString(req.Form.Encode()), "application/x-www-form-urlencoded", nil
	default:
		return nil, "", nil
	}
}

// Bearer returns headers carrying the given access token.
func Bearer(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}
