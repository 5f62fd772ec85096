package client

import (
	"runtime"
	"time"

	"github.com/go-resty/resty/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
	sf "github.com/tarndt/shardedsingleflight"
	"go.uber.org/zap/zapcore"
)

// Config carries what the client needs from the effective configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to a project-sync ingest endpoint via HTTP REST API. It
// covers the pre-upload surface only: reachability and credential checks.
type Client struct {
	client *resty.Client
	config Config
	sfPing *sf.ShardedGroup
}

// New builds a client for the configured endpoint. Every request carries
// the bearer token and a per-process session id so the server can group
// requests from one run.
func New(config Config) *Client {
	client := resty.New().
		SetTimeout(config.Timeout).
		SetBaseURL(config.BaseURL).
		SetAuthToken(config.Token).
		SetHeader("X-Sync-Session", gonanoid.Must(8)).
		SetError(&ErrorResponse{})
	return &Client{
		client: client,
		config: config,
		sfPing: sf.NewShardedGroup(sf.WithShardCount(runtime.NumCPU())),
	}
}

// PingResponse is the endpoint's answer to GET /ping.
type PingResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (r *PingResponse) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if r == nil {
		enc.AddReflected(".", nil)
		return nil
	}
	enc.AddString("status", r.Status)
	if r.Version != "" {
		enc.AddString("version", r.Version)
	}
	return nil
}

// ErrorResponse is the endpoint's error body for non-2xx answers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIError is a non-2xx response decoded from the endpoint's error body.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return "server rejected request: " + e.Message
}

func newAPIError(resp *resty.Response) error {
	msg := ""
	if er, ok := resp.Error().(*ErrorResponse); ok && er != nil {
		msg = er.Error
	}
	if msg == "" {
		msg = resp.Status()
	}
	return APIError{
		Status:  resp.StatusCode(),
		Message: msg,
	}
}

// CallPing checks that the endpoint is reachable and the token accepted.
// Concurrent callers share one in-flight request.
func (c *Client) CallPing() (*PingResponse, error) {
	resp, err, _ := c.sfPing.Do("ping", func() (any, error) {
		return c.callPing()
	})
	if err != nil {
		return nil, err
	}
	return resp.(*PingResponse), nil
}

func (c *Client) callPing() (*PingResponse, error) {
	r, err := c.client.R().
		SetResult(&PingResponse{}).
		Get("/ping")
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, newAPIError(r)
	}
	return r.Result().(*PingResponse), nil
}
