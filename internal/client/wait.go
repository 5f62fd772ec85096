package client

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"
)

const pollInterval = 100 * time.Millisecond

// IsReachable reports whether the endpoint currently answers pings.
// A connection refusal is a clean false; other failures surface as errors.
func (c *Client) IsReachable() (bool, error) {
	_, err := c.CallPing()
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WaitReachable polls the endpoint until it answers, ctx is done or
// maxWait elapses. It is a startup check: each probe is a fresh cheap
// ping, nothing else is ever retried through here.
func (c *Client) WaitReachable(ctx context.Context, maxWait time.Duration) (*PingResponse, error) {
	t := time.Now()
	for {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		resp, err := c.CallPing()
		if err == nil {
			return resp, nil
		}
		if time.Since(t) > maxWait {
			return nil, fmt.Errorf("endpoint %s not reachable after %s: %w", c.config.BaseURL, maxWait, err)
		}
		time.Sleep(pollInterval)
	}
}
