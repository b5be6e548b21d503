package client

// Functional options that configure the Client during construction.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout sets the total per-request timeout. Prefer per-request
// context deadlines where possible; this is a coarse safety net. The value
// must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithRetries enables resty's retry loop for transient transport failures.
func WithRetries(count int) Option {
	return func(c *Client) error {
		if count < 0 {
			return fmt.Errorf("retry count must be >= 0")
		}
		c.http.SetRetryCount(count)
		return nil
	}
}
