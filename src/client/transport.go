package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Transport failure classes, used for log fields only. Requests are never retried.
var (
	// ErrRemoteUnavailable indicates the remote store is not reachable
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrRemoteTimeout indicates the request exceeded its deadline or was cancelled
	ErrRemoteTimeout = errors.New("remote timeout")
)

// DefaultTimeout bounds a whole request, body transfer included
const DefaultTimeout = 30 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}

// classifyError maps a transport error onto a failure class
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrRemoteTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrRemoteTimeout, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: DNS lookup failed: %v", ErrRemoteUnavailable, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
}

// failureClass returns a short label for the log "class" field
func failureClass(err error) string {
	switch {
	case errors.Is(err, ErrRemoteTimeout):
		return "timeout"
	default:
		return "unavailable"
	}
}
