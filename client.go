// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"context"
	"net/http"

	"github.com/juju/loggo"
	"golang.org/x/time/rate"
)

// Caller performs one RPC call. Both Client and SharableClient implement it.
type Caller interface {
	// Call sends req and decodes the response envelope into reply, which
	// is usually a *Response[T].
	Call(ctx context.Context, req *Request, reply interface{}) error
}

// Client talks to one Transmission daemon. It holds the session id handed
// out by the daemon and reuses it across calls.
//
// A Client is not safe for concurrent use; see SharableClient.
type Client struct {
	endpoint string
	session  sessionStore

	httpClient *http.Client
	codec      Codec
	auth       *basicAuth
	logger     loggo.Logger
	metrics    *Metrics
	limiter    *rate.Limiter
}

// SharableClient is a Client whose session id is guarded by a lock, so a
// single value can serve many goroutines. Credentials set with SetAuth are
// not synchronised and should be set before the client is shared.
type SharableClient struct {
	*Client
}

var (
	_ Caller = (*Client)(nil)
	_ Caller = (*SharableClient)(nil)
)

type basicAuth struct {
	user     string
	password string
}

// SetAuth replaces the basic auth credentials used by later calls.
func (c *Client) SetAuth(user, password string) {
	c.auth = &basicAuth{user: user, password: password}
}

// SessionID returns the session id last handed out by the daemon, or "" if
// no call has hit a session conflict yet.
func (c *Client) SessionID() string {
	id, _ := c.session.token()
	return id
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Invoke performs req on c and decodes the arguments of the response as T.
// A response whose result is not "success" is returned without error; check
// Response.IsOK.
func Invoke[T any](ctx context.Context, c Caller, req *Request) (*Response[T], error) {
	var resp Response[T]
	if err := c.Call(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
