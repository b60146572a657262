// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"net/http"

	"github.com/juju/loggo"
	"golang.org/x/time/rate"
)

var logger = loggo.GetLogger("transmission")

// Option configures a client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	codec      Codec
	auth       *basicAuth
	logger     *loggo.Logger
	metrics    *Metrics
	limiter    *rate.Limiter
}

// WithBasicAuth sets the credentials sent with every request.
func WithBasicAuth(user, password string) Option {
	return func(o *options) { o.auth = &basicAuth{user: user, password: password} }
}

// WithHTTPClient replaces the default HTTP client, which has a 30 second
// timeout and no keep-alives.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithCodec sets a custom codec
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger replaces the "transmission" logger.
func WithLogger(l loggo.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithMetrics records calls in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRateLimiter makes every call wait for l once before its first
// request. Retries after a session conflict do not wait again.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// New returns a client for the RPC endpoint, usually
// http://host:9091/transmission/rpc.
func New(endpoint string, opts ...Option) *Client {
	return newClient(endpoint, &session{}, opts)
}

// NewSharable returns a client that may be used from many goroutines.
func NewSharable(endpoint string, opts ...Option) *SharableClient {
	return &SharableClient{Client: newClient(endpoint, &sharedSession{}, opts)}
}

func newClient(endpoint string, store sessionStore, opts []Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &Client{
		endpoint:   endpoint,
		session:    store,
		httpClient: o.httpClient,
		codec:      o.codec,
		auth:       o.auth,
		logger:     logger,
		metrics:    o.metrics,
		limiter:    o.limiter,
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient()
	}
	if c.codec == nil {
		c.codec = defaultCodec
	}
	if o.logger != nil {
		c.logger = *o.logger
	}
	return c
}
