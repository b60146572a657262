// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/juju/errors"
)

// MaxRetries is the number of requests a call may send. Only session
// conflicts are retried, and there is no delay between attempts.
const MaxRetries = 5

// newHTTPClient creates an HTTP client with disabled connection reuse.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}
}

// CleanlyCloseBody drains and closes an HTTP response body to prevent
// HTTP/2 GOAWAY errors caused by closing bodies with unread data.
// See: https://github.com/golang/go/issues/46071
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

// attemptResult is what one round trip asks the call loop to do next.
type attemptResult int

const (
	attemptDone attemptResult = iota
	attemptRetry
)

// Call sends req and decodes the response envelope into reply.
//
// A 409 answer carrying a session id renews the session and resends the
// same body, up to MaxRetries requests in total. Every other answer is
// decoded and returned as is, including server-side failures.
func (c *Client) Call(ctx context.Context, req *Request, reply interface{}) error {
	start := time.Now()
	method := req.Method

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			err = withKind(ErrTransport, errors.Annotatef(err, "waiting to call %s", method))
			c.metrics.done(method, outcomeTransport, start)
			return err
		}
	}

	body, err := EncodeRequest(c.codec, req)
	if err != nil {
		return errors.Annotatef(err, "encoding %s request", method)
	}
	if c.logger.IsTraceEnabled() {
		c.logger.Tracef("%s request: %s", method, body)
	}

	for attempt := 1; attempt <= MaxRetries; attempt++ {
		c.logger.Debugf("calling %s (attempt %d/%d)", method, attempt, MaxRetries)
		next, err := c.roundTrip(ctx, method, body, reply)
		if err != nil {
			c.metrics.done(method, outcomeOf(err), start)
			return err
		}
		if next == attemptDone {
			c.metrics.done(method, replyOutcome(reply), start)
			return nil
		}
	}

	c.metrics.done(method, outcomeExhausted, start)
	return errors.Annotatef(ErrMaxRetriesReached, "calling %s after %d attempts", method, MaxRetries)
}

func (c *Client) roundTrip(ctx context.Context, method Method, body []byte, reply interface{}) (attemptResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return attemptDone, withKind(ErrTransport, errors.Annotatef(err, "creating %s request", method))
	}
	request.Header.Set("Content-Type", "application/json")
	if id, ok := c.session.token(); ok {
		request.Header.Set(SessionIDHeader, id)
	}
	if c.auth != nil {
		request.SetBasicAuth(c.auth.user, c.auth.password)
	}

	c.metrics.attempt(method)
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return attemptDone, withKind(ErrTransport, errors.Annotatef(err, "calling %s", method))
	}
	defer func() { _ = CleanlyCloseBody(resp.Body) }()

	if resp.StatusCode == http.StatusConflict {
		id, ok := c.session.observe(resp.Header)
		if !ok {
			return attemptDone, errors.Annotatef(ErrNoSessionID, "calling %s", method)
		}
		c.metrics.conflict()
		c.logger.Debugf("session id renewed to %q", id)
		return attemptRetry, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptDone, withKind(ErrTransport, errors.Annotatef(err, "reading %s response", method))
	}
	if c.logger.IsTraceEnabled() {
		c.logger.Tracef("%s response (%s): %s", method, resp.Status, data)
	}

	if reply == nil {
		return attemptDone, nil
	}
	if err := c.codec.Decode(data, reply); err != nil {
		err = withKind(ErrDecode, err)
		if resp.StatusCode != http.StatusOK {
			return attemptDone, errors.Annotatef(err, "calling %s: HTTP %s", method, resp.Status)
		}
		return attemptDone, errors.Annotatef(err, "decoding %s response", method)
	}
	return attemptDone, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrNoSessionID):
		return outcomeNoSessionID
	case errors.Is(err, ErrDecode):
		return outcomeDecode
	default:
		return outcomeTransport
	}
}

func replyOutcome(reply interface{}) string {
	if r, ok := reply.(interface{ IsOK() bool }); ok && !r.IsOK() {
		return outcomeFailed
	}
	return outcomeOK
}
