// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"net/http"
	"sync"
)

// SessionIDHeader carries the session token in both directions. A 409
// response with this header is a session conflict.
const SessionIDHeader = "X-Transmission-Session-Id"

// sessionStore holds the session token of one client. Once a token has been
// observed the store never goes back to having none.
type sessionStore interface {
	// token returns the current token and whether the server ever sent one.
	token() (string, bool)
	// observe stores the token carried by h, if any, and returns it.
	observe(h http.Header) (string, bool)
}

// session is the store of a Client. It is not safe for concurrent use.
type session struct {
	id    string
	known bool
}

func (s *session) token() (string, bool) {
	return s.id, s.known
}

func (s *session) observe(h http.Header) (string, bool) {
	id, ok := headerToken(h)
	if !ok {
		return "", false
	}
	s.id, s.known = id, true
	return id, true
}

// sharedSession is the store of a SharableClient.
type sharedSession struct {
	lock  sync.RWMutex
	inner session
}

func (s *sharedSession) token() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.inner.token()
}

func (s *sharedSession) observe(h http.Header) (string, bool) {
	id, ok := headerToken(h)
	if !ok {
		return "", false
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.inner.id, s.inner.known = id, true
	return id, true
}

// headerToken matches the header name exactly as canonicalized by net/http.
func headerToken(h http.Header) (string, bool) {
	values, ok := h[http.CanonicalHeaderKey(SessionIDHeader)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
