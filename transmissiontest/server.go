// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transmissiontest runs a fake Transmission daemon over HTTP for
// tests. It speaks the session handshake, basic auth and the RPC methods of
// package transmission, with torrents kept in memory.
package transmissiontest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/rpc/v2"
	"github.com/tidwall/gjson"

	"github.com/luxfi/transmission"
)

// RPCPath is where the daemon serves RPC requests.
const RPCPath = "/transmission/rpc"

// Request is a request as received by the Server, before any checks.
type Request struct {
	Method    string
	SessionID string
	Body      []byte
}

// Server is an httptest.Server running a Daemon.
type Server struct {
	*httptest.Server

	Daemon *Daemon

	rpcServer *rpc.Server
	user      string
	password  string

	mu                sync.Mutex
	sessionID         string
	forcedConflicts   int
	omitSessionHeader bool
	requests          []Request
}

// Option configures a Server.
type Option func(*Server)

// WithCredentials makes the server require basic auth.
func WithCredentials(user, password string) Option {
	return func(s *Server) {
		s.user = user
		s.password = password
	}
}

// WithDaemon serves d instead of a new empty daemon.
func WithDaemon(d *Daemon) Option {
	return func(s *Server) { s.Daemon = d }
}

// NewServer starts a server. Close it when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		Daemon:    NewDaemon(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rpcServer = rpc.NewServer()
	s.rpcServer.RegisterCodec(envelopeCodec{}, "application/json")
	if err := s.rpcServer.RegisterService(s.Daemon, serviceName); err != nil {
		panic(err)
	}
	s.Server = httptest.NewServer(s)
	return s
}

// Endpoint returns the RPC URL to give to a client.
func (s *Server) Endpoint() string {
	return s.URL + RPCPath
}

// SessionID returns the id the server currently accepts.
func (s *Server) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// RotateSession replaces the accepted session id, as a daemon restart would.
func (s *Server) RotateSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = uuid.NewString()
}

// ForceConflicts makes the next n requests fail with 409, each handing out
// a new session id.
func (s *Server) ForceConflicts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forcedConflicts = n
}

// OmitSessionHeader makes 409 responses leave out the session id header.
func (s *Server) OmitSessionHeader(omit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.omitSessionHeader = omit
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Methods returns the method of every request received so far.
func (s *Server) Methods() []string {
	reqs := s.Requests()
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Method
	}
	return out
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != RPCPath {
		http.NotFound(w, r)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	presented := r.Header.Get(transmission.SessionIDHeader)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:    gjson.GetBytes(body, "method").String(),
		SessionID: presented,
		Body:      body,
	})
	if s.user != "" {
		user, password, ok := r.BasicAuth()
		if !ok || user != s.user || password != s.password {
			s.mu.Unlock()
			w.Header().Set("WWW-Authenticate", `Basic realm="Transmission"`)
			http.Error(w, "<h1>401: Unauthorized</h1>", http.StatusUnauthorized)
			return
		}
	}
	conflict := presented != s.sessionID
	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		s.sessionID = uuid.NewString()
		conflict = true
	}
	id, omit := s.sessionID, s.omitSessionHeader
	s.mu.Unlock()

	if conflict {
		logger.Debugf("session conflict, handing out %s", id)
		if !omit {
			w.Header().Set(transmission.SessionIDHeader, id)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, "<h1>409: Conflict</h1>")
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}
	s.rpcServer.ServeHTTP(w, r)
}
