// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const statsReply = `{"arguments":{"torrentCount":7},"result":"success"}`

type recorded struct {
	sessionID string
	body      string
	user      string
	password  string
	hasAuth   bool
	ctype     string
}

// conflictServer answers the first conflicts requests with 409 and a fresh
// session id, then replies with reply.
type conflictServer struct {
	*httptest.Server

	conflicts  int
	omitHeader bool
	reply      string
	status     int

	mu       sync.Mutex
	requests []recorded
}

func newConflictServer(t *testing.T, conflicts int, configure ...func(*conflictServer)) *conflictServer {
	s := &conflictServer{conflicts: conflicts, reply: statsReply, status: http.StatusOK}
	for _, f := range configure {
		f(s)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *conflictServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	user, password, hasAuth := r.BasicAuth()

	s.mu.Lock()
	s.requests = append(s.requests, recorded{
		sessionID: r.Header.Get(SessionIDHeader),
		body:      string(body),
		user:      user,
		password:  password,
		hasAuth:   hasAuth,
		ctype:     r.Header.Get("Content-Type"),
	})
	n := len(s.requests)
	s.mu.Unlock()

	if n <= s.conflicts {
		if !s.omitHeader {
			w.Header().Set(SessionIDHeader, fmt.Sprintf("token-%d", n))
		}
		w.WriteHeader(http.StatusConflict)
		return
	}
	w.WriteHeader(s.status)
	_, _ = io.WriteString(w, s.reply)
}

func (s *conflictServer) seen() []recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recorded(nil), s.requests...)
}

func TestCallRetriesSessionConflicts(t *testing.T) {
	for conflicts := 0; conflicts < MaxRetries; conflicts++ {
		t.Run(fmt.Sprintf("%d conflicts", conflicts), func(t *testing.T) {
			srv := newConflictServer(t, conflicts)
			client := New(srv.URL)

			resp, err := client.SessionStats(context.Background())
			require.NoError(t, err)
			assert.True(t, resp.IsOK())
			assert.Equal(t, int64(7), resp.Arguments.TorrentCount)

			reqs := srv.seen()
			require.Len(t, reqs, conflicts+1)
			assert.Empty(t, reqs[0].sessionID)
			for i := 1; i < len(reqs); i++ {
				assert.Equal(t, fmt.Sprintf("token-%d", i), reqs[i].sessionID)
				assert.Equal(t, reqs[0].body, reqs[i].body)
			}
			if conflicts > 0 {
				assert.Equal(t, fmt.Sprintf("token-%d", conflicts), client.SessionID())
			} else {
				assert.Empty(t, client.SessionID())
			}
		})
	}
}

func TestCallMaxRetriesReached(t *testing.T) {
	srv := newConflictServer(t, 100)
	client := New(srv.URL)

	resp, err := client.SessionStats(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrMaxRetriesReached))
	assert.Len(t, srv.seen(), MaxRetries)
	assert.Equal(t, fmt.Sprintf("token-%d", MaxRetries), client.SessionID())
}

func TestCallConflictWithoutSessionID(t *testing.T) {
	srv := newConflictServer(t, 100, func(s *conflictServer) { s.omitHeader = true })
	client := New(srv.URL)

	_, err := client.SessionStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSessionID))
	assert.False(t, errors.Is(err, ErrMaxRetriesReached))
	assert.Len(t, srv.seen(), 1)
	assert.Empty(t, client.SessionID())
}

func TestCallReusesSessionAcrossCalls(t *testing.T) {
	srv := newConflictServer(t, 1)
	client := New(srv.URL)

	_, err := client.SessionStats(context.Background())
	require.NoError(t, err)
	_, err = client.SessionStats(context.Background())
	require.NoError(t, err)

	reqs := srv.seen()
	require.Len(t, reqs, 3)
	assert.Equal(t, "token-1", reqs[1].sessionID)
	assert.Equal(t, "token-1", reqs[2].sessionID)
}

func TestCallFailedResultIsNotAnError(t *testing.T) {
	srv := newConflictServer(t, 0, func(s *conflictServer) {
		s.reply = `{"arguments":{},"result":"no such torrent"}`
	})
	client := New(srv.URL)

	resp, err := client.TorrentAction(context.Background(), ActionStart, IDs(1))
	require.NoError(t, err)
	assert.False(t, resp.IsOK())
	assert.Equal(t, "no such torrent", resp.Result)
}

func TestCallSendsHeadersAndAuth(t *testing.T) {
	srv := newConflictServer(t, 0)
	client := New(srv.URL, WithBasicAuth("alice", "secret"))

	_, err := client.SessionStats(context.Background())
	require.NoError(t, err)

	client.SetAuth("bob", "hunter2")
	_, err = client.SessionStats(context.Background())
	require.NoError(t, err)

	reqs := srv.seen()
	require.Len(t, reqs, 2)
	assert.Equal(t, "application/json", reqs[0].ctype)
	assert.True(t, reqs[0].hasAuth)
	assert.Equal(t, "alice", reqs[0].user)
	assert.Equal(t, "secret", reqs[0].password)
	assert.Equal(t, "bob", reqs[1].user)
	assert.JSONEq(t, `{"method":"session-stats"}`, reqs[0].body)
}

func TestCallWithoutAuth(t *testing.T) {
	srv := newConflictServer(t, 0)
	_, err := New(srv.URL).SessionStats(context.Background())
	require.NoError(t, err)
	assert.False(t, srv.seen()[0].hasAuth)
}

func TestCallNonJSONStatus(t *testing.T) {
	srv := newConflictServer(t, 0, func(s *conflictServer) {
		s.status = http.StatusUnauthorized
		s.reply = "<h1>401: Unauthorized</h1>"
	})
	client := New(srv.URL)

	_, err := client.SessionStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	assert.Contains(t, err.Error(), "401 Unauthorized")
	assert.Len(t, srv.seen(), 1)
}

func TestCallTransportErrorNotRetried(t *testing.T) {
	var mu sync.Mutex
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL).SessionStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits)
}

func TestCallCancelledContext(t *testing.T) {
	srv := newConflictServer(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).SessionStats(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCallNilReply(t *testing.T) {
	srv := newConflictServer(t, 1)
	client := New(srv.URL)
	require.NoError(t, client.Call(context.Background(), SessionCloseRequest(), nil))
	assert.Len(t, srv.seen(), 2)
}

func TestRateLimiterWaitsOncePerCall(t *testing.T) {
	srv := newConflictServer(t, 2)
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	client := New(srv.URL, WithRateLimiter(limiter))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := client.SessionStats(ctx)
	require.NoError(t, err)
	assert.Len(t, srv.seen(), 3)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	_, err = client.SessionStats(ctx2)
	require.Error(t, err)
	assert.Len(t, srv.seen(), 3)
}

func TestRateLimiterCancelledIsTransportError(t *testing.T) {
	srv := newConflictServer(t, 0)
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, limiter.Allow())
	client := New(srv.URL, WithRateLimiter(limiter))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.SessionStats(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Minute)
	defer cancel2()
	_, err = client.SessionStats(ctx2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport), "a wait past the deadline is a transport error")
	assert.Empty(t, srv.seen())
}

func TestTorrentAddNeedsSource(t *testing.T) {
	srv := newConflictServer(t, 0)
	_, err := New(srv.URL).TorrentAdd(context.Background(), TorrentAddArgs{Paused: Ptr(true)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTorrentSource))
	assert.Empty(t, srv.seen())
}

func TestSharableClientConcurrentCalls(t *testing.T) {
	const token = "shared-token"
	var mu sync.Mutex
	var conflicts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		if r.Header.Get(SessionIDHeader) != token {
			mu.Lock()
			conflicts++
			mu.Unlock()
			w.Header().Set(SessionIDHeader, token)
			w.WriteHeader(http.StatusConflict)
			return
		}
		_, _ = io.WriteString(w, statsReply)
	}))
	defer srv.Close()

	client := NewSharable(srv.URL)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.SessionStats(context.Background())
			if err == nil && !resp.IsOK() {
				err = errors.Errorf("unexpected result %q", resp.Result)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, token, client.SessionID())

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, conflicts, 16)
	assert.GreaterOrEqual(t, conflicts, 1)
}
