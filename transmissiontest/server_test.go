// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmissiontest

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"

	"github.com/luxfi/transmission"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

func post(t *testing.T, url, sessionID, body string, auth ...string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(transmission.SessionIDHeader, sessionID)
	}
	if len(auth) == 2 {
		req.SetBasicAuth(auth[0], auth[1])
	}
	req.Close = true
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestServerHandshake(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	resp, _ := post(t, srv.Endpoint(), "", `{"method":"session-get"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	id := resp.Header.Get(transmission.SessionIDHeader)
	assert.Equal(t, srv.SessionID(), id)

	resp, body := post(t, srv.Endpoint(), id, `{"method":"session-get"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", gjson.Get(body, "result").String())
	assert.Equal(t, int64(17), gjson.Get(body, "arguments.rpc-version").Int())

	assert.Equal(t, []string{"session-get", "session-get"}, srv.Methods())
	reqs := srv.Requests()
	assert.Empty(t, reqs[0].SessionID)
	assert.Equal(t, id, reqs[1].SessionID)
}

func TestServerForcedConflicts(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	srv.ForceConflicts(2)
	id := srv.SessionID()
	for i := 0; i < 2; i++ {
		resp, _ := post(t, srv.Endpoint(), id, `{"method":"port-test"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		next := resp.Header.Get(transmission.SessionIDHeader)
		assert.NotEqual(t, id, next)
		id = next
	}
	resp, _ := post(t, srv.Endpoint(), id, `{"method":"port-test"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.OmitSessionHeader(true)
	srv.RotateSession()
	resp, _ = post(t, srv.Endpoint(), id, `{"method":"port-test"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(transmission.SessionIDHeader))
}

func TestServerBasicAuth(t *testing.T) {
	srv := NewServer(WithCredentials("admin", "pw"))
	defer srv.Close()

	resp, _ := post(t, srv.Endpoint(), "", `{"method":"session-get"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = post(t, srv.Endpoint(), "", `{"method":"session-get"}`, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = post(t, srv.Endpoint(), srv.SessionID(), `{"method":"session-get"}`, "admin", "pw")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerUnknownMethodAndPath(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	_, body := post(t, srv.Endpoint(), srv.SessionID(), `{"method":"torrent-explode"}`)
	assert.Equal(t, resultUnknownMethod, gjson.Get(body, "result").String())

	resp, _ := post(t, srv.URL+"/elsewhere", srv.SessionID(), `{"method":"session-get"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerMethodError(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	resp, body := post(t, srv.Endpoint(), srv.SessionID(), `{"method":"torrent-add","arguments":{"paused":true}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no filename or metainfo specified", gjson.Get(body, "result").String())
	assert.True(t, gjson.Get(body, "arguments").IsObject())
}

func TestGoMethodName(t *testing.T) {
	for wire, want := range map[string]string{
		"session-get":          "SessionGet",
		"torrent-set-location": "TorrentSetLocation",
		"torrent-start-now":    "TorrentStartNow",
		"queue-move-bottom":    "QueueMoveBottom",
		"free-space":           "FreeSpace",
	} {
		assert.Equal(t, want, goMethodName(wire), wire)
	}
}

func TestParseSource(t *testing.T) {
	name, hash := parseSource("magnet:?xt=urn:btih:E08C426AAB2CC58649AE5E73690E3747117B3470&dn=debian.iso")
	assert.Equal(t, "debian.iso", name)
	assert.Equal(t, "e08c426aab2cc58649ae5e73690e3747117b3470", hash)

	name, hash = parseSource("https://example.com/files/ubuntu.torrent")
	assert.Equal(t, "ubuntu", name)
	assert.Len(t, hash, 40)
}
