// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transmission is a client for the Transmission torrent daemon's
// JSON RPC protocol.
//
// # Usage
//
//	client := transmission.New("http://localhost:9091/transmission/rpc",
//	    transmission.WithBasicAuth("user", "secret"))
//
//	resp, err := client.TorrentGet(ctx,
//	    []transmission.TorrentGetField{transmission.FieldID, transmission.FieldName}, nil)
//	if err != nil {
//	    return err // transport, decode or session failure
//	}
//	if !resp.IsOK() {
//	    return fmt.Errorf("daemon said: %s", resp.Result)
//	}
//
// Methods without a typed wrapper can be sent with Invoke:
//
//	resp, err := transmission.Invoke[transmission.FreeSpace](ctx, client,
//	    transmission.FreeSpaceRequest("/downloads"))
//
// # Sessions
//
// The daemon rejects requests lacking a current session id with status 409
// and hands out a fresh id in the X-Transmission-Session-Id header. The
// client stores that id, resends the request, and keeps using the id on
// later calls. A call gives up after MaxRetries requests.
//
// A Client must not be used from more than one goroutine at a time. Use
// NewSharable for a client whose session id is guarded by a lock.
//
// # Errors
//
// Failures match ErrTransport, ErrDecode, ErrNoSessionID or
// ErrMaxRetriesReached with errors.Is. A daemon-side failure is not an
// error: the Response is returned with Result set to the daemon's message.
package transmission
