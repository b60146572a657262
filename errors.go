// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"github.com/juju/errors"
)

// Errors returned by a call. Every technical failure matches exactly one of
// the first four with errors.Is; a server-reported failure (a result other
// than "success") is not an error and is returned in the Response.
const (
	// ErrTransport marks network and IO failures. They are never retried.
	ErrTransport = errors.ConstError("transport failure")

	// ErrDecode marks a response body that is not valid JSON or does not
	// match the expected result type.
	ErrDecode = errors.ConstError("malformed response")

	// ErrNoSessionID is returned when the server answers 409 without
	// supplying a new session id.
	ErrNoSessionID = errors.ConstError("session conflict without " + SessionIDHeader + " header")

	// ErrMaxRetriesReached is returned when every attempt of a call was
	// answered with a session conflict.
	ErrMaxRetriesReached = errors.ConstError("max retries reached")

	// ErrMalformedID is returned when a torrent identifier on the wire is
	// neither a number nor a string.
	ErrMalformedID = errors.ConstError("malformed identifier")

	// ErrMissingTorrentSource is returned by TorrentAdd when neither a
	// filename nor metainfo is given. No request is sent.
	ErrMissingTorrentSource = errors.ConstError("torrent-add needs a filename or metainfo")
)

// kindError tags err with one of the sentinel kinds above while keeping the
// original error reachable through errors.Is and errors.As.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

func withKind(kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &kindError{kind: kind, err: err}
}
