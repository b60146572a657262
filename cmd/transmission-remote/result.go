// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"

	"github.com/juju/errors"

	"github.com/luxfi/transmission"
)

// errDaemon marks a call the daemon reported as failed.
const errDaemon = errors.ConstError("daemon refused")

// checked turns a daemon-side failure into an error so the command exits
// with a non-zero status.
func checked[T any](resp *transmission.Response[T], err error) (*transmission.Response[T], error) {
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !resp.IsOK() {
		return nil, errors.Annotate(errDaemon, resp.Result)
	}
	return resp, nil
}

// parseIDs reads torrent ids from the command line. "all" selects every
// torrent.
func parseIDs(args []string) ([]transmission.ID, error) {
	if len(args) == 0 {
		return nil, errors.New("no torrent ids given; use \"all\" for every torrent")
	}
	if len(args) == 1 && args[0] == "all" {
		return nil, nil
	}
	ids := make([]transmission.ID, len(args))
	for i, arg := range args {
		ids[i] = transmission.ParseID(arg)
	}
	return ids, nil
}

// torrentIDs is parseIDs for commands that act on torrents. "all" is
// resolved to the ids the daemon currently has, since those methods treat
// an empty id list as no torrents.
func (a *app) torrentIDs(ctx context.Context, args []string) ([]transmission.ID, error) {
	ids, err := parseIDs(args)
	if err != nil || ids != nil {
		return ids, err
	}
	resp, err := checked(a.client.TorrentGet(ctx, []transmission.TorrentGetField{transmission.FieldID}, nil))
	if err != nil {
		return nil, errors.Annotate(err, "listing torrents")
	}
	ids = make([]transmission.ID, 0, len(resp.Arguments.Torrents))
	for _, t := range resp.Arguments.Torrents {
		if t.ID != nil {
			ids = append(ids, transmission.NumericID(*t.ID))
		}
	}
	return ids, nil
}
