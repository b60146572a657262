// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"context"

	"github.com/juju/errors"
)

// Typed wrappers around Invoke, one per RPC method.

func (c *Client) SessionGet(ctx context.Context) (*Response[SessionGet], error) {
	return Invoke[SessionGet](ctx, c, SessionGetRequest())
}

func (c *Client) SessionSet(ctx context.Context, args SessionSetArgs) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, SessionSetRequest(args))
}

func (c *Client) SessionStats(ctx context.Context) (*Response[SessionStats], error) {
	return Invoke[SessionStats](ctx, c, SessionStatsRequest())
}

// SessionClose asks the daemon to shut down.
func (c *Client) SessionClose(ctx context.Context) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, SessionCloseRequest())
}

func (c *Client) BlocklistUpdate(ctx context.Context) (*Response[BlocklistUpdate], error) {
	return Invoke[BlocklistUpdate](ctx, c, BlocklistUpdateRequest())
}

func (c *Client) FreeSpace(ctx context.Context, path string) (*Response[FreeSpace], error) {
	return Invoke[FreeSpace](ctx, c, FreeSpaceRequest(path))
}

func (c *Client) PortTest(ctx context.Context) (*Response[PortTest], error) {
	return Invoke[PortTest](ctx, c, PortTestRequest())
}

// TorrentGet fetches fields of the torrents in ids. Nil fields requests
// every field, nil ids every torrent.
func (c *Client) TorrentGet(ctx context.Context, fields []TorrentGetField, ids []ID) (*Response[Torrents], error) {
	return Invoke[Torrents](ctx, c, TorrentGetRequest(fields, ids))
}

func (c *Client) TorrentSet(ctx context.Context, args TorrentSetArgs, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, TorrentSetRequest(args, ids))
}

// TorrentAdd adds a torrent from a filename or URL, or from base64 encoded
// metainfo. It fails with ErrMissingTorrentSource if neither is set.
func (c *Client) TorrentAdd(ctx context.Context, args TorrentAddArgs) (*Response[TorrentAddResult], error) {
	if args.Filename == nil && args.Metainfo == nil {
		return nil, errors.Trace(ErrMissingTorrentSource)
	}
	return Invoke[TorrentAddResult](ctx, c, TorrentAddRequest(args))
}

// TorrentRemove removes the torrents in ids, and their data too when
// deleteLocalData is set.
func (c *Client) TorrentRemove(ctx context.Context, ids []ID, deleteLocalData bool) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, TorrentRemoveRequest(ids, deleteLocalData))
}

// TorrentAction starts, stops, verifies or reannounces the torrents in ids.
func (c *Client) TorrentAction(ctx context.Context, action TorrentAction, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, TorrentActionRequest(action, ids))
}

func (c *Client) TorrentSetLocation(ctx context.Context, ids []ID, location string, move bool) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, TorrentSetLocationRequest(ids, location, &move))
}

func (c *Client) TorrentRenamePath(ctx context.Context, ids []ID, path, name string) (*Response[TorrentRenamePath], error) {
	return Invoke[TorrentRenamePath](ctx, c, TorrentRenamePathRequest(ids, path, name))
}

func (c *Client) QueueMoveTop(ctx context.Context, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, QueueMoveTopRequest(ids))
}

func (c *Client) QueueMoveUp(ctx context.Context, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, QueueMoveUpRequest(ids))
}

func (c *Client) QueueMoveDown(ctx context.Context, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, QueueMoveDownRequest(ids))
}

func (c *Client) QueueMoveBottom(ctx context.Context, ids []ID) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, QueueMoveBottomRequest(ids))
}

func (c *Client) GroupSet(ctx context.Context, group BandwidthGroup) (*Response[Nothing], error) {
	return Invoke[Nothing](ctx, c, GroupSetRequest(group))
}

// GroupGet returns the named bandwidth groups, or all of them for nil names.
func (c *Client) GroupGet(ctx context.Context, names []string) (*Response[BandwidthGroups], error) {
	return Invoke[BandwidthGroups](ctx, c, GroupGetRequest(names))
}
