// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/luxfi/transmission"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [id...]",
		Short: "List torrents",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []transmission.ID
			if len(args) > 0 {
				var err error
				if ids, err = parseIDs(args); err != nil {
					return err
				}
			}
			resp, err := checked(a.client.TorrentGet(cmd.Context(), torrentListFields, ids))
			if err != nil {
				return err
			}
			formatTorrents(a.out, resp.Arguments.Torrents)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		paused      bool
		downloadDir string
		labels      []string
	)
	cmd := &cobra.Command{
		Use:   "add <file|url|magnet>...",
		Short: "Add torrents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, source := range args {
				torrentArgs, err := addSource(source)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("paused") {
					torrentArgs.Paused = &paused
				}
				if downloadDir != "" {
					dir, err := homedir.Expand(downloadDir)
					if err != nil {
						return errors.Trace(err)
					}
					torrentArgs.DownloadDir = &dir
				}
				torrentArgs.Labels = labels

				resp, err := checked(a.client.TorrentAdd(cmd.Context(), torrentArgs))
				if err != nil {
					return errors.Annotatef(err, "adding %s", source)
				}
				res := resp.Arguments
				switch res.Kind {
				case transmission.AddResultAdded:
					fmt.Fprintf(a.out, "Added %q (id %d)\n", res.Torrent.Name, res.Torrent.ID)
				case transmission.AddResultDuplicate:
					fmt.Fprintf(a.out, "Duplicate %q (id %d)\n", res.Torrent.Name, res.Torrent.ID)
				default:
					fmt.Fprintf(a.out, "Sent %s\n", source)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&paused, "paused", false, "add without starting")
	cmd.Flags().StringVar(&downloadDir, "download-dir", "", "download directory")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label to attach, repeatable")
	return cmd
}

// addSource sends local .torrent files as metainfo and anything else as a
// filename for the daemon to fetch.
func addSource(source string) (transmission.TorrentAddArgs, error) {
	path, err := homedir.Expand(source)
	if err != nil {
		return transmission.TorrentAddArgs{}, errors.Trace(err)
	}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(path)
		if err != nil {
			return transmission.TorrentAddArgs{}, errors.Trace(err)
		}
		return transmission.TorrentAddArgs{
			Metainfo: transmission.Ptr(base64.StdEncoding.EncodeToString(data)),
		}, nil
	}
	return transmission.TorrentAddArgs{Filename: &source}, nil
}

func (a *app) removeCmd() *cobra.Command {
	var deleteData bool
	cmd := &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove torrents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.torrentIDs(cmd.Context(), args)
			if err != nil {
				return err
			}
			_, err = checked(a.client.TorrentRemove(cmd.Context(), ids, deleteData))
			return err
		},
	}
	cmd.Flags().BoolVar(&deleteData, "delete", false, "also delete downloaded data")
	return cmd
}

func (a *app) actionCmd(use, short string, action transmission.TorrentAction) *cobra.Command {
	var now bool
	cmd := &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.torrentIDs(cmd.Context(), args)
			if err != nil {
				return err
			}
			act := action
			if now {
				act = transmission.ActionStartNow
			}
			_, err = checked(a.client.TorrentAction(cmd.Context(), act, ids))
			return err
		},
	}
	if action == transmission.ActionStart {
		cmd.Flags().BoolVar(&now, "now", false, "start ahead of the queue")
	}
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	var keep bool
	cmd := &cobra.Command{
		Use:   "move <location> <id>...",
		Short: "Move torrent data to a new location",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.torrentIDs(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			_, err = checked(a.client.TorrentSetLocation(cmd.Context(), ids, args[0], !keep))
			return err
		},
	}
	cmd.Flags().BoolVar(&keep, "find", false, "look for the data in the new location instead of moving it")
	return cmd
}

func (a *app) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <path> <name>",
		Short: "Rename a file or directory of a torrent",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := []transmission.ID{transmission.ParseID(args[0])}
			resp, err := checked(a.client.TorrentRenamePath(cmd.Context(), ids, args[1], args[2]))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Renamed %q to %q in torrent %d\n",
				resp.Arguments.Path, resp.Arguments.Name, resp.Arguments.ID)
			return nil
		},
	}
}

func (a *app) queueCmd() *cobra.Command {
	queue := &cobra.Command{
		Use:   "queue",
		Short: "Change queue positions",
	}
	for _, m := range []struct {
		use, short string
		request    func([]transmission.ID) *transmission.Request
	}{
		{"top", "Move torrents to the top of the queue", transmission.QueueMoveTopRequest},
		{"up", "Move torrents up one position", transmission.QueueMoveUpRequest},
		{"down", "Move torrents down one position", transmission.QueueMoveDownRequest},
		{"bottom", "Move torrents to the bottom of the queue", transmission.QueueMoveBottomRequest},
	} {
		request := m.request
		queue.AddCommand(&cobra.Command{
			Use:   m.use + " <id>...",
			Short: m.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := a.torrentIDs(cmd.Context(), args)
				if err != nil {
					return err
				}
				_, err = checked(transmission.Invoke[transmission.Nothing](cmd.Context(), a.client, request(ids)))
				return err
			},
		})
	}
	return queue
}
