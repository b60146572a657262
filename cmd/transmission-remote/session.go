// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/luxfi/transmission"
)

func (a *app) sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show session settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := checked(a.client.SessionGet(cmd.Context()))
			if err != nil {
				return err
			}
			formatSession(a.out, resp.Arguments)
			return nil
		},
	}
}

func (a *app) sessionSetCmd() *cobra.Command {
	var (
		downloadDir string
		down, up    int64
		altSpeed    bool
		peerPort    int64
		ratio       float64
	)
	cmd := &cobra.Command{
		Use:   "session-set",
		Short: "Change session settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var args transmission.SessionSetArgs
			flags := cmd.Flags()
			if flags.Changed("download-dir") {
				dir, err := homedir.Expand(downloadDir)
				if err != nil {
					return errors.Trace(err)
				}
				args.DownloadDir = &dir
			}
			if flags.Changed("down") {
				args.SpeedLimitDown = &down
				args.SpeedLimitDownEnabled = transmission.Ptr(down > 0)
			}
			if flags.Changed("up") {
				args.SpeedLimitUp = &up
				args.SpeedLimitUpEnabled = transmission.Ptr(up > 0)
			}
			if flags.Changed("alt-speed") {
				args.AltSpeedEnabled = &altSpeed
			}
			if flags.Changed("port") {
				args.PeerPort = &peerPort
			}
			if flags.Changed("ratio") {
				args.SeedRatioLimit = &ratio
				args.SeedRatioLimited = transmission.Ptr(ratio > 0)
			}
			_, err := checked(a.client.SessionSet(cmd.Context(), args))
			return err
		},
	}
	cmd.Flags().StringVar(&downloadDir, "download-dir", "", "default download directory")
	cmd.Flags().Int64Var(&down, "down", 0, "download limit in KB/s, 0 for none")
	cmd.Flags().Int64Var(&up, "up", 0, "upload limit in KB/s, 0 for none")
	cmd.Flags().BoolVar(&altSpeed, "alt-speed", false, "enable alternative speed limits")
	cmd.Flags().Int64Var(&peerPort, "port", 0, "peer port")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "seed ratio limit, 0 for none")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show session statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := checked(a.client.SessionStats(cmd.Context()))
			if err != nil {
				return err
			}
			formatStats(a.out, resp.Arguments)
			return nil
		},
	}
}

func (a *app) closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Shut the daemon down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := checked(a.client.SessionClose(cmd.Context()))
			return err
		},
	}
}

func (a *app) freeSpaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free-space <dir>",
		Short: "Show free space in a directory of the daemon host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checked(a.client.FreeSpace(cmd.Context(), args[0]))
			if err != nil {
				return err
			}
			fs := resp.Arguments
			fmt.Fprintf(a.out, "%s: %s free of %s\n", fs.Path,
				humanize.IBytes(uint64(fs.SizeBytes)), humanize.IBytes(uint64(fs.TotalSize)))
			return nil
		},
	}
}

func (a *app) portTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "port-test",
		Short: "Check whether the peer port is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := checked(a.client.PortTest(cmd.Context()))
			if err != nil {
				return err
			}
			if resp.Arguments.PortIsOpen {
				fmt.Fprintln(a.out, "Port is open")
			} else {
				fmt.Fprintln(a.out, "Port is closed")
			}
			return nil
		},
	}
}

func (a *app) blocklistUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocklist-update",
		Short: "Download the blocklist again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := checked(a.client.BlocklistUpdate(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Blocklist has %s rules\n", humanize.Comma(resp.Arguments.BlocklistSize))
			return nil
		},
	}
}

func (a *app) groupSetCmd() *cobra.Command {
	var group transmission.BandwidthGroup
	cmd := &cobra.Command{
		Use:   "group-set <name>",
		Short: "Create or change a bandwidth group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group.Name = args[0]
			group.SpeedLimitDownEnabled = group.SpeedLimitDown > 0
			group.SpeedLimitUpEnabled = group.SpeedLimitUp > 0
			_, err := checked(a.client.GroupSet(cmd.Context(), group))
			return err
		},
	}
	cmd.Flags().Int64Var(&group.SpeedLimitDown, "down", 0, "download limit in KB/s, 0 for none")
	cmd.Flags().Int64Var(&group.SpeedLimitUp, "up", 0, "upload limit in KB/s, 0 for none")
	cmd.Flags().BoolVar(&group.HonorsSessionLimits, "honor-session-limits", true, "also apply session limits")
	return cmd
}

func (a *app) groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [name...]",
		Short: "List bandwidth groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			if len(args) > 0 {
				names = args
			}
			resp, err := checked(a.client.GroupGet(cmd.Context(), names))
			if err != nil {
				return err
			}
			formatGroups(a.out, resp.Arguments.Group)
			return nil
		},
	}
}
