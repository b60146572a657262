// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"

	"github.com/luxfi/transmission"
)

// torrentListFields are the fields the list command asks for.
var torrentListFields = []transmission.TorrentGetField{
	transmission.FieldID,
	transmission.FieldName,
	transmission.FieldStatus,
	transmission.FieldPercentDone,
	transmission.FieldSizeWhenDone,
	transmission.FieldRateDownload,
	transmission.FieldRateUpload,
	transmission.FieldUploadRatio,
	transmission.FieldETA,
}

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	return table
}

func formatTorrents(w io.Writer, torrents []transmission.Torrent) {
	table := newTable()
	for _, col := range []int{0, 3, 4, 5, 6, 7} {
		table.RightAlign(col)
	}
	table.AddRow("ID", "Name", "Status", "Done", "Size", "Down", "Up", "Ratio", "ETA")

	var size, down, up int64
	for _, t := range torrents {
		size += deref(t.SizeWhenDone)
		down += deref(t.RateDownload)
		up += deref(t.RateUpload)
		table.AddRow(
			deref(t.ID),
			deref(t.Name),
			statusString(t.Status),
			fmt.Sprintf("%.0f%%", deref(t.PercentDone)*100),
			humanize.Bytes(uint64(deref(t.SizeWhenDone))),
			rateString(deref(t.RateDownload)),
			rateString(deref(t.RateUpload)),
			ratioString(deref(t.UploadRatio)),
			etaString(deref(t.ETA)),
		)
	}
	table.AddRow("Sum:", "", "", "", humanize.Bytes(uint64(size)), rateString(down), rateString(up), "", "")
	fmt.Fprintln(w, table)
}

func formatSession(w io.Writer, s transmission.SessionGet) {
	table := newTable()
	table.AddRow("Version:", s.Version)
	table.AddRow("RPC version:", fmt.Sprintf("%d (minimum %d)", s.RPCVersion, s.RPCVersionMinimum))
	table.AddRow("Session ID:", s.SessionID)
	table.AddRow("Download dir:", s.DownloadDir)
	table.AddRow("Peer port:", s.PeerPort)
	table.AddRow("Peer limit:", s.PeerLimitGlobal)
	table.AddRow("Encryption:", s.Encryption)
	table.AddRow("Download limit:", limitString(s.SpeedLimitDownEnabled, s.SpeedLimitDown))
	table.AddRow("Upload limit:", limitString(s.SpeedLimitUpEnabled, s.SpeedLimitUp))
	table.AddRow("Seed ratio limit:", limitedRatio(s.SeedRatioLimited, s.SeedRatioLimit))
	fmt.Fprintln(w, table)
}

func formatStats(w io.Writer, s transmission.SessionStats) {
	table := newTable()
	table.AddRow("", "Current session", "Total")
	table.AddRow("Uploaded:", humanize.Bytes(uint64(s.CurrentStats.UploadedBytes)), humanize.Bytes(uint64(s.CumulativeStats.UploadedBytes)))
	table.AddRow("Downloaded:", humanize.Bytes(uint64(s.CurrentStats.DownloadedBytes)), humanize.Bytes(uint64(s.CumulativeStats.DownloadedBytes)))
	table.AddRow("Files added:", humanize.Comma(s.CurrentStats.FilesAdded), humanize.Comma(s.CumulativeStats.FilesAdded))
	table.AddRow("Active:", secondsString(s.CurrentStats.SecondsActive), secondsString(s.CumulativeStats.SecondsActive))
	table.AddRow("Torrents:", fmt.Sprintf("%d (%d active, %d paused)", s.TorrentCount, s.ActiveTorrentCount, s.PausedTorrentCount), "")
	fmt.Fprintln(w, table)
}

func formatGroups(w io.Writer, groups []transmission.BandwidthGroup) {
	table := newTable()
	table.AddRow("Name", "Down", "Up", "Honors session limits")
	for _, g := range groups {
		table.AddRow(g.Name,
			limitString(g.SpeedLimitDownEnabled, g.SpeedLimitDown),
			limitString(g.SpeedLimitUpEnabled, g.SpeedLimitUp),
			strconv.FormatBool(g.HonorsSessionLimits))
	}
	fmt.Fprintln(w, table)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func statusString(s *transmission.TorrentStatus) string {
	if s == nil {
		return "unknown"
	}
	return s.String()
}

func rateString(bytesPerSecond int64) string {
	if bytesPerSecond <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}

func ratioString(r float64) string {
	if r < 0 {
		return "None"
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// etaString formats the eta field, where -1 means unavailable and -2
// unknown.
func etaString(seconds int64) string {
	switch {
	case seconds == -1:
		return "-"
	case seconds < 0:
		return "Unknown"
	}
	return secondsString(seconds)
}

func secondsString(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}

// limitString formats a speed limit in KB/s as the daemon reports it.
func limitString(enabled bool, kbps int64) string {
	if !enabled {
		return "Unlimited"
	}
	return humanize.Bytes(uint64(kbps)*1000) + "/s"
}

func limitedRatio(limited bool, ratio float64) string {
	if !limited {
		return "Unlimited"
	}
	return ratioString(ratio)
}
