// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"strconv"
)

// Priority of a torrent's bandwidth or of a file.
type Priority int8

const (
	PriorityLow    Priority = -1
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 1
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	}
	return "priority(" + strconv.Itoa(int(p)) + ")"
}

// IdleMode selects which seeding inactivity limit applies to a torrent.
type IdleMode int8

const (
	IdleModeGlobal    IdleMode = 0
	IdleModeSingle    IdleMode = 1
	IdleModeUnlimited IdleMode = 2
)

func (m IdleMode) String() string {
	return modeString(int8(m), "idle-mode")
}

// RatioMode selects which seeding ratio limit applies to a torrent.
type RatioMode int8

const (
	RatioModeGlobal    RatioMode = 0
	RatioModeSingle    RatioMode = 1
	RatioModeUnlimited RatioMode = 2
)

func (m RatioMode) String() string {
	return modeString(int8(m), "ratio-mode")
}

func modeString(m int8, kind string) string {
	switch m {
	case 0:
		return "global"
	case 1:
		return "single"
	case 2:
		return "unlimited"
	}
	return kind + "(" + strconv.Itoa(int(m)) + ")"
}

// ErrorType classifies the error field of a torrent.
type ErrorType int8

const (
	ErrorTypeOK             ErrorType = 0
	ErrorTypeTrackerWarning ErrorType = 1
	ErrorTypeTrackerError   ErrorType = 2
	ErrorTypeLocalError     ErrorType = 3
)

func (e ErrorType) String() string {
	switch e {
	case ErrorTypeOK:
		return "ok"
	case ErrorTypeTrackerWarning:
		return "tracker warning"
	case ErrorTypeTrackerError:
		return "tracker error"
	case ErrorTypeLocalError:
		return "local error"
	}
	return "error-type(" + strconv.Itoa(int(e)) + ")"
}

// TorrentStatus is the activity state of a torrent.
type TorrentStatus int8

const (
	StatusStopped          TorrentStatus = 0
	StatusQueuedToVerify   TorrentStatus = 1
	StatusVerifying        TorrentStatus = 2
	StatusQueuedToDownload TorrentStatus = 3
	StatusDownloading      TorrentStatus = 4
	StatusQueuedToSeed     TorrentStatus = 5
	StatusSeeding          TorrentStatus = 6
)

var statusNames = [...]string{
	StatusStopped:          "stopped",
	StatusQueuedToVerify:   "queued to verify",
	StatusVerifying:        "verifying",
	StatusQueuedToDownload: "queued to download",
	StatusDownloading:      "downloading",
	StatusQueuedToSeed:     "queued to seed",
	StatusSeeding:          "seeding",
}

func (s TorrentStatus) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// TrackerState is the announce or scrape state of a tracker.
type TrackerState int8

const (
	TrackerInactive TrackerState = 0
	TrackerWaiting  TrackerState = 1
	TrackerQueued   TrackerState = 2
	TrackerActive   TrackerState = 3
)

func (s TrackerState) String() string {
	switch s {
	case TrackerInactive:
		return "inactive"
	case TrackerWaiting:
		return "waiting"
	case TrackerQueued:
		return "queued"
	case TrackerActive:
		return "active"
	}
	return "tracker-state(" + strconv.Itoa(int(s)) + ")"
}
