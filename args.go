// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/json"
)

// Argument documents. Optional fields are pointers or slices tagged
// omitempty so that unset fields are left out of the request rather than
// sent as null.

type FreeSpaceArgs struct {
	Path string `json:"path"`
}

// IDsArgs is the argument document of the torrent actions and queue moves.
type IDsArgs struct {
	IDs []ID `json:"ids"`
}

func (a *IDsArgs) MarshalJSON() ([]byte, error) {
	type plain IDsArgs
	return json.Marshal(plain{IDs: nonNilIDs(a.IDs)})
}

// TorrentGetArgs leaves out nil IDs, which selects every torrent. An empty
// but non-nil list is sent and selects none.
type TorrentGetArgs struct {
	Fields []TorrentGetField `json:"fields"`
	IDs    []ID              `json:"ids,omitempty"`
}

func (a TorrentGetArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentGetArgs
	return json.Marshal(struct {
		plain
		IDs *[]ID `json:"ids,omitempty"`
	}{plain: plain(a), IDs: present(a.IDs)})
}

type TorrentRemoveArgs struct {
	IDs             []ID `json:"ids"`
	DeleteLocalData bool `json:"delete-local-data"`
}

func (a *TorrentRemoveArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentRemoveArgs
	p := plain(*a)
	p.IDs = nonNilIDs(p.IDs)
	return json.Marshal(p)
}

type TorrentSetLocationArgs struct {
	IDs      []ID   `json:"ids"`
	Location string `json:"location"`
	Move     *bool  `json:"move,omitempty"`
}

func (a *TorrentSetLocationArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentSetLocationArgs
	p := plain(*a)
	p.IDs = nonNilIDs(p.IDs)
	return json.Marshal(p)
}

type TorrentRenamePathArgs struct {
	IDs  []ID   `json:"ids"`
	Path string `json:"path"`
	Name string `json:"name"`
}

func (a *TorrentRenamePathArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentRenamePathArgs
	p := plain(*a)
	p.IDs = nonNilIDs(p.IDs)
	return json.Marshal(p)
}

// An empty id list must reach the server as [] since a missing list means
// every torrent.
func nonNilIDs(ids []ID) []ID {
	if ids == nil {
		return []ID{}
	}
	return ids
}

// present returns nil for a nil list and a pointer to s otherwise, so that
// omitempty drops only lists that were never set. An empty list clears the
// value on the server.
func present[S ~[]E, E any](s S) *S {
	if s == nil {
		return nil
	}
	return &s
}

// TorrentAddArgs describes a torrent to add. Exactly one of Filename (a
// path, URL or magnet link) and Metainfo (base64 .torrent content) is
// required.
type TorrentAddArgs struct {
	Cookies           *string   `json:"cookies,omitempty"`
	DownloadDir       *string   `json:"download-dir,omitempty"`
	Filename          *string   `json:"filename,omitempty"`
	Labels            []string  `json:"labels,omitempty"`
	Metainfo          *string   `json:"metainfo,omitempty"`
	Paused            *bool     `json:"paused,omitempty"`
	PeerLimit         *int64    `json:"peer-limit,omitempty"`
	BandwidthPriority *Priority `json:"bandwidthPriority,omitempty"`
	FilesWanted       []int     `json:"files-wanted,omitempty"`
	FilesUnwanted     []int     `json:"files-unwanted,omitempty"`
	PriorityHigh      []int     `json:"priority-high,omitempty"`
	PriorityLow       []int     `json:"priority-low,omitempty"`
	PriorityNormal    []int     `json:"priority-normal,omitempty"`
}

func (a TorrentAddArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentAddArgs
	return json.Marshal(struct {
		plain
		Labels         *[]string `json:"labels,omitempty"`
		FilesWanted    *[]int    `json:"files-wanted,omitempty"`
		FilesUnwanted  *[]int    `json:"files-unwanted,omitempty"`
		PriorityHigh   *[]int    `json:"priority-high,omitempty"`
		PriorityLow    *[]int    `json:"priority-low,omitempty"`
		PriorityNormal *[]int    `json:"priority-normal,omitempty"`
	}{
		plain:          plain(a),
		Labels:         present(a.Labels),
		FilesWanted:    present(a.FilesWanted),
		FilesUnwanted:  present(a.FilesUnwanted),
		PriorityHigh:   present(a.PriorityHigh),
		PriorityLow:    present(a.PriorityLow),
		PriorityNormal: present(a.PriorityNormal),
	})
}

// TorrentSetArgs holds torrent fields to change. The ids are set by
// TorrentSetRequest. Nil lists are left out; an empty Labels or
// TrackerList is sent and clears the torrent's labels or trackers.
type TorrentSetArgs struct {
	BandwidthPriority   *Priority   `json:"bandwidthPriority,omitempty"`
	DownloadLimit       *int64      `json:"downloadLimit,omitempty"`
	DownloadLimited     *bool       `json:"downloadLimited,omitempty"`
	FilesWanted         []int       `json:"files-wanted,omitempty"`
	FilesUnwanted       []int       `json:"files-unwanted,omitempty"`
	Group               *string     `json:"group,omitempty"`
	HonorsSessionLimits *bool       `json:"honorsSessionLimits,omitempty"`
	IDs                 []ID        `json:"ids,omitempty"`
	Labels              []string    `json:"labels,omitempty"`
	Location            *string     `json:"location,omitempty"`
	PeerLimit           *int64      `json:"peer-limit,omitempty"`
	PriorityHigh        []int       `json:"priority-high,omitempty"`
	PriorityLow         []int       `json:"priority-low,omitempty"`
	PriorityNormal      []int       `json:"priority-normal,omitempty"`
	QueuePosition       *int64      `json:"queuePosition,omitempty"`
	SeedIdleLimit       *int64      `json:"seedIdleLimit,omitempty"`
	SeedIdleMode        *IdleMode   `json:"seedIdleMode,omitempty"`
	SeedRatioLimit      *float64    `json:"seedRatioLimit,omitempty"`
	SeedRatioMode       *RatioMode  `json:"seedRatioMode,omitempty"`
	SequentialDownload  *bool       `json:"sequentialDownload,omitempty"`
	TrackerAdd          []string    `json:"trackerAdd,omitempty"`
	TrackerList         TrackerList `json:"trackerList,omitempty"`
	TrackerRemove       []int64     `json:"trackerRemove,omitempty"`
	TrackerReplace      []string    `json:"trackerReplace,omitempty"`
	UploadLimit         *int64      `json:"uploadLimit,omitempty"`
	UploadLimited       *bool       `json:"uploadLimited,omitempty"`
}

func (a TorrentSetArgs) MarshalJSON() ([]byte, error) {
	type plain TorrentSetArgs
	return json.Marshal(struct {
		plain
		FilesWanted    *[]int       `json:"files-wanted,omitempty"`
		FilesUnwanted  *[]int       `json:"files-unwanted,omitempty"`
		IDs            *[]ID        `json:"ids,omitempty"`
		Labels         *[]string    `json:"labels,omitempty"`
		PriorityHigh   *[]int       `json:"priority-high,omitempty"`
		PriorityLow    *[]int       `json:"priority-low,omitempty"`
		PriorityNormal *[]int       `json:"priority-normal,omitempty"`
		TrackerAdd     *[]string    `json:"trackerAdd,omitempty"`
		TrackerList    *TrackerList `json:"trackerList,omitempty"`
		TrackerRemove  *[]int64     `json:"trackerRemove,omitempty"`
		TrackerReplace *[]string    `json:"trackerReplace,omitempty"`
	}{
		plain:          plain(a),
		FilesWanted:    present(a.FilesWanted),
		FilesUnwanted:  present(a.FilesUnwanted),
		IDs:            present(a.IDs),
		Labels:         present(a.Labels),
		PriorityHigh:   present(a.PriorityHigh),
		PriorityLow:    present(a.PriorityLow),
		PriorityNormal: present(a.PriorityNormal),
		TrackerAdd:     present(a.TrackerAdd),
		TrackerList:    present(a.TrackerList),
		TrackerRemove:  present(a.TrackerRemove),
		TrackerReplace: present(a.TrackerReplace),
	})
}

// SessionSetArgs holds session settings to change.
type SessionSetArgs struct {
	AltSpeedDown                     *int64   `json:"alt-speed-down,omitempty"`
	AltSpeedEnabled                  *bool    `json:"alt-speed-enabled,omitempty"`
	AltSpeedTimeBegin                *int64   `json:"alt-speed-time-begin,omitempty"`
	AltSpeedTimeDay                  *int64   `json:"alt-speed-time-day,omitempty"`
	AltSpeedTimeEnabled              *bool    `json:"alt-speed-time-enabled,omitempty"`
	AltSpeedTimeEnd                  *int64   `json:"alt-speed-time-end,omitempty"`
	AltSpeedUp                       *int64   `json:"alt-speed-up,omitempty"`
	BlocklistEnabled                 *bool    `json:"blocklist-enabled,omitempty"`
	BlocklistURL                     *string  `json:"blocklist-url,omitempty"`
	CacheSizeMB                      *int64   `json:"cache-size-mb,omitempty"`
	DefaultTrackers                  *string  `json:"default-trackers,omitempty"`
	DHTEnabled                       *bool    `json:"dht-enabled,omitempty"`
	DownloadDir                      *string  `json:"download-dir,omitempty"`
	DownloadQueueEnabled             *bool    `json:"download-queue-enabled,omitempty"`
	DownloadQueueSize                *int64   `json:"download-queue-size,omitempty"`
	Encryption                       *string  `json:"encryption,omitempty"`
	IdleSeedingLimit                 *int64   `json:"idle-seeding-limit,omitempty"`
	IdleSeedingLimitEnabled          *bool    `json:"idle-seeding-limit-enabled,omitempty"`
	IncompleteDir                    *string  `json:"incomplete-dir,omitempty"`
	IncompleteDirEnabled             *bool    `json:"incomplete-dir-enabled,omitempty"`
	LPDEnabled                       *bool    `json:"lpd-enabled,omitempty"`
	PeerLimitGlobal                  *int64   `json:"peer-limit-global,omitempty"`
	PeerLimitPerTorrent              *int64   `json:"peer-limit-per-torrent,omitempty"`
	PeerPort                         *int64   `json:"peer-port,omitempty"`
	PeerPortRandomOnStart            *bool    `json:"peer-port-random-on-start,omitempty"`
	PEXEnabled                       *bool    `json:"pex-enabled,omitempty"`
	PortForwardingEnabled            *bool    `json:"port-forwarding-enabled,omitempty"`
	QueueStalledEnabled              *bool    `json:"queue-stalled-enabled,omitempty"`
	QueueStalledMinutes              *int64   `json:"queue-stalled-minutes,omitempty"`
	RenamePartialFiles               *bool    `json:"rename-partial-files,omitempty"`
	ScriptTorrentAddedEnabled        *bool    `json:"script-torrent-added-enabled,omitempty"`
	ScriptTorrentAddedFilename       *string  `json:"script-torrent-added-filename,omitempty"`
	ScriptTorrentDoneEnabled         *bool    `json:"script-torrent-done-enabled,omitempty"`
	ScriptTorrentDoneFilename        *string  `json:"script-torrent-done-filename,omitempty"`
	ScriptTorrentDoneSeedingEnabled  *bool    `json:"script-torrent-done-seeding-enabled,omitempty"`
	ScriptTorrentDoneSeedingFilename *string  `json:"script-torrent-done-seeding-filename,omitempty"`
	SeedQueueEnabled                 *bool    `json:"seed-queue-enabled,omitempty"`
	SeedQueueSize                    *int64   `json:"seed-queue-size,omitempty"`
	SeedRatioLimit                   *float64 `json:"seedRatioLimit,omitempty"`
	SeedRatioLimited                 *bool    `json:"seedRatioLimited,omitempty"`
	SpeedLimitDown                   *int64   `json:"speed-limit-down,omitempty"`
	SpeedLimitDownEnabled            *bool    `json:"speed-limit-down-enabled,omitempty"`
	SpeedLimitUp                     *int64   `json:"speed-limit-up,omitempty"`
	SpeedLimitUpEnabled              *bool    `json:"speed-limit-up-enabled,omitempty"`
	StartAddedTorrents               *bool    `json:"start-added-torrents,omitempty"`
	TrashOriginalTorrentFiles        *bool    `json:"trash-original-torrent-files,omitempty"`
	UTPEnabled                       *bool    `json:"utp-enabled,omitempty"`
}

// BandwidthGroup is both the argument of group-set and an element of the
// group-get result.
type BandwidthGroup struct {
	HonorsSessionLimits   bool   `json:"honorsSessionLimits"`
	Name                  string `json:"name"`
	SpeedLimitDownEnabled bool   `json:"speed-limit-down-enabled"`
	SpeedLimitDown        int64  `json:"speed-limit-down"`
	SpeedLimitUpEnabled   bool   `json:"speed-limit-up-enabled"`
	SpeedLimitUp          int64  `json:"speed-limit-up"`
}

type GroupGetArgs struct {
	Group []string `json:"group,omitempty"`
}

// Ptr returns a pointer to v, for filling optional argument fields.
func Ptr[T any](v T) *T {
	return &v
}
