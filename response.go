// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"net/netip"
)

// SessionGet is the result of session-get.
type SessionGet struct {
	AltSpeedDown                     int64   `json:"alt-speed-down"`
	AltSpeedEnabled                  bool    `json:"alt-speed-enabled"`
	AltSpeedTimeBegin                int64   `json:"alt-speed-time-begin"`
	AltSpeedTimeDay                  int64   `json:"alt-speed-time-day"`
	AltSpeedTimeEnabled              bool    `json:"alt-speed-time-enabled"`
	AltSpeedTimeEnd                  int64   `json:"alt-speed-time-end"`
	AltSpeedUp                       int64   `json:"alt-speed-up"`
	BlocklistEnabled                 bool    `json:"blocklist-enabled"`
	BlocklistSize                    int64   `json:"blocklist-size"`
	BlocklistURL                     string  `json:"blocklist-url"`
	CacheSizeMB                      int64   `json:"cache-size-mb"`
	ConfigDir                        string  `json:"config-dir"`
	DefaultTrackers                  string  `json:"default-trackers"`
	DHTEnabled                       bool    `json:"dht-enabled"`
	DownloadDir                      string  `json:"download-dir"`
	DownloadQueueEnabled             bool    `json:"download-queue-enabled"`
	DownloadQueueSize                int64   `json:"download-queue-size"`
	Encryption                       string  `json:"encryption"`
	IdleSeedingLimit                 int64   `json:"idle-seeding-limit"`
	IdleSeedingLimitEnabled          bool    `json:"idle-seeding-limit-enabled"`
	IncompleteDir                    string  `json:"incomplete-dir"`
	IncompleteDirEnabled             bool    `json:"incomplete-dir-enabled"`
	LPDEnabled                       bool    `json:"lpd-enabled"`
	PeerLimitGlobal                  int64   `json:"peer-limit-global"`
	PeerLimitPerTorrent              int64   `json:"peer-limit-per-torrent"`
	PeerPort                         int64   `json:"peer-port"`
	PeerPortRandomOnStart            bool    `json:"peer-port-random-on-start"`
	PEXEnabled                       bool    `json:"pex-enabled"`
	PortForwardingEnabled            bool    `json:"port-forwarding-enabled"`
	QueueStalledEnabled              bool    `json:"queue-stalled-enabled"`
	QueueStalledMinutes              int64   `json:"queue-stalled-minutes"`
	RenamePartialFiles               bool    `json:"rename-partial-files"`
	RPCVersion                       int64   `json:"rpc-version"`
	RPCVersionMinimum                int64   `json:"rpc-version-minimum"`
	RPCVersionSemver                 string  `json:"rpc-version-semver"`
	ScriptTorrentAddedEnabled        bool    `json:"script-torrent-added-enabled"`
	ScriptTorrentAddedFilename       string  `json:"script-torrent-added-filename"`
	ScriptTorrentDoneEnabled         bool    `json:"script-torrent-done-enabled"`
	ScriptTorrentDoneFilename        string  `json:"script-torrent-done-filename"`
	ScriptTorrentDoneSeedingEnabled  bool    `json:"script-torrent-done-seeding-enabled"`
	ScriptTorrentDoneSeedingFilename string  `json:"script-torrent-done-seeding-filename"`
	SeedQueueEnabled                 bool    `json:"seed-queue-enabled"`
	SeedQueueSize                    int64   `json:"seed-queue-size"`
	SeedRatioLimit                   float64 `json:"seedRatioLimit"`
	SeedRatioLimited                 bool    `json:"seedRatioLimited"`
	SessionID                        string  `json:"session-id"`
	SpeedLimitDown                   int64   `json:"speed-limit-down"`
	SpeedLimitDownEnabled            bool    `json:"speed-limit-down-enabled"`
	SpeedLimitUp                     int64   `json:"speed-limit-up"`
	SpeedLimitUpEnabled              bool    `json:"speed-limit-up-enabled"`
	StartAddedTorrents               bool    `json:"start-added-torrents"`
	TrashOriginalTorrentFiles        bool    `json:"trash-original-torrent-files"`
	UTPEnabled                       bool    `json:"utp-enabled"`
	Version                          string  `json:"version"`
}

// SessionStats is the result of session-stats.
type SessionStats struct {
	ActiveTorrentCount int64     `json:"activeTorrentCount"`
	DownloadSpeed      int64     `json:"downloadSpeed"`
	PausedTorrentCount int64     `json:"pausedTorrentCount"`
	TorrentCount       int64     `json:"torrentCount"`
	UploadSpeed        int64     `json:"uploadSpeed"`
	CumulativeStats    StatsData `json:"cumulative-stats"`
	CurrentStats       StatsData `json:"current-stats"`
}

type StatsData struct {
	UploadedBytes   int64 `json:"uploadedBytes"`
	DownloadedBytes int64 `json:"downloadedBytes"`
	FilesAdded      int64 `json:"filesAdded"`
	SessionCount    int64 `json:"sessionCount"`
	SecondsActive   int64 `json:"secondsActive"`
}

// BlocklistUpdate is the result of blocklist-update.
type BlocklistUpdate struct {
	BlocklistSize int64 `json:"blocklist-size"`
}

// FreeSpace is the result of free-space.
type FreeSpace struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size-bytes"`
	TotalSize int64  `json:"total_size"`
}

// PortTest is the result of port-test.
type PortTest struct {
	PortIsOpen bool `json:"port-is-open"`
}

// TorrentRenamePath is the result of torrent-rename-path.
type TorrentRenamePath struct {
	Path string `json:"path"`
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// BandwidthGroups is the result of group-get.
type BandwidthGroups struct {
	Group []BandwidthGroup `json:"group"`
}

// Torrents is the result of torrent-get.
type Torrents struct {
	Torrents []Torrent `json:"torrents"`
	Removed  []int64   `json:"removed,omitempty"`
}

// Torrent holds the fields returned by torrent-get. Only requested fields
// are set; the rest stay nil.
type Torrent struct {
	ActivityDate            *Timestamp     `json:"activityDate,omitempty"`
	AddedDate               *Timestamp     `json:"addedDate,omitempty"`
	Availability            []int64        `json:"availability,omitempty"`
	BandwidthPriority       *Priority      `json:"bandwidthPriority,omitempty"`
	Comment                 *string        `json:"comment,omitempty"`
	CorruptEver             *int64         `json:"corruptEver,omitempty"`
	Creator                 *string        `json:"creator,omitempty"`
	DateCreated             *Timestamp     `json:"dateCreated,omitempty"`
	DesiredAvailable        *int64         `json:"desiredAvailable,omitempty"`
	DoneDate                *Timestamp     `json:"doneDate,omitempty"`
	DownloadDir             *string        `json:"downloadDir,omitempty"`
	DownloadedEver          *int64         `json:"downloadedEver,omitempty"`
	DownloadLimit           *int64         `json:"downloadLimit,omitempty"`
	DownloadLimited         *bool          `json:"downloadLimited,omitempty"`
	EditDate                *Timestamp     `json:"editDate,omitempty"`
	Error                   *ErrorType     `json:"error,omitempty"`
	ErrorString             *string        `json:"errorString,omitempty"`
	ETA                     *int64         `json:"eta,omitempty"`
	ETAIdle                 *int64         `json:"etaIdle,omitempty"`
	FileCount               *int64         `json:"file-count,omitempty"`
	FileStats               []FileStat     `json:"fileStats,omitempty"`
	Files                   []File         `json:"files,omitempty"`
	Group                   *string        `json:"group,omitempty"`
	HashString              *string        `json:"hashString,omitempty"`
	HaveUnchecked           *int64         `json:"haveUnchecked,omitempty"`
	HaveValid               *int64         `json:"haveValid,omitempty"`
	HonorsSessionLimits     *bool          `json:"honorsSessionLimits,omitempty"`
	ID                      *int64         `json:"id,omitempty"`
	IsFinished              *bool          `json:"isFinished,omitempty"`
	IsPrivate               *bool          `json:"isPrivate,omitempty"`
	IsStalled               *bool          `json:"isStalled,omitempty"`
	Labels                  []string       `json:"labels,omitempty"`
	LeftUntilDone           *int64         `json:"leftUntilDone,omitempty"`
	MagnetLink              *string        `json:"magnetLink,omitempty"`
	ManualAnnounceTime      *Timestamp     `json:"manualAnnounceTime,omitempty"`
	MaxConnectedPeers       *int64         `json:"maxConnectedPeers,omitempty"`
	MetadataPercentComplete *float64       `json:"metadataPercentComplete,omitempty"`
	Name                    *string        `json:"name,omitempty"`
	PeerLimit               *int64         `json:"peer-limit,omitempty"`
	Peers                   []Peer         `json:"peers,omitempty"`
	PeersConnected          *int64         `json:"peersConnected,omitempty"`
	PeersFrom               *PeersFrom     `json:"peersFrom,omitempty"`
	PeersGettingFromUs      *int64         `json:"peersGettingFromUs,omitempty"`
	PeersSendingToUs        *int64         `json:"peersSendingToUs,omitempty"`
	PercentComplete         *float64       `json:"percentComplete,omitempty"`
	PercentDone             *float64       `json:"percentDone,omitempty"`
	Pieces                  Bitfield       `json:"pieces,omitempty"`
	PieceCount              *int64         `json:"pieceCount,omitempty"`
	PieceSize               *int64         `json:"pieceSize,omitempty"`
	Priorities              []Priority     `json:"priorities,omitempty"`
	PrimaryMimeType         *string        `json:"primary-mime-type,omitempty"`
	QueuePosition           *int64         `json:"queuePosition,omitempty"`
	RateDownload            *int64         `json:"rateDownload,omitempty"`
	RateUpload              *int64         `json:"rateUpload,omitempty"`
	RecheckProgress         *float64       `json:"recheckProgress,omitempty"`
	SecondsDownloading      *int64         `json:"secondsDownloading,omitempty"`
	SecondsSeeding          *int64         `json:"secondsSeeding,omitempty"`
	SeedIdleLimit           *int64         `json:"seedIdleLimit,omitempty"`
	SeedIdleMode            *IdleMode      `json:"seedIdleMode,omitempty"`
	SeedRatioLimit          *float64       `json:"seedRatioLimit,omitempty"`
	SeedRatioMode           *RatioMode     `json:"seedRatioMode,omitempty"`
	SequentialDownload      *bool          `json:"sequentialDownload,omitempty"`
	SizeWhenDone            *int64         `json:"sizeWhenDone,omitempty"`
	StartDate               *Timestamp     `json:"startDate,omitempty"`
	Status                  *TorrentStatus `json:"status,omitempty"`
	TorrentFile             *string        `json:"torrentFile,omitempty"`
	TotalSize               *int64         `json:"totalSize,omitempty"`
	Trackers                []Tracker      `json:"trackers,omitempty"`
	TrackerList             TrackerList    `json:"trackerList,omitempty"`
	TrackerStats            []TrackerStat  `json:"trackerStats,omitempty"`
	UploadRatio             *float64       `json:"uploadRatio,omitempty"`
	UploadedEver            *int64         `json:"uploadedEver,omitempty"`
	UploadLimit             *int64         `json:"uploadLimit,omitempty"`
	UploadLimited           *bool          `json:"uploadLimited,omitempty"`
	Wanted                  Wanted         `json:"wanted,omitempty"`
	Webseeds                []string       `json:"webseeds,omitempty"`
	WebseedsSendingToUs     *int64         `json:"webseedsSendingToUs,omitempty"`
}

// File is an element of the files torrent field. BeginPiece and EndPiece
// are only sent by rpc-version 18 and later.
type File struct {
	BytesCompleted int64  `json:"bytesCompleted"`
	Length         int64  `json:"length"`
	Name           string `json:"name"`
	BeginPiece     *int64 `json:"beginPiece,omitempty"`
	EndPiece       *int64 `json:"endPiece,omitempty"`
}

type FileStat struct {
	BytesCompleted int64    `json:"bytesCompleted"`
	Wanted         bool     `json:"wanted"`
	Priority       Priority `json:"priority"`
}

type Peer struct {
	Address            netip.Addr `json:"address"`
	ClientName         string     `json:"clientName"`
	ClientIsChoked     bool       `json:"clientIsChoked"`
	ClientIsInterested bool       `json:"clientIsInterested"`
	FlagStr            string     `json:"flagStr"`
	IsDownloadingFrom  bool       `json:"isDownloadingFrom"`
	IsEncrypted        bool       `json:"isEncrypted"`
	IsIncoming         bool       `json:"isIncoming"`
	IsUploadingTo      bool       `json:"isUploadingTo"`
	IsUTP              bool       `json:"isUTP"`
	PeerIsChoked       bool       `json:"peerIsChoked"`
	PeerIsInterested   bool       `json:"peerIsInterested"`
	Port               uint16     `json:"port"`
	Progress           float64    `json:"progress"`
	RateToClient       int64      `json:"rateToClient"`
	RateToPeer         int64      `json:"rateToPeer"`
}

type PeersFrom struct {
	FromCache    int64 `json:"fromCache"`
	FromDHT      int64 `json:"fromDht"`
	FromIncoming int64 `json:"fromIncoming"`
	FromLPD      int64 `json:"fromLpd"`
	FromLTEP     int64 `json:"fromLtep"`
	FromPEX      int64 `json:"fromPex"`
	FromTracker  int64 `json:"fromTracker"`
}

type Tracker struct {
	Announce string `json:"announce"`
	ID       int64  `json:"id"`
	Scrape   string `json:"scrape"`
	Sitename string `json:"sitename"`
	Tier     int64  `json:"tier"`
}

// TrackerStat times use the Epoch sentinel for events that never happened.
type TrackerStat struct {
	Announce              string       `json:"announce"`
	AnnounceState         TrackerState `json:"announceState"`
	DownloadCount         int64        `json:"downloadCount"`
	HasAnnounced          bool         `json:"hasAnnounced"`
	HasScraped            bool         `json:"hasScraped"`
	Host                  string       `json:"host"`
	ID                    ID           `json:"id"`
	IsBackup              bool         `json:"isBackup"`
	LastAnnouncePeerCount int64        `json:"lastAnnouncePeerCount"`
	LastAnnounceResult    string       `json:"lastAnnounceResult"`
	LastAnnounceStartTime Timestamp    `json:"lastAnnounceStartTime"`
	LastAnnounceSucceeded bool         `json:"lastAnnounceSucceeded"`
	LastAnnounceTime      Timestamp    `json:"lastAnnounceTime"`
	LastAnnounceTimedOut  bool         `json:"lastAnnounceTimedOut"`
	LastScrapeResult      string       `json:"lastScrapeResult"`
	LastScrapeStartTime   Timestamp    `json:"lastScrapeStartTime"`
	LastScrapeSucceeded   bool         `json:"lastScrapeSucceeded"`
	LastScrapeTime        Timestamp    `json:"lastScrapeTime"`
	LastScrapeTimedOut    bool         `json:"lastScrapeTimedOut"`
	LeecherCount          int64        `json:"leecherCount"`
	NextAnnounceTime      Timestamp    `json:"nextAnnounceTime"`
	NextScrapeTime        Timestamp    `json:"nextScrapeTime"`
	Scrape                string       `json:"scrape"`
	ScrapeState           TrackerState `json:"scrapeState"`
	SeederCount           int64        `json:"seederCount"`
	Sitename              string       `json:"sitename"`
	Tier                  int64        `json:"tier"`
}
