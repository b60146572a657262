// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmissiontest

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/luxfi/transmission"
)

var logger = loggo.GetLogger("transmission.transmissiontest")

const (
	// DefaultDownloadDir is the session download directory of a new Daemon.
	DefaultDownloadDir = "/var/lib/transmission/downloads"

	// DefaultTorrentSize is the total size given to added torrents.
	DefaultTorrentSize = 700 << 20

	rpcVersion = 17
)

// Daemon is an in-memory torrent daemon. Its exported methods with the
// gorilla rpc signature are the RPC methods; the rest inspect or seed its
// state from tests.
type Daemon struct {
	mu sync.Mutex

	session   transmission.SessionGet
	queue     []*torrent
	nextID    int64
	groups    map[string]transmission.BandwidthGroup
	freeBytes int64
	totalSize int64
	portOpen  bool
	blocklist int64
	closed    bool
	started   time.Time
	added     int64
}

type torrent struct {
	id                int64
	hash              string
	name              string
	downloadDir       string
	status            transmission.TorrentStatus
	addedDate         time.Time
	labels            []string
	group             string
	totalSize         int64
	percentDone       float64
	bandwidthPriority transmission.Priority
	downloadLimit     int64
	downloadLimited   bool
	uploadLimit       int64
	uploadLimited     bool
	peerLimit         int64
	seedRatioLimit    float64
	seedRatioMode     transmission.RatioMode
	sequential        bool
	trackers          []string
	wanted            []bool
	priorities        []transmission.Priority
	lastAnnounce      time.Time
}

// NewDaemon returns an empty daemon.
func NewDaemon() *Daemon {
	return &Daemon{
		session: transmission.SessionGet{
			DownloadDir:       DefaultDownloadDir,
			PeerLimitGlobal:   200,
			PeerPort:          51413,
			RPCVersion:        rpcVersion,
			RPCVersionMinimum: 14,
			RPCVersionSemver:  "5.3.0",
			Version:           "4.0.6 (38c164933e)",
			Encryption:        "preferred",
			SeedRatioLimit:    2,
		},
		nextID:    1,
		groups:    make(map[string]transmission.BandwidthGroup),
		freeBytes: 100 << 30,
		totalSize: 500 << 30,
		blocklist: 0,
		started:   time.Now(),
	}
}

// Seed adds a finished torrent and returns its id.
func (d *Daemon) Seed(name string, size int64) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.addLocked(name, hashOf(name), size)
	t.percentDone = 1
	t.status = transmission.StatusSeeding
	return t.id
}

// Torrents returns every torrent with all fields set, in queue order.
func (d *Daemon) Torrents() []transmission.Torrent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]transmission.Torrent, len(d.queue))
	for i, t := range d.queue {
		out[i] = t.view(i)
	}
	return out
}

// Closed reports whether session-close was called.
func (d *Daemon) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// SetPortOpen sets the port-test answer.
func (d *Daemon) SetPortOpen(open bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.portOpen = open
}

// SetBlocklistSize sets the number of rules blocklist-update reports.
func (d *Daemon) SetBlocklistSize(n int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blocklist = n
}

func (d *Daemon) SessionGet(_ *http.Request, _ *transmission.Nothing, reply *transmission.SessionGet) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	*reply = d.session
	reply.BlocklistSize = d.blocklist
	return nil
}

func (d *Daemon) SessionSet(_ *http.Request, args *transmission.SessionSetArgs, _ *transmission.Nothing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := &d.session
	setIf(&s.AltSpeedDown, args.AltSpeedDown)
	setIf(&s.AltSpeedEnabled, args.AltSpeedEnabled)
	setIf(&s.AltSpeedUp, args.AltSpeedUp)
	setIf(&s.BlocklistEnabled, args.BlocklistEnabled)
	setIf(&s.BlocklistURL, args.BlocklistURL)
	setIf(&s.CacheSizeMB, args.CacheSizeMB)
	setIf(&s.DHTEnabled, args.DHTEnabled)
	setIf(&s.DownloadDir, args.DownloadDir)
	setIf(&s.DownloadQueueEnabled, args.DownloadQueueEnabled)
	setIf(&s.DownloadQueueSize, args.DownloadQueueSize)
	setIf(&s.Encryption, args.Encryption)
	setIf(&s.IncompleteDir, args.IncompleteDir)
	setIf(&s.IncompleteDirEnabled, args.IncompleteDirEnabled)
	setIf(&s.PeerLimitGlobal, args.PeerLimitGlobal)
	setIf(&s.PeerLimitPerTorrent, args.PeerLimitPerTorrent)
	setIf(&s.PeerPort, args.PeerPort)
	setIf(&s.PEXEnabled, args.PEXEnabled)
	setIf(&s.SeedRatioLimit, args.SeedRatioLimit)
	setIf(&s.SeedRatioLimited, args.SeedRatioLimited)
	setIf(&s.SpeedLimitDown, args.SpeedLimitDown)
	setIf(&s.SpeedLimitDownEnabled, args.SpeedLimitDownEnabled)
	setIf(&s.SpeedLimitUp, args.SpeedLimitUp)
	setIf(&s.SpeedLimitUpEnabled, args.SpeedLimitUpEnabled)
	setIf(&s.StartAddedTorrents, args.StartAddedTorrents)
	setIf(&s.UTPEnabled, args.UTPEnabled)
	return nil
}

func (d *Daemon) SessionStats(_ *http.Request, _ *transmission.Nothing, reply *transmission.SessionStats) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	reply.TorrentCount = int64(len(d.queue))
	for _, t := range d.queue {
		if t.status == transmission.StatusStopped {
			reply.PausedTorrentCount++
		} else {
			reply.ActiveTorrentCount++
		}
	}
	current := transmission.StatsData{
		FilesAdded:    d.added,
		SessionCount:  1,
		SecondsActive: int64(time.Since(d.started).Seconds()),
	}
	reply.CurrentStats = current
	reply.CumulativeStats = current
	return nil
}

func (d *Daemon) SessionClose(_ *http.Request, _ *transmission.Nothing, _ *transmission.Nothing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *Daemon) BlocklistUpdate(_ *http.Request, _ *transmission.Nothing, reply *transmission.BlocklistUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	reply.BlocklistSize = d.blocklist
	return nil
}

func (d *Daemon) FreeSpace(_ *http.Request, args *transmission.FreeSpaceArgs, reply *transmission.FreeSpace) error {
	if !path.IsAbs(args.Path) {
		return errors.Errorf("directory %q is not absolute", args.Path)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	*reply = transmission.FreeSpace{Path: args.Path, SizeBytes: d.freeBytes, TotalSize: d.totalSize}
	return nil
}

func (d *Daemon) PortTest(_ *http.Request, _ *transmission.Nothing, reply *transmission.PortTest) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	reply.PortIsOpen = d.portOpen
	return nil
}

func (d *Daemon) TorrentGet(_ *http.Request, args *transmission.TorrentGetArgs, reply *transmission.Torrents) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	reply.Torrents = []transmission.Torrent{}
	for _, t := range d.selectLocked(args.IDs) {
		view, err := onlyFields(t.view(d.positionLocked(t)), args.Fields)
		if err != nil {
			return errors.Trace(err)
		}
		reply.Torrents = append(reply.Torrents, view)
	}
	return nil
}

func (d *Daemon) TorrentSet(_ *http.Request, args *transmission.TorrentSetArgs, _ *transmission.Nothing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.selectLocked(args.IDs) {
		setIf(&t.bandwidthPriority, args.BandwidthPriority)
		setIf(&t.downloadLimit, args.DownloadLimit)
		setIf(&t.downloadLimited, args.DownloadLimited)
		setIf(&t.group, args.Group)
		setIf(&t.downloadDir, args.Location)
		setIf(&t.peerLimit, args.PeerLimit)
		setIf(&t.seedRatioLimit, args.SeedRatioLimit)
		setIf(&t.seedRatioMode, args.SeedRatioMode)
		setIf(&t.sequential, args.SequentialDownload)
		setIf(&t.uploadLimit, args.UploadLimit)
		setIf(&t.uploadLimited, args.UploadLimited)
		if args.Labels != nil {
			t.labels = append([]string(nil), args.Labels...)
		}
		for _, i := range args.FilesWanted {
			setFile(t.wanted, i, true)
		}
		for _, i := range args.FilesUnwanted {
			setFile(t.wanted, i, false)
		}
		for _, i := range args.PriorityHigh {
			setFile(t.priorities, i, transmission.PriorityHigh)
		}
		for _, i := range args.PriorityNormal {
			setFile(t.priorities, i, transmission.PriorityNormal)
		}
		for _, i := range args.PriorityLow {
			setFile(t.priorities, i, transmission.PriorityLow)
		}
		if args.TrackerList != nil {
			t.trackers = nonEmpty(args.TrackerList)
		}
		t.trackers = append(t.trackers, args.TrackerAdd...)
		t.trackers = removeTrackers(t.trackers, args.TrackerRemove)
		if args.QueuePosition != nil {
			d.moveLocked(t, int(*args.QueuePosition))
		}
	}
	return nil
}

func (d *Daemon) TorrentAdd(_ *http.Request, args *transmission.TorrentAddArgs, reply *transmission.TorrentAddResult) error {
	var name, hash string
	switch {
	case args.Filename != nil:
		name, hash = parseSource(*args.Filename)
	case args.Metainfo != nil:
		hash = hashOf(*args.Metainfo)
		name = "metainfo-" + hash[:8]
	default:
		return errors.New("no filename or metainfo specified")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.queue {
		if t.hash == hash {
			*reply = transmission.TorrentAddResult{
				Kind:    transmission.AddResultDuplicate,
				Torrent: &transmission.TorrentAdded{ID: t.id, Name: t.name, HashString: t.hash},
			}
			return nil
		}
	}

	t := d.addLocked(name, hash, DefaultTorrentSize)
	setIf(&t.downloadDir, args.DownloadDir)
	setIf(&t.peerLimit, args.PeerLimit)
	setIf(&t.bandwidthPriority, args.BandwidthPriority)
	if args.Paused != nil && *args.Paused {
		t.status = transmission.StatusStopped
	}
	t.labels = append(t.labels, args.Labels...)
	for _, i := range args.FilesUnwanted {
		setFile(t.wanted, i, false)
	}
	*reply = transmission.TorrentAddResult{
		Kind:    transmission.AddResultAdded,
		Torrent: &transmission.TorrentAdded{ID: t.id, Name: t.name, HashString: t.hash},
	}
	return nil
}

func (d *Daemon) TorrentRemove(_ *http.Request, args *transmission.TorrentRemoveArgs, _ *transmission.Nothing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	gone := make(map[*torrent]bool)
	for _, t := range d.selectLocked(args.IDs) {
		gone[t] = true
	}
	kept := d.queue[:0]
	for _, t := range d.queue {
		if !gone[t] {
			kept = append(kept, t)
		}
	}
	d.queue = kept
	return nil
}

func (d *Daemon) TorrentStart(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.setStatus(args.IDs, startedStatus)
}

func (d *Daemon) TorrentStartNow(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.setStatus(args.IDs, startedStatus)
}

func (d *Daemon) TorrentStop(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.setStatus(args.IDs, func(*torrent) transmission.TorrentStatus { return transmission.StatusStopped })
}

func (d *Daemon) TorrentVerify(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.setStatus(args.IDs, func(*torrent) transmission.TorrentStatus { return transmission.StatusQueuedToVerify })
}

func (d *Daemon) TorrentReannounce(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	for _, t := range d.selectLocked(args.IDs) {
		t.lastAnnounce = now
	}
	return nil
}

func (d *Daemon) TorrentSetLocation(_ *http.Request, args *transmission.TorrentSetLocationArgs, _ *transmission.Nothing) error {
	if !path.IsAbs(args.Location) {
		return errors.Errorf("location %q is not absolute", args.Location)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.selectLocked(args.IDs) {
		t.downloadDir = args.Location
	}
	return nil
}

func (d *Daemon) TorrentRenamePath(_ *http.Request, args *transmission.TorrentRenamePathArgs, reply *transmission.TorrentRenamePath) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	selected := d.selectLocked(args.IDs)
	if len(selected) != 1 {
		return errors.New("torrent-rename-path requires 1 torrent")
	}
	if args.Name == "" || strings.Contains(args.Name, "/") {
		return errors.Errorf("invalid name %q", args.Name)
	}
	t := selected[0]
	if args.Path != t.name {
		return errors.Errorf("path %q not found", args.Path)
	}
	t.name = args.Name
	*reply = transmission.TorrentRenamePath{Path: args.Path, Name: args.Name, ID: t.id}
	return nil
}

func (d *Daemon) QueueMoveTop(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.requeue(args.IDs, func(int) int { return 0 })
}

func (d *Daemon) QueueMoveUp(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.requeue(args.IDs, func(pos int) int { return pos - 1 })
}

func (d *Daemon) QueueMoveDown(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.requeue(args.IDs, func(pos int) int { return pos + 1 })
}

func (d *Daemon) QueueMoveBottom(_ *http.Request, args *transmission.IDsArgs, _ *transmission.Nothing) error {
	return d.requeue(args.IDs, func(int) int { return len(d.queue) - 1 })
}

func (d *Daemon) GroupSet(_ *http.Request, args *transmission.BandwidthGroup, _ *transmission.Nothing) error {
	if args.Name == "" {
		return errors.New("no group name given")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groups[args.Name] = *args
	return nil
}

func (d *Daemon) GroupGet(_ *http.Request, args *transmission.GroupGetArgs, reply *transmission.BandwidthGroups) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	reply.Group = []transmission.BandwidthGroup{}
	if args.Group == nil {
		for _, g := range d.groups {
			reply.Group = append(reply.Group, g)
		}
		sort.Slice(reply.Group, func(i, j int) bool { return reply.Group[i].Name < reply.Group[j].Name })
		return nil
	}
	for _, name := range args.Group {
		if g, ok := d.groups[name]; ok {
			reply.Group = append(reply.Group, g)
		}
	}
	return nil
}

func (d *Daemon) addLocked(name, hash string, size int64) *torrent {
	t := &torrent{
		id:          d.nextID,
		hash:        hash,
		name:        name,
		downloadDir: d.session.DownloadDir,
		status:      transmission.StatusDownloading,
		addedDate:   time.Now(),
		totalSize:   size,
		peerLimit:   50,
		wanted:      []bool{true},
		priorities:  []transmission.Priority{transmission.PriorityNormal},
	}
	d.nextID++
	d.added++
	d.queue = append(d.queue, t)
	return t
}

// selectLocked resolves ids against the queue. Nil ids select every torrent,
// an empty list selects none.
func (d *Daemon) selectLocked(ids []transmission.ID) []*torrent {
	if ids == nil {
		return append([]*torrent(nil), d.queue...)
	}
	var out []*torrent
	for _, t := range d.queue {
		for _, id := range ids {
			if matches(t, id) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func matches(t *torrent, id transmission.ID) bool {
	if n, ok := id.Numeric(); ok {
		return n == t.id
	}
	h, _ := id.Hash()
	return strings.EqualFold(h, t.hash)
}

func (d *Daemon) positionLocked(t *torrent) int {
	for i, q := range d.queue {
		if q == t {
			return i
		}
	}
	return -1
}

func (d *Daemon) moveLocked(t *torrent, pos int) {
	from := d.positionLocked(t)
	if pos < 0 {
		pos = 0
	}
	if pos >= len(d.queue) {
		pos = len(d.queue) - 1
	}
	if from == pos {
		return
	}
	d.queue = append(d.queue[:from], d.queue[from+1:]...)
	d.queue = append(d.queue[:pos], append([]*torrent{t}, d.queue[pos:]...)...)
}

func (d *Daemon) requeue(ids []transmission.ID, to func(pos int) int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.selectLocked(ids) {
		d.moveLocked(t, to(d.positionLocked(t)))
	}
	return nil
}

func (d *Daemon) setStatus(ids []transmission.ID, status func(*torrent) transmission.TorrentStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.selectLocked(ids) {
		t.status = status(t)
	}
	return nil
}

func startedStatus(t *torrent) transmission.TorrentStatus {
	if t.percentDone >= 1 {
		return transmission.StatusSeeding
	}
	return transmission.StatusDownloading
}

func (t *torrent) view(pos int) transmission.Torrent {
	left := t.totalSize - int64(float64(t.totalSize)*t.percentDone)
	trackers := make([]transmission.Tracker, len(t.trackers))
	for i, announce := range t.trackers {
		trackers[i] = transmission.Tracker{Announce: announce, ID: int64(i), Tier: int64(i)}
	}
	files := []transmission.File{{
		BytesCompleted: t.totalSize - left,
		Length:         t.totalSize,
		Name:           t.name,
	}}
	return transmission.Torrent{
		ActivityDate:       ptr(transmission.NewTimestamp(t.lastAnnounce)),
		AddedDate:          ptr(transmission.NewTimestamp(t.addedDate)),
		BandwidthPriority:  ptr(t.bandwidthPriority),
		DownloadDir:        ptr(t.downloadDir),
		DownloadLimit:      ptr(t.downloadLimit),
		DownloadLimited:    ptr(t.downloadLimited),
		Error:              ptr(transmission.ErrorTypeOK),
		ErrorString:        ptr(""),
		FileCount:          ptr(int64(len(files))),
		Files:              files,
		Group:              ptr(t.group),
		HashString:         ptr(t.hash),
		ID:                 ptr(t.id),
		IsFinished:         ptr(t.percentDone >= 1),
		Labels:             append([]string{}, t.labels...),
		LeftUntilDone:      ptr(left),
		MagnetLink:         ptr("magnet:?xt=urn:btih:" + t.hash + "&dn=" + url.QueryEscape(t.name)),
		Name:               ptr(t.name),
		PeerLimit:          ptr(t.peerLimit),
		PercentDone:        ptr(t.percentDone),
		Priorities:         append([]transmission.Priority{}, t.priorities...),
		QueuePosition:      ptr(int64(pos)),
		RateDownload:       ptr(int64(0)),
		RateUpload:         ptr(int64(0)),
		SeedRatioLimit:     ptr(t.seedRatioLimit),
		SeedRatioMode:      ptr(t.seedRatioMode),
		SequentialDownload: ptr(t.sequential),
		SizeWhenDone:       ptr(t.totalSize),
		Status:             ptr(t.status),
		TotalSize:          ptr(t.totalSize),
		TrackerList:        append(transmission.TrackerList{}, t.trackers...),
		Trackers:           trackers,
		UploadLimit:        ptr(t.uploadLimit),
		UploadLimited:      ptr(t.uploadLimited),
		UploadRatio:        ptr(0.0),
		Wanted:             append(transmission.Wanted{}, t.wanted...),
	}
}

// onlyFields drops every field of full that is not listed in fields.
func onlyFields(full transmission.Torrent, fields []transmission.TorrentGetField) (transmission.Torrent, error) {
	data, err := json.Marshal(full)
	if err != nil {
		return transmission.Torrent{}, errors.Trace(err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return transmission.Torrent{}, errors.Trace(err)
	}
	picked := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		if v, ok := all[string(f)]; ok {
			picked[string(f)] = v
		}
	}
	if data, err = json.Marshal(picked); err != nil {
		return transmission.Torrent{}, errors.Trace(err)
	}
	var out transmission.Torrent
	if err := json.Unmarshal(data, &out); err != nil {
		return transmission.Torrent{}, errors.Trace(err)
	}
	return out, nil
}

// parseSource derives a name and info hash from a magnet link, URL or path.
func parseSource(source string) (name, hash string) {
	if u, err := url.Parse(source); err == nil && u.Scheme == "magnet" {
		q := u.Query()
		hash = strings.ToLower(strings.TrimPrefix(q.Get("xt"), "urn:btih:"))
		name = q.Get("dn")
		if hash == "" {
			hash = hashOf(source)
		}
		if name == "" {
			name = hash
		}
		return name, hash
	}
	return strings.TrimSuffix(path.Base(source), ".torrent"), hashOf(source)
}

func hashOf(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setFile[T any](values []T, i int, v T) {
	if i >= 0 && i < len(values) {
		values[i] = v
	}
}

func nonEmpty(list []string) []string {
	out := []string{}
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func removeTrackers(trackers []string, ids []int64) []string {
	if len(ids) == 0 {
		return trackers
	}
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[int(id)] = true
	}
	out := trackers[:0]
	for i, tr := range trackers {
		if !drop[i] {
			out = append(out, tr)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
