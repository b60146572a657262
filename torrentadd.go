// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/json"

	"github.com/juju/errors"
	"github.com/tidwall/gjson"
)

const (
	keyTorrentAdded     = "torrent-added"
	keyTorrentDuplicate = "torrent-duplicate"
)

// AddResultKind tells which key a torrent-add response carried.
type AddResultKind int

const (
	// AddResultNone means the response carried neither key. It is the zero
	// value and is what a failed torrent-add decodes to.
	AddResultNone AddResultKind = iota
	AddResultAdded
	AddResultDuplicate
)

func (k AddResultKind) String() string {
	switch k {
	case AddResultAdded:
		return "added"
	case AddResultDuplicate:
		return "duplicate"
	default:
		return "none"
	}
}

// TorrentAdded describes the torrent reported by torrent-add.
type TorrentAdded struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HashString string `json:"hashString"`
}

// TorrentAddResult is the result of torrent-add. Torrent is nil when Kind is
// AddResultNone.
type TorrentAddResult struct {
	Kind    AddResultKind
	Torrent *TorrentAdded
}

// Added reports whether the daemon accepted a new torrent.
func (r TorrentAddResult) Added() bool { return r.Kind == AddResultAdded }

// Duplicate reports whether the torrent was already known to the daemon.
func (r TorrentAddResult) Duplicate() bool { return r.Kind == AddResultDuplicate }

// UnmarshalJSON picks the variant by key presence. torrent-added is checked
// first, so an object carrying both keys decodes as added. A key holding
// null counts as absent.
func (r *TorrentAddResult) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.Errorf("invalid torrent-add arguments %q", data)
	}
	obj := gjson.ParseBytes(data)
	if obj.Type == gjson.Null {
		*r = TorrentAddResult{}
		return nil
	}
	if !obj.IsObject() {
		return errors.Errorf("torrent-add arguments must be an object, got %s", obj.Type)
	}

	for _, variant := range []struct {
		key  string
		kind AddResultKind
	}{
		{keyTorrentAdded, AddResultAdded},
		{keyTorrentDuplicate, AddResultDuplicate},
	} {
		field := obj.Get(variant.key)
		if !field.Exists() || field.Type == gjson.Null {
			continue
		}
		var t TorrentAdded
		if err := json.Unmarshal([]byte(field.Raw), &t); err != nil {
			return errors.Annotatef(err, "decoding %s", variant.key)
		}
		*r = TorrentAddResult{Kind: variant.kind, Torrent: &t}
		return nil
	}

	*r = TorrentAddResult{}
	return nil
}

// MarshalJSON writes the key matching r.Kind, or an empty object for
// AddResultNone.
func (r TorrentAddResult) MarshalJSON() ([]byte, error) {
	var t TorrentAdded
	if r.Torrent != nil {
		t = *r.Torrent
	}
	switch r.Kind {
	case AddResultAdded:
		return json.Marshal(map[string]TorrentAdded{keyTorrentAdded: t})
	case AddResultDuplicate:
		return json.Marshal(map[string]TorrentAdded{keyTorrentDuplicate: t})
	default:
		return []byte("{}"), nil
	}
}
