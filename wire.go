// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/tidwall/gjson"
)

// Epoch is what a "last happened" time decodes to when the server sends
// zero or a negative number. The protocol uses both for "never".
var Epoch = time.Unix(0, 0).UTC()

// Timestamp is a point in time encoded as Unix seconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// IsEpoch reports whether the server reported no occurrence.
func (t Timestamp) IsEpoch() bool {
	return t.Time.Equal(Epoch)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return errors.Annotatef(err, "timestamp %s", data)
	}
	if secs <= 0 {
		t.Time = Epoch
		return nil
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Time.After(Epoch) {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// Bitfield is a piece-completion map, base64 encoded on the wire. Bits are
// not interpreted here.
type Bitfield []byte

func (b *Bitfield) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "bitfield")
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errors.Annotate(err, "bitfield")
	}
	*b = raw
	return nil
}

func (b Bitfield) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

// Wanted lists which files of a torrent will be downloaded. Older servers
// send 0/1 integers and newer ones booleans; both decode to bools.
type Wanted []bool

func (w *Wanted) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	if !v.IsArray() {
		return errors.Errorf("wanted: expected array, got %s", data)
	}
	out := Wanted{}
	var bad error
	v.ForEach(func(_, el gjson.Result) bool {
		switch el.Type {
		case gjson.True, gjson.False:
			out = append(out, el.Bool())
		case gjson.Number:
			out = append(out, el.Int() != 0)
		default:
			bad = errors.Errorf("wanted: unexpected element %s", el.Raw)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}
	*w = out
	return nil
}

// TrackerList holds announce URLs. Tiers are separated by an empty entry.
// On the wire it is one newline-separated string. Trailing empty entries
// carry no tier and are dropped in both directions.
type TrackerList []string

func (l TrackerList) MarshalJSON() ([]byte, error) {
	for len(l) > 0 && l[len(l)-1] == "" {
		l = l[:len(l)-1]
	}
	return json.Marshal(strings.Join(l, "\n"))
}

func (l *TrackerList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "tracker list")
	}
	s = strings.TrimRight(s, "\n")
	if s == "" {
		*l = TrackerList{}
		return nil
	}
	*l = strings.Split(s, "\n")
	return nil
}
