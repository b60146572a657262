// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/json"
	"strconv"

	"github.com/juju/errors"
	"github.com/tidwall/gjson"
)

// ID identifies a torrent either by its numeric session id or by its info
// hash. On the wire it is a bare JSON number or JSON string.
type ID struct {
	num    int64
	hash   string
	isHash bool
}

// NumericID returns the ID of the torrent with the given session id.
func NumericID(id int64) ID {
	return ID{num: id}
}

// HashID returns the ID of the torrent with the given hash string.
func HashID(hash string) ID {
	return ID{hash: hash, isHash: true}
}

// ParseID returns a numeric ID if s is a base 10 integer and a hash ID
// otherwise.
func ParseID(s string) ID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumericID(n)
	}
	return HashID(s)
}

// Numeric returns the numeric id and true, or 0 and false for a hash ID.
func (id ID) Numeric() (int64, bool) {
	return id.num, !id.isHash
}

// Hash returns the hash string and true, or "" and false for a numeric ID.
func (id ID) Hash() (string, bool) {
	return id.hash, id.isHash
}

// IsHash reports whether id holds a hash string.
func (id ID) IsHash() bool {
	return id.isHash
}

func (id ID) String() string {
	if id.isHash {
		return id.hash
	}
	return strconv.FormatInt(id.num, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.isHash {
		return json.Marshal(id.hash)
	}
	return []byte(strconv.FormatInt(id.num, 10)), nil
}

// UnmarshalJSON tries a number first and a string second. Any other JSON
// value, null included, fails with ErrMalformedID.
func (id *ID) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch v.Type {
	case gjson.Number:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return errors.Annotatef(ErrMalformedID, "non-integer number %s", v.Raw)
		}
		*id = NumericID(n)
	case gjson.String:
		*id = HashID(v.Str)
	default:
		return errors.Annotatef(ErrMalformedID, "unexpected JSON %s", data)
	}
	return nil
}

// IDs converts numeric ids to a slice of ID.
func IDs(ids ...int64) []ID {
	out := make([]ID, len(ids))
	for i, n := range ids {
		out[i] = NumericID(n)
	}
	return out
}
