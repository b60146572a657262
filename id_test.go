// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/json"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDRoundTrip(t *testing.T) {
	for _, id := range []ID{
		NumericID(0),
		NumericID(42),
		HashID("e08c426aab2cc58649ae5e73690e3747117b3470"),
	} {
		data, err := json.Marshal(id)
		require.NoError(t, err)

		var got ID
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, id, got)
	}
}

func TestIDWireForm(t *testing.T) {
	data, err := json.Marshal([]ID{NumericID(5), HashID("5")})
	require.NoError(t, err)
	assert.Equal(t, `[5,"5"]`, string(data))

	var ids []ID
	require.NoError(t, json.Unmarshal(data, &ids))
	n, ok := ids[0].Numeric()
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)
	h, ok := ids[1].Hash()
	assert.True(t, ok)
	assert.Equal(t, "5", h)
}

func TestIDMalformed(t *testing.T) {
	for _, raw := range []string{`true`, `null`, `1.5`, `{}`, `[1]`} {
		var id ID
		err := json.Unmarshal([]byte(raw), &id)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrMalformedID), raw)
	}
}

func TestMalformedIDIsDecodeError(t *testing.T) {
	data := []byte(`{"arguments":{"torrents":[{"trackerStats":[{"id":true}]}]},"result":"success"}`)
	_, err := DecodeResponse[Torrents](nil, data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	assert.True(t, errors.Is(err, ErrMalformedID))
}

func TestParseID(t *testing.T) {
	assert.Equal(t, NumericID(12), ParseID("12"))
	assert.Equal(t, HashID("abc123"), ParseID("abc123"))
	assert.Equal(t, "12", ParseID("12").String())
	assert.True(t, ParseID("deadbeef").IsHash())
}
