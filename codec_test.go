// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRequest(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{
			name: "no arguments",
			req:  SessionGetRequest(),
			want: `{"method":"session-get"}`,
		},
		{
			name: "torrent-get all torrents",
			req:  TorrentGetRequest([]TorrentGetField{FieldID, FieldName}, nil),
			want: `{"method":"torrent-get","arguments":{"fields":["id","name"]}}`,
		},
		{
			name: "torrent-get mixed ids",
			req:  TorrentGetRequest([]TorrentGetField{FieldStatus}, []ID{NumericID(7), HashID("abc")}),
			want: `{"method":"torrent-get","arguments":{"fields":["status"],"ids":[7,"abc"]}}`,
		},
		{
			name: "torrent-remove with no ids sends an empty list",
			req:  TorrentRemoveRequest(nil, true),
			want: `{"method":"torrent-remove","arguments":{"ids":[],"delete-local-data":true}}`,
		},
		{
			name: "torrent action",
			req:  TorrentActionRequest(ActionStop, IDs(1, 2)),
			want: `{"method":"torrent-stop","arguments":{"ids":[1,2]}}`,
		},
		{
			name: "torrent-set replaces ids",
			req: TorrentSetRequest(TorrentSetArgs{
				DownloadLimit: Ptr(int64(100)),
				IDs:           IDs(99),
				TrackerList:   TrackerList{"http://a/announce", "", "http://b/announce"},
			}, IDs(3)),
			want: `{"method":"torrent-set","arguments":{"downloadLimit":100,"ids":[3],"trackerList":"http://a/announce\n\nhttp://b/announce"}}`,
		},
		{
			name: "torrent-set sends empty lists",
			req: TorrentSetRequest(TorrentSetArgs{
				Labels:      []string{},
				TrackerList: TrackerList{},
			}, IDs(1)),
			want: `{"method":"torrent-set","arguments":{"ids":[1],"labels":[],"trackerList":""}}`,
		},
		{
			name: "torrent-set with an empty id list selects none",
			req:  TorrentSetRequest(TorrentSetArgs{SequentialDownload: Ptr(true)}, []ID{}),
			want: `{"method":"torrent-set","arguments":{"ids":[],"sequentialDownload":true}}`,
		},
		{
			name: "torrent-set leaves nil lists out",
			req:  TorrentSetRequest(TorrentSetArgs{Labels: nil, TrackerAdd: []string{"http://c/announce"}}, nil),
			want: `{"method":"torrent-set","arguments":{"trackerAdd":["http://c/announce"]}}`,
		},
		{
			name: "torrent-get with an empty id list",
			req:  TorrentGetRequest([]TorrentGetField{FieldID}, []ID{}),
			want: `{"method":"torrent-get","arguments":{"fields":["id"],"ids":[]}}`,
		},
		{
			name: "torrent-add with empty labels",
			req:  TorrentAddRequest(TorrentAddArgs{Filename: Ptr("a.torrent"), Labels: []string{}}),
			want: `{"method":"torrent-add","arguments":{"filename":"a.torrent","labels":[]}}`,
		},
		{
			name: "session-set leaves unset fields out",
			req: SessionSetRequest(SessionSetArgs{
				SeedRatioLimit:   Ptr(1.5),
				SeedRatioLimited: Ptr(true),
				DownloadDir:      Ptr("/data"),
			}),
			want: `{"method":"session-set","arguments":{"download-dir":"/data","seedRatioLimit":1.5,"seedRatioLimited":true}}`,
		},
		{
			name: "set-location without move",
			req:  TorrentSetLocationRequest(IDs(1), "/new", nil),
			want: `{"method":"torrent-set-location","arguments":{"ids":[1],"location":"/new"}}`,
		},
		{
			name: "group-get all groups",
			req:  GroupGetRequest(nil),
			want: `{"method":"group-get"}`,
		},
		{
			name: "group-get by name",
			req:  GroupGetRequest([]string{"slow"}),
			want: `{"method":"group-get","arguments":{"group":["slow"]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeRequest(nil, tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestTorrentGetRequestDefaultsToAllFields(t *testing.T) {
	req := TorrentGetRequest(nil, nil)
	args, ok := req.Arguments.(*TorrentGetArgs)
	require.True(t, ok)
	assert.Equal(t, AllTorrentGetFields(), args.Fields)
	assert.Nil(t, args.IDs)
}

func TestDecodeResponseResult(t *testing.T) {
	resp, err := DecodeResponse[Nothing](nil, []byte(`{"arguments":{},"result":"success"}`))
	require.NoError(t, err)
	assert.True(t, resp.IsOK())

	resp, err = DecodeResponse[Nothing](nil, []byte(`{"arguments":{},"result":"no such torrent"}`))
	require.NoError(t, err)
	assert.False(t, resp.IsOK())
	assert.Equal(t, "no such torrent", resp.Result)
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := DecodeResponse[SessionStats](nil, []byte(`<html>nope</html>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = DecodeResponse[FreeSpace](nil, []byte(`{"arguments":{"size-bytes":"many"},"result":"success"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeSessionStats(t *testing.T) {
	data := []byte(`{
		"arguments": {
			"activeTorrentCount": 2,
			"downloadSpeed": 1024,
			"pausedTorrentCount": 1,
			"torrentCount": 3,
			"uploadSpeed": 512,
			"cumulative-stats": {"uploadedBytes": 10, "downloadedBytes": 20, "filesAdded": 3, "sessionCount": 4, "secondsActive": 5},
			"current-stats": {"uploadedBytes": 1, "downloadedBytes": 2, "filesAdded": 0, "sessionCount": 1, "secondsActive": 60}
		},
		"result": "success"
	}`)
	resp, err := DecodeResponse[SessionStats](nil, data)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Arguments.TorrentCount)
	assert.Equal(t, int64(20), resp.Arguments.CumulativeStats.DownloadedBytes)
	assert.Equal(t, int64(60), resp.Arguments.CurrentStats.SecondsActive)
}
