// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

// Method names a remote operation.
type Method string

const (
	MethodSessionGet         Method = "session-get"
	MethodSessionSet         Method = "session-set"
	MethodSessionStats       Method = "session-stats"
	MethodSessionClose       Method = "session-close"
	MethodBlocklistUpdate    Method = "blocklist-update"
	MethodFreeSpace          Method = "free-space"
	MethodPortTest           Method = "port-test"
	MethodTorrentGet         Method = "torrent-get"
	MethodTorrentSet         Method = "torrent-set"
	MethodTorrentAdd         Method = "torrent-add"
	MethodTorrentRemove      Method = "torrent-remove"
	MethodTorrentSetLocation Method = "torrent-set-location"
	MethodTorrentRenamePath  Method = "torrent-rename-path"
	MethodQueueMoveTop       Method = "queue-move-top"
	MethodQueueMoveUp        Method = "queue-move-up"
	MethodQueueMoveDown      Method = "queue-move-down"
	MethodQueueMoveBottom    Method = "queue-move-bottom"
	MethodGroupSet           Method = "group-set"
	MethodGroupGet           Method = "group-get"
)

// TorrentAction is one of the torrent-start family of methods. They all
// take a list of ids and return nothing.
type TorrentAction = Method

const (
	ActionStart      TorrentAction = "torrent-start"
	ActionStartNow   TorrentAction = "torrent-start-now"
	ActionStop       TorrentAction = "torrent-stop"
	ActionVerify     TorrentAction = "torrent-verify"
	ActionReannounce TorrentAction = "torrent-reannounce"
)

// TorrentGetField names a field that torrent-get can return.
type TorrentGetField string

const (
	FieldActivityDate            TorrentGetField = "activityDate"
	FieldAddedDate               TorrentGetField = "addedDate"
	FieldAvailability            TorrentGetField = "availability"
	FieldBandwidthPriority       TorrentGetField = "bandwidthPriority"
	FieldComment                 TorrentGetField = "comment"
	FieldCorruptEver             TorrentGetField = "corruptEver"
	FieldCreator                 TorrentGetField = "creator"
	FieldDateCreated             TorrentGetField = "dateCreated"
	FieldDesiredAvailable        TorrentGetField = "desiredAvailable"
	FieldDoneDate                TorrentGetField = "doneDate"
	FieldDownloadDir             TorrentGetField = "downloadDir"
	FieldDownloadedEver          TorrentGetField = "downloadedEver"
	FieldDownloadLimit           TorrentGetField = "downloadLimit"
	FieldDownloadLimited         TorrentGetField = "downloadLimited"
	FieldEditDate                TorrentGetField = "editDate"
	FieldError                   TorrentGetField = "error"
	FieldErrorString             TorrentGetField = "errorString"
	FieldETA                     TorrentGetField = "eta"
	FieldETAIdle                 TorrentGetField = "etaIdle"
	FieldFileCount               TorrentGetField = "file-count"
	FieldFileStats               TorrentGetField = "fileStats"
	FieldFiles                   TorrentGetField = "files"
	FieldGroup                   TorrentGetField = "group"
	FieldHashString              TorrentGetField = "hashString"
	FieldHaveUnchecked           TorrentGetField = "haveUnchecked"
	FieldHaveValid               TorrentGetField = "haveValid"
	FieldHonorsSessionLimits     TorrentGetField = "honorsSessionLimits"
	FieldID                      TorrentGetField = "id"
	FieldIsFinished              TorrentGetField = "isFinished"
	FieldIsPrivate               TorrentGetField = "isPrivate"
	FieldIsStalled               TorrentGetField = "isStalled"
	FieldLabels                  TorrentGetField = "labels"
	FieldLeftUntilDone           TorrentGetField = "leftUntilDone"
	FieldMagnetLink              TorrentGetField = "magnetLink"
	FieldManualAnnounceTime      TorrentGetField = "manualAnnounceTime"
	FieldMaxConnectedPeers       TorrentGetField = "maxConnectedPeers"
	FieldMetadataPercentComplete TorrentGetField = "metadataPercentComplete"
	FieldName                    TorrentGetField = "name"
	FieldPeerLimit               TorrentGetField = "peer-limit"
	FieldPeers                   TorrentGetField = "peers"
	FieldPeersConnected          TorrentGetField = "peersConnected"
	FieldPeersFrom               TorrentGetField = "peersFrom"
	FieldPeersGettingFromUs      TorrentGetField = "peersGettingFromUs"
	FieldPeersSendingToUs        TorrentGetField = "peersSendingToUs"
	FieldPercentComplete         TorrentGetField = "percentComplete"
	FieldPercentDone             TorrentGetField = "percentDone"
	FieldPieces                  TorrentGetField = "pieces"
	FieldPieceCount              TorrentGetField = "pieceCount"
	FieldPieceSize               TorrentGetField = "pieceSize"
	FieldPriorities              TorrentGetField = "priorities"
	FieldPrimaryMimeType         TorrentGetField = "primary-mime-type"
	FieldQueuePosition           TorrentGetField = "queuePosition"
	FieldRateDownload            TorrentGetField = "rateDownload"
	FieldRateUpload              TorrentGetField = "rateUpload"
	FieldRecheckProgress         TorrentGetField = "recheckProgress"
	FieldSecondsDownloading      TorrentGetField = "secondsDownloading"
	FieldSecondsSeeding          TorrentGetField = "secondsSeeding"
	FieldSeedIdleLimit           TorrentGetField = "seedIdleLimit"
	FieldSeedIdleMode            TorrentGetField = "seedIdleMode"
	FieldSeedRatioLimit          TorrentGetField = "seedRatioLimit"
	FieldSeedRatioMode           TorrentGetField = "seedRatioMode"
	FieldSequentialDownload      TorrentGetField = "sequentialDownload"
	FieldSizeWhenDone            TorrentGetField = "sizeWhenDone"
	FieldStartDate               TorrentGetField = "startDate"
	FieldStatus                  TorrentGetField = "status"
	FieldTorrentFile             TorrentGetField = "torrentFile"
	FieldTotalSize               TorrentGetField = "totalSize"
	FieldTrackers                TorrentGetField = "trackers"
	FieldTrackerList             TorrentGetField = "trackerList"
	FieldTrackerStats            TorrentGetField = "trackerStats"
	FieldUploadRatio             TorrentGetField = "uploadRatio"
	FieldUploadedEver            TorrentGetField = "uploadedEver"
	FieldUploadLimit             TorrentGetField = "uploadLimit"
	FieldUploadLimited           TorrentGetField = "uploadLimited"
	FieldWanted                  TorrentGetField = "wanted"
	FieldWebseeds                TorrentGetField = "webseeds"
	FieldWebseedsSendingToUs     TorrentGetField = "webseedsSendingToUs"
)

var allTorrentGetFields = []TorrentGetField{
	FieldActivityDate, FieldAddedDate, FieldAvailability, FieldBandwidthPriority,
	FieldComment, FieldCorruptEver, FieldCreator, FieldDateCreated,
	FieldDesiredAvailable, FieldDoneDate, FieldDownloadDir, FieldDownloadedEver,
	FieldDownloadLimit, FieldDownloadLimited, FieldEditDate, FieldError,
	FieldErrorString, FieldETA, FieldETAIdle, FieldFileCount, FieldFileStats,
	FieldFiles, FieldGroup, FieldHashString, FieldHaveUnchecked, FieldHaveValid,
	FieldHonorsSessionLimits, FieldID, FieldIsFinished, FieldIsPrivate,
	FieldIsStalled, FieldLabels, FieldLeftUntilDone, FieldMagnetLink,
	FieldManualAnnounceTime, FieldMaxConnectedPeers, FieldMetadataPercentComplete,
	FieldName, FieldPeerLimit, FieldPeers, FieldPeersConnected, FieldPeersFrom,
	FieldPeersGettingFromUs, FieldPeersSendingToUs, FieldPercentComplete,
	FieldPercentDone, FieldPieces, FieldPieceCount, FieldPieceSize,
	FieldPriorities, FieldPrimaryMimeType, FieldQueuePosition, FieldRateDownload,
	FieldRateUpload, FieldRecheckProgress, FieldSecondsDownloading,
	FieldSecondsSeeding, FieldSeedIdleLimit, FieldSeedIdleMode,
	FieldSeedRatioLimit, FieldSeedRatioMode, FieldSequentialDownload,
	FieldSizeWhenDone, FieldStartDate, FieldStatus, FieldTorrentFile,
	FieldTotalSize, FieldTrackers, FieldTrackerList, FieldTrackerStats,
	FieldUploadRatio, FieldUploadedEver, FieldUploadLimit, FieldUploadLimited,
	FieldWanted, FieldWebseeds, FieldWebseedsSendingToUs,
}

// AllTorrentGetFields returns every field torrent-get knows about.
func AllTorrentGetFields() []TorrentGetField {
	out := make([]TorrentGetField, len(allTorrentGetFields))
	copy(out, allTorrentGetFields)
	return out
}

func SessionGetRequest() *Request {
	return &Request{Method: MethodSessionGet}
}

func SessionSetRequest(args SessionSetArgs) *Request {
	return &Request{Method: MethodSessionSet, Arguments: &args}
}

func SessionStatsRequest() *Request {
	return &Request{Method: MethodSessionStats}
}

func SessionCloseRequest() *Request {
	return &Request{Method: MethodSessionClose}
}

func BlocklistUpdateRequest() *Request {
	return &Request{Method: MethodBlocklistUpdate}
}

func FreeSpaceRequest(path string) *Request {
	return &Request{Method: MethodFreeSpace, Arguments: &FreeSpaceArgs{Path: path}}
}

func PortTestRequest() *Request {
	return &Request{Method: MethodPortTest}
}

// TorrentGetRequest asks for fields of the torrents in ids. Nil fields
// means every field and nil ids means every torrent.
func TorrentGetRequest(fields []TorrentGetField, ids []ID) *Request {
	if fields == nil {
		fields = AllTorrentGetFields()
	}
	return &Request{
		Method:    MethodTorrentGet,
		Arguments: &TorrentGetArgs{Fields: fields, IDs: ids},
	}
}

// TorrentSetRequest applies args to the torrents in ids, replacing any ids
// already set on args. Nil ids means every torrent.
func TorrentSetRequest(args TorrentSetArgs, ids []ID) *Request {
	args.IDs = ids
	return &Request{Method: MethodTorrentSet, Arguments: &args}
}

func TorrentAddRequest(args TorrentAddArgs) *Request {
	return &Request{Method: MethodTorrentAdd, Arguments: &args}
}

func TorrentRemoveRequest(ids []ID, deleteLocalData bool) *Request {
	return &Request{
		Method:    MethodTorrentRemove,
		Arguments: &TorrentRemoveArgs{IDs: ids, DeleteLocalData: deleteLocalData},
	}
}

func TorrentActionRequest(action TorrentAction, ids []ID) *Request {
	return &Request{Method: action, Arguments: &IDsArgs{IDs: ids}}
}

// TorrentSetLocationRequest moves or relocates torrent data. A nil move
// leaves the server default.
func TorrentSetLocationRequest(ids []ID, location string, move *bool) *Request {
	return &Request{
		Method:    MethodTorrentSetLocation,
		Arguments: &TorrentSetLocationArgs{IDs: ids, Location: location, Move: move},
	}
}

func TorrentRenamePathRequest(ids []ID, path, name string) *Request {
	return &Request{
		Method:    MethodTorrentRenamePath,
		Arguments: &TorrentRenamePathArgs{IDs: ids, Path: path, Name: name},
	}
}

func QueueMoveTopRequest(ids []ID) *Request {
	return &Request{Method: MethodQueueMoveTop, Arguments: &IDsArgs{IDs: ids}}
}

func QueueMoveUpRequest(ids []ID) *Request {
	return &Request{Method: MethodQueueMoveUp, Arguments: &IDsArgs{IDs: ids}}
}

func QueueMoveDownRequest(ids []ID) *Request {
	return &Request{Method: MethodQueueMoveDown, Arguments: &IDsArgs{IDs: ids}}
}

func QueueMoveBottomRequest(ids []ID) *Request {
	return &Request{Method: MethodQueueMoveBottom, Arguments: &IDsArgs{IDs: ids}}
}

func GroupSetRequest(group BandwidthGroup) *Request {
	return &Request{Method: MethodGroupSet, Arguments: &group}
}

// GroupGetRequest asks for the named bandwidth groups, or all of them when
// names is nil.
func GroupGetRequest(names []string) *Request {
	if names == nil {
		return &Request{Method: MethodGroupGet}
	}
	return &Request{Method: MethodGroupGet, Arguments: &GroupGetArgs{Group: names}}
}
