package hubrpc

import (
	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

type PrefixRequest struct {
	Prefix []byte `json:"prefix"`
}

type MetadataResponse struct {
	Node synctrie.NodeMetadata `json:"node"`
}

type IdentifiersResponse struct {
	IDs []types.RecordID `json:"ids"`
}

type RecordsRequest struct {
	IDs []types.RecordID `json:"ids"`
}

type RecordsResponse struct {
	Records []types.Record `json:"records"`
}

type SubmitRequest struct {
	Record types.Record `json:"record"`
}

type Empty struct{}

type PeersResponse struct {
	Peers []types.Peer `json:"peers"`
}

type InfoResponse struct {
	Info types.HubInfo `json:"info"`
}
