package dto

import (
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

type PeerDTO struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
}

func PeerFromEntity(peer ledger.Peer) (PeerDTO, error) {
	if peer.ID.Address == "" || peer.ID.PublicKey == "" {
		return PeerDTO{}, fmt.Errorf("peer id is incomplete: %+v", peer.ID)
	}
	return PeerDTO{Address: peer.ID.Address, PublicKey: peer.ID.PublicKey}, nil
}

type StatusDTO struct {
	Peers       uint64 `json:"peers"`
	Blocks      uint64 `json:"blocks"`
	TxsAccepted uint64 `json:"txs_accepted"`
	TxsRejected uint64 `json:"txs_rejected"`
	UptimeMs    uint64 `json:"uptime_ms"`
	ViewChanges uint64 `json:"view_changes"`
}

func StatusFromEntity(s ledger.Status) StatusDTO {
	return StatusDTO{
		Peers:       s.Peers,
		Blocks:      s.Blocks,
		TxsAccepted: s.TxsAccepted,
		TxsRejected: s.TxsRejected,
		UptimeMs:    s.UptimeMs,
		ViewChanges: s.ViewChanges,
	}
}
