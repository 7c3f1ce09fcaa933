package message

import (
	"strings"

	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

type PeerID string

const peerIDLength = 6

// NewPeerID is a short id players can read out to each other.
func NewPeerID() PeerID {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return PeerID(strings.ToUpper(id[:peerIDLength]))
}
