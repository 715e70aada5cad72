package ledger

import "github.com/luca-patrignani/truco/domain/truco"

// Block records one settled hand.
type Block struct {
	Index      int              `json:"index"`
	Timestamp  int64            `json:"timestamp"`
	PrevHash   string           `json:"prev_hash"`
	Hash       string           `json:"hash"`
	Settlement truco.Settlement `json:"settlement"`
}
