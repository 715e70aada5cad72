package deck

import (
	"encoding/binary"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// NewSeed picks a random scalar of the Ed25519 group and folds it into the two
// 64 bit words expected by rand.NewPCG.
func NewSeed() (uint64, uint64, error) {
	x := suite.Scalar().Pick(suite.RandomStream())
	b, err := x.MarshalBinary()
	if err != nil {
		return 0, 0, err
	}
	if len(b) < 16 {
		return 0, 0, fmt.Errorf("scalar too short: %d bytes", len(b))
	}
	var hi, lo uint64
	for i := 0; i+16 <= len(b); i += 16 {
		hi ^= binary.LittleEndian.Uint64(b[i : i+8])
		lo ^= binary.LittleEndian.Uint64(b[i+8 : i+16])
	}
	return hi, lo, nil
}
