package genpass

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// SecureRandomSource produces uniformly distributed 32-bit values suitable
// for generating secrets. A failing source is fatal to generation; callers
// must never downgrade to a non-secure substitute.
type SecureRandomSource interface {
	Uint32() (uint32, error)
}

// cryptoSource reads from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("secure random source: %w", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// uint32n draws a uniform value in [0,n) from src. Values in the truncated
// top region of the 32-bit range are rejected and redrawn, so no residue is
// over-represented.
func uint32n(src SecureRandomSource, n uint32) (uint32, error) {
	if n == 0 {
		return 0, fmt.Errorf("uint32n: n must be positive")
	}
	limit := (uint64(1) << 32) / uint64(n) * uint64(n)
	for {
		v, err := src.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return v % n, nil
		}
	}
}
