package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const derivedKeyLen = 64

// Params are the scrypt cost parameters used to stretch the passphrase.
// The encoded string does not embed them, so encrypt and decrypt of the
// same key must agree on them out of band.
type Params struct {
	N int // CPU/memory cost, power of two
	R int // block size
	P int // parallelism
}

// DefaultParams are the standard cost parameters of the format. Every
// conforming implementation uses them unless told otherwise, so strings
// produced with them decrypt anywhere.
var DefaultParams = Params{N: 16384, R: 8, P: 8}

func (p Params) validate() error {
	if p.N < 2 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be a power of two >= 2, got %d", ErrScryptParams, p.N)
	}
	if p.R < 1 || p.P < 1 {
		return fmt.Errorf("%w: r and p must be positive, got r=%d p=%d", ErrScryptParams, p.R, p.P)
	}
	if uint64(p.R)*uint64(p.P) >= 1<<30 {
		return fmt.Errorf("%w: r*p must be below 2^30", ErrScryptParams)
	}
	return nil
}

// deriveKey stretches the passphrase into 64 bytes of key material, salted
// with the 4-byte address hash, and returns the two 32-byte halves: the
// XOR pad and the AES key. Caller must clear both when done.
func deriveKey(passphrase, addrHash []byte, params Params) (dh1, dh2 []byte, err error) {
	if err := params.validate(); err != nil {
		return nil, nil, err
	}
	dk, err := scrypt.Key(passphrase, addrHash, params.N, params.R, params.P, derivedKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrScryptParams, err)
	}
	return dk[:32], dk[32:], nil
}
