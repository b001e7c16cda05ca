package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	privateKeyLen = 32
	addrHashLen   = 4
	ciphertextLen = 32

	// The constant 0x01 0x42 0xE0 prefix identifies the format and the
	// non-EC-multiplied, compressed-pubkey variant; it is what makes
	// every encoded string start with "6P". The first byte is carried as
	// the Base58Check version, the flag bytes lead the payload.
	frameVersion   = 0x01
	flagNonECMult  = 0x42
	flagCompressed = 0xE0

	framePayloadLen = 2 + addrHashLen + ciphertextLen
)

// encodeFrame assembles the 39-byte frame and runs it through Base58Check
// (4-byte double-SHA256 checksum, Base58 alphabet).
func encodeFrame(addrHash, ciphertext []byte) string {
	payload := make([]byte, 0, framePayloadLen)
	payload = append(payload, flagNonECMult, flagCompressed)
	payload = append(payload, addrHash...)
	payload = append(payload, ciphertext...)
	return base58.CheckEncode(payload, frameVersion)
}

// decodeFrame reverses encodeFrame, returning the embedded address hash
// and ciphertext.
func decodeFrame(encoded string) (addrHash, ciphertext []byte, err error) {
	payload, version, err := base58.CheckDecode(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBase58, err)
	}
	if version != frameVersion || len(payload) != framePayloadLen ||
		payload[0] != flagNonECMult || payload[1] != flagCompressed {
		return nil, nil, ErrInvalidFormat
	}
	return payload[2 : 2+addrHashLen], payload[2+addrHashLen:], nil
}
