package crypto

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// DecryptKey recovers the private key from an encoded string. A wrong
// passphrase or mismatched scrypt parameters do not fail the cipher; they
// produce garbage that fails the address-hash check, surfaced as
// ErrVerificationFailed.
// passphrase must be []byte for security (caller should zero it after use)
func DecryptKey(encoded string, passphrase []byte, params Params) ([]byte, error) {
	addrHash, ciphertext, err := decodeFrame(encoded)
	if err != nil {
		return nil, err
	}

	dh1, dh2, err := deriveKey(passphrase, addrHash, params)
	if err != nil {
		return nil, err
	}
	defer clear(dh1) // wipe derived key material from memory
	defer clear(dh2)

	block, err := aes.NewCipher(dh2)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	privKey := make([]byte, privateKeyLen)
	block.Decrypt(privKey[:16], ciphertext[:16])
	block.Decrypt(privKey[16:], ciphertext[16:])
	for i := range privKey {
		privKey[i] ^= dh1[i]
	}

	// Verification by recomputation: only the right passphrase yields a
	// key whose address hashes back to the tag in the frame. A candidate
	// that is not even a valid scalar is the same wrong-passphrase case.
	recomputed, err := addressHash(privKey)
	if err != nil || !bytes.Equal(recomputed, addrHash) {
		clear(privKey)
		return nil, ErrVerificationFailed
	}

	return privKey, nil
}
