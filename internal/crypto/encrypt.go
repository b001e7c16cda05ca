// Package crypto implements the passphrase protection scheme for private
// keys: scrypt key stretching salted by a 4-byte address hash, XOR plus
// AES-256 of the key, and a fixed 39-byte frame through Base58Check. The
// address hash is recomputed on decrypt and compared, so a wrong
// passphrase is detected without a separate MAC.
package crypto

import (
	"crypto/aes"
	"fmt"
)

// EncryptKey protects a 32-byte private key with a passphrase and returns
// the printable encoded form.
//
// Passphrase bytes are used as-is, no unicode normalization is applied;
// callers taking user input should settle on one encoding (UTF-8) and use
// it consistently or decryption will fail verification.
// passphrase must be []byte for security (caller should zero it after use)
func EncryptKey(privKey, passphrase []byte, params Params) (string, error) {
	addrHash, err := addressHash(privKey)
	if err != nil {
		return "", err
	}

	dh1, dh2, err := deriveKey(passphrase, addrHash, params)
	if err != nil {
		return "", err
	}
	defer clear(dh1) // wipe derived key material from memory
	defer clear(dh2)

	block, err := aes.NewCipher(dh2)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	// XOR the key with the first derived half, then encrypt the two
	// 16-byte blocks independently. ECB with no IV is fixed by the
	// format; substituting a chained mode breaks interoperability.
	xored := make([]byte, privateKeyLen)
	for i := range xored {
		xored[i] = privKey[i] ^ dh1[i]
	}
	defer clear(xored)

	ciphertext := make([]byte, ciphertextLen)
	block.Encrypt(ciphertext[:16], xored[:16])
	block.Encrypt(ciphertext[16:], xored[16:])

	return encodeFrame(addrHash, ciphertext), nil
}
