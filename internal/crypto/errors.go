package crypto

import "errors"

var (
	// ErrInvalidPrivateKey means the supplied key is not a valid curve
	// scalar (wrong length, zero, or not below the curve order).
	ErrInvalidPrivateKey = errors.New("private key must be a non-zero 32-byte scalar below the curve order")

	// ErrInvalidFormat means the string decoded cleanly but is not an
	// encrypted key frame: wrong length or wrong leading bytes.
	ErrInvalidFormat = errors.New("not a valid encrypted key")

	// ErrVerificationFailed means the address hash recomputed from the
	// decrypted key does not match the one stored in the frame. This is
	// the only signal of a wrong passphrase or mismatched scrypt
	// parameters; callers should treat it as "try again".
	ErrVerificationFailed = errors.New("wrong passphrase or scrypt parameters")

	// ErrScryptParams means the scrypt cost parameters are degenerate.
	ErrScryptParams = errors.New("invalid scrypt parameters")

	// ErrBase58 means the string failed Base58Check decoding: an invalid
	// character or a checksum mismatch.
	ErrBase58 = errors.New("base58 decode failed")
)
