package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// PrivateKeyLen is the raw private key size in bytes.
const PrivateKeyLen = 32

// ParsePrivateKey accepts a private key as 64 hex characters or as a
// mainnet WIF string and returns the raw 32-byte scalar.
// Caller should zero the returned slice after use.
func ParsePrivateKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty private key")
	}

	if len(s) == 2*PrivateKeyLen {
		if raw, err := hex.DecodeString(s); err == nil {
			return raw, nil
		}
	}

	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("private key is neither hex nor WIF: %w", err)
	}
	if !wif.IsForNet(&chaincfg.MainNetParams) {
		return nil, errors.New("WIF key is not for mainnet")
	}
	return wif.PrivKey.Serialize(), nil
}

// EncodeWIF returns the compressed-pubkey mainnet WIF form of a raw
// private key.
func EncodeWIF(privKey []byte) (string, error) {
	if len(privKey) != PrivateKeyLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d", PrivateKeyLen, len(privKey))
	}
	priv, _ := btcec.PrivKeyFromBytes(privKey)
	wif, err := btcutil.NewWIF(priv, &chaincfg.MainNetParams, true)
	if err != nil {
		return "", fmt.Errorf("failed to encode WIF: %w", err)
	}
	return wif.String(), nil
}

// AddressFromKey returns the compressed-pubkey P2PKH mainnet address of a
// raw private key. This is the same address the encrypted-key format
// hashes into its verification tag.
func AddressFromKey(privKey []byte) (string, error) {
	if len(privKey) != PrivateKeyLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d", PrivateKeyLen, len(privKey))
	}
	priv, _ := btcec.PrivKeyFromBytes(privKey)
	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(priv.PubKey().SerializeCompressed()),
		&chaincfg.MainNetParams,
	)
	if err != nil {
		return "", fmt.Errorf("failed to derive address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
