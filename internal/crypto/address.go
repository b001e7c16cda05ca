package crypto

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// addressHash returns the 4-byte verification tag of a private key: the
// first four bytes of the double SHA-256 of its compressed-pubkey mainnet
// P2PKH address. The tag doubles as the scrypt salt and, on decrypt, as
// the implicit MAC.
func addressHash(privKey []byte) ([]byte, error) {
	if err := validatePrivateKey(privKey); err != nil {
		return nil, err
	}

	priv, _ := btcec.PrivKeyFromBytes(privKey)
	pkHash := btcutil.Hash160(priv.PubKey().SerializeCompressed())
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to derive address: %w", err)
	}

	digest := chainhash.DoubleHashB([]byte(addr.EncodeAddress()))
	return digest[:addrHashLen], nil
}

func validatePrivateKey(privKey []byte) error {
	if len(privKey) != privateKeyLen {
		return ErrInvalidPrivateKey
	}
	k := new(big.Int).SetBytes(privKey)
	if k.Sign() == 0 || k.Cmp(btcec.S256().N) >= 0 {
		return ErrInvalidPrivateKey
	}
	return nil
}
