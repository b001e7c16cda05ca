package common

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known compressed-pubkey mainnet pairs.
var wifPairs = []struct {
	hexKey string
	wif    string
}{
	{
		hexKey: "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5",
		wif:    "L44B5gGEpqEDRS9vVPz7QT35jcBG2r3CZwSwQ4fCewXAhAhqGVpP",
	},
	{
		hexKey: "09c2686880095b1a4c249ee3ac4eea8a014f11e6f986d0b5025ac1f39afbd9ae",
		wif:    "KwYgW8gcxj1JWJXhPSu4Fqwzfhp5Yfi42mdYmMa4XqK7NJxXUSK7",
	},
}

func TestParsePrivateKeyHex(t *testing.T) {
	for _, pair := range wifPairs {
		want, err := hex.DecodeString(pair.hexKey)
		require.NoError(t, err)

		got, err := ParsePrivateKey(pair.hexKey)
		require.NoError(t, err)
		require.Equal(t, want, got)

		// Upper case and surrounding whitespace are accepted.
		got, err = ParsePrivateKey("  " + strings.ToUpper(pair.hexKey) + "\n")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParsePrivateKeyWIF(t *testing.T) {
	for _, pair := range wifPairs {
		want, err := hex.DecodeString(pair.hexKey)
		require.NoError(t, err)

		got, err := ParsePrivateKey(pair.wif)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestEncodeWIF(t *testing.T) {
	for _, pair := range wifPairs {
		raw, err := hex.DecodeString(pair.hexKey)
		require.NoError(t, err)

		wif, err := EncodeWIF(raw)
		require.NoError(t, err)
		require.Equal(t, pair.wif, wif)
	}

	_, err := EncodeWIF(make([]byte, 31))
	require.Error(t, err)
}

func TestParsePrivateKeyRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "zz", "deadbeef", strings.Repeat("g", 64)} {
		_, err := ParsePrivateKey(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestAddressFromKey(t *testing.T) {
	raw, err := hex.DecodeString(wifPairs[0].hexKey)
	require.NoError(t, err)

	addr, err := AddressFromKey(raw)
	require.NoError(t, err)
	// Compressed P2PKH mainnet addresses start with 1.
	require.True(t, strings.HasPrefix(addr, "1"))

	again, err := AddressFromKey(raw)
	require.NoError(t, err)
	require.Equal(t, addr, again)

	_, err = AddressFromKey(nil)
	require.Error(t, err)
}
