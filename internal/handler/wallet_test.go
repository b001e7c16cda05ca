package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlexZinkM/paper-wallet/internal/api"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/model"
)

const testKeyHex = "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	t.Setenv("WALLET_FILE_PATH", filepath.Join(t.TempDir(), "wallet.pwt"))
	// Cheap scrypt so handler tests stay fast.
	t.Setenv("SCRYPT_N", "1024")
	t.Setenv("SCRYPT_R", "1")
	t.Setenv("SCRYPT_P", "1")
	require.NoError(t, config.Init())

	router, err := api.SetupRouter(zap.NewNop())
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestWalletLifecycle(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/wallet/generate", model.GenerateRequest{Passphrase: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	generated := decodeBody[model.GenerateResponse](t, rec)
	require.True(t, generated.Success)
	require.NotEmpty(t, generated.Address)

	rec = doJSON(t, router, http.MethodGet, "/wallet/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[model.InfoResponse](t, rec)
	require.Equal(t, generated.Address, info.Address)
	require.NotEmpty(t, info.QR)

	rec = doJSON(t, router, http.MethodPost, "/wallet/reveal", model.RevealRequest{Passphrase: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := decodeBody[model.ErrorResponse](t, rec)
	require.Equal(t, "WRONG_PASSPHRASE", errResp.Code)

	rec = doJSON(t, router, http.MethodPost, "/wallet/reveal", model.RevealRequest{Passphrase: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	material := decodeBody[model.KeyMaterial](t, rec)
	require.Equal(t, generated.Address, material.Address)
	require.Len(t, material.PrivateKeyHex, 64)
	require.NotEmpty(t, material.WIF)

	// Second generate must not clobber the wallet file.
	rec = doJSON(t, router, http.MethodPost, "/wallet/generate", model.GenerateRequest{Passphrase: "pw"})
	require.Equal(t, http.StatusConflict, rec.Code)
	errResp = decodeBody[model.ErrorResponse](t, rec)
	require.Equal(t, "FILE_EXISTS", errResp.Code)
}

func TestKeyEncryptDecrypt(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/key/encrypt", model.EncryptKeyRequest{
		PrivateKey: testKeyHex,
		Passphrase: "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	encrypted := decodeBody[model.EncryptKeyResponse](t, rec)
	require.Contains(t, encrypted.EncryptedKey, "6P")
	require.NotEmpty(t, encrypted.Address)

	rec = doJSON(t, router, http.MethodPost, "/key/decrypt", model.DecryptKeyRequest{
		EncryptedKey: encrypted.EncryptedKey,
		Passphrase:   "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	material := decodeBody[model.KeyMaterial](t, rec)
	require.Equal(t, testKeyHex, material.PrivateKeyHex)
	require.Equal(t, encrypted.Address, material.Address)

	rec = doJSON(t, router, http.MethodPost, "/key/decrypt", model.DecryptKeyRequest{
		EncryptedKey: encrypted.EncryptedKey,
		Passphrase:   "other",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBadRequests(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/wallet/generate", model.GenerateRequest{Passphrase: ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "EMPTY_PASSPHRASE", decodeBody[model.ErrorResponse](t, rec).Code)

	rec = doJSON(t, router, http.MethodPost, "/key/encrypt", model.EncryptKeyRequest{
		PrivateKey: "not-a-key",
		Passphrase: "pw",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_KEY", decodeBody[model.ErrorResponse](t, rec).Code)

	rec = doJSON(t, router, http.MethodPost, "/key/decrypt", model.DecryptKeyRequest{
		EncryptedKey: "garbage",
		Passphrase:   "pw",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_FORMAT", decodeBody[model.ErrorResponse](t, rec).Code)

	rec = doJSON(t, router, http.MethodGet, "/wallet/generate", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
