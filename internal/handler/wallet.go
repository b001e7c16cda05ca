package handler

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/paper-wallet/internal/common"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/crypto"
	"github.com/AlexZinkM/paper-wallet/internal/model"
	"github.com/AlexZinkM/paper-wallet/wallet"
)

// WalletHandler holds configuration for paper-wallet operations
type WalletHandler struct {
	filePath string
	params   crypto.Params
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler() (*WalletHandler, error) {
	filePath := config.GetWalletFilePath()
	if filePath == "" {
		return nil, errors.New("WALLET_FILE_PATH not set")
	}

	return &WalletHandler{
		filePath: filePath,
		params:   config.ScryptParams(),
	}, nil
}

// Generate handles POST /wallet/generate
// @Summary      Generate new paper wallet
// @Description  Generates a new keypair, encrypts the private key with the passphrase and saves it to the .pwt file
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  true  "Passphrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	passphrase, ok := passphraseBytes(w, req.Passphrase)
	if !ok {
		return
	}
	defer clear(passphrase) // Always clear passphrase from memory

	address, err := wallet.Generate(h.filePath, passphrase, h.params)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Import handles POST /wallet/import
// @Summary      Import existing private key
// @Description  Encrypts an existing private key (hex or WIF) with the passphrase and saves it to the .pwt file
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Private key and passphrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	passphrase, ok := passphraseBytes(w, req.Passphrase)
	if !ok {
		return
	}
	defer clear(passphrase)

	address, err := wallet.Import(h.filePath, req.PrivateKey, passphrase, h.params)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Key imported successfully",
		Address: address,
	})
}

// Reveal handles POST /wallet/reveal
// @Summary      Reveal the private key
// @Description  Decrypts the wallet file and returns the private key as hex and WIF. A wrong passphrase returns 401 with code WRONG_PASSPHRASE.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RevealRequest  true  "Passphrase"
// @Success      200      {object}  model.KeyMaterial
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/reveal [post]
func (h *WalletHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	passphrase, ok := passphraseBytes(w, req.Passphrase)
	if !ok {
		return
	}
	defer clear(passphrase)

	material, err := wallet.Open(h.filePath, passphrase, h.params)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, material)
}

// Info handles GET /wallet/info
// @Summary      Get wallet info
// @Description  Returns address and QR code from the wallet file, no passphrase needed
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.InfoResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/info [get]
func (h *WalletHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	info, err := wallet.ReadInfo(h.filePath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// EncryptKey handles POST /key/encrypt
// @Summary      Encrypt a private key
// @Description  Encodes a caller-supplied private key (hex or WIF) into the passphrase-protected printable form. Nothing is written to disk.
// @Tags         key
// @Accept       json
// @Produce      json
// @Param        request  body      model.EncryptKeyRequest  true  "Private key and passphrase"
// @Success      200      {object}  model.EncryptKeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /key/encrypt [post]
func (h *WalletHandler) EncryptKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.EncryptKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	passphrase, ok := passphraseBytes(w, req.Passphrase)
	if !ok {
		return
	}
	defer clear(passphrase)

	raw, err := common.ParsePrivateKey(req.PrivateKey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_KEY")
		return
	}
	defer clear(raw)

	encrypted, err := crypto.EncryptKey(raw, passphrase, h.params)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	address, err := common.AddressFromKey(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, model.EncryptKeyResponse{
		EncryptedKey: encrypted,
		Address:      address,
	})
}

// DecryptKey handles POST /key/decrypt
// @Summary      Decrypt an encrypted key string
// @Description  Decodes a passphrase-protected key string back to hex and WIF. A wrong passphrase returns 401 with code WRONG_PASSPHRASE.
// @Tags         key
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptKeyRequest  true  "Encrypted key and passphrase"
// @Success      200      {object}  model.KeyMaterial
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /key/decrypt [post]
func (h *WalletHandler) DecryptKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DecryptKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	passphrase, ok := passphraseBytes(w, req.Passphrase)
	if !ok {
		return
	}
	defer clear(passphrase)

	raw, err := crypto.DecryptKey(req.EncryptedKey, passphrase, h.params)
	if err != nil {
		writeWalletError(w, err)
		return
	}
	defer clear(raw)

	address, err := common.AddressFromKey(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	wif, err := common.EncodeWIF(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, model.KeyMaterial{
		Address:       address,
		WIF:           wif,
		PrivateKeyHex: hex.EncodeToString(raw),
	})
}

// passphraseBytes rejects an empty passphrase and hands it back as []byte.
// Caller must clear the returned slice.
func passphraseBytes(w http.ResponseWriter, passphrase string) ([]byte, bool) {
	if passphrase == "" {
		writeError(w, http.StatusBadRequest, "passphrase cannot be empty", "EMPTY_PASSPHRASE")
		return nil, false
	}
	return []byte(passphrase), true
}

// writeWalletError maps domain errors to HTTP statuses and stable codes.
func writeWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrVerificationFailed):
		writeError(w, http.StatusUnauthorized, err.Error(), "WRONG_PASSPHRASE")
	case errors.Is(err, crypto.ErrInvalidFormat), errors.Is(err, crypto.ErrBase58):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_FORMAT")
	case errors.Is(err, crypto.ErrInvalidPrivateKey):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_KEY")
	case errors.Is(err, crypto.ErrScryptParams):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_PARAMS")
	case wallet.IsFileExistsError(err):
		writeError(w, http.StatusConflict, err.Error(), "FILE_EXISTS")
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), "")
	}
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
