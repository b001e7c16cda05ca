// Package wallet implements paper-wallet files: a .pwt JSON document
// holding the public address, a QR code of it, and the passphrase-encrypted
// private key. The raw key never touches disk.
package wallet

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/paper-wallet/internal/common"
	"github.com/AlexZinkM/paper-wallet/internal/crypto"
	"github.com/AlexZinkM/paper-wallet/internal/model"
)

const (
	networkBitcoin = "bitcoin"
	fileExt        = ".pwt"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	_, ok := err.(*FileExistsError)
	return ok
}

// Generate generates a new keypair, protects it with the passphrase and
// saves it to a .pwt file. Returns the public address on success.
// passphrase must be []byte for security (caller should zero it after use)
func Generate(filePath string, passphrase []byte, params crypto.Params) (address string, err error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	raw := priv.Serialize()
	defer clear(raw)

	return writeWalletFile(filePath, raw, passphrase, params)
}

// Import protects an existing private key (64 hex chars or mainnet WIF)
// and saves it to a .pwt file. Returns the public address on success.
// passphrase must be []byte for security (caller should zero it after use)
func Import(filePath, privateKey string, passphrase []byte, params crypto.Params) (address string, err error) {
	raw, err := common.ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	defer clear(raw)

	return writeWalletFile(filePath, raw, passphrase, params)
}

func writeWalletFile(filePath string, privKey, passphrase []byte, params crypto.Params) (string, error) {
	// Check file extension (.pwt)
	if filepath.Ext(filePath) != fileExt {
		return "", fmt.Errorf("file must have %s extension", fileExt)
	}

	// Check file existence
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Message: "file is not empty"}
	}

	address, err := common.AddressFromKey(privKey)
	if err != nil {
		return "", err
	}

	encrypted, err := crypto.EncryptKey(privKey, passphrase, params)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt key: %w", err)
	}

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	pwtFile := model.PWTFile{
		Network:      networkBitcoin,
		Address:      address,
		QR:           qrCode,
		EncryptedKey: encrypted,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	fileData, err := json.MarshalIndent(pwtFile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal pwt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	fileDataWithBOM := append(utf8BOM, fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return address, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
