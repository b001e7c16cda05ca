package wallet

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/paper-wallet/internal/common"
	"github.com/AlexZinkM/paper-wallet/internal/crypto"
	"github.com/AlexZinkM/paper-wallet/internal/model"
)

// Open reads a .pwt file and decrypts the private key. A wrong passphrase
// surfaces as crypto.ErrVerificationFailed.
// passphrase must be []byte for security (caller should zero it after use)
func Open(filePath string, passphrase []byte, params crypto.Params) (*model.KeyMaterial, error) {
	pwtFile, err := readWalletFile(filePath)
	if err != nil {
		return nil, err
	}

	raw, err := crypto.DecryptKey(pwtFile.EncryptedKey, passphrase, params)
	if err != nil {
		return nil, err
	}
	defer clear(raw) // wipe decrypted key from memory

	address, err := common.AddressFromKey(raw)
	if err != nil {
		return nil, err
	}
	if address != pwtFile.Address {
		// Decryption verified but the file's plaintext address disagrees:
		// the file was edited after it was written.
		return nil, errors.New("wallet file address does not match decrypted key")
	}

	wif, err := common.EncodeWIF(raw)
	if err != nil {
		return nil, err
	}

	return &model.KeyMaterial{
		Address:       address,
		WIF:           wif,
		PrivateKeyHex: hex.EncodeToString(raw),
	}, nil
}

// ReadAddress reads only the address from .pwt file (without decryption)
func ReadAddress(filePath string) (string, error) {
	pwtFile, err := readWalletFile(filePath)
	if err != nil {
		return "", err
	}
	return pwtFile.Address, nil
}

// ReadInfo reads the public part of a .pwt file (without decryption)
func ReadInfo(filePath string) (*model.InfoResponse, error) {
	pwtFile, err := readWalletFile(filePath)
	if err != nil {
		return nil, err
	}
	return &model.InfoResponse{
		Network:   pwtFile.Network,
		Address:   pwtFile.Address,
		QR:        pwtFile.QR,
		CreatedAt: pwtFile.CreatedAt,
	}, nil
}

func readWalletFile(filePath string) (*model.PWTFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var pwtFile model.PWTFile
	if err := json.Unmarshal(fileData, &pwtFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pwt file: %w", err)
	}

	return &pwtFile, nil
}
