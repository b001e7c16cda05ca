package model

// RevealRequest represents request body for POST /wallet/reveal
type RevealRequest struct {
	Passphrase string `json:"passphrase"`
}

// EncryptKeyRequest represents request body for POST /key/encrypt
type EncryptKeyRequest struct {
	PrivateKey string `json:"privateKey"` // 64 hex chars or mainnet WIF
	Passphrase string `json:"passphrase"`
}

// EncryptKeyResponse represents response for POST /key/encrypt
type EncryptKeyResponse struct {
	EncryptedKey string `json:"encryptedKey"`
	Address      string `json:"address"`
}

// DecryptKeyRequest represents request body for POST /key/decrypt
type DecryptKeyRequest struct {
	EncryptedKey string `json:"encryptedKey"`
	Passphrase   string `json:"passphrase"`
}

// InfoResponse represents response for GET /wallet/info
type InfoResponse struct {
	Network   string `json:"network"`
	Address   string `json:"address"`
	QR        string `json:"QR"`
	CreatedAt string `json:"createdAt"`
}
