package model

// GenerateRequest represents request body for POST /wallet/generate
type GenerateRequest struct {
	Passphrase string `json:"passphrase"`
}

// ImportRequest represents request body for POST /wallet/import
type ImportRequest struct {
	PrivateKey string `json:"privateKey"` // 64 hex chars or mainnet WIF
	Passphrase string `json:"passphrase"`
}

// GenerateResponse represents response for POST /wallet/generate and /wallet/import
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
