package model

// PWTFile represents .pwt paper-wallet file structure
type PWTFile struct {
	Network      string `json:"network"`
	Address      string `json:"address"`
	QR           string `json:"QR"`
	EncryptedKey string `json:"encryptedKey"`
	CreatedAt    string `json:"createdAt"`
}

// KeyMaterial is a decrypted private key in the forms a caller may need.
// Treat all three fields as secrets.
type KeyMaterial struct {
	Address       string `json:"address"`
	WIF           string `json:"wif"`
	PrivateKeyHex string `json:"privateKeyHex"`
}
