package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"github.com/AlexZinkM/paper-wallet/internal/crypto"
)

// Config contains all configuration parameters for the application.
// The scrypt values apply to every encrypt/decrypt the server performs;
// a wallet file written with one set of values must be opened with the
// same set, so change them only for fresh wallets.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	WalletFilePath string `envconfig:"WALLET_FILE_PATH" required:"true"`
	ScryptN        int    `envconfig:"SCRYPT_N" default:"16384"`
	ScryptR        int    `envconfig:"SCRYPT_R" default:"8"`
	ScryptP        int    `envconfig:"SCRYPT_P" default:"8"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to .pwt file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// ScryptParams returns the configured scrypt cost parameters
func ScryptParams() crypto.Params {
	c := Get()
	return crypto.Params{N: c.ScryptN, R: c.ScryptR, P: c.ScryptP}
}

// PromptPassphrase prompts for a passphrase in the terminal. Input is read
// without echoing; with confirm set it is asked twice and both entries must
// match. Caller must zero the returned slice after use.
func PromptPassphrase(confirm bool) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter passphrase")
	}

	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}

	if confirm {
		fmt.Fprint(os.Stderr, "Confirm passphrase: ")
		again, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			clear(raw)
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		match := bytes.Equal(raw, again)
		clear(again)
		if !match {
			clear(raw)
			return nil, errors.New("passphrases do not match")
		}
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
