// bip38 encrypts and decrypts single private keys with a passphrase,
// without touching any wallet file. The passphrase is prompted, never
// taken from the command line.
// Usage: go run ./cmd/bip38 encrypt <hex-or-wif>
//        go run ./cmd/bip38 decrypt <encrypted-string>
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/AlexZinkM/paper-wallet/internal/common"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/crypto"
)

func main() {
	app := cli.NewApp()
	app.Name = "bip38"
	app.Usage = "encrypt and decrypt private keys with a passphrase"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "scrypt-n",
			Value: crypto.DefaultParams.N,
			Usage: "scrypt CPU/memory cost, power of two",
		},
		cli.IntFlag{
			Name:  "scrypt-r",
			Value: crypto.DefaultParams.R,
			Usage: "scrypt block size",
		},
		cli.IntFlag{
			Name:  "scrypt-p",
			Value: crypto.DefaultParams.P,
			Usage: "scrypt parallelism",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "encrypt",
			Usage:     "encrypt a private key (64 hex chars or mainnet WIF)",
			ArgsUsage: "<private-key>",
			Action:    runEncrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt an encrypted key string",
			ArgsUsage: "<encrypted-key>",
			Action:    runDecrypt,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEncrypt(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one private key argument")
	}

	raw, err := common.ParsePrivateKey(c.Args().First())
	if err != nil {
		return err
	}
	defer clear(raw)

	passphrase, err := config.PromptPassphrase(true)
	if err != nil {
		return err
	}
	defer clear(passphrase)

	encrypted, err := crypto.EncryptKey(raw, passphrase, paramsFromContext(c))
	if err != nil {
		return err
	}

	address, err := common.AddressFromKey(raw)
	if err != nil {
		return err
	}

	fmt.Println("Address:  ", address)
	fmt.Println("Encrypted:", encrypted)
	return nil
}

func runDecrypt(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one encrypted key argument")
	}

	passphrase, err := config.PromptPassphrase(false)
	if err != nil {
		return err
	}
	defer clear(passphrase)

	raw, err := crypto.DecryptKey(c.Args().First(), passphrase, paramsFromContext(c))
	if err != nil {
		return err
	}
	defer clear(raw)

	address, err := common.AddressFromKey(raw)
	if err != nil {
		return err
	}
	wif, err := common.EncodeWIF(raw)
	if err != nil {
		return err
	}

	fmt.Println("Address:", address)
	fmt.Println("WIF:    ", wif)
	fmt.Println("Hex:    ", hex.EncodeToString(raw))
	return nil
}

func paramsFromContext(c *cli.Context) crypto.Params {
	return crypto.Params{
		N: c.GlobalInt("scrypt-n"),
		R: c.GlobalInt("scrypt-r"),
		P: c.GlobalInt("scrypt-p"),
	}
}
