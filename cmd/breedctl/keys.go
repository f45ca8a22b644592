package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
)

type keys struct {
	Passphrase string           `json:"passphrase"`
	KeyPath    string           `json:"keyPath,omitempty"`
	Identifier codec.Identifier `json:"identifier"`
	PublicKey  codec.Hex        `json:"publicKey"`
	PrivateKey codec.Hex        `json:"privateKey"`
}

func (k *keys) String() string {
	val := `
	Passphrase: %s
	KeyDerivation: %s

	Identifier: %s
	PublicKey: %s
	PrivateKey: %s
	`
	return fmt.Sprintf(val, k.Passphrase, k.KeyPath, k.Identifier, k.PublicKey, k.PrivateKey)
}

func getDefaultKeyPath(offset int) string {
	return fmt.Sprintf("m/44'/501'/%d'/0'", offset)
}

// keysFromPassphrase derives keys along the path for a bip39 mnemonic.
// Any other passphrase is hashed into the key seed.
func keysFromPassphrase(passphrase string, offset int) (*keys, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase cannot be empty")
	}
	result := &keys{Passphrase: passphrase}
	if crypto.ValidateMnemonic(passphrase) == nil {
		result.KeyPath = getDefaultKeyPath(offset)
		privateKey, err := crypto.DeriveEd25519Key(passphrase, result.KeyPath)
		if err != nil {
			return nil, err
		}
		result.PrivateKey = privateKey
	} else {
		_, privateKey, err := crypto.GetKeys(passphrase)
		if err != nil {
			return nil, err
		}
		result.PrivateKey = privateKey
	}
	publicKey, err := crypto.GetEdPublicKey(result.PrivateKey)
	if err != nil {
		return nil, err
	}
	result.PublicKey = publicKey
	result.Identifier, err = codec.NewIdentifier(publicKey)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func printKeys(c *cli.Context, result *keys) error {
	if c.Bool("json") {
		return printJSON(c, result)
	}
	return printLine(c, "%s", result)
}

func GetKeysCommand() *cli.Command {
	offsetFlag := &cli.IntFlag{
		Name:        "offset",
		Usage:       "Offset to use for key derivation",
		DefaultText: "0",
	}
	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Print in JSON format",
	}
	return &cli.Command{
		Name:  "keys",
		Usage: "Key related commands",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate a new mnemonic and its key pair",
				Flags: []cli.Flag{offsetFlag, jsonFlag},
				Action: func(c *cli.Context) error {
					passphrase, err := crypto.GenerateMnemonic()
					if err != nil {
						return err
					}
					result, err := keysFromPassphrase(passphrase, c.Int("offset"))
					if err != nil {
						return err
					}
					return printKeys(c, result)
				},
			},
			{
				Name:  "show",
				Usage: "show the key pair of a passphrase",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "passphrase",
						Usage:    "Mnemonic or plain passphrase",
						Required: true,
					},
					offsetFlag,
					jsonFlag,
				},
				Action: func(c *cli.Context) error {
					result, err := keysFromPassphrase(c.String("passphrase"), c.Int("offset"))
					if err != nil {
						return err
					}
					return printKeys(c, result)
				},
			},
			{
				Name:      "verify",
				Usage:     "verify an identifier",
				ArgsUsage: "<identifier>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return errors.New("must specify identifier to verify")
					}
					id, err := codec.ParseIdentifier(c.Args().First())
					if err != nil {
						return err
					}
					return printLine(c, "Identifier %s is valid (0x%s)", id, id.Hex())
				},
			},
		},
	}
}
