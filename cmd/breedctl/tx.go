package main

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/instruction"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/policy"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/processor"
)

var processorMetrics = processor.NewMetrics(prometheus.DefaultRegisterer)

func parseAccounts(list string) ([]codec.Identifier, error) {
	var result []codec.Identifier
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, err := codec.ParseIdentifier(item)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}

func GetTxCommand() *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "Transaction related commands",
		Subcommands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "sign an instruction and apply it to the local database",
				Flags: append(opFlags(),
					configFlag,
					devFlag,
					&cli.StringFlag{
						Name:     "passphrase",
						Usage:    "Mnemonic or plain passphrase of the signer",
						Required: true,
					},
					&cli.IntFlag{
						Name:        "offset",
						Usage:       "Offset to use for key derivation",
						DefaultText: "0",
					},
					&cli.StringFlag{
						Name:     "accounts",
						Usage:    "Comma separated account identifiers following the signer",
						Required: true,
					},
				),
				Action: func(c *cli.Context) error {
					signer, err := keysFromPassphrase(c.String("passphrase"), c.Int("offset"))
					if err != nil {
						return err
					}
					op, err := opFromFlags(c)
					if err != nil {
						return err
					}
					accounts, err := parseAccounts(c.String("accounts"))
					if err != nil {
						return err
					}
					if len(accounts) == 0 || accounts[0] != signer.Identifier {
						accounts = append([]codec.Identifier{signer.Identifier}, accounts...)
					}

					env, err := openEnvironment(c)
					if err != nil {
						return err
					}
					defer env.Close()

					programID, err := env.config.Program.ProgramIdentifier()
					if err != nil {
						return err
					}
					authority, err := env.config.Program.AuthorityIdentifier()
					if err != nil {
						return err
					}
					p := processor.New(
						env.store,
						policy.New(programID, authority, env.config.Rent.Rent()),
						processor.BreedingRules{
							CooldownSeconds: env.config.Breeding.GetCooldownSeconds(),
							MaxBreedCount:   env.config.Breeding.MaxBreedCount,
						},
						env.logger.With("module", "processor"),
						processor.WithMetrics(processorMetrics),
					)

					tx := &processor.Transaction{
						Signer:   signer.Identifier,
						Accounts: accounts,
						Data:     instruction.Encode(op),
					}
					if err := tx.Sign(signer.PrivateKey); err != nil {
						return err
					}
					if err := p.Process(c.Context, tx); err != nil {
						return err
					}
					return printLine(c, "Applied %s with id %s", op.Name(), tx.ID())
				},
			},
		},
	}
}
