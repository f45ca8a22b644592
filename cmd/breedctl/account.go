package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/account"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/state"
)

type accountView struct {
	Key     codec.Identifier `json:"key"`
	Owner   codec.Identifier `json:"owner"`
	Balance codec.UInt64Str  `json:"balance"`
	Data    codec.Hex        `json:"data"`
	Record  state.Record     `json:"record,omitempty"`
}

// newAccountView decodes the data window as a record when its length matches exactly one kind.
func newAccountView(acct *account.Account) *accountView {
	view := &accountView{
		Key:     acct.Key,
		Owner:   acct.Owner,
		Balance: codec.UInt64Str(acct.Balance),
		Data:    acct.Data,
	}
	var matched []state.Kind
	for _, kind := range state.Kinds() {
		if kind.Len() == len(acct.Data) {
			matched = append(matched, kind)
		}
	}
	if len(matched) == 1 {
		if record, err := matched[0].Decode(acct.Data); err == nil {
			view.Record = record
		}
	}
	return view
}

func parseIdentifierArg(c *cli.Context) (codec.Identifier, error) {
	if c.Args().Len() != 1 {
		return codec.EmptyIdentifier, errors.New("must specify the account identifier")
	}
	return codec.ParseIdentifier(c.Args().First())
}

func GetAccountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage accounts in the local database",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "create an account with a zero filled data window",
				ArgsUsage: "[identifier]",
				Flags: []cli.Flag{
					configFlag,
					devFlag,
					&cli.StringFlag{
						Name:  "owner",
						Usage: "Owner identifier, defaults to the program",
					},
					&cli.Uint64Flag{
						Name:  "balance",
						Usage: "Initial balance",
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Record kind which decides the data length",
					},
					&cli.BoolFlag{
						Name:  "rent-exempt",
						Usage: "Set the balance to the rent exempt minimum when it is lower",
					},
				},
				Action: func(c *cli.Context) error {
					env, err := openEnvironment(c)
					if err != nil {
						return err
					}
					defer env.Close()

					key := codec.EmptyIdentifier
					if c.Args().Len() > 0 {
						key, err = parseIdentifierArg(c)
					} else {
						key, err = codec.NewIdentifier(crypto.RandomBytes(codec.IdentifierLength))
					}
					if err != nil {
						return err
					}
					owner, err := env.config.Program.ProgramIdentifier()
					if err != nil {
						return err
					}
					if c.String("owner") != "" {
						owner, err = codec.ParseIdentifier(c.String("owner"))
						if err != nil {
							return err
						}
					}
					dataLen := 0
					if c.String("kind") != "" {
						kind, err := state.ParseKind(c.String("kind"))
						if err != nil {
							return err
						}
						dataLen = kind.Len()
					}
					balance := c.Uint64("balance")
					if c.Bool("rent-exempt") {
						minimum, err := env.config.Rent.Rent().MinimumBalance(dataLen)
						if err != nil {
							return err
						}
						if balance < minimum {
							balance = minimum
						}
					}
					acct, err := env.store.Create(key, owner, balance, dataLen)
					if err != nil {
						return err
					}
					env.logger.Infof("Created account %s owned by %s", acct.Key, acct.Owner)
					return printJSON(c, newAccountView(acct))
				},
			},
			{
				Name:      "show",
				Usage:     "show an account",
				ArgsUsage: "<identifier>",
				Flags:     []cli.Flag{configFlag, devFlag},
				Action: func(c *cli.Context) error {
					key, err := parseIdentifierArg(c)
					if err != nil {
						return err
					}
					env, err := openEnvironment(c)
					if err != nil {
						return err
					}
					defer env.Close()
					acct, err := env.store.Get(key)
					if err != nil {
						return err
					}
					return printJSON(c, newAccountView(acct))
				},
			},
			{
				Name:  "list",
				Usage: "list accounts",
				Flags: []cli.Flag{
					configFlag,
					devFlag,
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of accounts, -1 for all",
						Value: -1,
					},
					&cli.BoolFlag{
						Name:  "keys-only",
						Usage: "Print account identifiers without decoding them",
					},
				},
				Action: func(c *cli.Context) error {
					env, err := openEnvironment(c)
					if err != nil {
						return err
					}
					defer env.Close()
					if c.Bool("keys-only") {
						keys, err := env.store.Keys(c.Int("limit"))
						if err != nil {
							return err
						}
						return printJSON(c, keys)
					}
					accounts, err := env.store.Iterate(c.Int("limit"))
					if err != nil {
						return err
					}
					views := make([]*accountView, len(accounts))
					for i, acct := range accounts {
						views[i] = newAccountView(acct)
					}
					return printJSON(c, views)
				},
			},
		},
	}
}
