package main

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/state"
)

var kindFlag = &cli.StringFlag{
	Name:     "kind",
	Aliases:  []string{"k"},
	Usage:    "Record kind (platform, nft, child, breeding)",
	Required: true,
}

func GetRecordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "Encode and decode account records",
		Subcommands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode a hex encoded record",
				ArgsUsage: "<hex>",
				Flags:     []cli.Flag{kindFlag},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return errors.New("must specify the record in hex")
					}
					kind, err := state.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					data, err := codec.HexFromString(c.Args().First())
					if err != nil {
						return err
					}
					record, err := kind.Decode(data)
					if err != nil {
						return err
					}
					return printJSON(c, record)
				},
			},
			{
				Name:  "encode",
				Usage: "encode a JSON record into hex",
				Flags: []cli.Flag{
					kindFlag,
					&cli.StringFlag{
						Name:     "json",
						Usage:    "Record in JSON format",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					kind, err := state.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					record, err := kind.New()
					if err != nil {
						return err
					}
					if err := json.Unmarshal([]byte(c.String("json")), record); err != nil {
						return errors.Wrap(err, "invalid record JSON")
					}
					return printLine(c, "%s", codec.Hex(state.Bytes(record)))
				},
			},
			{
				Name:  "kinds",
				Usage: "list record kinds with their encoded length",
				Action: func(c *cli.Context) error {
					for _, kind := range state.Kinds() {
						if err := printLine(c, "%s\t%d", kind, kind.Len()); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}
