package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/instruction"
)

type decodedInstruction struct {
	Tag       instruction.Tag `json:"tag"`
	Operation string          `json:"operation"`
	Amount    codec.UInt64Str `json:"amount"`
}

func GetInstructionCommand() *cli.Command {
	return &cli.Command{
		Name:  "instruction",
		Usage: "Encode and decode program instructions",
		Subcommands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode a hex encoded instruction",
				ArgsUsage: "<hex>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return errors.New("must specify the instruction in hex")
					}
					data, err := codec.HexFromString(c.Args().First())
					if err != nil {
						return err
					}
					op, err := instruction.Decode(data)
					if err != nil {
						return err
					}
					return printJSON(c, &decodedInstruction{
						Tag:       op.Tag(),
						Operation: op.Name(),
						Amount:    codec.UInt64Str(op.Amount()),
					})
				},
			},
			{
				Name:  "encode",
				Usage: "encode an instruction into hex",
				Flags: opFlags(),
				Action: func(c *cli.Context) error {
					op, err := opFromFlags(c)
					if err != nil {
						return err
					}
					return printLine(c, "%s", codec.Hex(instruction.Encode(op)))
				},
			},
		},
	}
}

func opFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "op",
			Usage:    "Operation name (updatePlatformFee, initBreed)",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "Fee or payment amount",
			Required: true,
		},
	}
}

func opFromFlags(c *cli.Context) (instruction.Operation, error) {
	tag, err := instruction.ParseTag(c.String("op"))
	if err != nil {
		return nil, err
	}
	return instruction.New(tag, c.Uint64("amount"))
}
