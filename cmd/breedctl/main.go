// breedctl is a CLI to inspect and operate the NFT breeding program state.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/log"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "breedctl",
		Usage: "NFT breeding program tool",
		Commands: []*cli.Command{
			GetRecordCommand(),
			GetInstructionCommand(),
			GetKeysCommand(),
			GetAccountCommand(),
			GetTxCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.DefaultLogger.Errorf("Fail running application with %s", err)
		os.Exit(1)
	}
}
