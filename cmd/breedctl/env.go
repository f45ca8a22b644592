package main

import (
	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/account"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/config"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/db"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/log"
)

var configFlag = &cli.StringFlag{
	Name:     "config",
	Aliases:  []string{"c"},
	Usage:    "Path to config (json, yaml or toml)",
	Required: true,
}

var devFlag = &cli.BoolFlag{
	Name:  "dev",
	Usage: "Log in development format at debug level instead of the configured logger",
}

// environment holds the resources opened from the config.
type environment struct {
	config   *config.Config
	logger   log.Logger
	database *db.DB
	store    *account.Store
}

func openEnvironment(c *cli.Context) (*environment, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(c, cfg)
	if err != nil {
		return nil, err
	}
	database, err := db.NewDB(cfg.System.DatabasePath())
	if err != nil {
		return nil, err
	}
	logger.Debugf("Opened database at %s", cfg.System.DatabasePath())
	return &environment{
		config:   cfg,
		logger:   logger,
		database: database,
		store:    account.NewStore(database),
	}, nil
}

func (e *environment) Close() error {
	err := e.database.Close()
	// syncing stderr fails on some terminals
	_ = e.logger.Sync()
	return err
}

func newLogger(c *cli.Context, cfg *config.Config) (log.Logger, error) {
	if c.Bool(devFlag.Name) {
		return log.NewDefaultDevelopmentLogger()
	}
	return log.NewLogger(cfg.System.LoggerConfig())
}
