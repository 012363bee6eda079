package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/configs"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/db/seeders"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models/migrations"
	"github.com/urfave/cli/v3"
)

// RunCli dispatches the maintenance subcommands: migrate, seed, and
// generate-keys.
func RunCli(env configs.ENV) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logrus.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog and the default admin account",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					logrus.Info("seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintSessionKeys()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
