package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/vishubh/bizbilling/app/client"
	"github.com/vishubh/bizbilling/app/configs"
	"github.com/vishubh/bizbilling/app/db/seeders"
	"github.com/vishubh/bizbilling/app/models/migrations"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Info().Msg("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load the demo catalog and a sample invoice",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Info().Msg("seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Info().Msg("key generation complete, copy the keys into .env")
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "Query the product search endpoint of a running server",
				ArgsUsage: "<keyword>",
				Action: func(ctx context.Context, c *cli.Command) error {
					keyword := c.Args().First()
					if keyword == "" {
						return fmt.Errorf("usage: search <keyword>")
					}

					search := client.NewProductSearch(configs.LoadENV.AppURL)
					products, err := search.Search(ctx, keyword)
					if err != nil {
						return err
					}
					if len(products) == 0 {
						fmt.Println("no products matched")
						return nil
					}
					for _, p := range products {
						fmt.Printf("%-20s %-12s %8s/%s  tax %s%%\n",
							p.Name, p.Category, p.PricePerUnit, p.Unit, p.TaxPercentage)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
