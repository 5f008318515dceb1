// Command holocron serves the catalog and favorites API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"holocron/internal/domain/lifecycle"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/gormdb"
	"holocron/internal/infra/persistence/seed"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "holocron",
		Short: "Users, characters, planets and favorites over a JSON API",
		Long: `holocron serves a small catalog of users, characters and planets and lets
users keep a list of favorite characters and planets.

Running it without a subcommand starts the HTTP server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			Args:  cobra.NoArgs,
			RunE:  runMigrate,
		},
		newSeedCommand(),
	)

	return rootCmd
}

func runServe(_ *cobra.Command, _ []string) error {
	app := fx.New(
		storeModule(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(startServer),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	app.Run()

	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	return runOnce(cmd.Context(), fx.Invoke(func(db *gorm.DB) error {
		return gormdb.Migrate(db.WithContext(cmd.Context()))
	}))
}

func newSeedCommand() *cobra.Command {
	var fixturePath string

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, characters and planets from a YAML fixture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixtures, err := seed.LoadFile(fixturePath)
			if err != nil {
				return err
			}

			return runOnce(cmd.Context(),
				injectService(),
				fx.Invoke(func(db *gorm.DB, seeder *seed.Seeder) error {
					if err := gormdb.Migrate(db.WithContext(cmd.Context())); err != nil {
						return err
					}

					result, err := seeder.Seed(cmd.Context(), fixtures)
					if err != nil {
						return err
					}

					cmd.Printf("seeded %d users, %d characters, %d planets\n", result.Users, result.Characters, result.Planets)

					return nil
				}),
			)
		},
	}

	seedCmd.Flags().StringVarP(&fixturePath, "file", "f", "config/fixtures.yaml", "fixture file to load")

	return seedCmd
}

// runOnce starts the store module with the given options, which do their
// work in fx.Invoke, then stops it again.
func runOnce(ctx context.Context, opts ...fx.Option) error {
	app := fx.New(append([]fx.Option{storeModule()}, opts...)...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer stopCancel()

	return errors.WithStack(app.Stop(stopCtx))
}
