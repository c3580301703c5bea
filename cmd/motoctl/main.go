// Command motoctl - обслуживание портала из командной строки:
// миграции и перенос характеристик моделей через xlsx.
package main

import (
	"fmt"
	"os"

	"moto_portal/internal/app"
	"moto_portal/internal/config"
	"moto_portal/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "motoctl",
		Short:         "Maintenance commands for the moto portal backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: $CONFIG_PATH or config/config.yaml)")

	open := func() (*gorm.DB, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Init(cfg.Server.Env)
		return app.OpenDatabase(cfg)
	}

	root.AddCommand(newMigrateCmd(open))
	root.AddCommand(newSpecsCmd(open))
	return root
}

type dbOpener func() (*gorm.DB, error)

func newMigrateCmd(open dbOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			if err := app.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
