package main

import (
	"os"

	"github.com/spf13/cobra"
)

const appName = "repair-service"

var configPath string

var rootCmd = &cobra.Command{
	Use:          "repair",
	Short:        "Repairman portal API: job access gate, OTP and admin repairmen endpoints",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/repair.env", "env file loaded when APP_ENV is local")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
