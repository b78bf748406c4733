package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/habittrack/habittrack/internal/client"
)

// Global flag values.
var (
	flagServer string
	flagDate   string
)

// cliConfig holds the loaded CLI configuration. Set by PersistentPreRunE so
// all subcommands can use it.
var cliConfig *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "habitctl",
	Short: "habitctl is a terminal client for the habit tracking server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cliConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "server base URL (default: http://localhost:5000)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(habitsCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(friendsCmd)
}

// newClient builds an API client from the resolved server URL and the
// persisted identity.
func newClient() *client.Client {
	return client.New(resolveServerURL(), cliConfig.GetString(cfgKeyUserID))
}
