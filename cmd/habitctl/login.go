package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as a user and persist the identity",
	Long: `Login resolves a username against the server and persists the
matching user id in the habitctl config file. Subsequent commands act as
that user.

Example:
  habitctl login sarah`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted identity",
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	c := newClient()
	users, err := c.AllUsers(cmd.Context(), username)
	if err != nil {
		return fmt.Errorf("search users: %w", err)
	}

	for _, user := range users {
		if user.Username == username {
			cliConfig.Set(cfgKeyUserID, user.ID)
			if errSave := saveConfig(cliConfig); errSave != nil {
				return errSave
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Name)
			return nil
		}
	}
	return fmt.Errorf("no user with username %q", username)
}

func runLogout(cmd *cobra.Command, args []string) error {
	cliConfig.Set(cfgKeyUserID, "")
	if errSave := saveConfig(cliConfig); errSave != nil {
		return errSave
	}
	fmt.Println("Logged out")
	return nil
}
