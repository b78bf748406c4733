package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var friendSearch string

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage friends",
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the users you follow",
	RunE:  runFriendsList,
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsAdd,
}

var friendsRmCmd = &cobra.Command{
	Use:   "rm <user-id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsRm,
}

var friendsFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Search users to follow",
	RunE:  runFriendsFind,
}

var friendsFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the friend activity feed",
	RunE:  runFriendsFeed,
}

func init() {
	friendsFindCmd.Flags().StringVar(&friendSearch, "search", "", "filter by username or name")

	friendsCmd.AddCommand(friendsListCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsRmCmd)
	friendsCmd.AddCommand(friendsFindCmd)
	friendsCmd.AddCommand(friendsFeedCmd)
}

func runFriendsList(cmd *cobra.Command, args []string) error {
	c := newClient()
	friends, err := c.Friends(cmd.Context())
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		fmt.Println("Not following anyone yet")
		return nil
	}
	for _, friend := range friends {
		fmt.Printf("%s  %-16s %s (streak %d)\n", friend.ID, friend.Username, friend.Name, friend.CurrentStreak)
	}
	return nil
}

func runFriendsAdd(cmd *cobra.Command, args []string) error {
	c := newClient()
	if _, err := c.AddFriend(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Following")
	return nil
}

func runFriendsRm(cmd *cobra.Command, args []string) error {
	c := newClient()
	if err := c.RemoveFriend(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Unfollowed")
	return nil
}

func runFriendsFind(cmd *cobra.Command, args []string) error {
	c := newClient()
	users, err := c.AllUsers(cmd.Context(), friendSearch)
	if err != nil {
		return err
	}
	for _, user := range users {
		fmt.Printf("%s  %-16s %s\n", user.ID, user.Username, user.Name)
	}
	return nil
}

func runFriendsFeed(cmd *cobra.Command, args []string) error {
	c := newClient()
	updates, err := c.FriendUpdates(cmd.Context())
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		fmt.Println("No recent activity")
		return nil
	}
	for _, update := range updates {
		fmt.Printf("%s  %s %s\n", update.Timestamp.Format("2006-01-02 15:04"), update.FriendName, update.Activity)
	}
	return nil
}
