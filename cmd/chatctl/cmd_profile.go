package main

import (
	"fmt"
	"teammate-chat/domain/chat"
	"teammate-chat/infrastructure/storage"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var rawProfile storage.RawProfile

func init() {
	profilePutCmd.Flags().StringVar(&rawProfile.DisplayName, "display-name", "", "display name")
	profilePutCmd.Flags().StringVar(&rawProfile.FullName, "full-name", "", "full name, used when no display name is set")
	profilePutCmd.Flags().StringVar(&rawProfile.Username, "username", "", "username, used when no other name is set")
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profilePutCmd, profileGetCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage participant profiles",
}

var profilePutCmd = &cobra.Command{
	Use:   "put <participant>",
	Short: "Create or replace a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(true)
		if err != nil {
			return err
		}
		defer db.Close()

		rawProfile.ID = chat.ParticipantID(args[0])
		if err := storage.NewProfileRepository(db).PutProfile(rawProfile); err != nil {
			return fmt.Errorf("put profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.Green.Sprintf("Profile %s saved as %q", args[0], rawProfile.Normalize().DisplayName))
		return nil
	},
}

var profileGetCmd = &cobra.Command{
	Use:   "get <participant>",
	Short: "Print the display name of a participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		profile, err := storage.NewProfileRepository(db).GetProfile(chat.ParticipantID(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), profile.DisplayName)
		return nil
	},
}
