package main

import (
	"fmt"
	"teammate-chat/auth"
	"teammate-chat/domain/chat"

	"github.com/spf13/cobra"
)

var roles []string

func init() {
	tokenCmd.Flags().StringSliceVar(&roles, "role", nil, "role to embed, repeatable")
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token <participant>",
	Short: "Issue a bearer token signed with JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		token, err := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration).
			GenerateToken(chat.ParticipantID(args[0]), roles)
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
