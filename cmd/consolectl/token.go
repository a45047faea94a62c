package main

import (
	"errors" // Missing secret
	"fmt"    // Output
	"time"   // Token lifetime

	"community_admin/internal/utils" // JWT helpers

	"github.com/google/uuid" // User id argument
	"github.com/spf13/cobra" // CLI framework
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint an access token for local development",
	Long: `Mint an HS256 access token signed with JWT_SECRET, shaped like those of
the managed auth service. The user must have is_admin set to reach /admin routes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		token, err := utils.GenerateJWT(id, cfg.JWTSecret, tokenTTL) // sub = user id
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token) // Token only, for shell use
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
