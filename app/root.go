// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iam-admin",
	Short: "iam-admin is a web-based front-end for an IAM user-management API",
	Long: `iam-admin is a web-based front-end for a role-based-access-control
user-management API. It provides login, registration, profile, and admin
screens for users, roles, and the audit log.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
