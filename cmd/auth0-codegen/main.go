package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcountryman/auth0-management-codegen/cmd/auth0-codegen/commands"
	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "auth0-codegen",
	Short: "Generate Rust bindings for the Auth0 Management API",
	Long: `auth0-codegen - Generate Rust bindings for the Auth0 Management API.

Fetches the Swagger 1.x description of the Management API, builds one Rust
module per resource with a struct per model and a stub function per
operation, and writes the rendered source to a single file.

Available commands:
  generate  - Fetch descriptions and write the generated source
  check     - Fail if the generated source on disk is out of date
  config    - Show or create configuration
  version   - Show version information

Examples:
  auth0-codegen generate                      # Write auth0-management/src/api.rs
  auth0-codegen generate -o -                 # Print to stdout
  auth0-codegen generate --manifest docs.json # Use local descriptions
  auth0-codegen check -v                      # Verify committed output`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: search for codegen.toml)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil && logger.JSONOutput {
		logger.Errorw("command failed", logger.FieldError, err.Error())
	}
	logger.Cleanup()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
