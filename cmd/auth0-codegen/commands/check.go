package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcountryman/auth0-management-codegen/config"
	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/typegen"
)

// CheckCmd compares freshly generated source with the file on disk
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generated source on disk is up to date",
	Long: `Generate into memory and compare with output.path, ignoring the
"// Source version:" header line. Exits non-zero and prints a diff when the
file is missing or differs.

Examples:
  auth0-codegen check
  auth0-codegen check --context 5`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringP("output", "o", "", "File to compare (default: output.path)")
	CheckCmd.Flags().String("manifest", "", "Local resource listing (default: source.manifest)")
	CheckCmd.Flags().Int("context", 3, "Unchanged lines shown around each change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applySourceFlags(cmd, cfg)

	if cfg.Output.Path == config.Stdout {
		return errors.WithHint(
			errors.NewInvalidConfigError("check needs a file, output.path is stdout"),
			"pass --output <file>",
		)
	}

	out, err := runPipeline(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := typegen.Compare(out.Text, cfg.Output.Path)
	if err != nil {
		return err
	}
	if result.UpToDate {
		pterm.Success.Printf("%s is up to date\n", cfg.Output.Path)
		return nil
	}

	context, _ := cmd.Flags().GetInt("context")
	printDiff(cmd, result, context)

	err = errors.Newf("%s is out of date (+%d -%d)", cfg.Output.Path, result.Added, result.Removed)
	if result.Missing {
		err = errors.Newf("%s does not exist", cfg.Output.Path)
	}
	err = errors.WithHint(err, "run 'auth0-codegen generate' and commit the result")
	return errors.Mark(err, errors.ErrOutOfDate)
}

func printDiff(cmd *cobra.Command, result *typegen.CheckResult, context int) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "--- %s\n+++ generated\n", result.Path)
	for _, line := range strings.Split(strings.TrimSuffix(result.Unified(context), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, pterm.Green(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, pterm.Red(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
