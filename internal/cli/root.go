package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "titlecheck",
	Short: "Check KiCad title blocks against YAML rules",
	Long: `titlecheck validates the title block metadata of KiCad boards (.kicad_pcb),
schematics (.kicad_sch) and legacy schematics (.sch) against the regular
expressions in a YAML rule file, and reports every mismatch against the file
it was found in.

It is built to run as a CI gate: failures are emitted as GitHub workflow
annotations, the list of failing files is published as the "fails" output,
and the exit status tells the pipeline whether to block the change.

Exit Codes:
  0  - Success (all checks passed)
  1  - At least one title block check failed
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Rule file missing, unparsable or holding invalid patterns
  11 - CI event payload unreadable or unsupported
  12 - Workspace or git diff failure`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
