package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/titlecheck/internal/files/filesystem"
	"github.com/vvka-141/titlecheck/internal/rules"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective rules per document class",
	Long: `Rules loads the rule file, merges the "all" layer with the class layers
and prints the rules each document class is checked against, together with
any rule file warnings. No files are checked.

Examples:
  titlecheck rules
  titlecheck rules --config rules/titleblock.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

var (
	rulesSource sourceFlags
	rulesJSON   bool
)

func init() {
	rootCmd.AddCommand(rulesCmd)

	registerSourceFlags(rulesCmd, &rulesSource)
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Output the rules as JSON")
}

// classRules is the JSON shape of one class's effective rules.
type classRules struct {
	Enabled bool          `json:"enabled"`
	Rules   []rules.Entry `json:"rules"`
}

type rulesOutput struct {
	Config    string          `json:"config"`
	PCB       classRules      `json:"pcb"`
	Schematic classRules      `json:"schematic"`
	Warnings  []rules.Warning `json:"warnings"`
}

func runRules(cmd *cobra.Command, args []string) error {
	loadEnv()
	_, configFile, configPath, err := resolveSource(cmd, rulesSource)
	if err != nil {
		return err
	}
	return printRules(cmd.OutOrStdout(), filesystem.NewOSFileSystem(), configFile, configPath, rulesJSON)
}

func printRules(w io.Writer, fsProvider filesystem.FileSystemProvider, configFile, configPath string, asJSON bool) error {
	pcb, sch, warnings, err := loadRuleSets(fsProvider, configFile, configPath)
	if err != nil {
		return err
	}

	if asJSON {
		out := rulesOutput{
			Config:    configFile,
			PCB:       toClassRules(pcb),
			Schematic: toClassRules(sch),
			Warnings:  warnings,
		}
		if out.Warnings == nil {
			out.Warnings = []rules.Warning{}
		}
		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(w, "Rule file: %s\n\n", configFile)
	writeClassRules(w, titlecheck.ClassBoard, pcb)
	writeClassRules(w, titlecheck.ClassSchematic, sch)
	if len(warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range warnings {
			fmt.Fprintf(w, "  ! %s\n", warning.Message)
		}
	}
	return nil
}

func toClassRules(rs *rules.RuleSet) classRules {
	if rs == nil {
		return classRules{Rules: []rules.Entry{}}
	}
	entries := rs.Entries()
	if entries == nil {
		entries = []rules.Entry{}
	}
	return classRules{Enabled: true, Rules: entries}
}

func writeClassRules(w io.Writer, class titlecheck.DocumentClass, rs *rules.RuleSet) {
	if rs == nil {
		fmt.Fprintf(w, "%s: not checked\n\n", class)
		return
	}
	entries := rs.Entries()
	fmt.Fprintf(w, "%s (%d rules):\n", class, len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %-10s %s\n", e.Field, e.Pattern)
	}
	fmt.Fprintln(w)
}

// logRuleSet writes the effective rules of a class to the verbose log.
func logRuleSet(logger titlecheck.Logger, label string, rs *rules.RuleSet) {
	if rs == nil {
		logger.Info("%s files are not checked", label)
		return
	}
	logger.Info("Checking %s files for %d rules", label, len(rs.Entries()))
	logger.Verbose("%s rules merged from \"all\" and %q", label, rs.Class().LayerKey())
	for _, e := range rs.Entries() {
		logger.Verbose("  %s: %s", e.Field, e.Pattern)
	}
}
