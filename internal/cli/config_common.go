package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/vvka-141/titlecheck/internal/config"
	"github.com/vvka-141/titlecheck/internal/report"
	"github.com/vvka-141/titlecheck/internal/rules"
	"github.com/vvka-141/titlecheck/internal/tui"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Environment variables read as flag fallbacks. The INPUT_ names are how
// GitHub Actions passes action inputs.
const (
	envConfigFile = "INPUT_CONFIG_FILE"
	envCheckAll   = "INPUT_CHECK_ALL"
	envWorkspace  = "GITHUB_WORKSPACE"
	envEventPath  = "GITHUB_EVENT_PATH"
	envOutput     = "GITHUB_OUTPUT"
	envActions    = "GITHUB_ACTIONS"
)

// Output formats accepted by --format.
const (
	formatAuto   = "auto"
	formatGitHub = "github"
	formatText   = "text"
)

// sourceFlags holds the flags shared by commands that read the rule file.
type sourceFlags struct {
	configFile string
	workspace  string
}

// checkOptions is the fully resolved input of a check run.
type checkOptions struct {
	// ConfigFile is the rule file path as given, used to annotate warnings.
	ConfigFile string
	// ConfigPath is ConfigFile resolved against the workspace.
	ConfigPath string
	Workspace  string
	EventPath  string
	OutputPath string
	CheckAll   bool
	Format     string
	JSON       bool
	Verbose    bool
}

func registerSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "",
		fmt.Sprintf("Rule file path, relative to the workspace (env: %s, default: %s)", envConfigFile, titlecheck.DefaultConfigFile))
	cmd.Flags().StringVarP(&flags.workspace, "workspace", "w", "",
		fmt.Sprintf("Repository root to check (env: %s, default: current directory)", envWorkspace))
}

// loadEnv loads a .env file from the working directory. Variables already
// set in the environment win.
func loadEnv() {
	_ = godotenv.Load()
}

// flagOrEnv returns the flag value if it was set on the command line, then
// the environment variable if non-empty, then def.
func flagOrEnv(cmd *cobra.Command, flag, value, envKey, def string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return def
}

// resolveSource resolves the workspace and rule file locations.
func resolveSource(cmd *cobra.Command, flags sourceFlags) (workspace, configFile, configPath string, err error) {
	workspace = flagOrEnv(cmd, "workspace", flags.workspace, envWorkspace, ".")
	workspace, err = filepath.Abs(workspace)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to resolve workspace %s: %w: %w", workspace, titlecheck.ErrWorkspace, err)
	}

	configFile = flagOrEnv(cmd, "config", flags.configFile, envConfigFile, titlecheck.DefaultConfigFile)
	configPath = configFile
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(workspace, configPath)
	}
	return workspace, configFile, configPath, nil
}

// parseCheckAll interprets INPUT_CHECK_ALL. Anything but "false" enables
// check-all mode; an unset value leaves it off.
func parseCheckAll(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && !strings.EqualFold(raw, "false")
}

func resolveFormat(raw string) (string, error) {
	switch raw {
	case formatGitHub, formatText:
		return raw, nil
	case "", formatAuto:
		if os.Getenv(envActions) == "true" {
			return formatGitHub, nil
		}
		return formatText, nil
	default:
		return "", fmt.Errorf("invalid argument %q for \"--format\" flag: want %s, %s or %s", raw, formatAuto, formatGitHub, formatText)
	}
}

// newAnnotator builds the annotation sink for opts writing to w.
func newAnnotator(opts *checkOptions, w io.Writer) report.Annotator {
	if opts.Format == formatGitHub {
		return report.NewGitHubAnnotator(w, opts.OutputPath)
	}
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = tui.IsStyled(f)
	}
	return report.NewTextAnnotator(w, styled)
}

// loadRuleSets reads the rule file and builds the rule set of both classes.
// A nil rule set means the class is not checked.
func loadRuleSets(r config.FileReader, configFile, configPath string) (pcb, sch *rules.RuleSet, warnings []rules.Warning, err error) {
	ruleFile, err := config.Load(r, configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", titlecheck.ErrInvalidConfig, err)
	}
	ruleFile.Path = configFile

	pcb, pcbWarnings, pcbErr := rules.Build(ruleFile, titlecheck.ClassBoard)
	sch, schWarnings, schErr := rules.Build(ruleFile, titlecheck.ClassSchematic)
	warnings = append(pcbWarnings, schWarnings...)
	if err := multierr.Combine(pcbErr, schErr); err != nil {
		return nil, nil, warnings, err
	}
	return pcb, sch, warnings, nil
}
