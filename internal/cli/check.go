package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/titlecheck/internal/ci"
	"github.com/vvka-141/titlecheck/internal/files/filesystem"
	"github.com/vvka-141/titlecheck/internal/files/scanner"
	"github.com/vvka-141/titlecheck/internal/logging"
	"github.com/vvka-141/titlecheck/internal/report"
	"github.com/vvka-141/titlecheck/internal/services"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Progress lines of a check run.
const (
	setupGroup      = "Set Up"
	allPassedNotice = "All Checks Passed!"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check title blocks of changed (or all) KiCad files",
	Long: `Check loads the rule file, selects the files to check and validates the
title block of each one.

File selection:
  default      files changed by the triggering CI event, taken from
               "git diff --name-only -z" between the pull request base and head
               or the push's before and after commits; deleted files are skipped
  --check-all  every file in the workspace

Rule file (YAML):
  all:  rules for every document
  pcb:  rules for boards only (override "all")
  sch:  rules for schematics only (override "all")

Fields: pageSize, title, company, rev, date, comment1..comment4.
pageSize is a literal that must appear in the document's page size; every
other value is a regular expression matched from the start of the field.

Every flag falls back to the GitHub Actions input or variable named in its
help text, so the binary runs unchanged as an action entrypoint.

Examples:
  titlecheck check --check-all
  titlecheck check --config rules/titleblock.yaml --format text
  titlecheck check --check-all --json > report.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// checkFlagValues holds the flag values for the check command.
type checkFlagValues struct {
	source    sourceFlags
	eventPath string
	checkAll  bool
	format    string
	json      bool
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	registerCheckFlags(checkCmd, &checkFlags)
}

func registerCheckFlags(cmd *cobra.Command, flags *checkFlagValues) {
	registerSourceFlags(cmd, &flags.source)
	cmd.Flags().StringVar(&flags.eventPath, "event-path", "",
		fmt.Sprintf("CI event payload for changed-file mode (env: %s)", envEventPath))
	cmd.Flags().BoolVarP(&flags.checkAll, "check-all", "a", false,
		fmt.Sprintf("Check every file in the workspace instead of changed files (env: %s)", envCheckAll))
	cmd.Flags().StringVar(&flags.format, "format", formatAuto,
		"Annotation format: auto, github or text (auto picks github inside GitHub Actions)")
	cmd.Flags().BoolVar(&flags.json, "json", false,
		"Write a JSON report to stdout; annotations go to stderr")
}

// checkEnv holds the collaborators of a check run.
type checkEnv struct {
	fs        filesystem.FileSystemProvider
	scanner   titlecheck.FileScanner
	runner    ci.CommandRunner
	annotator report.Annotator
	logger    titlecheck.Logger
	stdout    io.Writer
}

func runCheck(cmd *cobra.Command, args []string) error {
	loadEnv()

	opts, err := resolveCheckOptions(cmd, checkFlags, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	annotations := io.Writer(os.Stdout)
	if opts.JSON {
		annotations = os.Stderr
	}
	fsProvider := filesystem.NewOSFileSystem()
	env := checkEnv{
		fs:        fsProvider,
		scanner:   scanner.NewScannerWithFS(fsProvider, logger),
		runner:    ci.ExecRunner{},
		annotator: newAnnotator(opts, annotations),
		logger:    logger,
		stdout:    os.Stdout,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return executeCheck(ctx, opts, env)
}

// resolveCheckOptions merges flags, environment and defaults.
func resolveCheckOptions(cmd *cobra.Command, flags checkFlagValues, verbose bool) (*checkOptions, error) {
	workspace, configFile, configPath, err := resolveSource(cmd, flags.source)
	if err != nil {
		return nil, err
	}

	format, err := resolveFormat(flags.format)
	if err != nil {
		return nil, err
	}

	checkAll := flags.checkAll
	if !cmd.Flags().Changed("check-all") {
		checkAll = parseCheckAll(os.Getenv(envCheckAll))
	}

	return &checkOptions{
		ConfigFile: configFile,
		ConfigPath: configPath,
		Workspace:  workspace,
		EventPath:  flagOrEnv(cmd, "event-path", flags.eventPath, envEventPath, ""),
		OutputPath: os.Getenv(envOutput),
		CheckAll:   checkAll,
		Format:     format,
		JSON:       flags.json,
		Verbose:    verbose,
	}, nil
}

// executeCheck runs setup, the checks and output publishing. Setup errors
// are annotated without a file and returned; check failures are returned
// as titlecheck.ErrChecksFailed after every file has been checked.
func executeCheck(ctx context.Context, opts *checkOptions, env checkEnv) error {
	env.annotator.Group(setupGroup)
	plan, err := prepareCheck(ctx, opts, env)
	env.annotator.EndGroup()
	if err != nil {
		env.annotator.Error("", err.Error())
		return err
	}

	svc := services.NewCheckService(env.fs, env.annotator, env.logger)
	res, err := svc.Run(ctx, *plan)
	if err != nil {
		env.annotator.Error("", err.Error())
		return err
	}

	if err := env.annotator.SetOutput(titlecheck.FailsOutputName, res.Failures.Summary()); err != nil {
		env.logger.Warn("Failed to publish %s output: %v", titlecheck.FailsOutputName, err)
	}

	if opts.JSON {
		if err := report.NewReport(res.Failures, res.Checked).Write(env.stdout); err != nil {
			return err
		}
	}

	if res.Failures.HasFailures() {
		return fmt.Errorf("%d of %d files failed: %w", len(res.Failures.Files()), res.Checked.Total(), titlecheck.ErrChecksFailed)
	}

	env.annotator.Notice(allPassedNotice)
	return nil
}

// prepareCheck loads the rules and selects the files to check.
func prepareCheck(ctx context.Context, opts *checkOptions, env checkEnv) (*services.Plan, error) {
	info, err := env.fs.Stat(opts.Workspace)
	if err != nil {
		return nil, fmt.Errorf("could not change to workspace %s: %w: %w", opts.Workspace, titlecheck.ErrWorkspace, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace %s is not a directory: %w", opts.Workspace, titlecheck.ErrWorkspace)
	}

	env.logger.Info("Input file from: %s", opts.ConfigFile)
	pcb, sch, warnings, err := loadRuleSets(env.fs, opts.ConfigFile, opts.ConfigPath)
	for _, w := range warnings {
		env.annotator.Warning(w.File, w.Message)
	}
	if err != nil {
		return nil, err
	}
	logRuleSet(env.logger, "PCB", pcb)
	logRuleSet(env.logger, "Schematic", sch)

	paths, err := selectFiles(ctx, opts, env)
	if err != nil {
		return nil, err
	}

	buckets := env.scanner.Partition(paths, titlecheck.ClassSet{Boards: pcb != nil, Schematics: sch != nil})
	env.logger.Info("Found %d PCBs, %d schematics and %d legacy schematics to check",
		len(buckets.Boards), len(buckets.Schematics), len(buckets.LegacySchematics))

	return &services.Plan{
		Workspace:  opts.Workspace,
		Buckets:    buckets,
		Boards:     pcb,
		Schematics: sch,
	}, nil
}

func selectFiles(ctx context.Context, opts *checkOptions, env checkEnv) ([]string, error) {
	if opts.CheckAll {
		env.logger.Info("Checking all files in Repo")
		paths, err := env.scanner.ScanWorkspace(opts.Workspace)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace %s: %w: %w", opts.Workspace, titlecheck.ErrWorkspace, err)
		}
		return paths, nil
	}

	env.logger.Info("Checking Changed Files")
	if opts.EventPath == "" {
		return nil, fmt.Errorf("no event payload: set %s or --event-path, or use --check-all: %w", envEventPath, titlecheck.ErrEventInvalid)
	}
	event, err := ci.ReadEvent(opts.EventPath)
	if err != nil {
		return nil, err
	}
	env.logger.Info("%s", event.Describe())

	diffRange, err := event.DiffRange()
	if err != nil {
		return nil, err
	}
	return ci.NewDiffer(env.runner, env.logger).ChangedFiles(ctx, opts.Workspace, diffRange)
}
