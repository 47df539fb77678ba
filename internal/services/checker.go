package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/titlecheck/internal/files/filesystem"
	"github.com/vvka-141/titlecheck/internal/kicad"
	"github.com/vvka-141/titlecheck/internal/report"
	"github.com/vvka-141/titlecheck/internal/rules"
	"github.com/vvka-141/titlecheck/internal/titleblock"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Progress lines emitted around the per-class loops.
const (
	GroupBoards        = "PCB Checks"
	GroupSchematics    = "Schematic Checks"
	NoBoardsMessage    = "No PCBs to Check"
	NoSchematicMessage = "No Schematics to Check"
	OpenErrorMessage   = "Error Opening File"
)

// Plan is the input of one check run.
type Plan struct {
	// Workspace is the directory bucket paths are relative to.
	Workspace string
	// Buckets are the files to check. A class with files must have rules.
	Buckets titlecheck.Buckets
	// Boards and Schematics are nil when the class is not checked.
	Boards     *rules.RuleSet
	Schematics *rules.RuleSet
}

// Result is the outcome of a check run.
type Result struct {
	Failures *report.Aggregator
	Checked  report.Counts
}

// CheckService runs title block checks over a Plan.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type CheckService struct {
	fs        filesystem.FileSystemProvider
	annotator report.Annotator
	logger    titlecheck.Logger
}

// NewCheckService creates a CheckService with all dependencies injected.
// Panics on nil dependencies.
func NewCheckService(fs filesystem.FileSystemProvider, annotator report.Annotator, logger titlecheck.Logger) *CheckService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if annotator == nil {
		panic("annotator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &CheckService{fs: fs, annotator: annotator, logger: logger}
}

// Run checks every file in plan and returns the collected failures.
//
// A file that cannot be read or parsed is recorded as a failure and the run
// continues with the next file. Run returns an error only for an invalid
// plan or a cancelled context.
func (s *CheckService) Run(ctx context.Context, plan Plan) (*Result, error) {
	b := plan.Buckets
	if len(b.Boards) > 0 && plan.Boards == nil {
		return nil, fmt.Errorf("%d PCB files queued without PCB rules", len(b.Boards))
	}
	if len(b.Schematics)+len(b.LegacySchematics) > 0 && plan.Schematics == nil {
		return nil, fmt.Errorf("%d schematic files queued without schematic rules", len(b.Schematics)+len(b.LegacySchematics))
	}

	res := &Result{Failures: report.NewAggregator(s.annotator)}

	if len(b.Boards) == 0 {
		s.annotator.Notice(NoBoardsMessage)
	} else {
		s.annotator.Group(GroupBoards)
		err := s.checkFiles(ctx, plan.Workspace, b.Boards, titlecheck.FormatBoard, plan.Boards, res)
		s.annotator.EndGroup()
		if err != nil {
			return nil, err
		}
	}

	if len(b.Schematics) == 0 && len(b.LegacySchematics) == 0 {
		s.annotator.Notice(NoSchematicMessage)
	} else {
		s.annotator.Group(GroupSchematics)
		err := s.checkFiles(ctx, plan.Workspace, b.Schematics, titlecheck.FormatSchematic, plan.Schematics, res)
		if err == nil {
			err = s.checkFiles(ctx, plan.Workspace, b.LegacySchematics, titlecheck.FormatLegacySchematic, plan.Schematics, res)
		}
		s.annotator.EndGroup()
		if err != nil {
			return nil, err
		}
	}

	s.logger.Verbose("Checked %d files, %d failing", res.Checked.Total(), len(res.Failures.Files()))
	return res, nil
}

func (s *CheckService) checkFiles(ctx context.Context, workspace string, paths []string, format titlecheck.Format, rs *rules.RuleSet, res *Result) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check cancelled before %s: %w", path, err)
		}
		s.annotator.Group(path)
		s.checkFile(workspace, path, format, rs, res.Failures)
		s.annotator.EndGroup()

		switch format {
		case titlecheck.FormatBoard:
			res.Checked.Boards++
		case titlecheck.FormatSchematic:
			res.Checked.Schematics++
		case titlecheck.FormatLegacySchematic:
			res.Checked.LegacySchematics++
		}
	}
	return nil
}

func (s *CheckService) checkFile(workspace, path string, format titlecheck.Format, rs *rules.RuleSet, agg *report.Aggregator) {
	s.logger.Verbose("Checking %s", path)

	content, err := s.fs.ReadFile(resolvePath(workspace, path))
	if err != nil {
		s.logger.Verbose("read %s: %v", path, err)
		agg.Record(path, OpenErrorMessage)
		return
	}

	if format == titlecheck.FormatLegacySchematic {
		s.recordResult(path, titleblock.CheckLegacy(content, rs), agg)
		return
	}

	var doc *kicad.Document
	if format == titlecheck.FormatBoard {
		doc, err = kicad.ParseBoard(content, path)
	} else {
		doc, err = kicad.ParseSchematic(content, path)
	}
	if err != nil {
		for _, msg := range parseMessages(err) {
			agg.Record(path, msg)
		}
		return
	}

	s.recordResult(path, titleblock.CheckDocument(doc, rs), agg)
}

func (s *CheckService) recordResult(path string, result titleblock.ValidationResult, agg *report.Aggregator) {
	if !result.HasErrors() {
		s.logger.Verbose("%s passed", path)
		return
	}
	s.logger.Verbose("%s failed: %s", path, result.ErrorString())
	agg.RecordAll(path, result.Errors)
}

func parseMessages(err error) []string {
	var pes kicad.ParseErrors
	if !errors.As(err, &pes) {
		return []string{fmt.Sprintf("Parse error: %v", err)}
	}
	msgs := make([]string, 0, len(pes))
	for _, pe := range pes {
		msgs = append(msgs, fmt.Sprintf("Parse error: %v", pe.Cause))
	}
	return msgs
}

func resolvePath(workspace, path string) string {
	if workspace == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, path)
}
