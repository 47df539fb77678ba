package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceFailureIdentity is the UUID v5 namespace for failure identifiers.
var NamespaceFailureIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("titlecheck/failure-identity/v1"))

// FailureID returns a deterministic identifier for a failure so the same
// problem in the same file keeps its ID across runs.
func FailureID(file, message string) uuid.UUID {
	normalized := strings.ToLower(filepath.ToSlash(file))
	return uuid.NewSHA1(NamespaceFailureIdentity, []byte(normalized+"\x00"+message))
}

// Counts is the number of files checked per bucket.
type Counts struct {
	Boards           int `json:"boards"`
	Schematics       int `json:"schematics"`
	LegacySchematics int `json:"legacy_schematics"`
}

// Total returns the number of files checked.
func (c Counts) Total() int {
	return c.Boards + c.Schematics + c.LegacySchematics
}

// ReportFailure is a FailureRecord with its stable identifier.
type ReportFailure struct {
	ID uuid.UUID `json:"id"`
	FailureRecord
}

// Report is the machine-readable outcome of a run.
type Report struct {
	RunID        uuid.UUID       `json:"run_id"`
	Passed       bool            `json:"passed"`
	Checked      Counts          `json:"checked"`
	FailingFiles []string        `json:"failing_files"`
	Failures     []ReportFailure `json:"failures"`
}

// NewReport snapshots agg into a report with a fresh run ID.
func NewReport(agg *Aggregator, checked Counts) *Report {
	records := agg.Records()
	failures := make([]ReportFailure, 0, len(records))
	for _, r := range records {
		failures = append(failures, ReportFailure{ID: FailureID(r.File, r.Message), FailureRecord: r})
	}
	return &Report{
		RunID:        uuid.New(),
		Passed:       len(records) == 0,
		Checked:      checked,
		FailingFiles: agg.Files(),
		Failures:     failures,
	}
}

// Write writes the report as indented JSON followed by a newline.
func (r *Report) Write(w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
