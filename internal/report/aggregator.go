package report

import (
	"strings"
	"sync"
)

// SummarySeparator joins failing file paths in Summary.
const SummarySeparator = ","

// FailureRecord is a single failure reported against a file.
type FailureRecord struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Aggregator accumulates failures for one run. It only grows: records are
// never removed. It is safe for concurrent use.
type Aggregator struct {
	mu      sync.Mutex
	records []FailureRecord
	files   []string
	seen    map[string]struct{}
	sink    Annotator
}

// NewAggregator creates an aggregator that forwards each record to sink as
// an error annotation. sink may be nil.
func NewAggregator(sink Annotator) *Aggregator {
	return &Aggregator{
		seen: make(map[string]struct{}),
		sink: sink,
	}
}

// Record appends a failure. The file joins the unique file list on its
// first failure only.
func (a *Aggregator) Record(file, message string) {
	a.mu.Lock()
	a.records = append(a.records, FailureRecord{File: file, Message: message})
	if _, ok := a.seen[file]; !ok {
		a.seen[file] = struct{}{}
		a.files = append(a.files, file)
	}
	a.mu.Unlock()

	if a.sink != nil {
		a.sink.Error(file, message)
	}
}

// RecordAll records every message against file.
func (a *Aggregator) RecordAll(file string, messages []string) {
	for _, msg := range messages {
		a.Record(file, msg)
	}
}

// HasFailures returns true if at least one failure was recorded.
func (a *Aggregator) HasFailures() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records) > 0
}

// Files returns the unique failing file paths in first-seen order.
func (a *Aggregator) Files() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.files))
	copy(out, a.files)
	return out
}

// Records returns every failure in the order recorded.
func (a *Aggregator) Records() []FailureRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]FailureRecord, len(a.records))
	copy(out, a.records)
	return out
}

// Summary returns the unique failing file paths joined by SummarySeparator.
func (a *Aggregator) Summary() string {
	return strings.Join(a.Files(), SummarySeparator)
}
