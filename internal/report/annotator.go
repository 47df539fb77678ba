package report

// Annotator renders run output for a CI system or a terminal.
//
// An empty file in Error or Warning means the message is not tied to a
// file, e.g. a setup error.
type Annotator interface {
	// Group opens a collapsible log section.
	Group(name string)
	// EndGroup closes the section opened by the last Group.
	EndGroup()
	// Error annotates file with a failure message.
	Error(file, message string)
	// Warning annotates file with a non-fatal message.
	Warning(file, message string)
	// Notice prints an informational line.
	Notice(message string)
	// SetOutput publishes a named output value of the run.
	SetOutput(name, value string) error
}
