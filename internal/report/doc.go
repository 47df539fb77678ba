// Package report collects check failures and publishes them.
//
// An Aggregator records every (file, message) failure of a run. Each record
// is forwarded to an Annotator, which renders it either as GitHub workflow
// commands (GitHubAnnotator) or as console text (TextAnnotator). At the end
// of a run the aggregator's unique file list becomes the "fails" output, and
// a Report can serialize the whole run as JSON.
package report
