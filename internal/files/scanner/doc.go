// Package scanner resolves the set of files a run should check.
//
// The scanner is responsible for:
//   - Recursively listing files under the workspace (check-all mode)
//   - Partitioning a path list by extension into board, schematic and
//     legacy schematic buckets, dropping files of disabled classes and
//     files with unrecognized extensions
//
// It works through filesystem.FileSystemProvider so tests can run against
// an in-memory tree.
package scanner
