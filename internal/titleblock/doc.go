// Package titleblock extracts title block metadata from board and schematic
// files and validates it against a rules.RuleSet.
//
// # Formats
//
// Current-generation boards (.kicad_pcb) and schematics (.kicad_sch) are
// S-expression documents. Their title block looks like:
//
//	(page A4)              ; boards; schematics use (paper "A4")
//	(title_block
//	  (title "Power Board")
//	  (date "2024-03-01")
//	  (rev "3")
//	  (company "ACME")
//	  (comment 1 "Drawn: JD")
//	  (comment 3 "Checked"))
//
// Legacy schematics (.sch) are line oriented. The title block sits between a
// description header and its terminator:
//
//	$Descr A4 11693 8268
//	Title "Power Board"
//	Date "2024-03-01"
//	Rev "3"
//	Comp "ACME"
//	Comment1 "Drawn: JD"
//	$EndDescr
//
// # Results
//
// Checks never stop at the first problem. Every missing or mismatched field
// is added to a ValidationResult, one human-readable message per problem, so
// the caller can report each message against the file.
//
// # Package Structure
//
//   - types.go: Data (extracted title block) and ValidationResult
//   - extractor.go: S-expression extraction and comment normalization
//   - validator.go: rule checks for extracted Data
//   - legacy.go: line scanner for legacy schematics
package titleblock
