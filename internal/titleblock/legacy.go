package titleblock

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/vvka-141/titlecheck/internal/rules"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Legacy description markers.
const (
	DescrHeader     = "$Descr"
	DescrTerminator = "$EndDescr"
)

// legacyLabels maps rule fields to the labels legacy schematics use.
var legacyLabels = map[string]string{
	titlecheck.FieldTitle:    "Title",
	titlecheck.FieldCompany:  "Comp",
	titlecheck.FieldRev:      "Rev",
	titlecheck.FieldDate:     "Date",
	titlecheck.FieldComment1: "Comment1",
	titlecheck.FieldComment2: "Comment2",
	titlecheck.FieldComment3: "Comment3",
	titlecheck.FieldComment4: "Comment4",
}

// legacyLineRegex matches `<Label> "<value>"` at the start of a line, per field.
var legacyLineRegex = func() map[string]*regexp2.Regexp {
	m := make(map[string]*regexp2.Regexp, len(legacyLabels))
	for field, label := range legacyLabels {
		m[field] = regexp2.MustCompile(`^`+regexp2.Escape(label)+` "(.*)"`, regexp2.None)
	}
	return m
}()

// CheckLegacy scans a legacy schematic and validates its description block.
//
// Lines before the header are ignored. The header line carries the page
// size; it is checked at most once. Between header and terminator, each
// required field is resolved by its first matching line; later lines with
// the same label are ignored. Scanning stops at the first terminator, even
// one that precedes the header. Required
// fields never resolved, including pageSize when no header was seen, are
// reported as not found.
func CheckLegacy(content []byte, rs *rules.RuleSet) ValidationResult {
	result := NewValidationResult()

	var pending []string
	for _, field := range titlecheck.Fields {
		if field != titlecheck.FieldPageSize && rs.Requires(field) {
			pending = append(pending, field)
		}
	}
	wantSize, pageSizePending := rs.PageSize()
	resolved := make(map[string]bool, len(pending))
	inDescr := false

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if strings.Contains(line, DescrHeader) {
			inDescr = true
			if pageSizePending && !strings.Contains(line, wantSize) {
				result.AddError("Expected page size: %s, found: %s", wantSize, strings.TrimSpace(line))
			}
			pageSizePending = false
			continue
		}
		if strings.Contains(line, DescrTerminator) {
			break
		}
		if !inDescr {
			continue
		}

		for _, field := range pending {
			if resolved[field] {
				continue
			}
			m, err := legacyLineRegex[field].FindStringMatch(line)
			if err != nil || m == nil {
				continue
			}
			value := m.GroupByNumber(1).String()
			rule, _ := rs.Rule(field)
			if !rule.Match(value) {
				result.AddError("%s: \"%s\", does not match: \"%s\"", field, value, rule.Pattern)
			}
			resolved[field] = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		result.AddError("Error reading file: %v", err)
	}

	if pageSizePending {
		result.AddError("Field %s Not Found in Schematic", titlecheck.FieldPageSize)
	}
	for _, field := range pending {
		if !resolved[field] {
			result.AddError("Field %s Not Found in Schematic", field)
		}
	}

	return result
}
