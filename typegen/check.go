package typegen

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

const (
	generatedMarker = "// Code generated by auth0-codegen. DO NOT EDIT."
	sourcePrefix    = "// Source: "
	versionPrefix   = "// Source version: "

	// maxLineBytes caps a single line during comparison
	maxLineBytes = 16 << 20
)

// Header returns the comment lines that open every generated file
func Header(source, apiVersion string) []string {
	lines := []string{generatedMarker}
	if source != "" {
		lines = append(lines, sourcePrefix+source)
	}
	if apiVersion != "" {
		lines = append(lines, versionPrefix+apiVersion)
	}
	return lines
}

// DiffOp classifies one line of a comparison
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffLine is one line of a comparison, without its trailing newline
type DiffLine struct {
	Op   DiffOp
	Text string
}

// CheckResult holds the result of comparing generated output with a file
type CheckResult struct {
	Path     string
	UpToDate bool
	Missing  bool // existing file not found
	Added    int
	Removed  int
	Lines    []DiffLine
}

// Compare compares generated text with the file at existingPath. Source
// version lines are ignored since they change with every upstream release.
func Compare(generated, existingPath string) (*CheckResult, error) {
	result := &CheckResult{Path: existingPath}

	existing, err := os.ReadFile(existingPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read %s", existingPath)
		}
		result.Missing = true
	}

	before, err := filterMetadataLines(existing)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", existingPath)
	}
	after, err := filterMetadataLines([]byte(generated))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read generated output")
	}
	if before == after {
		result.UpToDate = !result.Missing
		return result, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		}
		for _, text := range splitLines(d.Text) {
			result.Lines = append(result.Lines, DiffLine{Op: op, Text: text})
			switch op {
			case DiffInsert:
				result.Added++
			case DiffDelete:
				result.Removed++
			}
		}
	}
	return result, nil
}

// Unified renders the changed lines with -/+ prefixes and up to context
// unchanged lines around each change.
func (r *CheckResult) Unified(context int) string {
	var sb strings.Builder
	keep := make([]bool, len(r.Lines))
	for i, l := range r.Lines {
		if l.Op == DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(r.Lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	skipped := false
	for i, l := range r.Lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			sb.WriteString("...\n")
			skipped = false
		}
		switch l.Op {
		case DiffInsert:
			sb.WriteString("+")
		case DiffDelete:
			sb.WriteString("-")
		default:
			sb.WriteString(" ")
		}
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// filterMetadataLines drops "// Source version:" lines.
func filterMetadataLines(content []byte) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(nil, maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), versionPrefix) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "failed to scan lines")
	}
	return result.String(), nil
}
