package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/fanexid/addonlint/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatGitHub produces GitHub Actions workflow command annotations.
	FormatGitHub Format = "github"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	case FormatGitHub:
		return r.reportGitHub(result)
	default:
		return r.reportText(result)
	}
}

// reportJSON writes the result as JSON.
func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

// reportText writes the result as human-readable text.
func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed (%d manifest(s) checked)", result.FilesChecked))
		if len(warnings) > 0 {
			fmt.Fprintln(r.out)
			fmt.Fprintf(r.out, "%s:\n", color.YellowString("Warnings"))
			for _, warn := range warnings {
				r.printIssue(warn, color.FgYellow)
			}
		}
		return nil
	}

	summary := []string{color.RedString("%d error(s)", len(errs))}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "Validation failed (%d manifest(s) checked): %s\n\n",
		result.FilesChecked, strings.Join(summary, ", "))

	fmt.Fprintln(r.out, "Errors:")
	for _, err := range errs {
		r.printIssue(err, color.FgRed)
	}
	fmt.Fprintln(r.out)

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, warn := range warnings {
			r.printIssue(warn, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

// reportGitHub writes the result as GitHub Actions workflow commands, one
// annotation per issue, followed by a plain summary line.
func (r *Reporter) reportGitHub(result *Result) error {
	for _, i := range result.Issues {
		var cmd string
		switch i.Severity {
		case SeverityError:
			cmd = "error"
		case SeverityWarning:
			cmd = "warning"
		default:
			cmd = "notice"
		}

		msg := i.Message
		if i.Field != "" {
			msg = i.Field + ": " + msg
		}
		if i.Value != nil {
			msg = fmt.Sprintf("%s (got %v)", msg, i.Value)
		}

		if i.File != "" {
			fmt.Fprintf(r.out, "::%s file=%s::%s\n", cmd, i.File, msg)
		} else {
			fmt.Fprintf(r.out, "::%s::%s\n", cmd, msg)
		}
	}

	fmt.Fprintf(r.out, "Checked %d manifest(s): %d error(s), %d warning(s)\n",
		result.FilesChecked, len(result.Errors()), len(result.Warnings()))
	return nil
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	// Format:  • file: [field] message (context)

	var sb strings.Builder
	sb.WriteString("  • ")

	if i.File != "" {
		sb.WriteString(i.File)
		sb.WriteString(": ")
	}

	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}

	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		var ctxParts []string
		for k, v := range i.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%s", k, v))
		}
		// Sort for deterministic output
		sort.Strings(ctxParts)

		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", strings.Join(ctxParts, ", ")))
	}

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		// Truncate long values
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}
