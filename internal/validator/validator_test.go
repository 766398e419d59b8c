package validator

import (
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "error with file, field and value",
			i: Issue{
				Severity: SeverityError,
				File:     "addons/basic/manifest.json",
				Field:    "domain",
				Message:  "is required",
				Value:    "",
			},
			want: "error: addons/basic/manifest.json: field \"domain\": is required (got )",
		},
		{
			name: "warning without field",
			i: Issue{
				Severity: SeverityWarning,
				Message:  "compatibility unknown",
			},
			want: "warning: compatibility unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_HasErrorsAndWarnings(t *testing.T) {
	var nilResult *Result
	if nilResult.HasErrors() || nilResult.HasWarnings() {
		t.Error("nil result should report no issues")
	}

	r := &Result{}
	if r.HasErrors() {
		t.Error("empty result should have no errors")
	}

	r.AddWarning("f", "min_core_version", "not declared", nil)
	if r.HasErrors() {
		t.Error("warnings must not count as errors")
	}
	if !r.HasWarnings() {
		t.Error("HasWarnings should be true")
	}

	r.AddError("f", "domain", "invalid", "X")
	if !r.HasErrors() {
		t.Error("HasErrors should be true")
	}

	if len(r.Errors()) != 1 {
		t.Errorf("Errors() = %d, want 1", len(r.Errors()))
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %d, want 1", len(r.Warnings()))
	}
}
