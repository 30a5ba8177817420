package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestError_WithContext(t *testing.T) {
	err := New(CategoryRender, SeverityWarning, "render failed").
		WithContext("document", "notes.yaml").
		WithContext("block", 3)

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["document"] != "notes.yaml" {
		t.Errorf("Context[document] = %v, want notes.yaml", err.Context["document"])
	}
	if err.Context["block"] != 3 {
		t.Errorf("Context[block] = %v, want 3", err.Context["block"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	renderErr := New(CategoryRender, SeverityError, "render error")
	wrapped := fmt.Errorf("outer: %w", renderErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match render category", configErr, CategoryRender, false},
		{"render error matches render category", renderErr, CategoryRender, true},
		{"wrapped error is still classified", wrapped, CategoryRender, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(New(CategoryTemplate, SeverityError, "x")); got != CategoryTemplate {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryTemplate)
	}
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryInternal)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/docfrag.yaml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/docfrag.yaml" {
			t.Errorf("Context[path] = %v, want /path/to/docfrag.yaml", err.Context["path"])
		}
	})

	t.Run("RenderFailed", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		err := RenderFailed("notes.yaml", cause)
		if err.Category != CategoryRender {
			t.Errorf("Category = %v, want %v", err.Category, CategoryRender)
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("DocumentInvalid", func(t *testing.T) {
		err := DocumentInvalid("notes.yaml", 2, "unknown block type")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["block"] != 2 {
			t.Errorf("Context[block] = %v, want 2", err.Context["block"])
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", fmt.Errorf("plain"), 1},
		{"validation", ValidationFailed("format", "unknown"), 2},
		{"config", ConfigNotFound("x.yaml"), 7},
		{"render", RenderFailed("doc", fmt.Errorf("x")), 11},
		{"filesystem", OutputError("out.md", fmt.Errorf("x")), 11},
		{"internal", InternalError("oops", fmt.Errorf("x")), 10},
		{"wrapped validation", fmt.Errorf("ctx: %w", ValidationFailed("f", "r")), 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := a.ExitCodeFor(test.err); got != test.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil))).WithWriter(&out)

	code := a.Handle(OutputError("out/notes.md", fmt.Errorf("permission denied")))
	if code != 11 {
		t.Errorf("Handle() = %d, want 11", code)
	}
	if got := out.String(); got != "filesystem: output write failed: permission denied\n" {
		t.Errorf("printed %q", got)
	}
	if !bytes.Contains(logs.Bytes(), []byte("path=out/notes.md")) {
		t.Errorf("expected context in log output, got %q", logs.String())
	}
}
