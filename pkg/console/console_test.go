package console

import (
	"strings"
	"testing"

	"github.com/mistenkt/Detox/pkg/configuration"
)

func TestFormatDiagnostic(t *testing.T) {
	ctx := configuration.Context{}.
		WithOriginPath("/x/.detoxrc.json").
		WithDocument(map[string]any{
			"configurations": map[string]any{"a": map[string]any{}, "b": map[string]any{}},
		}).
		WithSelectedConfiguration("c")

	rendered := FormatDiagnostic(ctx.NoConfigurationWithGivenName())

	if !strings.Contains(rendered, "error:") {
		t.Errorf("expected an error prefix:\n%s", rendered)
	}
	if !strings.Contains(rendered, `Failed to find a configuration named "c"`) {
		t.Errorf("expected the message:\n%s", rendered)
	}
	if !strings.Contains(rendered, "hint: ") || !strings.Contains(rendered, "* a\n* b") {
		t.Errorf("expected the hint with the enumeration:\n%s", rendered)
	}
	if strings.Contains(rendered, "debug info:") {
		t.Errorf("a diagnostic without debug info must not render a debug section:\n%s", rendered)
	}
}

func TestFormatDiagnosticWithDebugInfo(t *testing.T) {
	ctx := configuration.Context{}.
		WithDocument(map[string]any{
			"configurations": map[string]any{},
			"devices":        map[string]any{"sim": map[string]any{"type": "ios.simulator"}},
		})

	rendered := FormatDiagnostic(ctx.NoConfigurationsInside())

	if !strings.Contains(rendered, "debug info:") {
		t.Errorf("expected a debug section:\n%s", rendered)
	}
	if !strings.Contains(rendered, "configurations: null") {
		t.Errorf("expected the cleared configurations key:\n%s", rendered)
	}
	// Render depth 1: the devices entry shows up collapsed
	if !strings.Contains(rendered, "devices:") || !strings.Contains(rendered, "{...}") {
		t.Errorf("expected a collapsed devices entry:\n%s", rendered)
	}
}

func TestFormatDiagnosticWithoutHint(t *testing.T) {
	d := &configuration.Diagnostic{
		Kind:    configuration.KindInvalidSessionIDProperty,
		Message: "session.sessionId property should be a non-empty string",
	}

	rendered := FormatDiagnostic(d)
	if strings.Contains(rendered, "hint:") {
		t.Errorf("missing hint must not render a hint line:\n%s", rendered)
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		prefix string
	}{
		{"success", FormatSuccessMessage, "✓"},
		{"info", FormatInfoMessage, "ℹ"},
		{"warning", FormatWarningMessage, "⚠"},
		{"error", FormatErrorMessage, "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.format("hello")
			if !strings.Contains(got, tt.prefix) || !strings.Contains(got, "hello") {
				t.Errorf("unexpected output %q", got)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	rendered := RenderTable(TableConfig{
		Title:   "Configurations",
		Headers: []string{"Name", "Device"},
		Rows: [][]string{
			{"ios.debug", "simulator"},
			{"android.release", "emulator"},
		},
	})

	for _, want := range []string{"Configurations", "Name", "ios.debug", "emulator", "|"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}

	if RenderTable(TableConfig{}) != "" {
		t.Error("a table without headers renders nothing")
	}
}

func TestToRelativePath(t *testing.T) {
	if got := ToRelativePath("already/relative"); got != "already/relative" {
		t.Errorf("relative paths pass through, got %q", got)
	}
}
