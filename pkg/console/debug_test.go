package console

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestRenderDebugInfoDepthLimit(t *testing.T) {
	value := map[string]any{
		"configurations": map[string]any{
			"ios.debug": map[string]any{
				"device": map[string]any{"type": "iPhone 15"},
			},
		},
	}

	tests := []struct {
		name        string
		depth       int
		contains    []string
		notContains []string
	}{
		{
			name:        "depth 1 collapses nested entries",
			depth:       1,
			contains:    []string{"configurations:", "{...}"},
			notContains: []string{"ios.debug:", "iPhone 15"},
		},
		{
			name:        "depth 2 shows entries but collapses their contents",
			depth:       2,
			contains:    []string{"ios.debug:", "{...}"},
			notContains: []string{"iPhone 15"},
		},
		{
			name:     "depth 4 shows everything",
			depth:    4,
			contains: []string{"ios.debug:", "device:", `type: "iPhone 15"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := RenderDebugInfo(value, tt.depth)
			for _, want := range tt.contains {
				if !strings.Contains(rendered, want) {
					t.Errorf("rendered output missing %q:\n%s", want, rendered)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(rendered, unwanted) {
					t.Errorf("rendered output should not contain %q:\n%s", unwanted, rendered)
				}
			}
		})
	}
}

func TestRenderDebugInfoPreservesMapSliceOrder(t *testing.T) {
	value := yaml.MapSlice{
		{Key: "zebra", Value: 1},
		{Key: "alpha", Value: 2},
	}

	rendered := RenderDebugInfo(value, 2)
	if strings.Index(rendered, "zebra") > strings.Index(rendered, "alpha") {
		t.Errorf("MapSlice order must be preserved:\n%s", rendered)
	}
}

func TestRenderDebugInfoSortsMapKeys(t *testing.T) {
	value := map[string]any{"b": 1, "a": 2, "c": 3}

	rendered := RenderDebugInfo(value, 1)
	if !strings.Contains(rendered, "a: 2\nb: 1\nc: 3") {
		t.Errorf("map keys must render sorted:\n%s", rendered)
	}
}

func TestRenderDebugInfoScalarsAndNil(t *testing.T) {
	if got := RenderDebugInfo("unexpected token", 1); got != `"unexpected token"` {
		t.Errorf("string debug info should render quoted, got %q", got)
	}
	if got := RenderDebugInfo(map[string]any{"configurations": nil}, 1); !strings.Contains(got, "configurations: null") {
		t.Errorf("cleared keys should render as null, got %q", got)
	}
}

func TestRenderDebugInfoSequences(t *testing.T) {
	value := map[string]any{
		"args": []any{"one", 2, map[string]any{"three": 3}},
	}

	rendered := RenderDebugInfo(value, 3)
	for _, want := range []string{`- "one"`, "- 2", "three: 3"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered output missing %q:\n%s", want, rendered)
		}
	}

	collapsed := RenderDebugInfo(value, 1)
	if !strings.Contains(collapsed, "[...]") {
		t.Errorf("sequences past the depth limit should collapse:\n%s", collapsed)
	}
}

func TestDumpValue(t *testing.T) {
	dumped := DumpValue(map[string]any{"key": "value"})
	if !strings.Contains(dumped, "key") || !strings.Contains(dumped, "value") {
		t.Errorf("dump should include keys and values, got %q", dumped)
	}
}
