package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
)

// RenderDebugInfo renders a focused debug projection as indented text,
// expanding collections only to the given depth. Nested structure past
// the depth limit collapses to a placeholder so deeply nested,
// irrelevant branches never flood the output. Maps render with sorted
// keys; a yaml.MapSlice renders in its given order, which is how
// diagnostics surface the offending entry first.
func RenderDebugInfo(value any, depth int) string {
	var output strings.Builder
	renderValue(&output, value, depth, 0)
	return strings.TrimRight(output.String(), "\n")
}

func renderValue(output *strings.Builder, value any, depth, indent int) {
	pad := strings.Repeat("  ", indent)

	switch v := value.(type) {
	case nil:
		output.WriteString(pad + "null\n")
	case string:
		fmt.Fprintf(output, "%s%q\n", pad, v)
	case yaml.MapSlice:
		if len(v) == 0 {
			output.WriteString(pad + "{}\n")
			return
		}
		if depth <= 0 {
			output.WriteString(pad + "{...}\n")
			return
		}
		for _, item := range v {
			renderEntry(output, fmt.Sprintf("%v", item.Key), item.Value, depth, indent)
		}
	case map[string]any:
		if len(v) == 0 {
			output.WriteString(pad + "{}\n")
			return
		}
		if depth <= 0 {
			output.WriteString(pad + "{...}\n")
			return
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			renderEntry(output, key, v[key], depth, indent)
		}
	case []any:
		if len(v) == 0 {
			output.WriteString(pad + "[]\n")
			return
		}
		if depth <= 0 {
			output.WriteString(pad + "[...]\n")
			return
		}
		for _, element := range v {
			switch element.(type) {
			case map[string]any, yaml.MapSlice, []any:
				output.WriteString(pad + "-\n")
				renderValue(output, element, depth-1, indent+1)
			default:
				output.WriteString(pad + "- ")
				renderScalar(output, element)
			}
		}
	default:
		fmt.Fprintf(output, "%s%v\n", pad, v)
	}
}

func renderEntry(output *strings.Builder, key string, value any, depth, indent int) {
	pad := strings.Repeat("  ", indent)
	switch value.(type) {
	case map[string]any, yaml.MapSlice, []any:
		output.WriteString(pad + key + ":\n")
		renderValue(output, value, depth-1, indent+1)
	case nil:
		output.WriteString(pad + key + ": null\n")
	default:
		output.WriteString(pad + key + ": ")
		renderScalar(output, value)
	}
}

func renderScalar(output *strings.Builder, value any) {
	if s, ok := value.(string); ok {
		fmt.Fprintf(output, "%q\n", s)
		return
	}
	fmt.Fprintf(output, "%v\n", value)
}

// dumper renders verbose value dumps with a bounded depth and stable
// key order.
var dumper = spew.ConfigState{
	Indent:   "  ",
	MaxDepth: 6,
	SortKeys: true,
}

// DumpValue renders any value for --verbose output.
func DumpValue(value any) string {
	return strings.TrimRight(dumper.Sdump(value), "\n")
}
