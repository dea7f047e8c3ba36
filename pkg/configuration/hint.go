package configuration

import (
	"fmt"
	"strings"
)

// Hint rendering. Hints are plain text with stable, literal formatting;
// styling is the consumer's job.

// enumerateNames renders the keys of a dictionary one per line as
// "* <name>", sorted for stable output. An empty dictionary renders as
// an empty enumeration.
func enumerateNames(dictionary map[string]any) string {
	var lines []string
	for _, name := range sortedKeys(dictionary) {
		lines = append(lines, "* "+name)
	}
	return strings.Join(lines, "\n")
}

// atPath appends "at path:" plus the origin path to a sentence, or
// nothing when the origin is unknown.
func (c Context) atPath() string {
	if c.originPath == "" {
		return ""
	}
	return " at path:\n" + c.originPath
}

// deviceDictionaryExample renders an illustrative devices dictionary
// for a config that has none, keyed by the alias the user referenced.
func deviceDictionaryExample(alias string) string {
	return fmt.Sprintf(`{
  "devices": {
    %q: {
      "type": "ios.simulator",
      "device": { "type": "iPhone 15" }
    }
  }
}`, alias)
}

// deviceMatcherExamples renders one example block per expected matcher
// property, each embedding the resolved device type and showing the
// property as a sub-key of the "device" matcher object.
func deviceMatcherExamples(deviceType string, expectedProperties []string) string {
	blocks := make([]string, 0, len(expectedProperties))
	for _, property := range expectedProperties {
		blocks = append(blocks, fmt.Sprintf(`{
  "type": %q,
  "device": { %q: ... }
}`, deviceType, property))
	}
	return strings.Join(blocks, "\n\n")
}
