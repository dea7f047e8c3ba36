package configuration

import (
	"sort"

	"github.com/goccy/go-yaml"
)

// Snapshot helpers derive focused debug projections from the context's
// document. Every projection is a fresh value scoped to the offending
// entry; unrelated sibling top-level keys never leak into a diagnostic.

// documentWithoutConfigurations copies the document with the
// configurations key explicitly cleared, so a renderer shows the key as
// absent instead of hiding it.
func (c Context) documentWithoutConfigurations() map[string]any {
	snapshot := map[string]any{"configurations": nil}
	for key, value := range c.document {
		if key == "configurations" {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}

// focusedConfiguration projects {configurations: {<name>: <entry>}} for
// the selected configuration, or nil when the entry is not defined.
func (c Context) focusedConfiguration() any {
	entry, ok := c.configurations()[c.configurationName]
	if !ok {
		return nil
	}
	return map[string]any{
		"configurations": map[string]any{c.configurationName: entry},
	}
}

// orderedConfigurations projects the whole configurations dictionary
// with the selected entry surfaced first. Order is a presentation
// decision, so the projection is an order-preserving MapSlice rather
// than a Go map.
func (c Context) orderedConfigurations() any {
	all := c.configurations()
	entries := yaml.MapSlice{}
	if entry, ok := all[c.configurationName]; ok {
		entries = append(entries, yaml.MapItem{Key: c.configurationName, Value: entry})
	}
	for _, name := range sortedKeys(all) {
		if name == c.configurationName {
			continue
		}
		entries = append(entries, yaml.MapItem{Key: name, Value: all[name]})
	}
	return yaml.MapSlice{{Key: "configurations", Value: entries}}
}

// resolvedDeviceKey is the devices key relevant to the current failure:
// the given alias, or the selected configuration's "device" value when
// that value is itself an alias string.
func (c Context) resolvedDeviceKey(alias string) string {
	if alias != "" {
		return alias
	}
	cfg, ok := c.SelectedConfiguration()
	if !ok {
		return ""
	}
	key, _ := cfg["device"].(string)
	return key
}

// focusedDevice projects {devices: {<key>: <entry>}} for the device
// relevant to the failure, or nil when it cannot be resolved.
func (c Context) focusedDevice(alias string) any {
	key := c.resolvedDeviceKey(alias)
	if key == "" {
		return nil
	}
	entry, ok := c.devices()[key]
	if !ok {
		return nil
	}
	return map[string]any{
		"devices": map[string]any{key: entry},
	}
}

// mergedSession projects the document's top-level session merged with
// the selected configuration's session, configuration values taking
// precedence. Returns nil when both are absent or empty.
func (c Context) mergedSession() any {
	merged := map[string]any{}
	for key, value := range subDictionary(c.document, "session") {
		merged[key] = value
	}
	if cfg, ok := c.SelectedConfiguration(); ok {
		for key, value := range subDictionary(cfg, "session") {
			merged[key] = value
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return map[string]any{"session": merged}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
