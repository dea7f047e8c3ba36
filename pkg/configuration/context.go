// Package configuration builds structured diagnostics for Detox
// configuration resolution failures. It does not validate anything
// itself: the resolver detects a failure condition and asks the
// matching factory method on Context to narrate it.
package configuration

import "fmt"

// Context carries the ambient state every diagnostic is built from: the
// path the configuration document was loaded from, the parsed document
// itself, and the name of the configuration entry the caller selected.
// Context is an immutable value; the With* methods return updated copies.
type Context struct {
	originPath        string
	document          map[string]any
	configurationName string
}

// WithOriginPath returns a copy of the context with the origin file path
// set. An empty path means the document origin is unknown.
func (c Context) WithOriginPath(path string) Context {
	c.originPath = path
	return c
}

// WithDocument returns a copy of the context with the parsed
// configuration document set. A nil document means no document was
// loaded; every factory method tolerates that.
func (c Context) WithDocument(document map[string]any) Context {
	c.document = document
	return c
}

// WithSelectedConfiguration returns a copy of the context with the name
// of the configuration entry the caller intends to use.
func (c Context) WithSelectedConfiguration(name string) Context {
	c.configurationName = name
	return c
}

// OriginPath returns the path the document was loaded from, or "".
func (c Context) OriginPath() string { return c.originPath }

// Document returns the parsed configuration document, or nil.
func (c Context) Document() map[string]any { return c.document }

// ConfigurationName returns the selected configuration name, or "".
func (c Context) ConfigurationName() string { return c.configurationName }

// configurations returns the document's configurations dictionary, or an
// empty map when the document or the key is absent.
func (c Context) configurations() map[string]any {
	return subDictionary(c.document, "configurations")
}

// devices returns the document's devices dictionary, or an empty map.
func (c Context) devices() map[string]any {
	return subDictionary(c.document, "devices")
}

// SelectedConfiguration resolves the configuration entry named by the
// context. It never panics: any missing link in
// document.configurations[name] yields (nil, false).
func (c Context) SelectedConfiguration() (map[string]any, bool) {
	entry, ok := c.configurations()[c.configurationName]
	if !ok {
		return nil, false
	}
	cfg, ok := entry.(map[string]any)
	return cfg, ok
}

// SelectedDeviceConfig resolves the device description relevant to the
// current failure: document.devices[alias] when an alias is given,
// otherwise the selected configuration itself (inlined device fields).
// Unlike SelectedConfiguration this lookup is loud: calling it for an
// alias or configuration the caller never verified exists is a
// programming error, and it panics rather than masking it.
func (c Context) SelectedDeviceConfig(alias string) map[string]any {
	if alias == "" {
		cfg, ok := c.SelectedConfiguration()
		if !ok {
			panic(fmt.Sprintf("configuration: no configuration named %q to read a device config from", c.configurationName))
		}
		return cfg
	}
	device, ok := c.devices()[alias].(map[string]any)
	if !ok {
		panic(fmt.Sprintf("configuration: device alias %q does not resolve to a device config", alias))
	}
	return device
}

// subDictionary returns document[key] as a map, or an empty map when the
// document or the key is absent or has the wrong shape.
func subDictionary(document map[string]any, key string) map[string]any {
	if document == nil {
		return map[string]any{}
	}
	sub, ok := document[key].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return sub
}
