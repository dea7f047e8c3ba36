// Package resolver drives configuration resolution: locate the
// document, pre-validate its shape, pick a configuration entry, resolve
// its device and session, and narrate any failure through the
// diagnostic catalog in pkg/configuration.
package resolver

import (
	"os"
	"strings"

	"github.com/mistenkt/Detox/pkg/configuration"
	"github.com/mistenkt/Detox/pkg/loader"
)

// Options controls one resolution attempt.
type Options struct {
	// Path is an explicitly given configuration file. When empty, the
	// loader searches Dir for a candidate file.
	Path string

	// Dir is the directory to search when Path is empty. Empty means
	// the current working directory.
	Dir string

	// ConfigurationName selects a configuration entry. When empty and
	// the document holds exactly one entry, that entry is used.
	ConfigurationName string

	// RequireBuild makes a missing build command a failure.
	RequireBuild bool
}

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Path              string
	ConfigurationName string
	Configuration     map[string]any
	DeviceAlias       string
	Device            map[string]any
	Session           map[string]any
	Build             string
}

// Resolve runs one configuration resolution attempt. On failure the
// returned error is a *configuration.Diagnostic for anything the user
// can fix in their config, or a plain error for infrastructure problems
// (schema compilation, unreadable directories).
func Resolve(opts Options) (*Resolved, error) {
	ctx := configuration.Context{}.WithSelectedConfiguration(opts.ConfigurationName)

	path := opts.Path
	if path == "" {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		located, err := loader.Locate(dir)
		if err != nil {
			return nil, ctx.NoConfigurationSpecified()
		}
		path = located
	} else if _, err := os.Stat(path); err != nil {
		return nil, ctx.WithOriginPath(path).NoConfigurationAtGivenPath()
	}

	result, err := loader.Load(path)
	if err != nil {
		ctx = ctx.WithOriginPath(path)
		if loader.IsMissing(err) {
			return nil, ctx.NoConfigurationAtGivenPath()
		}
		return nil, ctx.FailedToReadConfiguration(err)
	}

	ctx = ctx.WithOriginPath(result.Path).WithDocument(result.Document)

	// A manifest without a config section means no configuration was
	// specified at all; the diagnostic's hint adapts to the manifest
	// origin.
	if result.Document == nil {
		return nil, ctx.NoConfigurationSpecified()
	}

	if err := ValidateDocumentShape(result.Document); err != nil {
		return nil, err
	}

	configurations, _ := result.Document["configurations"].(map[string]any)
	if len(configurations) == 0 {
		return nil, ctx.NoConfigurationsInside()
	}

	name := opts.ConfigurationName
	if name == "" {
		if len(configurations) > 1 {
			return nil, ctx.CantChooseConfiguration()
		}
		for only := range configurations {
			name = only
		}
		ctx = ctx.WithSelectedConfiguration(name)
	}

	entry, ok := configurations[name]
	if !ok {
		return nil, ctx.NoConfigurationWithGivenName()
	}
	cfg, ok := entry.(map[string]any)
	if !ok || len(cfg) == 0 {
		return nil, ctx.ConfigurationShouldNotBeEmpty()
	}

	resolved := &Resolved{
		Path:              result.Path,
		ConfigurationName: name,
		Configuration:     cfg,
	}
	if diagnostic := resolveDevice(ctx, cfg, resolved); diagnostic != nil {
		return nil, diagnostic
	}
	if diagnostic := resolveSession(ctx, cfg, resolved); diagnostic != nil {
		return nil, diagnostic
	}

	resolved.Build, _ = cfg["build"].(string)
	if opts.RequireBuild && resolved.Build == "" {
		return nil, ctx.MissingBuildScript()
	}

	return resolved, nil
}

// resolveDevice resolves the configuration's device, either through a
// devices-dictionary alias or the legacy inline style where the device
// fields live on the configuration entry itself.
func resolveDevice(ctx configuration.Context, cfg map[string]any, resolved *Resolved) *configuration.Diagnostic {
	alias, isAlias := cfg["device"].(string)

	var device map[string]any
	switch {
	case isAlias:
		devices, ok := ctx.Document()["devices"].(map[string]any)
		if !ok {
			return ctx.ThereAreNoDeviceConfigs(alias)
		}
		device, ok = devices[alias].(map[string]any)
		if !ok {
			return ctx.CantResolveDeviceAlias(alias)
		}
	case cfg["device"] != nil || cfg["type"] != nil:
		alias = ""
		device = cfg
	default:
		return ctx.DeviceConfigIsUndefined()
	}

	deviceType, _ := device["type"].(string)
	if deviceType == "" {
		return ctx.MissingDeviceType(alias)
	}

	expected := matcherProperties(deviceType)
	matcher, _ := device["device"].(map[string]any)
	if !hasAnyProperty(matcher, expected) {
		return ctx.MissingDeviceMatcherProperties(alias, expected)
	}

	resolved.DeviceAlias = alias
	resolved.Device = device
	return nil
}

// resolveSession validates the merged session settings. Configuration
// session values take precedence over document-level ones.
func resolveSession(ctx configuration.Context, cfg map[string]any, resolved *Resolved) *configuration.Diagnostic {
	session := map[string]any{}
	if root, ok := ctx.Document()["session"].(map[string]any); ok {
		for key, value := range root {
			session[key] = value
		}
	}
	if own, ok := cfg["session"].(map[string]any); ok {
		for key, value := range own {
			session[key] = value
		}
	}

	if raw, ok := session["server"]; ok {
		server, isString := raw.(string)
		if !isString || (!strings.HasPrefix(server, "ws://") && !strings.HasPrefix(server, "wss://")) {
			return ctx.InvalidServerProperty()
		}
		// An explicit server needs a session id to pair with.
		if _, ok := session["sessionId"]; !ok {
			return ctx.InvalidSessionIDProperty()
		}
	}
	if raw, ok := session["sessionId"]; ok {
		id, isString := raw.(string)
		if !isString || id == "" {
			return ctx.InvalidSessionIDProperty()
		}
	}
	if raw, ok := session["debugSynchronization"]; ok {
		if !isNonNegativeNumber(raw) {
			return ctx.InvalidDebugSynchronizationProperty()
		}
	}

	if len(session) > 0 {
		resolved.Session = session
	}
	return nil
}

// matcherProperties lists the device matcher sub-keys a device type
// understands. Unknown types get the generic simulator-style set.
func matcherProperties(deviceType string) []string {
	switch deviceType {
	case "ios.simulator":
		return []string{"type", "name", "id", "os"}
	case "android.emulator":
		return []string{"avdName"}
	case "android.attached":
		return []string{"adbName"}
	case "android.genycloud":
		return []string{"recipeUUID", "recipeName"}
	default:
		return []string{"type", "name", "id"}
	}
}

func hasAnyProperty(matcher map[string]any, properties []string) bool {
	for _, property := range properties {
		if _, ok := matcher[property]; ok {
			return true
		}
	}
	return false
}

func isNonNegativeNumber(value any) bool {
	switch n := value.(type) {
	case int:
		return n >= 0
	case int64:
		return n >= 0
	case uint64:
		return true
	case float64:
		return n >= 0
	default:
		return false
	}
}
