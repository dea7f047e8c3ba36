package configuration

import (
	"fmt"
	"strings"

	"github.com/mistenkt/Detox/pkg/constants"
)

// The diagnostic catalog. Each method is pure given the context plus
// its explicit parameters: constructing the same diagnostic twice from
// the same inputs yields structurally identical output. The caller is
// responsible for detecting the failure and picking the matching entry;
// the methods here only narrate it.

// NoConfigurationSpecified reports that no configuration document could
// be located at all. The remediation differs depending on whether the
// origin path points at a shared package manifest (which may simply
// lack a config section) or not.
func (c Context) NoConfigurationSpecified() *Diagnostic {
	var hint string
	if strings.HasSuffix(c.originPath, constants.ManifestFileName) {
		hint = fmt.Sprintf("Create an external .detoxrc.json configuration, or add a %q section to your package.json at:\n%s",
			constants.ManifestConfigKey, c.originPath)
	} else {
		hint = fmt.Sprintf("Make sure to create a .detoxrc.json configuration file, or to add a %q section to your package.json.",
			constants.ManifestConfigKey)
	}
	return &Diagnostic{
		Kind:    KindNoConfigurationSpecified,
		Message: "Cannot run without a configuration.",
		Hint:    hint,
	}
}

// NoConfigurationAtGivenPath reports that an explicitly given config
// path does not point at a readable file.
func (c Context) NoConfigurationAtGivenPath() *Diagnostic {
	return &Diagnostic{
		Kind:    KindNoConfigurationAtGivenPath,
		Message: "Failed to find a configuration at: " + c.originPath,
		Hint:    "Make sure the specified path is correct.",
	}
}

// FailedToReadConfiguration reports a read or parse failure of the
// config file, embedding the underlying failure as debug text.
func (c Context) FailedToReadConfiguration(cause error) *Diagnostic {
	diagnostic := &Diagnostic{
		Kind:    KindFailedToReadConfiguration,
		Message: "An error occurred while trying to load the configuration from:\n" + c.originPath,
	}
	if cause != nil {
		diagnostic.DebugInfo = cause.Error()
	}
	return diagnostic
}

// NoConfigurationsInside reports a document without any configurations
// dictionary. The debug projection keeps the rest of the document but
// shows the configurations key explicitly cleared.
func (c Context) NoConfigurationsInside() *Diagnostic {
	return &Diagnostic{
		Kind:        KindNoConfigurationsInside,
		Message:     "There are no configurations in the given config" + c.atPath(),
		Hint:        "Examine the config:",
		DebugInfo:   c.documentWithoutConfigurations(),
		RenderDepth: constants.RenderDepthDocument,
	}
}

// CantChooseConfiguration reports that the document holds several
// configurations and none was selected.
func (c Context) CantChooseConfiguration() *Diagnostic {
	return &Diagnostic{
		Kind:    KindCantChooseConfiguration,
		Message: "Cannot determine which configuration to use from the config" + c.atPath(),
		Hint: "Use --configuration to choose one of the following configurations:\n" +
			enumerateNames(c.configurations()),
	}
}

// NoConfigurationWithGivenName reports that the selected name does not
// exist in the configurations dictionary.
func (c Context) NoConfigurationWithGivenName() *Diagnostic {
	return &Diagnostic{
		Kind: KindNoConfigurationWithGivenName,
		Message: fmt.Sprintf("Failed to find a configuration named %q in the config%s",
			c.configurationName, c.atPath()),
		Hint: "Below are the configurations found:\n" + enumerateNames(c.configurations()),
	}
}

// ConfigurationShouldNotBeEmpty reports a selected configuration entry
// with no contents. The debug projection lists every configuration with
// the offending one first.
func (c Context) ConfigurationShouldNotBeEmpty() *Diagnostic {
	return &Diagnostic{
		Kind:        KindConfigurationShouldNotBeEmpty,
		Message:     fmt.Sprintf("Cannot use an empty configuration %q.", c.configurationName),
		Hint:        "A valid configuration should have at least a device and an app, e.g.:\n\n" + emptyConfigurationExample(c.configurationName),
		DebugInfo:   c.orderedConfigurations(),
		RenderDepth: constants.RenderDepthConfiguration,
	}
}

// ThereAreNoDeviceConfigs reports a device alias reference in a
// document that has no devices dictionary at all.
func (c Context) ThereAreNoDeviceConfigs(alias string) *Diagnostic {
	return &Diagnostic{
		Kind: KindThereAreNoDeviceConfigs,
		Message: fmt.Sprintf("Cannot use the device alias %q since there is no %q dictionary in the config%s",
			alias, "devices", c.atPath()),
		Hint: fmt.Sprintf("Add a %q dictionary to your config, e.g.:\n\n%s",
			"devices", deviceDictionaryExample(alias)),
	}
}

// CantResolveDeviceAlias reports a device alias missing from the
// devices dictionary.
func (c Context) CantResolveDeviceAlias(alias string) *Diagnostic {
	return &Diagnostic{
		Kind: KindCantResolveDeviceAlias,
		Message: fmt.Sprintf("Failed to find a device config named %q in the %q dictionary%s",
			alias, "devices", c.atPath()),
		Hint: "Below are the device configs found:\n" + enumerateNames(c.devices()),
	}
}

// DeviceConfigIsUndefined reports a selected configuration that neither
// references a device alias nor inlines a device config.
func (c Context) DeviceConfigIsUndefined() *Diagnostic {
	return &Diagnostic{
		Kind: KindDeviceConfigIsUndefined,
		Message: fmt.Sprintf("Missing a device specification in the selected configuration %q%s",
			c.configurationName, c.atPath()),
		Hint: fmt.Sprintf("Add a %q property to the configuration, referencing an alias from the %q dictionary or inlining a device config.",
			"device", "devices"),
		DebugInfo:   c.focusedConfiguration(),
		RenderDepth: constants.RenderDepthConfiguration,
	}
}

// MissingDeviceType reports a resolved device config without a type.
func (c Context) MissingDeviceType(alias string) *Diagnostic {
	return &Diagnostic{
		Kind:        KindMissingDeviceType,
		Message:     "Missing a device type inside the device config" + c.atPath(),
		Hint:        fmt.Sprintf("Add a %q property to it, e.g. %q or %q.", "type", "ios.simulator", "android.emulator"),
		DebugInfo:   c.focusedDevice(alias),
		RenderDepth: constants.RenderDepthDevice,
	}
}

// MissingDeviceMatcherProperties reports a device config whose matcher
// carries none of the properties the device type understands. The
// resolved device must exist; asking about an unverified one is a
// caller bug and panics via SelectedDeviceConfig.
func (c Context) MissingDeviceMatcherProperties(alias string, expectedProperties []string) *Diagnostic {
	deviceType, _ := c.SelectedDeviceConfig(alias)["type"].(string)
	return &Diagnostic{
		Kind:    KindMissingDeviceMatcherProperties,
		Message: fmt.Sprintf("Invalid or empty %q matcher inside the device config.", "device"),
		Hint: fmt.Sprintf("It should specify the device to run on, e.g.:\n\n%s",
			deviceMatcherExamples(deviceType, expectedProperties)),
		DebugInfo:   c.focusedDevice(alias),
		RenderDepth: constants.RenderDepthDevice,
	}
}

// InvalidServerProperty reports a malformed session server address.
func (c Context) InvalidServerProperty() *Diagnostic {
	return &Diagnostic{
		Kind: KindInvalidServerProperty,
		Message: fmt.Sprintf("session.server property is not a valid WebSocket URL in the config%s",
			c.atPath()),
		Hint:        fmt.Sprintf("Expected something like %q.", "ws://localhost:8099"),
		DebugInfo:   c.mergedSession(),
		RenderDepth: constants.RenderDepthDevice,
	}
}

// InvalidSessionIDProperty reports a missing or non-string session id.
func (c Context) InvalidSessionIDProperty() *Diagnostic {
	return &Diagnostic{
		Kind: KindInvalidSessionIDProperty,
		Message: fmt.Sprintf("session.sessionId property should be a non-empty string in the config%s",
			c.atPath()),
		DebugInfo:   c.mergedSession(),
		RenderDepth: constants.RenderDepthDevice,
	}
}

// InvalidDebugSynchronizationProperty reports a malformed session debug
// synchronization interval.
func (c Context) InvalidDebugSynchronizationProperty() *Diagnostic {
	return &Diagnostic{
		Kind: KindInvalidDebugSynchronizationProperty,
		Message: fmt.Sprintf("session.debugSynchronization should be a positive number in the config%s",
			c.atPath()),
		DebugInfo:   c.mergedSession(),
		RenderDepth: constants.RenderDepthDevice,
	}
}

// MissingBuildScript reports a configuration without a build command
// when one was required.
func (c Context) MissingBuildScript() *Diagnostic {
	return &Diagnostic{
		Kind: KindMissingBuildScript,
		Message: fmt.Sprintf("Could not find a build script inside the selected configuration %q%s",
			c.configurationName, c.atPath()),
		Hint:        fmt.Sprintf("Add a %q property to the configuration, or pass the app binary explicitly.", "build"),
		DebugInfo:   c.focusedConfiguration(),
		RenderDepth: constants.RenderDepthConfiguration,
	}
}

// Placeholder catalog entries. These exist so callers can already wire
// them up; each returns an explicit unimplemented marker carrying the
// intended diagnostic name and its raw arguments.

func (c Context) MissingAppPath(args ...any) *Diagnostic {
	return unimplemented("missingAppPath", args)
}

func (c Context) InvalidAppType(args ...any) *Diagnostic {
	return unimplemented("invalidAppType", args)
}

func (c Context) DuplicateAppConfig(args ...any) *Diagnostic {
	return unimplemented("duplicateAppConfig", args)
}

func (c Context) AmbiguousAppAlias(args ...any) *Diagnostic {
	return unimplemented("ambiguousAppAlias", args)
}

func (c Context) MalformedAppLaunchArgs(args ...any) *Diagnostic {
	return unimplemented("malformedAppLaunchArgs", args)
}

func unimplemented(name string, args []any) *Diagnostic {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = fmt.Sprintf("%v", arg)
	}
	return &Diagnostic{
		Kind:          KindUnimplemented,
		Message:       fmt.Sprintf("[unimplemented] %s(%s)", name, strings.Join(rendered, ", ")),
		Unimplemented: &Unimplemented{Name: name, Args: args},
	}
}

// emptyConfigurationExample renders a minimal valid configuration entry
// under the given name.
func emptyConfigurationExample(name string) string {
	if name == "" {
		name = "myConfiguration"
	}
	return fmt.Sprintf(`{
  "configurations": {
    %q: {
      "device": "simulator",
      "app": "myApp"
    }
  }
}`, name)
}
