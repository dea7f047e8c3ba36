package configuration

import "fmt"

// Kind identifies one entry of the diagnostic catalog. The catalog is
// closed: every failure mode the resolver can report has exactly one
// Kind, and unimplemented entries share the dedicated KindUnimplemented.
type Kind int

const (
	KindNoConfigurationSpecified Kind = iota
	KindNoConfigurationAtGivenPath
	KindFailedToReadConfiguration
	KindNoConfigurationsInside
	KindCantChooseConfiguration
	KindNoConfigurationWithGivenName
	KindConfigurationShouldNotBeEmpty
	KindThereAreNoDeviceConfigs
	KindCantResolveDeviceAlias
	KindDeviceConfigIsUndefined
	KindMissingDeviceType
	KindMissingDeviceMatcherProperties
	KindInvalidServerProperty
	KindInvalidSessionIDProperty
	KindInvalidDebugSynchronizationProperty
	KindMissingBuildScript
	KindUnimplemented
)

var kindNames = map[Kind]string{
	KindNoConfigurationSpecified:            "no-configuration-specified",
	KindNoConfigurationAtGivenPath:          "no-configuration-at-path",
	KindFailedToReadConfiguration:           "failed-to-read",
	KindNoConfigurationsInside:              "no-configurations-inside",
	KindCantChooseConfiguration:             "cant-choose-configuration",
	KindNoConfigurationWithGivenName:        "no-configuration-with-given-name",
	KindConfigurationShouldNotBeEmpty:       "configuration-should-not-be-empty",
	KindThereAreNoDeviceConfigs:             "no-device-configs-dictionary",
	KindCantResolveDeviceAlias:              "cant-resolve-device-alias",
	KindDeviceConfigIsUndefined:             "device-config-undefined",
	KindMissingDeviceType:                   "missing-device-type",
	KindMissingDeviceMatcherProperties:      "missing-device-property",
	KindInvalidServerProperty:               "invalid-server-property",
	KindInvalidSessionIDProperty:            "invalid-session-id-property",
	KindInvalidDebugSynchronizationProperty: "invalid-debug-sync-property",
	KindMissingBuildScript:                  "missing-build-script",
	KindUnimplemented:                       "unimplemented",
}

// String returns the stable diagnostic identifier for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Unimplemented records a catalog entry that exists for callers but has
// no dedicated diagnostic yet: the intended constructor name plus the
// raw arguments it was invoked with.
type Unimplemented struct {
	Name string
	Args []any
}

// Diagnostic is the structured description of one configuration
// resolution failure. It is immutable once constructed: DebugInfo is a
// projection computed at construction time, never a live reference into
// the context's document that could change underneath the error.
type Diagnostic struct {
	// Kind identifies the catalog entry that produced this diagnostic.
	Kind Kind

	// Message is the one-line-or-more description of the failure.
	// Always non-empty.
	Message string

	// Hint is optional remediation text, possibly multi-line.
	Hint string

	// DebugInfo is an optional focused extract of the configuration
	// document, scoped to the part relevant to this failure. It is
	// either a map[string]any or a yaml.MapSlice when presentation
	// order matters.
	DebugInfo any

	// RenderDepth tells a renderer how many nesting levels of DebugInfo
	// to expand. Zero means the renderer's default.
	RenderDepth int

	// Unimplemented is set only when Kind is KindUnimplemented.
	Unimplemented *Unimplemented
}

// Error implements the error interface so diagnostics can travel
// through ordinary error plumbing. Presentation beyond the message is
// the consumer's job.
func (d *Diagnostic) Error() string { return d.Message }
