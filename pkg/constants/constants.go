package constants

// CLIName is the name used in user-facing output to refer to the CLI.
const CLIName = "detox-config"

// ManifestFileName is the shared package manifest a configuration may
// live inside (under its "detox" key) instead of a dedicated rc file.
const ManifestFileName = "package.json"

// ManifestConfigKey is the manifest key holding the configuration.
const ManifestConfigKey = "detox"

// ConfigFileNames are the dedicated configuration file candidates, in
// lookup order. The manifest is always the last resort.
var ConfigFileNames = []string{
	".detoxrc",
	".detoxrc.json",
	".detoxrc.yml",
	".detoxrc.yaml",
	"detox.config.json",
	"detox.config.yml",
}

// Render depths requested by diagnostics, by how deep the offending
// structure sits in the document.
const (
	RenderDepthDocument      = 1
	RenderDepthConfiguration = 2
	RenderDepthDevice        = 3
)

// DefaultRenderDepth is used by renderers when a diagnostic does not
// request a depth.
const DefaultRenderDepth = 2
