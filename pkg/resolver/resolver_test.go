package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mistenkt/Detox/pkg/configuration"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func kindOf(t *testing.T, err error) configuration.Kind {
	t.Helper()
	var diagnostic *configuration.Diagnostic
	if !errors.As(err, &diagnostic) {
		t.Fatalf("expected a diagnostic, got %T: %v", err, err)
	}
	return diagnostic.Kind
}

const validConfig = `{
  "devices": {
    "simulator": {
      "type": "ios.simulator",
      "device": { "type": "iPhone 15" }
    }
  },
  "configurations": {
    "ios.debug": {
      "device": "simulator",
      "build": "xcodebuild -scheme App"
    }
  }
}`

func TestResolveValidConfiguration(t *testing.T) {
	path := writeConfig(t, ".detoxrc.json", validConfig)

	resolved, err := Resolve(Options{Path: path, ConfigurationName: "ios.debug"})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if resolved.ConfigurationName != "ios.debug" {
		t.Errorf("unexpected configuration name %q", resolved.ConfigurationName)
	}
	if resolved.DeviceAlias != "simulator" {
		t.Errorf("unexpected device alias %q", resolved.DeviceAlias)
	}
	if resolved.Device["type"] != "ios.simulator" {
		t.Errorf("unexpected device %v", resolved.Device)
	}
	if resolved.Build != "xcodebuild -scheme App" {
		t.Errorf("unexpected build command %q", resolved.Build)
	}
}

func TestResolveAutoPicksSingleConfiguration(t *testing.T) {
	path := writeConfig(t, ".detoxrc.json", validConfig)

	resolved, err := Resolve(Options{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if resolved.ConfigurationName != "ios.debug" {
		t.Errorf("expected the only configuration to be auto-picked, got %q", resolved.ConfigurationName)
	}
}

func TestResolveDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		options  Options
		wantKind configuration.Kind
	}{
		{
			name:     "empty configurations dictionary",
			content:  `{"configurations": {}}`,
			wantKind: configuration.KindNoConfigurationsInside,
		},
		{
			name:     "document without configurations",
			content:  `{"devices": {}}`,
			wantKind: configuration.KindNoConfigurationsInside,
		},
		{
			name:     "several configurations and no selection",
			content:  `{"configurations": {"a": {"type": "ios.simulator"}, "b": {"type": "ios.simulator"}}}`,
			wantKind: configuration.KindCantChooseConfiguration,
		},
		{
			name:     "unknown configuration name",
			content:  validConfig,
			options:  Options{ConfigurationName: "ghost"},
			wantKind: configuration.KindNoConfigurationWithGivenName,
		},
		{
			name:     "empty configuration entry",
			content:  `{"configurations": {"a": {}}}`,
			wantKind: configuration.KindConfigurationShouldNotBeEmpty,
		},
		{
			name:     "alias without a devices dictionary",
			content:  `{"configurations": {"a": {"device": "simulator"}}}`,
			wantKind: configuration.KindThereAreNoDeviceConfigs,
		},
		{
			name:     "unresolvable device alias",
			content:  `{"devices": {"emulator": {"type": "android.emulator"}}, "configurations": {"a": {"device": "simulator"}}}`,
			wantKind: configuration.KindCantResolveDeviceAlias,
		},
		{
			name:     "configuration without any device specification",
			content:  `{"configurations": {"a": {"build": "make"}}}`,
			wantKind: configuration.KindDeviceConfigIsUndefined,
		},
		{
			name:     "device config without a type",
			content:  `{"devices": {"simulator": {"device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "simulator"}}}`,
			wantKind: configuration.KindMissingDeviceType,
		},
		{
			name:     "device config without matcher properties",
			content:  `{"devices": {"simulator": {"type": "ios.simulator"}}, "configurations": {"a": {"device": "simulator"}}}`,
			wantKind: configuration.KindMissingDeviceMatcherProperties,
		},
		{
			name:     "device matcher with no property the type understands",
			content:  `{"devices": {"emulator": {"type": "android.emulator", "device": {"id": "x"}}}, "configurations": {"a": {"device": "emulator"}}}`,
			wantKind: configuration.KindMissingDeviceMatcherProperties,
		},
		{
			name:     "malformed session server",
			content:  `{"session": {"server": "http://localhost"}, "devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "s"}}}`,
			wantKind: configuration.KindInvalidServerProperty,
		},
		{
			name:     "server without a session id",
			content:  `{"session": {"server": "ws://localhost:8099"}, "devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "s"}}}`,
			wantKind: configuration.KindInvalidSessionIDProperty,
		},
		{
			name:     "empty session id",
			content:  `{"session": {"sessionId": ""}, "devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "s"}}}`,
			wantKind: configuration.KindInvalidSessionIDProperty,
		},
		{
			name:     "negative debug synchronization",
			content:  `{"session": {"sessionId": "test", "debugSynchronization": -1}, "devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "s"}}}`,
			wantKind: configuration.KindInvalidDebugSynchronizationProperty,
		},
		{
			name:     "missing build script when required",
			content:  `{"devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}}, "configurations": {"a": {"device": "s"}}}`,
			options:  Options{RequireBuild: true},
			wantKind: configuration.KindMissingBuildScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.options
			opts.Path = writeConfig(t, ".detoxrc.json", tt.content)

			_, err := Resolve(opts)
			if err == nil {
				t.Fatal("expected a resolution failure")
			}
			if got := kindOf(t, err); got != tt.wantKind {
				t.Errorf("expected %v, got %v (%v)", tt.wantKind, got, err)
			}
		})
	}
}

func TestResolveInlineDeviceConfiguration(t *testing.T) {
	content := `{
  "configurations": {
    "legacy": {
      "type": "ios.simulator",
      "device": { "name": "iPhone 15" },
      "build": "make"
    }
  }
}`
	path := writeConfig(t, ".detoxrc.json", content)

	resolved, err := Resolve(Options{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if resolved.DeviceAlias != "" {
		t.Errorf("inline device configs have no alias, got %q", resolved.DeviceAlias)
	}
	if resolved.Device["type"] != "ios.simulator" {
		t.Errorf("unexpected device %v", resolved.Device)
	}
}

func TestResolveSessionMergePrecedence(t *testing.T) {
	content := `{
  "session": {"server": "ws://localhost:1111", "sessionId": "root"},
  "devices": {"s": {"type": "ios.simulator", "device": {"type": "iPhone 15"}}},
  "configurations": {
    "a": {
      "device": "s",
      "session": {"sessionId": "own"}
    }
  }
}`
	path := writeConfig(t, ".detoxrc.json", content)

	resolved, err := Resolve(Options{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if resolved.Session["sessionId"] != "own" {
		t.Errorf("configuration session should win, got %v", resolved.Session["sessionId"])
	}
	if resolved.Session["server"] != "ws://localhost:1111" {
		t.Errorf("document session should merge in, got %v", resolved.Session["server"])
	}
}

func TestResolveMissingFiles(t *testing.T) {
	t.Run("explicit path does not exist", func(t *testing.T) {
		_, err := Resolve(Options{Path: filepath.Join(t.TempDir(), ".detoxrc.json")})
		if got := kindOf(t, err); got != configuration.KindNoConfigurationAtGivenPath {
			t.Errorf("expected no-configuration-at-path, got %v", got)
		}
	})

	t.Run("nothing to locate in the directory", func(t *testing.T) {
		_, err := Resolve(Options{Dir: t.TempDir()})
		if got := kindOf(t, err); got != configuration.KindNoConfigurationSpecified {
			t.Errorf("expected no-configuration-specified, got %v", got)
		}
	})
}

func TestResolveManifestWithoutConfigSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(`{"name": "app"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(Options{Dir: dir})
	var diagnostic *configuration.Diagnostic
	if !errors.As(err, &diagnostic) {
		t.Fatalf("expected a diagnostic, got %v", err)
	}
	if diagnostic.Kind != configuration.KindNoConfigurationSpecified {
		t.Fatalf("expected no-configuration-specified, got %v", diagnostic.Kind)
	}
	// The manifest origin selects the manifest-specific remediation
	if !strings.Contains(diagnostic.Hint, "package.json at:") {
		t.Errorf("expected the manifest hint branch, got %q", diagnostic.Hint)
	}
}

func TestResolveUnreadableDocument(t *testing.T) {
	path := writeConfig(t, ".detoxrc.json", "{broken")

	_, err := Resolve(Options{Path: path})
	if got := kindOf(t, err); got != configuration.KindFailedToReadConfiguration {
		t.Errorf("expected failed-to-read, got %v", got)
	}
}
