// Package cli implements the detox-config commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sourcegraph/conc/pool"
	"gopkg.in/yaml.v3"

	"github.com/mistenkt/Detox/pkg/configuration"
	"github.com/mistenkt/Detox/pkg/console"
	"github.com/mistenkt/Detox/pkg/resolver"
)

// MaxConcurrentValidations bounds the worker pool when several files
// are validated at once.
const MaxConcurrentValidations = 4

// ValidateOptions carries the validate command's flags.
type ValidateOptions struct {
	ConfigurationName string
	RequireBuild      bool
	PrintResolved     bool
	Verbose           bool
}

// validationResult pairs one file with its resolution outcome.
type validationResult struct {
	path     string
	resolved *resolver.Resolved
	err      error
}

// ValidateFiles validates the given configuration files, or locates one
// in the working directory when none are given. It prints per-file
// verdicts and returns an error when any file failed.
func ValidateFiles(paths []string, opts ValidateOptions) error {
	if len(paths) == 0 {
		return validateOne("", opts)
	}
	if len(paths) == 1 {
		return validateOne(paths[0], opts)
	}

	p := pool.NewWithResults[validationResult]().WithMaxGoroutines(MaxConcurrentValidations)
	for _, path := range paths {
		path := path
		p.Go(func() validationResult {
			resolved, err := resolver.Resolve(resolver.Options{
				Path:              path,
				ConfigurationName: opts.ConfigurationName,
				RequireBuild:      opts.RequireBuild,
			})
			return validationResult{path: path, resolved: resolved, err: err}
		})
	}

	failures := 0
	for _, result := range p.Wait() {
		if result.err != nil {
			failures++
			fmt.Fprintln(os.Stderr, console.FormatLocationMessage(console.ToRelativePath(result.path)))
			reportFailure(result.err)
			continue
		}
		fmt.Println(console.FormatValidationSummary(result.resolved.Path, result.resolved.ConfigurationName))
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d configuration files failed validation", failures, len(paths))
	}
	return nil
}

func validateOne(path string, opts ValidateOptions) error {
	spinner := console.NewSpinner("Validating configuration...")
	spinner.Start()

	resolved, err := resolver.Resolve(resolver.Options{
		Path:              path,
		ConfigurationName: opts.ConfigurationName,
		RequireBuild:      opts.RequireBuild,
	})
	spinner.Stop()

	if err != nil {
		reportFailure(err)
		return errors.New("configuration validation failed")
	}

	fmt.Println(console.FormatValidationSummary(resolved.Path, resolved.ConfigurationName))
	if opts.Verbose {
		fmt.Println(console.FormatVerboseMessage("resolved configuration:"))
		fmt.Println(console.DumpValue(resolved.Configuration))
	}
	if opts.PrintResolved {
		return printResolved(resolved)
	}
	return nil
}

// reportFailure renders a resolution failure: diagnostics get the full
// message/hint/debug treatment, anything else a plain error line.
func reportFailure(err error) {
	var diagnostic *configuration.Diagnostic
	if errors.As(err, &diagnostic) {
		fmt.Fprintln(os.Stderr, console.FormatDiagnostic(diagnostic))
		return
	}
	fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
}

// printResolved emits the resolved configuration as YAML on stdout.
func printResolved(resolved *resolver.Resolved) error {
	printable := map[string]any{
		"configuration": resolved.ConfigurationName,
		"device":        resolved.Device,
	}
	if resolved.DeviceAlias != "" {
		printable["deviceAlias"] = resolved.DeviceAlias
	}
	if resolved.Session != nil {
		printable["session"] = resolved.Session
	}
	if resolved.Build != "" {
		printable["build"] = resolved.Build
	}

	encoded, err := yaml.Marshal(printable)
	if err != nil {
		return fmt.Errorf("failed to marshal resolved configuration: %w", err)
	}
	fmt.Print(string(encoded))
	return nil
}
