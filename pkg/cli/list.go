package cli

import (
	"fmt"
	"sort"

	"github.com/mistenkt/Detox/pkg/console"
	"github.com/mistenkt/Detox/pkg/loader"
)

// ListConfigurations prints a table of the configurations and device
// configs found in the given file, or in a file located in the working
// directory when path is empty.
func ListConfigurations(path string) error {
	if path == "" {
		located, err := loader.Locate(".")
		if err != nil {
			return fmt.Errorf("no configuration file found in the current directory")
		}
		path = located
	}

	result, err := loader.Load(path)
	if err != nil {
		return err
	}
	if result.Document == nil {
		return fmt.Errorf("%s holds no configuration", console.ToRelativePath(path))
	}

	fmt.Println(console.FormatLocationMessage(console.ToRelativePath(result.Path)))

	configurations, _ := result.Document["configurations"].(map[string]any)
	rows := make([][]string, 0, len(configurations))
	for _, name := range sortedNames(configurations) {
		device, build := "", ""
		if cfg, ok := configurations[name].(map[string]any); ok {
			device, _ = cfg["device"].(string)
			build, _ = cfg["build"].(string)
		}
		rows = append(rows, []string{name, device, build})
	}
	fmt.Println(console.RenderTable(console.TableConfig{
		Title:   "Configurations",
		Headers: []string{"Name", "Device", "Build"},
		Rows:    rows,
	}))

	devices, _ := result.Document["devices"].(map[string]any)
	if len(devices) == 0 {
		return nil
	}
	deviceRows := make([][]string, 0, len(devices))
	for _, alias := range sortedNames(devices) {
		deviceType := ""
		if device, ok := devices[alias].(map[string]any); ok {
			deviceType, _ = device["type"].(string)
		}
		deviceRows = append(deviceRows, []string{alias, deviceType})
	}
	fmt.Println(console.RenderTable(console.TableConfig{
		Title:   "Devices",
		Headers: []string{"Alias", "Type"},
		Rows:    deviceRows,
	}))
	return nil
}

func sortedNames(m map[string]any) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
