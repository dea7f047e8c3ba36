package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mistenkt/Detox/pkg/cli"
	"github.com/mistenkt/Detox/pkg/console"
	"github.com/mistenkt/Detox/pkg/constants"
)

var (
	version = "dev"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Validate and inspect Detox configuration files",
	Long: `detox-config resolves Detox configuration documents the way the test
runner would: it locates the config file, picks a configuration entry,
resolves its device and session settings, and reports any failure as a
structured diagnostic with a remediation hint.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate one or more configuration files",
	Run: func(cmd *cobra.Command, args []string) {
		configurationName, _ := cmd.Flags().GetString("configuration")
		requireBuild, _ := cmd.Flags().GetBool("require-build")
		printResolved, _ := cmd.Flags().GetBool("print")
		err := cli.ValidateFiles(args, cli.ValidateOptions{
			ConfigurationName: configurationName,
			RequireBuild:      requireBuild,
			PrintResolved:     printResolved,
			Verbose:           verbose,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the configurations and device configs in a file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if err := cli.ListConfigurations(path); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-validate a configuration file whenever it changes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		configurationName, _ := cmd.Flags().GetString("configuration")
		requireBuild, _ := cmd.Flags().GetBool("require-build")
		err := cli.WatchConfiguration(path, cli.ValidateOptions{
			ConfigurationName: configurationName,
			RequireBuild:      requireBuild,
			Verbose:           verbose,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", constants.CLIName, version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	validateCmd.Flags().StringP("configuration", "c", "", "Name of the configuration entry to validate")
	validateCmd.Flags().Bool("require-build", false, "Fail when the configuration has no build command")
	validateCmd.Flags().Bool("print", false, "Print the resolved configuration as YAML")

	watchCmd.Flags().StringP("configuration", "c", "", "Name of the configuration entry to validate")
	watchCmd.Flags().Bool("require-build", false, "Fail when the configuration has no build command")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
