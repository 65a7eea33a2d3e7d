// Ouigen generates a compact MAC-prefix vendor lookup table from a text
// registry of "prefix manufacturer" lines.
//
// Usage:
//
//	ouigen generate --input mac-prefixes --output vendordb/vendordb.go
//	ouigen check --input mac-prefixes --output vendordb/vendordb.go
//	ouigen classify "TP-Link Technologies Co., Ltd."
//	ouigen lookup --input mac-prefixes 00:1C:B3:09:85:15
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tamirms/ouigen"
)

func main() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ouigen",
		Short: "Generate a static MAC-prefix vendor lookup table",
		Long: `ouigen converts a flat text registry mapping MAC address prefixes to
manufacturer names into a compact, statically searchable lookup table,
emitted as a self-contained source file. Records with malformed prefixes
or unrecognized manufacturers are dropped silently; only aggregate counts
are reported.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "use JSON log format")
	v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the lookup table artifact from a registry file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(v)
		},
	}
	addGenFlags(generateCmd, v)
	rootCmd.AddCommand(generateCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that a generated artifact is up to date with the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(v)
		},
	}
	addGenFlags(checkCmd, v)
	rootCmd.AddCommand(checkCmd)

	classifyCmd := &cobra.Command{
		Use:   "classify <manufacturer>...",
		Short: "Classify manufacturer strings to vendor tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args)
		},
	}
	rootCmd.AddCommand(classifyCmd)

	lookupCmd := &cobra.Command{
		Use:   "lookup <mac-address>",
		Short: "Look up the vendor of a MAC address against a registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(v, args[0])
		},
	}
	lookupCmd.Flags().String("input", defaultInput, "registry file path")
	lookupCmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return v.BindPFlag("input", cmd.Flags().Lookup("input"))
	}
	rootCmd.AddCommand(lookupCmd)

	return rootCmd
}

// addGenFlags registers the shared generate/check flag set. generate and check
// declare the same viper keys and viper keeps only the most recent binding per
// key, so binding happens in PreRunE, once the invoked command is known.
func addGenFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("input", defaultInput, "registry file path")
	cmd.Flags().String("output", "", "artifact output path (default depends on format)")
	cmd.Flags().String("format", ouigen.FormatGo, "artifact format (go, header)")
	cmd.Flags().String("package", "vendordb", "package name of the emitted Go source")
	cmd.Flags().Int("chunk-size", ouigen.DefaultChunkSize, "entries per chunk array")
	cmd.Flags().Int("workers", 1, "classification worker goroutines")

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return bindGenFlags(cmd, v)
	}
}

func bindGenFlags(cmd *cobra.Command, v *viper.Viper) error {
	bindings := []struct{ key, flag string }{
		{"input", "input"},
		{"output", "output"},
		{"format", "format"},
		{"package", "package"},
		{"chunk_size", "chunk-size"},
		{"workers", "workers"},
	}
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, cmd.Flags().Lookup(b.flag)); err != nil {
			return err
		}
	}
	return nil
}
