package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mayheap",
		Short: "workbench for the mayheap container library",
		Long: fmt.Sprintf(`mayheap (v%s, %s backend)

Workbench for the mayheap container library: one API over growable and
bounded storage, selected at build time. This binary benchmarks the
sequence container, the text container, the codecs and the slot pool
against the backend it was built with.`, version, backendLabel),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mayheap",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mayheap v%s (%s backend)\n", version, backendLabel)
		},
	}
)

func init() {
	// Add Commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(benchCmd)

	// Add Flags
	key := "codec"
	rootCmd.PersistentFlags().String(key, "binary", wrapString("codec to use (json, gob, binary)"))
}
