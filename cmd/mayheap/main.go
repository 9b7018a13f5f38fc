// Package main provides the mayheap CLI, a workbench around the container
// library: micro-benchmarks for the sequence and text containers, the codecs
// and the slot pool, with optional Prometheus exposition and CSV export.
//
// The binary reports the storage backend it was built with; build with
// -tags heapless for the bounded engine.
package main

import "os"

func main() {
	initConfig()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
