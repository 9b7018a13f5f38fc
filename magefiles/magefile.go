//go:build mage

// Package main provides build targets for the mayheap project using Mage.
//
// Usage:
//
//	mage build          Compile the workbench binary for both storage backends to bin/
//	mage test           Run the test matrix (growable and bounded backends)
//	mage testAlloc      Run tests against the growable backend only
//	mage testHeapless   Run tests against the bounded backend only
//	mage bench          Run benchmarks under both backends
//	mage vet            Run go vet under both backends
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install the default-backend binary to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "mayheap"
	binaryDir  = "bin"
	cmdDir     = "./cmd/mayheap"

	// backendTag selects the bounded storage engine at build time.
	backendTag = "heapless"
)

// Build compiles the workbench binary for both storage backends to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	if err := sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-tags", backendTag,
		"-o", filepath.Join(binaryDir, binaryName+"-"+backendTag), cmdDir)
}

// Test runs the full test matrix: every package under the growable backend,
// then again under the bounded backend.
func Test() error {
	mg.SerialDeps(TestAlloc, TestHeapless)
	return nil
}

// TestAlloc runs all tests against the growable backend.
func TestAlloc() error {
	return sh.RunV("go", "test", "./...")
}

// TestHeapless runs all tests against the bounded backend.
func TestHeapless() error {
	return sh.RunV("go", "test", "-tags", backendTag, "./...")
}

// Bench runs the package benchmarks under both backends.
func Bench() error {
	if err := sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "-tags", backendTag, "./...")
}

// Vet runs go vet under both backends.
func Vet() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "-tags", backendTag, "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the default-backend binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
