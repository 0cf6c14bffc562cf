//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the charta binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/charta", "./cmd/charta")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}

// QA runs all quality assurance checks.
func QA() error {
	if err := sh.RunV("go", "fmt", "./..."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("⚠️  Staticcheck failed (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return Test()
}
