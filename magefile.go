//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs Build.
var Default = Build

// Build compiles the telatin binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "telatin", "./cmd/telatin")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/telatin")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("telatin")
}
