//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "flipdeck"

// Default target to run when none is specified
var Default = Build

// Build builds the flipdeck binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, "./cmd/flipdeck")
}

// Install installs flipdeck into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/flipdeck")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes the built binary
func Clean() error {
	fmt.Println("Cleaning...")
	return os.RemoveAll(binaryName)
}
