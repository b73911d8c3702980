// Command gen-types emits TypeScript definitions of the selection and API
// payload types for the web presentation layer.
//
// Run from the repository root:
//
//	go run ./src/cmd/gen-types > src/internal/api/types.gen.ts
package main

import (
	"fmt"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"
)

func main() {
	golang, err := guts.NewGolangParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create parser: %v\n", err)
		os.Exit(1)
	}

	generatePackages := []string{
		"github.com/babydepdev/otp-network-setting-go/src/internal/selection",
		"github.com/babydepdev/otp-network-setting-go/src/internal/api",
	}
	for _, pkg := range generatePackages {
		if err := golang.IncludeGenerate(pkg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to include package %s: %v\n", pkg, err)
			os.Exit(1)
		}
	}

	ts, err := golang.ToTypescript()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert to TypeScript: %v\n", err)
		os.Exit(1)
	}

	ts.ApplyMutations(
		config.EnumLists,
		config.ExportTypes,
	)

	output, err := ts.Serialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize TypeScript: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
