// SPDX-License-Identifier: MPL-2.0

// clistart-demo exercises the framework end to end: nested commands with
// aliases, option groups with mandatory and enumerated options, and an
// embedded script runner.
package main

import (
	"fmt"
	"os"

	"clistart/internal/config"
	"clistart/internal/issue"
	"clistart/internal/manifest"
	"clistart/internal/update"
	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cmdtree"
)

// Version is the fallback version when no descriptor is found (set via -ldflags).
var Version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	host, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		host = config.DefaultConfig()
	}

	app, err := cliapp.New(loadManifest(),
		cliapp.WithHostConfig(host),
		cliapp.WithUpdateChecker(&update.StaticChecker{Latest: Version}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return int(clierr.ExitPrerequisites)
	}

	for _, spec := range commandSpecs() {
		if addErr := app.Add(spec); addErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", addErr)
			return int(clierr.ExitPrerequisites)
		}
	}

	return int(app.Run(os.Args[1:]))
}

// loadManifest reads the package descriptor from the current directory or
// one of its parents, falling back to the build-time values when none is
// found. A present but invalid descriptor is surfaced with guidance.
func loadManifest() *manifest.Manifest {
	path, err := manifest.Locate(".")
	if err == nil {
		m, loadErr := manifest.Load(path)
		if loadErr == nil {
			return m
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", loadErr)
		if guidance, renderErr := issue.Get(issue.DescriptorParseErrorId).Render("auto"); renderErr == nil {
			fmt.Fprintln(os.Stderr, guidance)
		}
	}
	return &manifest.Manifest{
		Name:        "clistart-demo",
		Version:     Version,
		Description: "Demo of the clistart command framework",
	}
}

func commandSpecs() []cmdtree.Spec {
	return []cmdtree.Spec{
		copySpec(),
		configSpec(),
		buildSpec(),
		multiSpec(),
		runSpec(),
	}
}
