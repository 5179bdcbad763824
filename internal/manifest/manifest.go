// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clistart/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
)

// DescriptorName is the file name of the package descriptor.
const DescriptorName = "clistart.toml"

// ErrDescriptorNotFound is returned by Locate when no descriptor exists
// anywhere between the start directory and the filesystem root.
var ErrDescriptorNotFound = errors.New("package descriptor not found")

//go:embed manifest_schema.cue
var manifestSchema string

// Manifest is the parsed package descriptor.
type Manifest struct {
	// Name is the program name as invoked from the shell.
	Name string `toml:"name"`
	// Version is the semantic version triplet.
	Version string `toml:"version"`
	// Description is the one-line description used as the help title.
	Description string `toml:"description"`
	// Homepage is the project page shown by --version.
	Homepage string `toml:"homepage"`
	License  string `toml:"license"`
}

// Load reads and validates the descriptor at path. The TOML is first
// decoded into a generic map and unified with the embedded CUE schema,
// so field-level violations carry the offending path; only then is it
// decoded into the typed Manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load package descriptor").
			WithResource(path).
			WithSuggestion("Create a " + DescriptorName + " next to your executable").
			Wrap(err).
			BuildError()
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse package descriptor").
			WithResource(path).
			WithSuggestion("Check the file for TOML syntax errors").
			Wrap(err).
			BuildError()
	}

	if err := validate(raw); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate package descriptor").
			WithResource(path).
			WithSuggestion("'name' and 'version' are required").
			WithSuggestion("'version' must be a semantic version like 1.2.3").
			Wrap(err).
			BuildError()
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode package descriptor: %w", err)
	}
	return &m, nil
}

// validate unifies the raw descriptor with the #Manifest schema and
// checks that every required field is present and concrete.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(manifestSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile manifest schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath("#Manifest"))
	if schemaRoot.Err() != nil {
		return fmt.Errorf("internal error: manifest schema definition not found: %w", schemaRoot.Err())
	}

	unified := schemaRoot.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}

// Locate walks from startDir toward the filesystem root looking for the
// descriptor, returning its absolute path.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, DescriptorName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched from %s upward", ErrDescriptorNotFound, startDir)
		}
		dir = parent
	}
}
