// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"slices"
	"testing"
)

// handlerID is a throwaway handler payload for registration tests.
type handlerID string

func mustAdd(t *testing.T, r *Registry, spec Spec) *Node {
	t.Helper()
	n, err := r.Add(spec)
	if err != nil {
		t.Fatalf("Add(%q): unexpected error: %v", spec.Name, err)
	}
	return n
}

func newCopyConfRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	mustAdd(t, r, Spec{Name: "copy", Handler: handlerID("copy")})
	mustAdd(t, r, Spec{Name: "conf", Handler: handlerID("conf")})
	return r
}

func TestResolve_UniquePrefix(t *testing.T) {
	t.Parallel()
	r := newCopyConfRegistry(t)

	tests := []struct {
		word string
		want string
	}{
		{word: "cop", want: "copy"},
		{word: "con", want: "conf"},
		{word: "copy", want: "copy"},
		{word: "COPY", want: "copy"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			res, err := r.Resolve([]string{tt.word})
			if err != nil {
				t.Fatalf("Resolve(%q): unexpected error: %v", tt.word, err)
			}
			if res.Node.Name() != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.word, res.Node.Name(), tt.want)
			}
		})
	}
}

func TestResolve_Failures(t *testing.T) {
	t.Parallel()
	r := newCopyConfRegistry(t)

	tests := []struct {
		word    string
		wantErr error
		wantMsg string
	}{
		{word: "co", wantErr: ErrNotUnique, wantMsg: "Command 'co' is not unique."},
		{word: "ca", wantErr: ErrNotSupported, wantMsg: "Command 'ca' is not supported."},
		{word: "copyy", wantErr: ErrMisspelled, wantMsg: "Command 'copyy' is not supported."},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			_, err := r.Resolve([]string{tt.word})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) error = %v, want %v", tt.word, err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Resolve(%q) message = %q, want %q", tt.word, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestResolve_AliasEquivalence(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	build := mustAdd(t, r, Spec{Name: "build", Aliases: []string{"b", "bild"}, Handler: handlerID("build")})

	for _, word := range []string{"b", "bi", "bild", "build"} {
		res, err := r.Resolve([]string{word})
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", word, err)
		}
		if res.Node != build {
			t.Errorf("Resolve(%q) resolved %q, want the 'build' node", word, res.Node.Name())
		}
	}

	_, err := r.Resolve([]string{"bildu"})
	if !errors.Is(err, ErrMisspelled) {
		t.Errorf("Resolve(\"bildu\") error = %v, want ErrMisspelled", err)
	}
}

func TestAdd_DuplicateRejection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		first  Spec
		second Spec
	}{
		{
			name:   "same name",
			first:  Spec{Name: "copy", Handler: handlerID("a")},
			second: Spec{Name: "copy", Handler: handlerID("b")},
		},
		{
			name:   "alias collides with name",
			first:  Spec{Name: "copy", Handler: handlerID("a")},
			second: Spec{Name: "clone", Aliases: []string{"copy"}, Handler: handlerID("b")},
		},
		{
			name:   "name collides with alias",
			first:  Spec{Name: "build", Aliases: []string{"b"}, Handler: handlerID("a")},
			second: Spec{Name: "b", Handler: handlerID("b")},
		},
		{
			name:   "case-insensitive collision",
			first:  Spec{Name: "copy", Handler: handlerID("a")},
			second: Spec{Name: "Copy", Handler: handlerID("b")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRegistry()
			mustAdd(t, r, tt.first)
			_, err := r.Add(tt.second)
			if !errors.Is(err, ErrDuplicateCommand) {
				t.Fatalf("Add duplicate error = %v, want ErrDuplicateCommand", err)
			}
			var dup *DuplicateCommandError
			if !errors.As(err, &dup) {
				t.Fatalf("Add duplicate error is not a *DuplicateCommandError: %v", err)
			}
		})
	}
}

func TestAdd_EmptyCommandRejected(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_, err := r.Add(Spec{Name: "ghost"})
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Add(no handler, no subcommands) error = %v, want ErrEmptyCommand", err)
	}
}

func TestBuild_EmptyRegistry(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Build(); !errors.Is(err, ErrNoCommands) {
		t.Errorf("Build() on empty registry = %v, want ErrNoCommands", err)
	}
}

func newCopyTreeRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	mustAdd(t, r, Spec{
		Name: "copy",
		Subcommands: []Spec{
			{Name: "binary", Aliases: []string{"by"}, Handler: handlerID("binary")},
			{Name: "ascii", Aliases: []string{"ai"}, Handler: handlerID("ascii")},
			{Name: "utf", Aliases: []string{"alt"}, Handler: handlerID("utf")},
		},
	})
	return r
}

func TestResolve_Subcommands(t *testing.T) {
	t.Parallel()
	r := newCopyTreeRegistry(t)

	res, err := r.Resolve([]string{"copy", "binary"})
	if err != nil {
		t.Fatalf("Resolve(copy binary): unexpected error: %v", err)
	}
	if res.Node.Name() != "binary" {
		t.Errorf("Resolve(copy binary) = %q, want 'binary'", res.Node.Name())
	}

	// Abbreviations work per level; 'b' only matches spellings of the
	// binary node, so it resolves even though 'by' shares the prefix.
	res, err = r.Resolve([]string{"c", "b"})
	if err != nil {
		t.Fatalf("Resolve(c b): unexpected error: %v", err)
	}
	if res.Node.Name() != "binary" {
		t.Errorf("Resolve(c b) = %q, want 'binary'", res.Node.Name())
	}

	// 'a' is shared by ascii, ai and alt, which span two distinct nodes.
	_, err = r.Resolve([]string{"c", "a"})
	if !errors.Is(err, ErrNotUnique) {
		t.Errorf("Resolve(c a) error = %v, want ErrNotUnique", err)
	}

	// 'u' and 'al' pin down the utf node.
	for _, word := range []string{"u", "al"} {
		res, err = r.Resolve([]string{"c", word})
		if err != nil {
			t.Fatalf("Resolve(c %s): unexpected error: %v", word, err)
		}
		if res.Node.Name() != "utf" {
			t.Errorf("Resolve(c %s) = %q, want 'utf'", word, res.Node.Name())
		}
	}
}

func TestResolve_MultiWordErrorNamesFullSequence(t *testing.T) {
	t.Parallel()
	r := newCopyTreeRegistry(t)

	_, err := r.Resolve([]string{"copy", "zzz"})
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Resolve(copy zzz) error = %v, want ErrNotSupported", err)
	}
	want := "Command 'copy zzz' is not supported."
	if err.Error() != want {
		t.Errorf("Resolve(copy zzz) message = %q, want %q", err.Error(), want)
	}
}

func TestResolve_RestBecomesPositional(t *testing.T) {
	t.Parallel()
	r := newCopyTreeRegistry(t)

	res, err := r.Resolve([]string{"copy", "binary", "input.bin", "output.bin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(res.Matched, []string{"copy", "binary"}) {
		t.Errorf("Matched = %v, want [copy binary]", res.Matched)
	}
	if !slices.Equal(res.Rest, []string{"input.bin", "output.bin"}) {
		t.Errorf("Rest = %v, want [input.bin output.bin]", res.Rest)
	}

	// An option-looking word stops resolution even when the current node
	// still has subcommands.
	res, err = r.Resolve([]string{"copy", "--force", "binary"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Node.Name() != "copy" {
		t.Errorf("resolved %q, want 'copy'", res.Node.Name())
	}
	if !slices.Equal(res.Rest, []string{"--force", "binary"}) {
		t.Errorf("Rest = %v, want [--force binary]", res.Rest)
	}
}

func TestNode_CanonicalPath(t *testing.T) {
	t.Parallel()
	r := newCopyTreeRegistry(t)

	// Resolve through aliases; the canonical path uses unaliased names.
	res, err := r.Resolve([]string{"c", "by"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Node.CanonicalPath(); !slices.Equal(got, []string{"copy", "binary"}) {
		t.Errorf("CanonicalPath() = %v, want [copy binary]", got)
	}
}

func TestRegistry_NamesAndLookup(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	mustAdd(t, r, Spec{Name: "verify", Handler: handlerID("v")})
	mustAdd(t, r, Spec{Name: "build", Handler: handlerID("b")})
	mustAdd(t, r, Spec{Name: "clean", Handler: handlerID("c")})

	if got := r.Names(); !slices.Equal(got, []string{"build", "clean", "verify"}) {
		t.Errorf("Names() = %v, want alphabetical order", got)
	}

	if _, ok := r.Lookup("BUILD"); !ok {
		t.Error("Lookup(\"BUILD\") should find the build node case-insensitively")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(\"missing\") should not find anything")
	}
}

func TestResolve_NamespaceWithHandlerKeepsPositionals(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	node := mustAdd(t, r, Spec{Name: "remote", Handler: handlerID("remote")})
	if _, err := node.Add(Spec{Name: "add", Handler: handlerID("remote-add")}); err != nil {
		t.Fatalf("Add subcommand: %v", err)
	}

	res, err := r.Resolve([]string{"remote", "add", "origin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Node.Name() != "add" {
		t.Errorf("resolved %q, want 'add'", res.Node.Name())
	}
	if !slices.Equal(res.Rest, []string{"origin"}) {
		t.Errorf("Rest = %v, want [origin]", res.Rest)
	}
}
