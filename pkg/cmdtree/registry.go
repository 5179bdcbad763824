// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type (
	// Handler is the opaque payload attached to a resolvable command node.
	// The registry never inspects it; the application layer decides what it
	// is (typically a command factory).
	Handler any

	// Spec declares one command for registration: its canonical name,
	// optional alias spellings, its handler and optional nested
	// subcommands. A Spec with subcommands but no handler declares a pure
	// namespace node; one with neither is rejected at registration time.
	Spec struct {
		Name        string
		Aliases     []string
		Handler     Handler
		Subcommands []Spec
	}

	// Node is one command in the logical tree. Nodes are created through
	// Registry.Add and are immutable once the registry is built.
	Node struct {
		name    string
		aliases []string
		handler Handler
		parent  *Node
		subs    *Registry
	}

	// Registry is the set of commands available at one level of the tree.
	// It owns the character trie built from its spellings. A Registry is
	// an explicit value with no process-wide shared state; build it once,
	// then treat it as read-only.
	Registry struct {
		byName map[string]*Node
		order  []string
		parent *Node
		trie   *trieNode
	}

	// Resolution is the successful outcome of resolving a word sequence.
	Resolution struct {
		// Node is the deepest command node the words reached.
		Node *Node
		// Matched holds the words consumed during resolution, as typed.
		Matched []string
		// Rest holds the words left over; they become positional
		// argument candidates for the options parse that follows.
		Rest []string
	}
)

// NewRegistry returns an empty top-level registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Node{}}
}

// Add registers a command (and, recursively, its declared subcommands).
// Name and alias comparison is case-insensitive; a collision with any
// sibling spelling is a construction-time error, as is a node declaring
// neither a handler nor subcommands.
func (r *Registry) Add(spec Spec) (*Node, error) {
	name := strings.ToLower(strings.TrimSpace(spec.Name))
	if name == "" {
		return nil, errors.New("command name must not be empty")
	}
	if spec.Handler == nil && len(spec.Subcommands) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyCommand, name)
	}

	spellings := make([]string, 0, 1+len(spec.Aliases))
	spellings = append(spellings, name)
	for _, a := range spec.Aliases {
		spellings = append(spellings, strings.ToLower(strings.TrimSpace(a)))
	}
	for _, s := range spellings {
		if owner := r.owner(s); owner != nil {
			return nil, &DuplicateCommandError{Spelling: s, Existing: owner.name}
		}
	}

	node := &Node{
		name:    name,
		aliases: spellings[1:],
		handler: spec.Handler,
		parent:  r.parent,
	}
	for _, sub := range spec.Subcommands {
		if _, err := node.Add(sub); err != nil {
			return nil, err
		}
	}

	r.byName[name] = node
	r.order = append(r.order, name)
	r.trie = nil
	return node, nil
}

// owner returns the sibling node already claiming the given spelling.
func (r *Registry) owner(spelling string) *Node {
	for _, n := range r.byName {
		if slices.Contains(n.Spellings(), spelling) {
			return n
		}
	}
	return nil
}

// Build constructs the character trie from every registered spelling and
// validates that the registry resolves at least one command. It recurses
// into subcommand registries so the whole tree is checked up front,
// before any user input is processed.
func (r *Registry) Build() error {
	trie := newTrie()
	for _, name := range r.order {
		node := r.byName[name]
		for _, s := range node.Spellings() {
			trie.insert(s, node)
		}
		if node.subs != nil {
			if err := node.subs.Build(); err != nil {
				return err
			}
		}
	}
	if !trie.hasTerminators() {
		return ErrNoCommands
	}
	r.trie = trie
	return nil
}

// ensureBuilt builds the trie on first use so callers that never call
// Build explicitly still get a validated registry.
func (r *Registry) ensureBuilt() error {
	if r.trie != nil {
		return nil
	}
	return r.Build()
}

// Resolve matches a sequence of words against the command tree, one word
// per level. Resolution stops at the deepest node reached: a word that
// looks like an option, or any word once the current node has no
// subcommands, is left in Rest for the caller's options parse. A word
// that fails to match at its level is a typed resolution error; the
// error for a multi-word path names the full sequence attempted.
func (r *Registry) Resolve(words []string) (*Resolution, error) {
	if err := r.ensureBuilt(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("no command words given")
	}

	reg := r
	var node *Node
	i := 0
	for i < len(words) {
		if reg == nil || len(reg.order) == 0 {
			break
		}
		w := words[i]
		if strings.HasPrefix(w, "-") {
			break
		}
		n, err := reg.trie.lookup(w)
		if err != nil {
			return nil, decorateLookupError(err, words[:i+1])
		}
		node = n
		i++
		reg = n.subs
		if reg != nil {
			if err := reg.ensureBuilt(); err != nil {
				return nil, err
			}
		}
	}
	if node == nil {
		return nil, &NotSupportedError{Words: words[0]}
	}
	return &Resolution{Node: node, Matched: words[:i], Rest: words[i:]}, nil
}

// decorateLookupError rewrites single-word trie failures so multi-word
// attempts report the whole sequence the user typed. Not-unique errors
// keep the single offending word; that is the documented diagnostic.
func decorateLookupError(err error, words []string) error {
	joined := strings.Join(words, " ")
	var ns *NotSupportedError
	if errors.As(err, &ns) {
		return &NotSupportedError{Words: joined}
	}
	var ms *MisspelledError
	if errors.As(err, &ms) {
		return &MisspelledError{Words: joined}
	}
	return err
}

// Lookup returns the node registered under the exact canonical name.
func (r *Registry) Lookup(name string) (*Node, bool) {
	n, ok := r.byName[strings.ToLower(name)]
	return n, ok
}

// Names returns the canonical command names in alphabetical order.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// Len returns the number of commands registered at this level.
func (r *Registry) Len() int { return len(r.order) }

// Name returns the canonical (unaliased) command name.
func (n *Node) Name() string { return n.name }

// Aliases returns the alias spellings, without the canonical name.
func (n *Node) Aliases() []string { return slices.Clone(n.aliases) }

// Spellings returns the canonical name followed by the aliases.
func (n *Node) Spellings() []string {
	return append([]string{n.name}, n.aliases...)
}

// Handler returns the opaque payload attached at registration.
func (n *Node) Handler() Handler { return n.handler }

// Parent returns the parent node, or nil for a top-level command.
func (n *Node) Parent() *Node { return n.parent }

// Subcommands returns the nested registry, or nil for a leaf command.
func (n *Node) Subcommands() *Registry { return n.subs }

// HasSubcommands reports whether the node is a (possibly also runnable)
// namespace with nested commands.
func (n *Node) HasSubcommands() bool {
	return n.subs != nil && n.subs.Len() > 0
}

// Add registers a subcommand under this node, creating the nested
// registry on first use.
func (n *Node) Add(spec Spec) (*Node, error) {
	if n.subs == nil {
		n.subs = &Registry{byName: map[string]*Node{}, parent: n}
	}
	return n.subs.Add(spec)
}

// CanonicalPath returns the unaliased words leading to this node,
// outermost first. Aliased lookups land on the same node, so the path is
// always the display form regardless of how the user spelled it.
func (n *Node) CanonicalPath() []string {
	var path []string
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.name)
	}
	slices.Reverse(path)
	return path
}
