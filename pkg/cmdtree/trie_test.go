// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"testing"
)

func TestTrie_PayloadClearedOnSharedPrefix(t *testing.T) {
	t.Parallel()
	copyNode := &Node{name: "copy"}
	confNode := &Node{name: "conf"}

	trie := newTrie()
	trie.insert("copy", copyNode)
	trie.insert("conf", confNode)

	c := trie.children['c']
	if c.count != 2 {
		t.Errorf("node 'c' count = %d, want 2", c.count)
	}
	if c.cmd != nil {
		t.Error("node 'c' payload should be cleared once two commands share it")
	}
	if p := trie.children['c'].children['o'].children['p']; p.cmd != copyNode {
		t.Error("node 'cop' should keep the copy payload")
	}
}

func TestTrie_AliasOfSameCommandKeepsPayload(t *testing.T) {
	t.Parallel()
	build := &Node{name: "build"}

	trie := newTrie()
	trie.insert("build", build)
	trie.insert("b", build)
	trie.insert("bild", build)

	b := trie.children['b']
	if b.count != 3 {
		t.Errorf("node 'b' count = %d, want 3", b.count)
	}
	if b.cmd != build {
		t.Error("node 'b' payload should survive sharing between spellings of one command")
	}
}

func TestTrie_ExactNameBeatsLongerSibling(t *testing.T) {
	t.Parallel()
	copyNode := &Node{name: "copy"}
	copyAll := &Node{name: "copyall"}

	trie := newTrie()
	trie.insert("copy", copyNode)
	trie.insert("copyall", copyAll)

	got, err := trie.lookup("copy")
	if err != nil {
		t.Fatalf("lookup(copy): unexpected error: %v", err)
	}
	if got != copyNode {
		t.Errorf("lookup(copy) = %q, want the exact 'copy' node", got.name)
	}

	if _, err := trie.lookup("cop"); !errors.Is(err, ErrNotUnique) {
		t.Errorf("lookup(cop) error = %v, want ErrNotUnique", err)
	}

	got, err = trie.lookup("copya")
	if err != nil {
		t.Fatalf("lookup(copya): unexpected error: %v", err)
	}
	if got != copyAll {
		t.Errorf("lookup(copya) = %q, want 'copyall'", got.name)
	}
}

func TestTrie_HasTerminators(t *testing.T) {
	t.Parallel()
	trie := newTrie()
	if trie.hasTerminators() {
		t.Error("empty trie should have no terminators")
	}
	trie.insert("x", &Node{name: "x"})
	if !trie.hasTerminators() {
		t.Error("trie with one spelling should have a terminator")
	}
}
