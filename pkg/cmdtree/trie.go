// SPDX-License-Identifier: MPL-2.0

package cmdtree

import "strings"

// terminator is appended to every inserted spelling to mark "spelling ends
// here". It cannot occur in a real command name, so a child keyed by it is
// always an end-of-spelling node.
const terminator = '\x00'

// trieNode is one character of the prefix trie. count tracks how many
// registered spellings pass through the node; cmd is the resolved command
// while every spelling through the node belongs to one command, and is
// cleared the instant a second distinct command shares it, because a
// non-unique prefix can no longer be resolved unambiguously. Aliases of
// the same command never spoil each other's prefixes.
type trieNode struct {
	ch       rune
	count    int
	cmd      *Node
	children map[rune]*trieNode
}

// newTrie returns the root node. The root carries no character of its own;
// its zero ch is never compared against input.
func newTrie() *trieNode {
	return &trieNode{children: map[rune]*trieNode{}}
}

// insert adds one lowercased spelling plus the trailing terminator to the
// trie. Existing nodes get their count bumped and drop the payload when a
// different command starts sharing them; new nodes start with the command
// as payload.
func (t *trieNode) insert(spelling string, cmd *Node) {
	cur := t
	for _, ch := range strings.ToLower(spelling) + string(terminator) {
		child, ok := cur.children[ch]
		if !ok {
			child = &trieNode{ch: ch, count: 1, cmd: cmd, children: map[rune]*trieNode{}}
			cur.children[ch] = child
		} else {
			child.count++
			if child.cmd != cmd {
				child.cmd = nil
			}
		}
		cur = child
	}
}

// hasTerminators walks the trie and reports whether any end-of-spelling
// node exists. A trie without one resolves nothing at all, which is a
// configuration error on the registry that built it.
func (t *trieNode) hasTerminators() bool {
	for ch, child := range t.children {
		if ch == terminator {
			return true
		}
		if child.hasTerminators() {
			return true
		}
	}
	return false
}

// lookup resolves a single word against the trie. Comparison is done on
// the lowercased word. Classification of failures:
//
//   - a character that matches no child before any unique payload was
//     reached: the word is not supported;
//   - a character that matches no child after a unique payload was already
//     reached: the word overshoots a valid spelling, probably a typo;
//   - all characters consumed without reaching a unique payload or an
//     exact end-of-spelling: the abbreviation is not unique.
func (t *trieNode) lookup(word string) (*Node, error) {
	cur := t
	var matched *Node
	for _, ch := range strings.ToLower(word) {
		child, ok := cur.children[ch]
		if !ok {
			if matched != nil {
				return nil, &MisspelledError{Words: word}
			}
			return nil, &NotSupportedError{Words: word}
		}
		cur = child
		if cur.cmd != nil {
			matched = cur.cmd
		}
	}
	// An exact, fully spelled out name wins even when the last character
	// node is shared with a longer sibling spelling.
	if end, ok := cur.children[terminator]; ok && end.cmd != nil {
		return end.cmd, nil
	}
	if cur.cmd != nil {
		return cur.cmd, nil
	}
	return nil, &NotUniqueError{Word: word}
}
