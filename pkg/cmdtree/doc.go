// SPDX-License-Identifier: MPL-2.0

// Package cmdtree implements the command registry and the character trie
// used to resolve possibly abbreviated, possibly aliased command words.
//
// A Registry holds the logical tree of command nodes (each with a name,
// optional aliases, an opaque handler and optional subcommands). From its
// declared spellings it builds a character-indexed prefix trie that supports
// unambiguous-prefix lookup: "cop" resolves to "copy" as long as no other
// spelling shares that prefix. Lookup failures are typed so callers can
// distinguish an unknown word, an ambiguous abbreviation and a word that
// overshoots a unique match (a likely typo).
//
// Registries and their tries are built once and are read-only afterwards;
// lookups are safe to share across repeated invocations in one process.
package cmdtree
