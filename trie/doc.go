// Package trie animates a prefix tree over lower-case words.
//
// Words are trimmed and lower-cased before they touch the trie. Insert walks
// one node per character, emitting visit for an existing node and place for a
// new one, and ends with done (or found when the word was already stored).
// Suggest walks the prefix the same way, then collects every word below the
// prefix node depth-first (one highlight step each) and ends with
// done{Suggestions}: sorted lexicographically and capped at MaxSuggestions.
// An empty prefix yields no suggestions; a prefix that leaves the trie ends
// with not-found.
package trie
