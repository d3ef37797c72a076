// Package trie implements a priority-ranked prefix index over byte-string
// keys, designed for routing-table lookups: register a set of keys with
// attached values and integer ranks once, then resolve incoming keys
// against them on every request.
//
// A lookup walks the key from the front and considers every registered
// prefix of it, including the empty key. Among the prefixes found, the
// one with the lowest rank wins; among equal ranks, the longest (most
// specific) prefix wins. This is longest-prefix matching with an explicit
// priority override, not plain longest-prefix matching.
//
// # Usage
//
// Create a Trie, register entries, then search:
//
//	t := trie.New[string]()
//
//	api := "api backend"
//	site := "site backend"
//	t.Insert([]byte("example.com/api"), &api, 10)
//	t.Insert([]byte("example.com"), &site, 10)
//
//	v, ok := t.Search([]byte("example.com/api/users"))
//	// ok == true, *v == "api backend": deeper prefix wins on equal rank
//
//	v, ok = t.Search([]byte("example.com/static/app.js"))
//	// ok == true, *v == "site backend"
//
// A strictly lower rank beats a deeper match:
//
//	t2 := trie.New[string]()
//	t2.Insert([]byte("a"), &site, 1)
//	t2.Insert([]byte("ab"), &api, 10)
//	v, _ = t2.Search([]byte("ab")) // *v == "site backend": rank 1 beats depth
//
// # Keys
//
// Keys are raw byte strings over the full 0-255 alphabet; embedded zero
// bytes are ordinary key bytes. A nil or empty key denotes the root entry,
// which matches every search. Matching is byte-wise: "example.co" is a
// prefix of "example.com". Callers that need label-wise host semantics
// must encode keys accordingly.
//
// # Ownership
//
// The Trie owns every value inserted into it, in insertion order; Values
// iterates them and Clear drops them all at once. Individual entries
// cannot be removed. The Trie must not be copied.
//
// # Concurrency
//
// The Trie performs no internal locking. The intended discipline is
// build-then-publish: populate it fully before sharing it, then treat it
// as read-only. Search never mutates, so concurrent searches on a
// published Trie are safe; concurrent Insert or Clear is not. To update a
// live routing table, build a fresh Trie and swap a pointer to it.
package trie
