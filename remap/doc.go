// Package remap maintains a table of host/path remap rules and resolves
// incoming requests against it, backed by the ranktrie prefix index.
//
// Each rule maps a host with an optional path prefix to a target. Rules
// overlapping on a key are ordered by rank (lower wins); rules with equal
// rank resolve to the most specific one. By default a rule's rank is its
// registration order, so earlier rules take priority.
//
// # Registering Rules
//
// Rules can be added with the builder:
//
//	m := remap.NewMap()
//
//	_, err := m.NewRule().
//		From("example.com/api").
//		To("http://api.internal:8080").
//		Add()
//
// or loaded from a YAML file:
//
//	rules:
//	  - from: example.com/api
//	    to: http://api.internal:8080
//	  - from: example.com
//	    to: http://web.internal:8080
//	  - from: ""
//	    to: http://default.internal:8080
//	    rank: 1000
//
// An empty "from" registers a catch-all rule; give it a high rank so
// specific rules win over it.
//
// # Resolving
//
//	rule, ok := m.Lookup("example.com", "/api/users")
//	// ok == true, rule.To == "http://api.internal:8080"
//
// Host names are normalized to lowercase ASCII per RFC 5890 (IDNA) on
// both registration and lookup, so "EXAMPLE.com" and "xn--..." forms
// resolve consistently.
//
// # Filters
//
// A rule may carry an ACL-style source filter. LookupAddr applies it:
//
//	rule, err := m.LookupAddr("example.com", "/admin", srcAddr)
//	if errors.Is(err, remap.ErrFiltered) {
//		// matched a rule, but the source address is denied
//	}
//
// # Concurrency
//
// Map has the same discipline as the underlying trie: populate it fully,
// publish it, then only look it up. To change a live table, build a new
// Map and swap a pointer to it.
package remap
