package remap

import "net/netip"

// Action selects what a Filter does with traffic it matches.
type Action int

const (
	// Allow lets matching sources through.
	Allow Action = iota

	// Deny rejects matching sources.
	Deny
)

// Filter is an ACL-style source restriction attached to a single rule.
// It matches a set of source address prefixes and applies Action to them;
// sources outside the set pass through unaffected.
type Filter struct {
	// Name optionally labels the filter for diagnostics.
	Name string

	// Action is applied to sources the filter matches.
	Action Action

	// Sources lists the source prefixes the filter matches. Empty means
	// the filter matches every source.
	Sources []netip.Prefix

	// Invert makes the filter match sources outside Sources instead.
	Invert bool
}

// Match reports whether addr falls under the filter's source set, taking
// Invert into account.
func (f *Filter) Match(addr netip.Addr) bool {
	in := len(f.Sources) == 0

	for _, p := range f.Sources {
		if p.Contains(addr) {
			in = true
			break
		}
	}

	if f.Invert {
		in = !in
	}

	return in
}

// Allows reports whether the filter lets addr through. Sources the filter
// does not match are always allowed; a nil filter allows everything.
func (f *Filter) Allows(addr netip.Addr) bool {
	if f == nil {
		return true
	}

	if f.Match(addr) {
		return f.Action == Allow
	}

	return true
}
