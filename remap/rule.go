package remap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/idna"
)

// Rule is one remap entry: requests whose host and path fall under From
// are directed to To.
type Rule struct {
	// ID uniquely identifies the rule. AddRule assigns one when zero.
	ID uuid.UUID

	// From is the match key: a host name optionally followed by a path
	// prefix, e.g. "example.com", "example.com/api" or "/static" for a
	// host-independent path rule. Empty matches every request. The host
	// part may be an internationalized name; it is normalized to
	// lowercase ASCII on registration. Ports and bracketed IPv6 literals
	// are not supported.
	From string

	// To is the rewrite target handed back to the caller on a match. The
	// package does not interpret it.
	To string

	// Rank orders overlapping rules: lower wins, and among equal ranks
	// the more specific From wins. The builder defaults it to the
	// registration order.
	Rank int

	// Filter optionally restricts the rule by source address; it is
	// consulted by LookupAddr only.
	Filter *Filter
}

// key returns the trie key for the rule: normalized host followed by the
// path prefix.
func (r *Rule) key() ([]byte, error) {
	host, path, found := strings.Cut(r.From, "/")

	key, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	if found {
		key += "/" + path
	}

	return []byte(key), nil
}

// normalizeHost maps host to its lowercase ASCII (IDNA lookup) form so
// that registration and lookup agree on a single spelling. An empty host
// stays empty.
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidHost, host, err)
	}

	return ascii, nil
}

// RuleBuilder configures a rule before it is added to a Map. Create one
// with Map.NewRule, chain the setters, and call Add.
type RuleBuilder struct {
	m       *Map
	rule    Rule
	rankSet bool
}

// From sets the rule's match key.
func (b *RuleBuilder) From(from string) *RuleBuilder {
	b.rule.From = from
	return b
}

// To sets the rule's rewrite target.
func (b *RuleBuilder) To(to string) *RuleBuilder {
	b.rule.To = to
	return b
}

// Rank sets the rule's rank explicitly. Without it the rule ranks by
// registration order.
func (b *RuleBuilder) Rank(rank int) *RuleBuilder {
	b.rule.Rank = rank
	b.rankSet = true

	return b
}

// Filter attaches a source filter to the rule.
func (b *RuleBuilder) Filter(f *Filter) *RuleBuilder {
	b.rule.Filter = f
	return b
}

// Add registers the rule with the Map and returns the stored rule.
func (b *RuleBuilder) Add() (*Rule, error) {
	if !b.rankSet {
		b.rule.Rank = b.m.Len()
	}

	return b.m.AddRule(b.rule)
}
