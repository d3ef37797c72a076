package remap

import (
	"fmt"
	"iter"
	"net/netip"

	"github.com/google/uuid"

	"github.com/vitalvas/ranktrie/trie"
)

// Map is a remap rule table. It owns the rules registered with it; the
// zero value is not usable, create one with NewMap.
type Map struct {
	rules *trie.Trie[Rule]
}

// NewMap returns an empty rule table.
func NewMap() *Map {
	return &Map{
		rules: trie.New[Rule](),
	}
}

// NewRule starts a builder for a rule to be added to the Map.
func (m *Map) NewRule() *RuleBuilder {
	return &RuleBuilder{m: m}
}

// AddRule registers rule and returns the stored copy. The rule's ID is
// assigned when zero. Registration fails with ErrDuplicateRule when a
// rule with the same match key already exists, and with ErrInvalidHost
// when the host part of From cannot be normalized.
func (m *Map) AddRule(rule Rule) (*Rule, error) {
	key, err := rule.key()
	if err != nil {
		return nil, err
	}

	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}

	stored := &rule
	if !m.rules.Insert(key, stored, rule.Rank) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateRule, rule.From)
	}

	return stored, nil
}

// Lookup resolves host and path against the table and returns the winning
// rule. path should carry its leading slash ("/api/users"); an empty path
// matches host-only rules. The second return value reports whether any
// rule matched.
func (m *Map) Lookup(host, path string) (*Rule, bool) {
	norm, err := normalizeHost(host)
	if err != nil {
		return nil, false
	}

	return m.rules.Search([]byte(norm + path))
}

// LookupAddr resolves host and path like Lookup and then applies the
// winning rule's source filter to src. It returns ErrRuleNotFound when
// nothing matches and ErrFiltered when the matched rule denies src.
func (m *Map) LookupAddr(host, path string, src netip.Addr) (*Rule, error) {
	rule, ok := m.Lookup(host, path)
	if !ok {
		return nil, fmt.Errorf("%w: %s%s", ErrRuleNotFound, host, path)
	}

	if !rule.Filter.Allows(src) {
		return nil, fmt.Errorf("%w: %s", ErrFiltered, src)
	}

	return rule, nil
}

// Rules iterates over the registered rules in registration order.
func (m *Map) Rules() iter.Seq[*Rule] {
	return m.rules.Values()
}

// Len returns the number of registered rules.
func (m *Map) Len() int {
	return m.rules.Len()
}

// Empty reports whether the table holds no rules.
func (m *Map) Empty() bool {
	return m.rules.Empty()
}

// Clear removes every rule, returning the table to the freshly
// constructed state.
func (m *Map) Clear() {
	m.rules.Clear()
}

// Dump writes the underlying index to tr for debugging.
func (m *Map) Dump(tr trie.Tracer) {
	m.rules.Dump(tr)
}
