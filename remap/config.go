package remap

import (
	"fmt"
	"io"
	"net/netip"

	"gopkg.in/yaml.v3"
)

// ruleConfig mirrors one entry of a YAML rules file.
type ruleConfig struct {
	From   string        `yaml:"from"`
	To     string        `yaml:"to"`
	Rank   *int          `yaml:"rank,omitempty"`
	Filter *filterConfig `yaml:"filter,omitempty"`
}

type filterConfig struct {
	Name    string   `yaml:"name,omitempty"`
	Action  string   `yaml:"action,omitempty"`
	Sources []string `yaml:"sources,omitempty"`
	Invert  bool     `yaml:"invert,omitempty"`
}

type rulesFile struct {
	Rules []ruleConfig `yaml:"rules"`
}

// ParseRules builds a Map from YAML rule data. The file holds a "rules"
// list; each entry has "from" and "to", an optional "rank" (defaulting to
// the entry's position in the file, so earlier rules win) and an optional
// "filter" with "action" ("allow" or "deny"), "sources" (addresses or
// CIDR prefixes), "invert" and "name".
func ParseRules(data []byte) (*Map, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("remap: parse rules: %w", err)
	}

	m := NewMap()

	for i, rc := range file.Rules {
		rule := Rule{
			From: rc.From,
			To:   rc.To,
			Rank: i,
		}

		if rc.Rank != nil {
			rule.Rank = *rc.Rank
		}

		if rc.Filter != nil {
			f, err := rc.Filter.filter()
			if err != nil {
				return nil, fmt.Errorf("remap: rule %d: %w", i, err)
			}
			rule.Filter = f
		}

		if _, err := m.AddRule(rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return m, nil
}

// LoadRules reads YAML rule data from r and builds a Map from it.
func LoadRules(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("remap: read rules: %w", err)
	}

	return ParseRules(data)
}

func (fc *filterConfig) filter() (*Filter, error) {
	f := &Filter{
		Name:   fc.Name,
		Invert: fc.Invert,
	}

	switch fc.Action {
	case "", "allow":
		f.Action = Allow
	case "deny":
		f.Action = Deny
	default:
		return nil, fmt.Errorf("unknown filter action %q", fc.Action)
	}

	for _, src := range fc.Sources {
		p, err := parseSource(src)
		if err != nil {
			return nil, err
		}
		f.Sources = append(f.Sources, p)
	}

	return f, nil
}

// parseSource accepts a CIDR prefix or a bare address, which is treated
// as a single-address prefix.
func parseSource(src string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(src); err == nil {
		return p, nil
	}

	addr, err := netip.ParseAddr(src)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid filter source %q", src)
	}

	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
