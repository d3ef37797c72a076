package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleKey(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{name: "host only", from: "example.com", want: "example.com"},
		{name: "host and path", from: "example.com/api", want: "example.com/api"},
		{name: "uppercase host is lowered", from: "EXAMPLE.com/API", want: "example.com/API"},
		{name: "path only", from: "/healthz", want: "/healthz"},
		{name: "empty", from: "", want: ""},
		{name: "trailing slash is part of the key", from: "example.com/", want: "example.com/"},
		{name: "IDN host to punycode", from: "bücher.example", want: "xn--bcher-kva.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Rule{From: tt.from}

			key, err := r.key()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(key))
		})
	}

	t.Run("invalid host", func(t *testing.T) {
		r := &Rule{From: "exa mple.com/api"}

		_, err := r.key()
		assert.ErrorIs(t, err, ErrInvalidHost)
	})
}

func TestNormalizeHost(t *testing.T) {
	t.Run("empty host stays empty", func(t *testing.T) {
		got, err := normalizeHost("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ASCII host is lowered", func(t *testing.T) {
		got, err := normalizeHost("API.Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "api.example.com", got)
	})

	t.Run("IPv4 literal passes through", func(t *testing.T) {
		got, err := normalizeHost("192.0.2.10")
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.10", got)
	})
}

func TestRuleBuilder(t *testing.T) {
	t.Run("default rank is the registration order", func(t *testing.T) {
		m := NewMap()

		first, err := m.NewRule().From("a.example").To("a").Add()
		require.NoError(t, err)

		second, err := m.NewRule().From("b.example").To("b").Add()
		require.NoError(t, err)

		assert.Equal(t, 0, first.Rank)
		assert.Equal(t, 1, second.Rank)
	})

	t.Run("explicit rank is kept", func(t *testing.T) {
		m := NewMap()

		rule, err := m.NewRule().From("a.example").Rank(42).Add()
		require.NoError(t, err)
		assert.Equal(t, 42, rule.Rank)
	})

	t.Run("explicit rank zero is kept", func(t *testing.T) {
		m := NewMap()

		_, err := m.NewRule().From("a.example").Add()
		require.NoError(t, err)

		rule, err := m.NewRule().From("b.example").Rank(0).Add()
		require.NoError(t, err)
		assert.Zero(t, rule.Rank)
	})

	t.Run("builder sets all fields", func(t *testing.T) {
		m := NewMap()
		f := &Filter{Name: "lan"}

		rule, err := m.NewRule().
			From("example.com/api").
			To("http://backend").
			Rank(7).
			Filter(f).
			Add()
		require.NoError(t, err)

		assert.Equal(t, "example.com/api", rule.From)
		assert.Equal(t, "http://backend", rule.To)
		assert.Equal(t, 7, rule.Rank)
		assert.Same(t, f, rule.Filter)
	})
}
