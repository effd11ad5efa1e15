package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag defaults on",
			registry: New(nil),
			flag:     FlagRenderCache,
			expected: true,
		},
		{
			name:     "known flag turned off",
			registry: New(map[string]bool{FlagExternalDiff: false}),
			flag:     FlagExternalDiff,
			expected: false,
		},
		{
			name:     "unknown flag set to true returns true",
			registry: New(map[string]bool{"feature-a": true}),
			flag:     "feature-a",
			expected: true,
		},
		{
			name:     "unknown unset flag returns false",
			registry: New(map[string]bool{"feature-a": true}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry uses defaults",
			registry: nil,
			flag:     FlagExternalDiff,
			expected: true,
		},
		{
			name:     "nil registry unknown flag returns false",
			registry: nil,
			flag:     "any-flag",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All(t *testing.T) {
	require.Equal(t, map[string]bool{"a": true, "b": false}, New(map[string]bool{"a": true, "b": false}).All())
	require.Equal(t, map[string]bool{}, New(nil).All())

	var nilRegistry *Registry
	require.Equal(t, map[string]bool{}, nilRegistry.All())
}

func TestRegistry_CopiesInput(t *testing.T) {
	original := map[string]bool{FlagRenderCache: false}
	r := New(original)

	original[FlagRenderCache] = true
	got := r.All()
	got["new-flag"] = true

	require.False(t, r.Enabled(FlagRenderCache))
	require.False(t, r.Enabled("new-flag"))
}
