package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculateBump tests the bump reduction over commit records
func TestCalculateBump(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		expected Bump
	}{
		{
			name:     "empty sequence",
			messages: nil,
			expected: BumpNone,
		},
		{
			name:     "fix and docs",
			messages: []string{"fix: correct null pointer", "docs: update readme"},
			expected: BumpPatch,
		},
		{
			name:     "feat dominates fix",
			messages: []string{"feat: add export endpoint", "fix: typo"},
			expected: BumpMinor,
		},
		{
			name:     "breaking dominates everything",
			messages: []string{"fix: a", "feat: b", "fix!: c"},
			expected: BumpMajor,
		},
		{
			name:     "breaking first still major",
			messages: []string{"fix!: c", "feat: b", "fix: a"},
			expected: BumpMajor,
		},
		{
			name:     "perf is patch",
			messages: []string{"perf: avoid extra allocation"},
			expected: BumpPatch,
		},
		{
			name:     "chore alone is none",
			messages: []string{"chore: update deps"},
			expected: BumpNone,
		},
		{
			name:     "non-conventional excluded",
			messages: []string{"random unformatted message"},
			expected: BumpNone,
		},
		{
			name:     "breaking chore is major",
			messages: []string{"chore!: drop go 1.21 support"},
			expected: BumpMajor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]CommitRecord, 0, len(tt.messages))
			for _, m := range tt.messages {
				records = append(records, Classify(m))
			}
			assert.Equal(t, tt.expected, CalculateBump(records, DefaultConfig()))
		})
	}
}

// TestCalculateBumpMonotonic verifies the reduction is a max over
// concatenation: bump(s1 ++ s2) == max(bump(s1), bump(s2))
func TestCalculateBumpMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	sequences := [][]string{
		nil,
		{"docs: x"},
		{"fix: x"},
		{"perf: x", "chore: y"},
		{"feat: x"},
		{"feat!: x"},
		{"fix: a", "feat: b"},
		{"nonsense", "fix: c"},
	}

	classify := func(messages []string) []CommitRecord {
		records := make([]CommitRecord, 0, len(messages))
		for _, m := range messages {
			records = append(records, Classify(m))
		}
		return records
	}

	for _, s1 := range sequences {
		for _, s2 := range sequences {
			left := CalculateBump(classify(s1), cfg)
			right := CalculateBump(classify(s2), cfg)
			combined := CalculateBump(classify(append(append([]string{}, s1...), s2...)), cfg)

			assert.Equal(t, left.max(right), combined,
				"bump(%v ++ %v) should equal max of parts", s1, s2)
		}
	}
}

// TestCalculateBumpUnconfiguredType verifies types outside the configured set are excluded
func TestCalculateBumpUnconfiguredType(t *testing.T) {
	cfg := &Config{Types: map[string]TypeRule{
		"fix": {Bump: BumpPatch, Section: SectionBugFixes},
	}}

	records := []CommitRecord{
		{Type: "feat", Description: "not in config", Conventional: true},
	}
	assert.Equal(t, BumpNone, CalculateBump(records, cfg))

	records = append(records, Classify("fix: still counts"))
	assert.Equal(t, BumpPatch, CalculateBump(records, cfg))
}

// TestParseBump tests bump token parsing
func TestParseBump(t *testing.T) {
	tests := []struct {
		token       string
		expected    Bump
		expectError bool
	}{
		{token: "none", expected: BumpNone},
		{token: "", expected: BumpNone},
		{token: "patch", expected: BumpPatch},
		{token: "minor", expected: BumpMinor},
		{token: "major", expected: BumpMajor},
		{token: "Major", expected: BumpMajor},
		{token: "  patch  ", expected: BumpPatch},
		{token: "huge", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b, err := ParseBump(tt.token)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidBump)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

// TestBumpString verifies tokens round-trip through String and ParseBump
func TestBumpString(t *testing.T) {
	for _, b := range []Bump{BumpNone, BumpPatch, BumpMinor, BumpMajor} {
		parsed, err := ParseBump(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}
