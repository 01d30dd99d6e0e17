package senior

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutricalc/internal/errors"
)

func TestShippedPolicyMatchesDefault(t *testing.T) {
	p, err := Load(filepath.Join("..", "..", "policies", "senior_v1.hcl"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), p); diff != "" {
		t.Errorf("policies/senior_v1.hcl drifted from Default() (-want +got):\n%s", diff)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	want := Default()
	got, err := Parse(want.Encode(), "encoded.hcl")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCustomPolicy(t *testing.T) {
	src := `
version = "clinic-2026"

age_band {
  min_age = 70
  percent = -8
}

condition "COPD" {
  flat = 150
}
`
	p, err := Parse([]byte(src), "clinic.hcl")
	require.NoError(t, err)

	assert.Equal(t, "clinic-2026", p.Version)
	require.Len(t, p.Conditions, 1)
	require.NotNil(t, p.Conditions[0].Flat)
	assert.Nil(t, p.Conditions[0].Percent)

	// 2000 × 0.92 + 150
	assert.InDelta(t, 1990.0, p.Apply(2000, 72, []string{"copd"}).Calories, delta)
}

func TestParseRejectsInvalidPolicies(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		errType errors.Type
	}{
		{
			name:    "syntax error",
			src:     `version = `,
			errType: errors.TypeParsing,
		},
		{
			name:    "missing version attribute",
			src:     "age_band {\n  min_age = 65\n  percent = -5\n}\n",
			errType: errors.TypeParsing,
		},
		{
			name:    "unknown block",
			src:     "version = \"v\"\nrule {}\n",
			errType: errors.TypeParsing,
		},
		{
			name:    "empty version",
			src:     `version = ""`,
			errType: errors.TypePolicy,
		},
		{
			name:    "duplicate age band",
			src:     "version = \"v\"\nage_band {\n  min_age = 65\n  percent = -5\n}\nage_band {\n  min_age = 65\n  percent = -6\n}\n",
			errType: errors.TypePolicy,
		},
		{
			name:    "non-positive min age",
			src:     "version = \"v\"\nage_band {\n  min_age = 0\n  percent = -5\n}\n",
			errType: errors.TypePolicy,
		},
		{
			name:    "percent wipes out calories",
			src:     "version = \"v\"\nage_band {\n  min_age = 65\n  percent = -100\n}\n",
			errType: errors.TypePolicy,
		},
		{
			name:    "condition with both percent and flat",
			src:     "version = \"v\"\ncondition \"Diabetes\" {\n  percent = -5\n  flat = -50\n}\n",
			errType: errors.TypePolicy,
		},
		{
			name:    "condition with neither",
			src:     "version = \"v\"\ncondition \"Diabetes\" {\n}\n",
			errType: errors.TypePolicy,
		},
		{
			name:    "duplicate condition ignoring case",
			src:     "version = \"v\"\ncondition \"Diabetes\" {\n  percent = -5\n}\ncondition \"diabetes\" {\n  flat = -5\n}\n",
			errType: errors.TypePolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypePolicy))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
