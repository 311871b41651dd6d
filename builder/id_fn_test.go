package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsaviz/builder"
)

// TestIDFns checks each ID scheme on valid inputs and its panic contract.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Default_zero", builder.DefaultIDFn, 0, "0", false},
		{"Default_multi", builder.DefaultIDFn, 123, "123", false},
		{"Symbol_min", builder.SymbolIDFn, 0, "A", false},
		{"Symbol_max", builder.SymbolIDFn, 25, "Z", false},
		{"Symbol_neg", builder.SymbolIDFn, -1, "", true},
		{"Symbol_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"Excel_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"Excel_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"Excel_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"Excel_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"Prefix", builder.PrefixIDFn("n"), 7, "n7", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCanvas(0, 10) })
	assert.Panics(t, func() { builder.WithMargin(-1) })
}
