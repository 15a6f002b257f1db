//go:build unit

package pnr_test

import (
	"testing"

	"railbook/internal/pkg/pnr"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("always produces a valid pnr", func(t *testing.T) {
		for range 200 {
			code := pnr.Generate()
			assert.Len(t, code, pnr.Length)
			assert.True(t, pnr.IsValid(code), "generated %q", code)
		}
	})

	t.Run("draws are not constant", func(t *testing.T) {
		seen := map[string]bool{}
		for range 50 {
			seen[pnr.Generate()] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name string
		code string
		want bool
	}{
		{"valid", "4512873906", true},
		{"leading zero", "0512873906", false},
		{"too short", "451287390", false},
		{"too long", "45128739061", false},
		{"letters", "45128739AB", false},
		{"empty", "", false},
		{"spaces", " 4512873906", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pnr.IsValid(tc.code))
		})
	}
}
