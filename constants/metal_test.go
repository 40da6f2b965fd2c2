package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeMetal(t *testing.T) {
	cases := []struct {
		in      string
		want    MetalType
		matched bool
	}{
		{"stainless_steel", StainlessSteel, true},
		{"Stainless", StainlessSteel, true},
		{"304", StainlessSteel, true},
		{"aluminum", Aluminium, true},
		{"Galv", GalvanisedSteel, true},
		{"black steel", MildSteel, true},
		{"unknown", UnknownMetal, false},
		{"unobtainium", UnknownMetal, false},
		{"", UnknownMetal, false},
	}
	for _, tc := range cases {
		got, matched := CanonicalizeMetal(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.matched, matched, "input %q", tc.in)
	}
}

func TestCanonicalizePriceUnit(t *testing.T) {
	cases := []struct {
		in      string
		want    PriceUnit
		matched bool
	}{
		{"per_metre", PerMetre, true},
		{"/m", PerMetre, true},
		{"ea", PerEach, true},
		{"per sheet", PerSheet, true},
		{"sht", PerSheet, true},
		{"TONNE", PerTonne, true},
		{"carton", PerEach, false},
	}
	for _, tc := range cases {
		got, matched := CanonicalizePriceUnit(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.matched, matched, "input %q", tc.in)
	}
}
