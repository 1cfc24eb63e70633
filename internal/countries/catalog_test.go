package countries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/climate-atlas/internal/countries"
)

func TestLookup(t *testing.T) {
	sys := countries.New()

	kenya := sys.Lookup("Kenya")
	assert.Equal(t, "Kenya", kenya.Name)
	assert.Equal(t, countries.RiskHigh, kenya.RiskLevel)
	assert.NotEmpty(t, kenya.Population)
	assert.NotEmpty(t, kenya.GDP)
	assert.NotEmpty(t, kenya.GenderedClimateImpact)

	tests := []string{"France", "kenya", "KENYA", "", " Kenya"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			assert.True(t, sys.Lookup(name).IsZero())
		})
	}
}

func TestCanonical(t *testing.T) {
	sys := countries.New()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Kenya", "Kenya", true},
		{"kenya", "Kenya", true},
		{"KENYA", "Kenya", true},
		{"France", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sys.Canonical(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Kenya"}, countries.New().Names())

	sys := countries.NewFromRecords([]countries.Country{
		{Name: "Zambia"},
		{Name: "Égypte"},
		{Name: "Angola"},
		{Name: "Kenya"},
	})
	assert.Equal(t, []string{"Angola", "Égypte", "Kenya", "Zambia"}, sys.Names())
}
