package countries

import (
	"maps"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// System defines read access to the country catalog.
type System interface {
	// Lookup returns the record stored under name, or the empty Country.
	// Matching is exact.
	Lookup(name string) Country

	// Canonical resolves name to its catalog key ignoring case,
	// so "kenya" resolves to "Kenya".
	Canonical(name string) (string, bool)

	// Names returns the catalog keys in collation order.
	Names() []string
}

type catalog struct {
	entries map[string]Country
}

// New creates the catalog from the built-in records.
func New() System {
	return NewFromRecords(records)
}

// NewFromRecords creates a catalog keyed by each record's Name.
func NewFromRecords(list []Country) System {
	entries := make(map[string]Country, len(list))
	for _, c := range list {
		entries[c.Name] = c
	}
	return &catalog{entries: entries}
}

func (c *catalog) Lookup(name string) Country {
	return c.entries[name]
}

func (c *catalog) Canonical(name string) (string, bool) {
	if _, ok := c.entries[name]; ok {
		return name, true
	}

	fold := cases.Fold()
	target := fold.String(name)
	for key := range c.entries {
		if fold.String(key) == target {
			return key, true
		}
	}
	return "", false
}

func (c *catalog) Names() []string {
	names := slices.Collect(maps.Keys(c.entries))
	collate.New(language.English).SortStrings(names)
	return names
}

var records = []Country{
	{
		Name:       "Kenya",
		Population: "55.1 million",
		GDP:        "US$113.4 billion",
		RiskLevel:  RiskHigh,
		KeyIndustries: []string{
			"Agriculture",
			"Tourism",
			"Manufacturing",
			"Financial services",
		},
		ClimateRisks: []string{
			"Recurrent drought",
			"Flooding",
			"Rising temperatures",
			"Erratic rainfall",
		},
		GenderedClimateImpact: []string{
			"Women travel further to collect water during drought",
			"Female smallholders have limited access to credit and land titles",
			"Girls are withdrawn from school when household income falls",
		},
		VulnerableSectors: []string{
			"Agriculture",
			"Water",
			"Livestock",
			"Health",
		},
		GovernmentInitiatives: []string{
			"National Climate Change Action Plan",
			"Climate Change Act 2016",
			"County Climate Change Fund",
		},
		InternationalPartners: []string{
			"UNDP",
			"World Bank",
			"Green Climate Fund",
		},
		KeyChallenges: []string{
			"Limited adaptation finance",
			"Dependence on rain-fed agriculture",
			"Gaps in local climate data",
		},
	},
}
