package market

import "strings"

// sectorTable order is load-bearing: the first sector with a keyword match
// wins, which resolves names matching keywords of several sectors.
var sectorTable = []struct {
	name     string
	keywords []string
}{
	{"Healthcare", []string{"health", "medical", "care", "hospital", "omega"}},
	{"Mortgage", []string{"mortgage", "residential", "agnc", "investment corp"}},
	{"Industrial", []string{"prologis", "industrial", "warehouse", "logistics"}},
	{"Infrastructure", []string{"tower", "american tower", "crown castle", "cell"}},
	{"Data Centers", []string{"equinix", "digital", "data", "center"}},
	{"Retail", []string{"simon", "property", "retail", "mall", "shopping"}},
	{"Office", []string{"office", "boston properties", "commercial"}},
	{"Residential", []string{"apartment", "residential", "multi-family"}},
	{"Hotel", []string{"hotel", "lodging", "hospitality", "host"}},
}

func ClassifySector(name string) string {
	nameLower := strings.ToLower(name)
	for _, sector := range sectorTable {
		for _, keyword := range sector.keywords {
			if strings.Contains(nameLower, keyword) {
				return sector.name
			}
		}
	}
	return "Mixed"
}
