// Package studio infers the organizational studio behind a role.
// The source API has no studio field, so we lean on the office name
// and, failing that, on studio names embedded in the job title.
package studio

import "strings"

// Default is used when neither the location nor the title gives a hit.
const Default = "Krafton"

// Names are scanned against the job title in order; first hit wins.
var Names = []string{
	"PUBG STUDIOS",
	"Bluehole Studio",
	"RisingWings",
	"Striking Distance Studios",
	"Dreamotion",
	"Unknown Worlds",
	"5minlab",
	"KRAFTON Montréal Studio",
	"ReLU Games",
	"Flyway Games",
	"OVERDARE",
}

// byLocation maps lowercased office names straight to a studio.
// A location hit always beats a title hit.
var byLocation = map[string]string{
	"san ramon, ca": "Striking Distance Studios",
	"montréal":      "KRAFTON Montréal Studio",
}

// Resolve is deterministic and does no I/O.
func Resolve(title, location string) string {
	if s, ok := byLocation[strings.ToLower(location)]; ok {
		return s
	}
	lower := strings.ToLower(title)
	for _, name := range Names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return Default
}
