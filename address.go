package main

import (
	"regexp"
	"strings"
)

// US ZIP, optionally with the +4 extension.
var zipCodeRe = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)

// AddressParts is a non-authoritative split of a free-text address into
// the two lines the invite layout wants. When no confident split exists
// the whole address lands on the street line.
type AddressParts struct {
	Street       string `json:"street"`
	CityStateZip string `json:"city_state_zip"`
}

func splitAddress(address string) AddressParts {
	address = strings.TrimSpace(address)
	if address == "" {
		return AddressParts{}
	}

	segs := strings.Split(address, ",")
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	if len(parts) >= 3 && zipCodeRe.MatchString(parts[len(parts)-1]) {
		return AddressParts{
			Street:       parts[0],
			CityStateZip: strings.Join(parts[1:], ", "),
		}
	}
	if len(parts) >= 2 && zipCodeRe.MatchString(parts[len(parts)-1]) {
		return AddressParts{
			Street:       parts[0],
			CityStateZip: parts[len(parts)-1],
		}
	}
	return AddressParts{Street: address}
}
