// Package country resolves ISO 3166-1 alpha-2 codes with the CLDR data shipped in golang.org/x/text.
package country

import (
	"strings"

	"addressable/internal/domain/service"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type directory struct {
	namer display.Namer
}

// NewDirectory returns a directory with English country names.
func NewDirectory() service.CountryDirectory {
	return &directory{namer: display.English.Regions()}
}

func (d *directory) IsValid(code string) bool {
	_, ok := d.region(code)

	return ok
}

func (d *directory) Name(code string) string {
	region, ok := d.region(code)
	if !ok {
		return ""
	}

	return d.namer.Name(region)
}

func (d *directory) region(code string) (language.Region, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || !isASCIILetters(code) {
		return language.Region{}, false
	}

	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return language.Region{}, false
	}

	// ParseRegion canonicalizes deprecated codes; only accept the code as given.
	if region.String() != code {
		return language.Region{}, false
	}

	return region, true
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
