package entity

import (
	"html"
	"net/url"
	"strings"
)

// CountryNamer resolves a two letter country code to a display name.
// Unknown codes resolve to "".
type CountryNamer interface {
	Name(code string) string
}

// CountryName returns "" when the code is absent or unknown.
func (a *Address) CountryName(namer CountryNamer) string {
	if a.CountryCode == "" || namer == nil {
		return ""
	}

	return namer.Name(a.CountryCode)
}

// QueryString builds the URL-encoded geocoding query. Line 2 is left out.
func (a *Address) QueryString(namer CountryNamer) string {
	query := strings.TrimSpace(joinNonEmpty(",",
		a.Line1,
		a.City,
		a.Province,
		a.PostalCode,
		a.CountryName(namer),
	))
	if query == "" {
		return ""
	}

	return url.QueryEscape(query)
}

// FormattedParts returns the street, locality and country lines with empty ones dropped.
func (a *Address) FormattedParts(namer CountryNamer) []string {
	candidates := []string{
		joinNonEmpty(", ", a.Line1, a.Line2),
		joinNonEmpty(" ", a.City, a.Province, a.PostalCode),
		a.CountryName(namer),
	}

	parts := make([]string, 0, len(candidates))
	for _, part := range candidates {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

// FormattedLine joins the formatted parts with sep, ", " when sep is empty.
func (a *Address) FormattedLine(namer CountryNamer, sep string) string {
	if sep == "" {
		sep = ", "
	}

	return strings.Join(a.FormattedParts(namer), sep)
}

// FormattedBlock renders the parts as an HTML address element.
func (a *Address) FormattedBlock(namer CountryNamer) string {
	parts := a.FormattedParts(namer)
	if len(parts) == 0 {
		return ""
	}

	escaped := make([]string, len(parts))
	for i, part := range parts {
		escaped[i] = html.EscapeString(part)
	}

	return "<address>" + strings.Join(escaped, "<br>") + "</address>"
}

func joinNonEmpty(sep string, values ...string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}

	return strings.Join(kept, sep)
}
