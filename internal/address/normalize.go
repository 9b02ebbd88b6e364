// Package address canonicalizes postal addresses before they are sent to
// the carrier-aggregation service.
package address

import "strings"

// Address is the normalized postal address shape shared by the seller and
// buyer variants. Optional fields are empty strings when absent.
type Address struct {
	Name        string
	Company     string
	Street1     string
	Street2     string
	City        string
	State       string
	Zip         string
	Country     string
	Phone       string
	Email       string
	Residential bool
}

// stateNames maps USPS state abbreviations to the full names the carrier
// service expects.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// streetAbbrevs is applied in order; the dotted form of each abbreviation
// is tried before the bare one.
var streetAbbrevs = []struct{ abbrev, full string }{
	{"ST.", "STREET"}, {"ST ", "STREET "},
	{"RD.", "ROAD"}, {"RD ", "ROAD "},
	{"AVE.", "AVENUE"}, {"AVE ", "AVENUE "},
	{"BLVD.", "BOULEVARD"}, {"BLVD ", "BOULEVARD "},
	{"LN.", "LANE"}, {"LN ", "LANE "},
	{"DR.", "DRIVE"}, {"DR ", "DRIVE "},
}

// Normalize returns the canonical form of addr. It never fails: malformed
// input still yields a best-effort result, and normalizing an already
// normalized address is a no-op.
func Normalize(addr Address) Address {
	out := addr

	out.Name = strings.TrimSpace(addr.Name)
	out.Company = strings.TrimSpace(addr.Company)
	out.Street1 = ExpandStreet(addr.Street1)
	out.Street2 = strings.TrimSpace(addr.Street2)
	out.City = strings.TrimSpace(addr.City)
	out.State = ExpandState(addr.State)
	out.Zip = truncateZip(addr.Zip)
	out.Country = strings.ToUpper(strings.TrimSpace(addr.Country))
	out.Phone = strings.TrimSpace(addr.Phone)
	out.Email = strings.TrimSpace(addr.Email)

	return out
}

// ExpandState converts a two-letter state abbreviation into its full
// name. Unrecognized values pass through trimmed.
func ExpandState(state string) string {
	trimmed := strings.TrimSpace(state)
	if full, ok := stateNames[strings.ToUpper(trimmed)]; ok {
		return full
	}
	return trimmed
}

// ExpandStreet expands the common street-type abbreviations in a street
// line, applying each replacement once in fixed order.
func ExpandStreet(street string) string {
	s := strings.TrimSpace(street)
	for _, r := range streetAbbrevs {
		s = strings.ReplaceAll(s, r.abbrev, r.full)
	}
	return s
}

func truncateZip(zip string) string {
	z := strings.TrimSpace(zip)
	if len(z) > 5 {
		return z[:5]
	}
	return z
}
