package entity

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Flag is an address role such as primary or billing.
type Flag string

const (
	FlagPrimary  Flag = "primary"
	FlagBilling  Flag = "billing"
	FlagShipping Flag = "shipping"
)

// flagColumns is the static flag table. A new flag needs an entry here,
// a field on Address and a migration adding its column.
var flagColumns = map[Flag]string{
	FlagPrimary:  "is_primary",
	FlagBilling:  "is_billing",
	FlagShipping: "is_shipping",
}

// SupportedFlags lists every flag the schema knows about.
func SupportedFlags() []Flag {
	return []Flag{FlagPrimary, FlagBilling, FlagShipping}
}

// IsSupported reports whether the flag has a column.
func (f Flag) IsSupported() bool {
	_, ok := flagColumns[f]

	return ok
}

// Column is the storage column of the flag. It doubles as the attribute key.
func (f Flag) Column() string {
	return flagColumns[f]
}

func (f Flag) String() string {
	return string(f)
}

// FlagSet is the ordered list of flags enabled by configuration.
type FlagSet struct {
	flags []Flag
}

// ParseFlags resolves configured flag names once at startup.
func ParseFlags(names []string) (FlagSet, error) {
	flags := make([]Flag, 0, len(names))
	for _, name := range names {
		f := Flag(strings.ToLower(strings.TrimSpace(name)))
		if !f.IsSupported() {
			return FlagSet{}, errors.Errorf("unsupported address flag %q", name)
		}
		if slices.Contains(flags, f) {
			return FlagSet{}, errors.Errorf("duplicate address flag %q", name)
		}
		flags = append(flags, f)
	}

	return FlagSet{flags: flags}, nil
}

// MustParseFlags is ParseFlags for static flag lists.
func MustParseFlags(names ...string) FlagSet {
	set, err := ParseFlags(names)
	if err != nil {
		panic(err)
	}

	return set
}

// Flags returns a copy of the enabled flags in configured order.
func (s FlagSet) Flags() []Flag {
	return slices.Clone(s.flags)
}

// Has reports whether f is enabled.
func (s FlagSet) Has(f Flag) bool {
	return slices.Contains(s.flags, f)
}

// Columns returns the is_<flag> column of every enabled flag.
func (s FlagSet) Columns() []string {
	columns := make([]string, 0, len(s.flags))
	for _, f := range s.flags {
		columns = append(columns, f.Column())
	}

	return columns
}

func (s FlagSet) Len() int {
	return len(s.flags)
}
