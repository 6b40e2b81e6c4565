package element

// Type identifies a damage type.
type Type string

const (
	// Physical damage types
	Impact   Type = "impact"
	Puncture Type = "puncture"
	Slash    Type = "slash"

	// Basic elemental damage types
	Cold        Type = "cold"
	Electricity Type = "electricity"
	Heat        Type = "heat"
	Toxin       Type = "toxin"

	// Compound elemental damage types
	Blast     Type = "blast"
	Corrosive Type = "corrosive"
	Gas       Type = "gas"
	Magnetic  Type = "magnetic"
	Radiation Type = "radiation"
	Viral     Type = "viral"

	// Special damage types
	Void Type = "void"
	Tau  Type = "tau"
	True Type = "true_dmg"
)

// All lists every damage type in display order.
var All = []Type{
	Impact, Puncture, Slash,
	Cold, Electricity, Heat, Toxin,
	Blast, Corrosive, Gas, Magnetic, Radiation, Viral,
	Void, Tau, True,
}

var valid = func() map[Type]bool {
	m := make(map[Type]bool, len(All))
	for _, t := range All {
		m[t] = true
	}
	return m
}()

// Parse maps a string key to a damage type. The second return value
// reports whether the key names a known type.
func Parse(s string) (Type, bool) {
	t := Type(s)
	return t, valid[t]
}

// Basic reports whether t is one of the four combinable base elements.
func (t Type) Basic() bool {
	switch t {
	case Cold, Electricity, Heat, Toxin:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }
