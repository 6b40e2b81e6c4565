package element

// Vector maps damage types to their damage contribution. A missing key
// contributes zero damage. All stored values are expected to be >= 0.
type Vector map[Type]float64

// NewVector returns an empty damage vector.
func NewVector() Vector {
	return make(Vector)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for t, dmg := range v {
		out[t] = dmg
	}
	return out
}

// Get returns the damage contribution for t, zero if absent.
func (v Vector) Get(t Type) float64 {
	return v[t]
}

// Plus returns the component-wise sum of v and other as a new vector.
func (v Vector) Plus(other Vector) Vector {
	out := v.Clone()
	for t, dmg := range other {
		out[t] += dmg
	}
	return out
}

// Scale returns v with every component multiplied by k as a new vector.
func (v Vector) Scale(k float64) Vector {
	out := make(Vector, len(v))
	for t, dmg := range v {
		out[t] = dmg * k
	}
	return out
}

// Total returns the sum of all damage contributions.
func (v Vector) Total() float64 {
	var total float64
	for _, dmg := range v {
		total += dmg
	}
	return total
}

// TotalWithVulnerability returns the sum of all damage contributions,
// each weighted by the matching component of vuln. A type missing from
// vuln is weighted neutrally at 1.0, so an empty vulnerability vector
// behaves the same as one holding 1.0 for every type.
func (v Vector) TotalWithVulnerability(vuln Vector) float64 {
	var total float64
	for t, dmg := range v {
		weight := 1.0
		if w, ok := vuln[t]; ok {
			weight = w
		}
		total += dmg * weight
	}
	return total
}

// Normalize scales v in place so its components sum to 1. A zero vector
// is left unchanged.
func (v Vector) Normalize() {
	total := v.Total()
	if total <= 0 {
		return
	}
	for t, dmg := range v {
		v[t] = dmg / total
	}
}
