package element

// compoundOf pairs two basic elements into the compound element they
// produce. Keys are stored both ways round.
var compoundOf = func() map[[2]Type]Type {
	pairs := []struct {
		a, b     Type
		compound Type
	}{
		{Cold, Electricity, Magnetic},
		{Cold, Heat, Blast},
		{Cold, Toxin, Viral},
		{Electricity, Heat, Radiation},
		{Electricity, Toxin, Corrosive},
		{Heat, Toxin, Gas},
	}
	m := make(map[[2]Type]Type, len(pairs)*2)
	for _, p := range pairs {
		m[[2]Type{p.a, p.b}] = p.compound
		m[[2]Type{p.b, p.a}] = p.compound
	}
	return m
}()

// Compound returns the compound element produced by combining two basic
// elements, and false if a and b do not form a pair.
func Compound(a, b Type) (Type, bool) {
	c, ok := compoundOf[[2]Type{a, b}]
	return c, ok
}

// Combine folds pairs of basic elements in v into compound elements,
// mutating v. The order slice lists basic elements in the order they
// were applied (mods first, then weapon innate, then buffs); pairs are
// consumed greedily two at a time in that order. Only the first
// occurrence of each distinct basic element participates, duplicates
// are skipped. Each pairing moves the combined total damage of the two
// inputs onto the compound element and removes the inputs, so running
// Combine again with the same order is a no-op.
func Combine(v Vector, order []Type) {
	seq := make([]Type, 0, 4)
	seen := make(map[Type]bool, 4)
	for _, t := range order {
		if !t.Basic() || seen[t] {
			continue
		}
		seen[t] = true
		seq = append(seq, t)
	}

	for i := 0; i+1 < len(seq); i += 2 {
		a, b := seq[i], seq[i+1]
		compound, ok := Compound(a, b)
		if !ok {
			continue
		}
		v[compound] += v[a] + v[b]
		delete(v, a)
		delete(v, b)
	}
}
