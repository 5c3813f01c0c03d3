package depot

// Filter is a query descriptor: the components an archetype must hold and the components it must
// not hold. Filters are values; And and Not return extended copies. Two filters built from the
// same components are equal and share one match-cache entry.
type Filter struct {
	with    Signature
	without Signature
}

func newFilter() Filter {
	return Filter{}
}

// FilterOf returns the descriptor for the given required and excluded signatures.
func FilterOf(with, without Signature) Filter {
	return Filter{with: with, without: without}
}

// And requires the given components.
func (f Filter) And(components ...Component) Filter {
	for _, c := range components {
		f.with = f.with.Add(c)
	}
	return f
}

// Not excludes the given components.
func (f Filter) Not(components ...Component) Filter {
	for _, c := range components {
		f.without = f.without.Add(c)
	}
	return f
}

func (f Filter) With() Signature {
	return f.with
}

func (f Filter) Without() Signature {
	return f.without
}

func (f Filter) Matches(a *Archetype) bool {
	return a.Matches(f.with, f.without)
}
