package source

// StringID names an interned string. NoStringID is the empty string and is
// used as the "absent" marker for optional names.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier and literal text for one AST.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, allocating one on first sight. The stored
// string is a copy, so s may alias a larger buffer.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	cpy := string([]byte(s))
	id := StringID(len(i.byID)) //nolint:gosec // bounded by input size
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup panics on an unknown ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Len counts interned strings including the empty one.
func (i *Interner) Len() int {
	return len(i.byID)
}
