package font

// FamilyCount is the number of math families.
const FamilyCount = 16

// Table is a Provider holding registered fonts and a family assignment.
// The zero value is not usable; create tables with NewTable.
type Table struct {
	fonts    []Metrics // fonts[0] is the null font
	families [FamilyCount][SizeCount]ID
}

var _ Provider = (*Table)(nil)

// NewTable creates an empty table. All families are undefined.
func NewTable() *Table {
	return &Table{fonts: make([]Metrics, 1, 16)}
}

// Register adds a font and returns its id.
func (t *Table) Register(m Metrics) ID {
	t.fonts = append(t.fonts, m)
	id := ID(len(t.fonts) - 1)
	tracer().Debugf("registered font #%d", id)
	return id
}

// SetFamily assigns font id to family fam in size class s.
// Out-of-range families are ignored.
func (t *Table) SetFamily(fam int, s Size, id ID) {
	if fam < 0 || fam >= FamilyCount || s >= SizeCount {
		tracer().Errorf("cannot assign family %d in %s", fam, s)
		return
	}
	t.families[fam][s] = id
}

// FontForFamily is part of interface Provider.
func (t *Table) FontForFamily(fam int, s Size) ID {
	if fam < 0 || fam >= FamilyCount || s >= SizeCount {
		return NullFont
	}
	return t.families[fam][s]
}

// Font is part of interface Provider.
func (t *Table) Font(id ID) Metrics {
	if id <= NullFont || int(id) >= len(t.fonts) {
		return nil
	}
	return t.fonts[id]
}
