package macro

import "fmt"

// Definition records everything Pass-I discovers about a single macro: its
// name, where its rewritten header sits in the macro-definition table and
// its formal parameters, both in declaration order and as the argument-list
// array (ALA) mapping each parameter token to its 1-based position. A
// Definition is populated when the macro's header has been parsed and is
// never changed after the definition has been read.
type Definition struct {
	name     string
	mdtIndex int
	params   []string
	ala      map[string]int
}

// newDefinition creates the Definition for a macro whose header declares
// the given parameters and whose rewritten header will be stored at
// mdtIndex. ALA positions are assigned by enumerating the parameters in
// declaration order, from 1.
func newDefinition(name string, params []string, mdtIndex int) *Definition {
	ala := make(map[string]int, len(params))
	for i, p := range params {
		ala[p] = i + 1
	}

	return &Definition{
		name:     name,
		mdtIndex: mdtIndex,
		params:   params,
		ala:      ala,
	}
}

// Name returns the macro's name
func (d *Definition) Name() string {
	return d.name
}

// MDTIndex returns the 0-based index into the macro-definition table at
// which this macro's rewritten header line is stored. The macro owns the
// contiguous run of entries from there up to and including its MEND line.
func (d *Definition) MDTIndex() int {
	return d.mdtIndex
}

// Params returns the macro's formal parameters in declaration order. The
// returned slice is a copy.
func (d *Definition) Params() []string {
	params := make([]string, len(d.params))
	copy(params, d.params)

	return params
}

// NumParams returns the number of formal parameters the macro declares
func (d *Definition) NumParams() int {
	return len(d.params)
}

// Position returns the 1-based position of the given parameter token and
// whether the macro declares it at all
func (d *Definition) Position(param string) (int, bool) {
	pos, ok := d.ala[param]
	return pos, ok
}

// NameTable is the macro-name table (MNT). It maps each macro name to its
// Definition and remembers the order in which the macros were discovered
// so that exports are deterministic. No two entries can share a name.
type NameTable struct {
	names []string
	defs  map[string]*Definition
}

func newNameTable() *NameTable {
	return &NameTable{
		defs: make(map[string]*Definition),
	}
}

// add records the Definition in the table. It returns
// ErrDuplicateMacroName (wrapped with the macro name) if an entry with the
// same name already exists.
func (nt *NameTable) add(d *Definition) error {
	if _, exists := nt.defs[d.name]; exists {
		return fmt.Errorf("macro %q: %w", d.name, ErrDuplicateMacroName)
	}

	nt.names = append(nt.names, d.name)
	nt.defs[d.name] = d

	return nil
}

// Lookup returns the Definition recorded under the given name and whether
// any such macro has been discovered
func (nt *NameTable) Lookup(name string) (*Definition, bool) {
	d, ok := nt.defs[name]
	return d, ok
}

// Names returns the macro names in discovery order. The returned slice is
// a copy.
func (nt *NameTable) Names() []string {
	names := make([]string, len(nt.names))
	copy(names, nt.names)

	return names
}

// Len returns the number of macros in the table
func (nt *NameTable) Len() int {
	return len(nt.names)
}
