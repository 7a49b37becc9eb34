package asmpass

// Symbol is an entry in the symbol table. A symbol becomes defined when a
// label gives it an address; a reference to a symbol that is not yet
// defined records the referencing line number as a forward reference for
// Pass-II to resolve.
type Symbol struct {
	name    string
	address int
	defined bool
	fwdRefs []int
}

// Name returns the symbol's name
func (s *Symbol) Name() string {
	return s.name
}

// Address returns the symbol's address and whether one has been assigned
func (s *Symbol) Address() (int, bool) {
	return s.address, s.defined
}

// Defined reports whether the symbol has been given an address
func (s *Symbol) Defined() bool {
	return s.defined
}

// ForwardRefs returns the line numbers at which the symbol was referenced
// before it was defined. The returned slice is a copy.
func (s *Symbol) ForwardRefs() []int {
	refs := make([]int, len(s.fwdRefs))
	copy(refs, s.fwdRefs)

	return refs
}

// Literal is an entry in the literal table: the literal as written (such
// as =5 or ='A') and, once a pool has been flushed by LTORG or END, the
// address allocated to it.
type Literal struct {
	text     string
	address  int
	assigned bool
}

// Text returns the literal as it appeared in the source
func (l *Literal) Text() string {
	return l.text
}

// Address returns the literal's allocated address and whether the pool it
// belongs to has been flushed yet
func (l *Literal) Address() (int, bool) {
	return l.address, l.assigned
}

// Record is one entry of the intermediate file: the source line and, when
// the line was processed at an address, the location counter value. Blank
// and comment-only lines carry no location.
type Record struct {
	Loc    int
	HasLoc bool
	Text   string
}
