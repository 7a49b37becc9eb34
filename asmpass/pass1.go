package asmpass

import (
	"os"
	"strings"

	"github.com/nickwells/filecheck.mod/filecheck"
)

// opcodes maps each imperative-statement mnemonic to its length in words
var opcodes = map[string]int{
	"MOVER": 1,
	"MOVEM": 1,
	"ADD":   1,
	"SUB":   1,
	"MULT":  1,
	"DIV":   1,
	"BC":    1,
	"COMP":  1,
	"READ":  1,
	"PRINT": 1,
}

// directives are the assembler directives with special Pass-I behaviour
var directives = map[string]bool{
	"START":  true,
	"END":    true,
	"ORIGIN": true,
	"EQU":    true,
	"LTORG":  true,
	"DS":     true,
	"DC":     true,
}

var registers = map[string]bool{
	"AREG": true,
	"BREG": true,
	"CREG": true,
	"DREG": true,
}

// Pass1 holds everything built up by one assembler Pass-I run: the symbol
// table (in discovery order), the literal table, the pool table of
// 0-based indices into the literal table at which each pool starts, and
// the intermediate records for Pass-II. One Pass1 value serves one run.
type Pass1 struct {
	symtab   map[string]*Symbol
	symOrder []string
	littab   []*Literal
	pooltab  []int

	locctr    int
	startAddr int
	records   []Record
}

// New creates a new Pass1 object.
func New() *Pass1 {
	return &Pass1{
		symtab: make(map[string]*Symbol),
	}
}

// Symbol returns the symbol-table entry with the given name and whether
// one exists
func (a *Pass1) Symbol(name string) (*Symbol, bool) {
	s, ok := a.symtab[name]
	return s, ok
}

// Symbols returns the symbol-table entries in discovery order
func (a *Pass1) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, len(a.symOrder))
	for _, name := range a.symOrder {
		syms = append(syms, a.symtab[name])
	}

	return syms
}

// Literals returns the literal-table entries in discovery order. The
// returned slice is a copy.
func (a *Pass1) Literals() []*Literal {
	lits := make([]*Literal, len(a.littab))
	copy(lits, a.littab)

	return lits
}

// Pools returns the pool table: the 0-based literal-table indices at
// which pools that have not yet been flushed start. After a run it is
// empty unless the source ended without END. The returned slice is a
// copy.
func (a *Pass1) Pools() []int {
	pools := make([]int, len(a.pooltab))
	copy(pools, a.pooltab)

	return pools
}

// Records returns the intermediate records in source order. The returned
// slice is a copy.
func (a *Pass1) Records() []Record {
	recs := make([]Record, len(a.records))
	copy(recs, a.records)

	return recs
}

// StartAddress returns the program's start address as set by START
func (a *Pass1) StartAddress() int {
	return a.startAddr
}

// defineSymbol gives the named symbol an address, creating the entry if
// this is the first time the name has been seen
func (a *Pass1) defineSymbol(name string, address int) {
	sym, ok := a.symtab[name]
	if !ok {
		sym = &Symbol{name: name}
		a.symtab[name] = sym
		a.symOrder = append(a.symOrder, name)
	}

	sym.address = address
	sym.defined = true
}

// referenceSymbol records a use of the named symbol at the given line.
// If the symbol has no address yet the line number is kept as a forward
// reference.
func (a *Pass1) referenceSymbol(name string, lineNo int) {
	sym, ok := a.symtab[name]
	if !ok {
		sym = &Symbol{name: name}
		a.symtab[name] = sym
		a.symOrder = append(a.symOrder, name)
	}

	if !sym.defined {
		sym.fwdRefs = append(sym.fwdRefs, lineNo)
	}
}

// addLiteral records the literal in the literal table, reusing an
// existing entry with the same text. The first literal of a new pool
// records the pool's start index in the pool table.
func (a *Pass1) addLiteral(text string) {
	for _, l := range a.littab {
		if l.text == text {
			return
		}
	}

	if len(a.pooltab) == 0 {
		a.pooltab = append(a.pooltab, len(a.littab))
	}

	a.littab = append(a.littab, &Literal{text: text})
}

// flushLiteralPool allocates addresses, starting at the location counter,
// to every unallocated literal in the most recently started pool
func (a *Pass1) flushLiteralPool() {
	if len(a.pooltab) == 0 {
		return
	}

	start := a.pooltab[len(a.pooltab)-1]
	a.pooltab = a.pooltab[:len(a.pooltab)-1]

	for _, l := range a.littab[start:] {
		if !l.assigned {
			l.address = a.locctr
			l.assigned = true
			a.locctr++
		}
	}
}

// Process walks the source lines once, maintaining the location counter
// and building the symbol, literal and pool tables and the intermediate
// records. Unknown opcodes are kept in the intermediate records but
// consume no address space.
func (a *Pass1) Process(lines []string) {
	started := false

	for i, raw := range lines {
		lineNo := i + 1 // line numbers count from 1

		raw = strings.TrimRight(raw, "\r\n")

		label, opcode, operands := a.parseLine(raw)

		if label == "" && opcode == "" {
			a.records = append(a.records, Record{Text: raw})
			continue
		}

		if opcode == "START" {
			started = true
			a.startAddr = 0

			if len(operands) > 0 {
				if val, ok := a.evaluateExpression(operands[0]); ok {
					a.startAddr = val
				}
			}

			a.locctr = a.startAddr

			if label != "" {
				a.defineSymbol(label, a.locctr)
			}

			a.records = append(a.records,
				Record{Loc: a.locctr, HasLoc: true, Text: raw})

			continue
		}

		if !started {
			started = true
			a.startAddr = 0
			a.locctr = 0
		}

		if label != "" && opcode != "EQU" {
			a.defineSymbol(label, a.locctr)
		}

		a.records = append(a.records,
			Record{Loc: a.locctr, HasLoc: true, Text: raw})

		if directives[opcode] {
			a.processDirective(label, opcode, operands, lineNo)
			continue
		}

		if length, ok := opcodes[opcode]; ok {
			for _, op := range operands {
				a.processOperand(op, lineNo)
			}

			a.locctr += length
		}
	}

	// any pools left unflushed by LTORG or END
	for len(a.pooltab) > 0 {
		a.flushLiteralPool()
	}
}

func (a *Pass1) processDirective(
	label, opcode string, operands []string, lineNo int,
) {
	operand := ""
	if len(operands) > 0 {
		operand = operands[0]
	}

	switch opcode {
	case "END":
		for len(a.pooltab) > 0 {
			a.flushLiteralPool()
		}
	case "LTORG":
		a.flushLiteralPool()
	case "ORIGIN":
		if val, ok := a.evaluateExpression(operand); ok {
			a.locctr = val
		}
	case "EQU":
		if label != "" && operand != "" {
			if val, ok := a.evaluateExpression(operand); ok {
				a.defineSymbol(label, val)
			} else {
				a.referenceSymbol(label, lineNo)
			}
		}
	case "DS":
		size := 1
		if val, ok := a.evaluateExpression(operand); ok {
			size = val
		}

		a.locctr += size
	case "DC":
		a.locctr++
	}
}

// processOperand classifies an instruction operand: registers and plain
// numbers need nothing, literals join the literal table and anything else
// is a symbol reference.
func (a *Pass1) processOperand(op string, lineNo int) {
	switch {
	case isRegister(op):
	case isLiteral(op):
		a.addLiteral(op)
	case isNumber(op):
	default:
		a.referenceSymbol(op, lineNo)
	}
}

// ProcessFile reads the named source file and runs Process over its
// lines. The file must exist; if it cannot be read no part of it is
// processed.
func (a *Pass1) ProcessFile(path string) error {
	es := filecheck.Provisos{Existence: filecheck.MustExist}
	if err := es.StatusCheck(path); err != nil {
		return err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(
		strings.TrimSuffix(string(contents), "\n"), "\n")
	a.Process(lines)

	return nil
}
