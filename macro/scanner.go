package macro

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
)

// DfltDirectiveStart is the default directive opening a macro definition
// DfltDirectiveEnd is the default directive closing a macro definition
// DfltSigil is the default rune prefixing every formal parameter
//
// They are used by Process to recognise macro definitions and formal
// parameters in the source
const (
	DfltDirectiveStart = "MACRO"
	DfltDirectiveEnd   = "MEND"
	DfltSigil          = '&'
)

// scanState is the state of the line scanner. The scanner starts, and
// must finish, in stateScan.
type scanState int

const (
	// stateScan - outside any definition, copying lines to the
	// intermediate stream
	stateScan scanState = iota
	// stateHeader - a MACRO directive has just been read and the next
	// line must be a macro header
	stateHeader
	// stateBody - collecting macro body lines until the MEND directive
	stateBody
)

// Processor holds everything built up by one Pass-I run: the macro-name
// table, the macro-definition table (a single flat sequence of rewritten
// lines shared by all the macros, in discovery order) and the
// intermediate stream of source lines that survive the removal of the
// macro definitions.
//
// You should create a new Processor with New, call Process or ProcessFile
// exactly once and then, if that returned no error, export the results
// with WriteArtifacts or Print. A Processor whose run failed holds
// partial tables and must be discarded: nothing it holds should ever be
// given to Pass-II.
type Processor struct {
	dirStart string
	dirEnd   string
	sigil    rune
	strict   bool
	paramRE  *regexp.Regexp

	mnt          *NameTable
	mdt          []string
	intermediate []string
}

// OptFunc adjusts a Processor at construction time
type OptFunc func(p *Processor) error

// New creates a new Processor object.
func New(opts ...OptFunc) (*Processor, error) {
	p := &Processor{
		dirStart: DfltDirectiveStart,
		dirEnd:   DfltDirectiveEnd,
		sigil:    DfltSigil,
		mnt:      newNameTable(),
	}

	for _, o := range opts {
		if err := o(p); err != nil {
			return nil, err
		}
	}

	p.paramRE = regexp.MustCompile(
		regexp.QuoteMeta(string(p.sigil)) + `\w+`)

	return p, nil
}

// Directives returns an OptFunc that will change the directives that
// bracket a macro definition in the source. The default values are given
// by DfltDirectiveStart and DfltDirectiveEnd. The opening directive is
// matched case-insensitively, the closing directive exactly; neither may
// be blank.
func Directives(start, end string) OptFunc {
	return func(p *Processor) error {
		start = strings.TrimSpace(start)
		end = strings.TrimSpace(end)

		if start == "" || end == "" {
			return fmt.Errorf(
				"the macro directives must not be blank")
		}

		p.dirStart = start
		p.dirEnd = end

		return nil
	}
}

// Sigil returns an OptFunc that will change the rune which prefixes every
// formal parameter. The default value is given by DfltSigil. A word
// character or a space cannot serve as the sigil: it could not be told
// apart from the parameter name that follows it.
func Sigil(r rune) OptFunc {
	return func(p *Processor) error {
		if unicode.IsLetter(r) || unicode.IsDigit(r) ||
			unicode.IsSpace(r) || r == '_' {
			return fmt.Errorf("%q cannot be used as a parameter sigil",
				string(r))
		}

		p.sigil = r

		return nil
	}
}

// StrictParams returns an OptFunc that makes a parameter-shaped token in a
// macro definition which the macro's header never declared an error
// (ErrUnresolvedParameter). By default such a token is passed through
// unchanged, which is what Pass-II has historically been given.
func StrictParams() OptFunc {
	return func(p *Processor) error {
		p.strict = true

		return nil
	}
}

// NameTable returns the macro-name table built by the run
func (p *Processor) NameTable() *NameTable {
	return p.mnt
}

// MDT returns the macro-definition table built by the run: one flat
// sequence of rewritten lines covering every macro, in discovery order.
// The returned slice is a copy.
func (p *Processor) MDT() []string {
	mdt := make([]string, len(p.mdt))
	copy(mdt, p.mdt)

	return mdt
}

// Intermediate returns the intermediate stream built by the run: the
// source lines, in their original relative order, with every macro
// definition removed. The returned slice is a copy.
func (p *Processor) Intermediate() []string {
	lines := make([]string, len(p.intermediate))
	copy(lines, p.intermediate)

	return lines
}

// Process walks the source lines once, building the tables and the
// intermediate stream. The location is advanced as each line is read and
// appears in any error returned. The first error stops the run; the
// Processor must then be discarded.
func (p *Processor) Process(lines []string, loc *location.L) error {
	state := stateScan

	var def *Definition // the macro currently being read

	for _, line := range lines {
		loc.Incr()

		trimmed := strings.TrimSpace(line)

		switch state {
		case stateScan:
			if strings.EqualFold(trimmed, p.dirStart) {
				state = stateHeader
				continue
			}

			p.intermediate = append(p.intermediate, line)

		case stateHeader:
			if strings.EqualFold(trimmed, p.dirStart) {
				return fmt.Errorf("at %s: %w",
					loc, ErrNestedMacroDefinition)
			}

			name, params, err := parseHeader(trimmed, p.sigil)
			if err != nil {
				return fmt.Errorf("at %s: %w", loc, err)
			}

			def = newDefinition(name, params, len(p.mdt))

			if err := p.mnt.add(def); err != nil {
				return fmt.Errorf("at %s: %w", loc, err)
			}

			header, err := p.substitute(trimmed, def)
			if err != nil {
				return fmt.Errorf("at %s: %w", loc, err)
			}

			p.mdt = append(p.mdt, header)
			state = stateBody

		case stateBody:
			if strings.EqualFold(trimmed, p.dirStart) {
				return fmt.Errorf("in macro %q at %s: %w",
					def.Name(), loc, ErrNestedMacroDefinition)
			}

			if trimmed == p.dirEnd {
				p.mdt = append(p.mdt, p.dirEnd)
				def = nil
				state = stateScan

				continue
			}

			body, err := p.substitute(line, def)
			if err != nil {
				return fmt.Errorf("in macro %q at %s: %w",
					def.Name(), loc, err)
			}

			p.mdt = append(p.mdt, body)
		}
	}

	switch state {
	case stateHeader:
		return fmt.Errorf("at %s: %w", loc, ErrUnexpectedEndOfInput)
	case stateBody:
		return fmt.Errorf("macro %q at %s: %w",
			def.Name(), loc, ErrUnterminatedMacro)
	}

	return nil
}

// ProcessFile reads the named source file and runs Process over its
// lines, reporting errors against the file name and line number. The file
// must exist; if it cannot be read no part of it is processed.
func (p *Processor) ProcessFile(path string) error {
	es := filecheck.Provisos{Existence: filecheck.MustExist}
	if err := es.StatusCheck(path); err != nil {
		return err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return p.Process(splitLines(string(contents)), location.New(path))
}

// splitLines splits file contents into lines, tolerating both LF and CRLF
// line endings and a missing newline on the last line
func splitLines(contents string) []string {
	contents = strings.TrimSuffix(contents, "\n")
	if contents == "" {
		return nil
	}

	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
