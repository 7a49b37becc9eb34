package macro

import "fmt"

// substitute rewrites every reference to one of the macro's formal
// parameters in the line as the positional placeholder (P,i), i being the
// parameter's 1-based position in the macro header. The match is purely
// lexical - the sigil followed by one or more word characters -
// and the whole line is treated uniformly: there is no notion of
// instruction syntax, string literals or comments. A matching token that
// the macro does not declare is left exactly as it was; with the
// StrictParams option set it is an error instead.
func (p *Processor) substitute(line string, d *Definition) (string, error) {
	var unresolved string

	line = p.paramRE.ReplaceAllStringFunc(line,
		func(tok string) string {
			if pos, ok := d.Position(tok); ok {
				return fmt.Sprintf("(P,%d)", pos)
			}

			if unresolved == "" {
				unresolved = tok
			}

			return tok
		})

	if p.strict && unresolved != "" {
		return "", fmt.Errorf("%w: %q is not declared by macro %q",
			ErrUnresolvedParameter, unresolved, d.Name())
	}

	return line, nil
}
