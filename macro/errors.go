package macro

import "errors"

// These are the errors that can stop a Pass-I run. They are always
// returned wrapped in a message giving the source location (and, where
// one exists, the name of the macro being defined) so tests and callers
// should match them with errors.Is.
var (
	// ErrUnexpectedEndOfInput - the input ended immediately after a
	// MACRO directive, before any header line was seen
	ErrUnexpectedEndOfInput = errors.New(
		"unexpected end of input: the MACRO directive" +
			" must be followed by a macro header line")

	// ErrUnterminatedMacro - the input ended inside a macro body,
	// before the MEND directive
	ErrUnterminatedMacro = errors.New("unterminated macro definition")

	// ErrDuplicateMacroName - a macro header reused a name already
	// recorded in the macro-name table
	ErrDuplicateMacroName = errors.New("duplicate macro name")

	// ErrInvalidHeader - the line following a MACRO directive held no
	// macro name
	ErrInvalidHeader = errors.New("invalid macro header: no macro name")

	// ErrInvalidParameterName - a formal parameter in a macro header
	// did not start with the parameter sigil
	ErrInvalidParameterName = errors.New("invalid parameter name")

	// ErrNestedMacroDefinition - a MACRO directive was seen while a
	// macro definition was already being read
	ErrNestedMacroDefinition = errors.New(
		"nested macro definitions are not allowed")

	// ErrUnresolvedParameter - only reported when the StrictParams
	// option is set: a body line referenced a parameter-shaped token
	// that the macro header never declared
	ErrUnresolvedParameter = errors.New("unresolved parameter")
)
