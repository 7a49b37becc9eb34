package macro_test

import (
	"fmt"

	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/macropass.mod/macro"
)

// Example demonstrates a basic Pass-I run: one macro definition is lifted
// out of the source into the tables and the remaining lines form the
// intermediate stream
func Example() {
	lines := []string{
		"MACRO",
		"ADD2 &X,&Y",
		"MOV R,&X",
		"ADD R,&Y",
		"MEND",
		"START",
	}

	p, err := macro.New()
	if err != nil {
		fmt.Printf("Unexpected error creating a new Processor")
		return
	}

	if err := p.Process(lines, location.New("strSlice")); err != nil {
		fmt.Println("Error:", err)
		return
	}

	for i, text := range p.MDT() {
		fmt.Printf("MDT[%d] = %s\n", i, text)
	}

	for _, line := range p.Intermediate() {
		fmt.Println("intermediate:", line)
	}
	// Output:
	// MDT[0] = ADD2 (P,1),(P,2)
	// MDT[1] = MOV R,(P,1)
	// MDT[2] = ADD R,(P,2)
	// MDT[3] = MEND
	// intermediate: START
}

// Example_strictParams demonstrates the StrictParams option: by default a
// parameter-shaped token that the macro header never declared passes
// through unchanged, with the option set it is an error
func Example_strictParams() {
	lines := []string{
		"MACRO",
		"INCR &A",
		"ADD &A,&BAD",
		"MEND",
	}

	p, err := macro.New()
	if err != nil {
		fmt.Printf("Unexpected error creating a new Processor")
		return
	}

	if err := p.Process(lines, location.New("strSlice")); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("lax:", p.MDT()[1])

	p, err = macro.New(macro.StrictParams())
	if err != nil {
		fmt.Printf("Unexpected error creating a new Processor")
		return
	}

	if err := p.Process(lines, location.New("strSlice")); err != nil {
		fmt.Println("Error:", err)
		return
	}
	// Output:
	// lax: ADD (P,1),&BAD
	// Error: in macro "INCR" at strSlice:3: unresolved parameter: "&BAD" is not declared by macro "INCR"
}
