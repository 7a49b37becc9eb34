package asmpass

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
)

// These are the names of the artifact files written by WriteArtifacts.
// Pass-II reads the tables back by these names so they must not change.
const (
	IntermediateFile = "intermediate.txt"
	SymTabFile       = "symtab.txt"
	LitTabFile       = "littab.txt"
)

// WriteArtifacts writes the results of a completed run into the given
// directory, creating it first if need be:
//
//	intermediate.txt - location counter and source line, one per line
//	symtab.txt       - symbol name and address ('-' when undefined)
//	littab.txt       - literal text and address ('-' when unallocated)
func (a *Pass1) WriteArtifacts(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var sb strings.Builder

	for _, rec := range a.records {
		fmt.Fprintf(&sb, "%-6s %s\n", locString(rec), rec.Text)
	}

	err := writeArtifact(dir, IntermediateFile, sb.String())
	if err != nil {
		return err
	}

	sb.Reset()

	for _, sym := range a.Symbols() {
		fmt.Fprintf(&sb, "%s\t%s\n", sym.Name(), addrString(sym.Address()))
	}

	if err := writeArtifact(dir, SymTabFile, sb.String()); err != nil {
		return err
	}

	sb.Reset()

	for _, lit := range a.littab {
		fmt.Fprintf(&sb, "%s\t%s\n", lit.Text(), addrString(lit.Address()))
	}

	return writeArtifact(dir, LitTabFile, sb.String())
}

func writeArtifact(dir, name, contents string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644)
}

func locString(rec Record) string {
	if !rec.HasLoc {
		return ""
	}

	return strconv.Itoa(rec.Loc)
}

func addrString(addr int, ok bool) string {
	if !ok {
		return "-"
	}

	return strconv.Itoa(addr)
}

// Print writes human-readable renderings of the symbol, literal and pool
// tables and the intermediate records to w
func (a *Pass1) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "=== SYMBOL TABLE ===")
	fmt.Fprintln(tw, "SYMBOL\tADDRESS\tDEFINED\tFWD_REFS")

	for _, sym := range a.Symbols() {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%v\n",
			sym.Name(), addrString(sym.Address()),
			sym.Defined(), sym.ForwardRefs())
	}

	fmt.Fprintln(tw, "\n=== LITERAL TABLE ===")
	fmt.Fprintln(tw, "INDEX\tLITERAL\tADDRESS")

	for i, lit := range a.littab {
		fmt.Fprintf(tw, "%d\t%s\t%s\n",
			i, lit.Text(), addrString(lit.Address()))
	}

	fmt.Fprintln(tw, "\n=== POOL TABLE ===")

	if len(a.pooltab) == 0 {
		fmt.Fprintln(tw, "(all pools allocated)")
	} else {
		fmt.Fprintf(tw, "%v\n", a.pooltab)
	}

	fmt.Fprintln(tw, "\n=== INTERMEDIATE ===")

	for _, rec := range a.records {
		fmt.Fprintf(tw, "%s\t%s\n", locString(rec), rec.Text)
	}

	return tw.Flush()
}
