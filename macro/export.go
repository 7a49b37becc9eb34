package macro

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

// These are the names of the artifact files written by WriteArtifacts.
// Pass-II reads the tables back by these names so they must not change.
const (
	IntermediateFile = "intermediate.txt"
	MNTFile          = "MNT.txt"
	MDTFile          = "MDT.txt"
)

// ALAFile returns the name of the artifact file holding the named macro's
// argument-list array
func ALAFile(name string) string {
	return "ALA_" + name + ".txt"
}

// WriteArtifacts writes the results of a completed run into the given
// directory, creating it first if need be. It writes the intermediate
// stream, the macro-name table, the macro-definition table and one
// argument-list array file per macro, all in the tab-separated layouts
// that Pass-II expects:
//
//	intermediate.txt - one surviving source line per line
//	MNT.txt          - NAME, MDT_INDEX and NUM_PARAMS per macro
//	MDT.txt          - 0-based MDT_INDEX and the stored TEXT
//	ALA_<name>.txt   - PARAM and its 1-based POSITION
//
// It must only be called after Process has returned no error: a failed
// run must leave no artifacts behind.
func (p *Processor) WriteArtifacts(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var sb strings.Builder

	for _, line := range p.intermediate {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	err := writeArtifact(dir, IntermediateFile, sb.String())
	if err != nil {
		return err
	}

	sb.Reset()
	sb.WriteString("NAME\tMDT_INDEX\tNUM_PARAMS\n")

	for _, name := range p.mnt.Names() {
		d, _ := p.mnt.Lookup(name)
		fmt.Fprintf(&sb, "%s\t%d\t%d\n",
			d.Name(), d.MDTIndex(), d.NumParams())
	}

	if err := writeArtifact(dir, MNTFile, sb.String()); err != nil {
		return err
	}

	sb.Reset()
	sb.WriteString("MDT_INDEX\tTEXT\n")

	for i, text := range p.mdt {
		fmt.Fprintf(&sb, "%d\t%s\n", i, text)
	}

	if err := writeArtifact(dir, MDTFile, sb.String()); err != nil {
		return err
	}

	for _, name := range p.mnt.Names() {
		d, _ := p.mnt.Lookup(name)

		sb.Reset()
		sb.WriteString("PARAM\tPOSITION\n")

		for i, param := range d.Params() {
			fmt.Fprintf(&sb, "%s\t%d\n", param, i+1)
		}

		err := writeArtifact(dir, ALAFile(name), sb.String())
		if err != nil {
			return err
		}
	}

	return nil
}

func writeArtifact(dir, name, contents string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644)
}

// Print writes human-readable renderings of the macro-name table, the
// macro-definition table and each macro's argument-list array to w. It is
// meant for people: Pass-II reads the files written by WriteArtifacts.
func (p *Processor) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "=== MACRO NAME TABLE ===")
	fmt.Fprintln(tw, "NAME\tMDT_INDEX\tNUM_PARAMS")

	for _, name := range p.mnt.Names() {
		d, _ := p.mnt.Lookup(name)
		fmt.Fprintf(tw, "%s\t%d\t%d\n",
			d.Name(), d.MDTIndex(), d.NumParams())
	}

	fmt.Fprintln(tw, "\n=== MACRO DEFINITION TABLE ===")
	fmt.Fprintln(tw, "MDT_INDEX\tTEXT")

	for i, text := range p.mdt {
		fmt.Fprintf(tw, "%d\t%s\n", i, text)
	}

	for _, name := range p.mnt.Names() {
		d, _ := p.mnt.Lookup(name)

		fmt.Fprintf(tw, "\n=== ARGUMENT LIST ARRAY: %s ===\n", name)
		fmt.Fprintln(tw, "PARAM\tPOSITION")

		for i, param := range d.Params() {
			fmt.Fprintf(tw, "%s\t%d\n", param, i+1)
		}
	}

	return tw.Flush()
}
