package asmpass_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nickwells/macropass.mod/asmpass"
)

func TestProcess(t *testing.T) {
	lines := []string{
		"START 100",
		"LOOP: MOVER AREG, =5",
		"ADD AREG, ONE",
		"MOVEM AREG, RESULT",
		"LTORG",
		"ONE: DC 1",
		"RESULT: DS 1",
		"END",
	}

	a := asmpass.New()
	a.Process(lines)

	if a.StartAddress() != 100 {
		t.Errorf("start address = %d, expected 100", a.StartAddress())
	}

	expSyms := []struct {
		name    string
		addr    int
		fwdRefs []int
	}{
		{"LOOP", 100, nil},
		{"ONE", 104, []int{3}},
		{"RESULT", 105, []int{4}},
	}

	syms := a.Symbols()
	if len(syms) != len(expSyms) {
		t.Fatalf("%d symbols, expected %d", len(syms), len(expSyms))
	}

	for i, exp := range expSyms {
		sym := syms[i]
		if sym.Name() != exp.name {
			t.Errorf("symbol %d is %q, expected %q",
				i, sym.Name(), exp.name)
			continue
		}

		addr, ok := sym.Address()
		if !ok || addr != exp.addr {
			t.Errorf("symbol %q: address = %d (defined: %t), expected %d",
				exp.name, addr, ok, exp.addr)
		}

		refs := sym.ForwardRefs()
		if len(refs) != len(exp.fwdRefs) {
			t.Errorf("symbol %q: forward refs = %v, expected %v",
				exp.name, refs, exp.fwdRefs)
			continue
		}

		for j := range exp.fwdRefs {
			if refs[j] != exp.fwdRefs[j] {
				t.Errorf("symbol %q: forward refs = %v, expected %v",
					exp.name, refs, exp.fwdRefs)
				break
			}
		}
	}

	lits := a.Literals()
	if len(lits) != 1 {
		t.Fatalf("%d literals, expected 1", len(lits))
	}

	if lits[0].Text() != "=5" {
		t.Errorf("literal = %q, expected %q", lits[0].Text(), "=5")
	}

	if addr, ok := lits[0].Address(); !ok || addr != 103 {
		t.Errorf("literal address = %d (allocated: %t), expected 103",
			addr, ok)
	}

	if pools := a.Pools(); len(pools) != 0 {
		t.Errorf("pool table = %v, expected all pools allocated", pools)
	}

	recs := a.Records()
	if len(recs) != len(lines) {
		t.Fatalf("%d intermediate records, expected %d",
			len(recs), len(lines))
	}

	expLocs := []int{100, 100, 101, 102, 103, 104, 105, 106}
	for i, rec := range recs {
		if !rec.HasLoc || rec.Loc != expLocs[i] {
			t.Errorf("record %d: loc = %d (set: %t), expected %d",
				i, rec.Loc, rec.HasLoc, expLocs[i])
		}

		if rec.Text != lines[i] {
			t.Errorf("record %d: text = %q, expected %q",
				i, rec.Text, lines[i])
		}
	}
}

func TestProcessDirectives(t *testing.T) {
	lines := []string{
		"; a comment-only line",
		"",
		"START 200",
		"HERE: MOVER AREG, TWO",
		"NEXT EQU HERE+1",
		"ORIGIN NEXT+4",
		"TWO: DC 2",
		"BUF: DS 3",
		"END",
	}

	a := asmpass.New()
	a.Process(lines)

	for i := 0; i < 2; i++ {
		if rec := a.Records()[i]; rec.HasLoc {
			t.Errorf("record %d should carry no location counter", i)
		}
	}

	expAddrs := map[string]int{
		"HERE": 200,
		"NEXT": 201,
		"TWO":  205, // ORIGIN re-seated the location counter to 205
		"BUF":  206,
	}

	for name, exp := range expAddrs {
		sym, ok := a.Symbol(name)
		if !ok {
			t.Errorf("symbol %q missing from the symbol table", name)
			continue
		}

		if addr, defined := sym.Address(); !defined || addr != exp {
			t.Errorf("symbol %q: address = %d (defined: %t), expected %d",
				name, addr, defined, exp)
		}
	}

	// the DS reserved 3 words after BUF so the final record (END) is at 209
	recs := a.Records()
	last := recs[len(recs)-1]

	if !last.HasLoc || last.Loc != 209 {
		t.Errorf("END record at loc %d, expected 209", last.Loc)
	}
}

func TestWriteArtifacts(t *testing.T) {
	lines := []string{
		"START 100",
		"MOVER AREG, =7",
		"X: DC 1",
		"END",
	}

	a := asmpass.New()
	a.Process(lines)

	dir := filepath.Join(t.TempDir(), "asm_out")

	if err := a.WriteArtifacts(dir); err != nil {
		t.Fatal("unexpected error writing artifacts:", err)
	}

	expFiles := map[string]string{
		asmpass.SymTabFile: "X\t101\n",
		asmpass.LitTabFile: "=7\t102\n",
		asmpass.IntermediateFile: "100    START 100\n" +
			"100    MOVER AREG, =7\n" +
			"101    X: DC 1\n" +
			"102    END\n",
	}

	for name, exp := range expFiles {
		contents, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("could not read %s: %v", name, err)
			continue
		}

		if string(contents) != exp {
			t.Errorf("%s holds %q, expected %q", name, contents, exp)
		}
	}
}

func TestPrint(t *testing.T) {
	a := asmpass.New()
	a.Process([]string{"START 10", "L: DC 1", "END"})

	var sb strings.Builder
	if err := a.Print(&sb); err != nil {
		t.Fatal("unexpected error printing:", err)
	}

	out := sb.String()

	for _, want := range []string{
		"=== SYMBOL TABLE ===",
		"=== LITERAL TABLE ===",
		"=== POOL TABLE ===",
		"=== INTERMEDIATE ===",
		"(all pools allocated)",
		"L",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendering should contain %q\nfull output:\n%s",
				want, out)
		}
	}
}
