package macro

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string

		expErr    error
		expName   string
		expParams []string
	}{
		{
			name:      "name and two parameters",
			header:    "NAME &ARG1,&ARG2",
			expName:   "NAME",
			expParams: []string{"&ARG1", "&ARG2"},
		},
		{
			name:    "name alone",
			header:  "NAME",
			expName: "NAME",
		},
		{
			name:      "spaces around the commas",
			header:    "NAME &A , &B ,&C",
			expName:   "NAME",
			expParams: []string{"&A", "&B", "&C"},
		},
		{
			name:      "trailing comma is dropped",
			header:    "NAME &A,",
			expName:   "NAME",
			expParams: []string{"&A"},
		},
		{
			name:   "empty header",
			header: "",
			expErr: ErrInvalidHeader,
		},
		{
			name:   "parameter without the sigil",
			header: "FOO BAR",
			expErr: ErrInvalidParameterName,
		},
		{
			name:   "second parameter without the sigil",
			header: "FOO &A,B",
			expErr: ErrInvalidParameterName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, params, err := parseHeader(tc.header, DfltSigil)

			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("error = %v, expected %v", err, tc.expErr)
				}

				return
			}

			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if name != tc.expName {
				t.Errorf("name = %q, expected %q", name, tc.expName)
			}

			if len(params) != len(tc.expParams) {
				t.Fatalf("params = %q, expected %q", params, tc.expParams)
			}

			for i := range tc.expParams {
				if params[i] != tc.expParams[i] {
					t.Errorf("params[%d] = %q, expected %q",
						i, params[i], tc.expParams[i])
				}
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatal("unexpected error creating the Processor:", err)
	}

	d := newDefinition("M", []string{"&A", "&LONG"}, 0)

	testCases := []struct {
		name string
		line string
		exp  string
	}{
		{
			name: "both parameters",
			line: "MOV &A,&LONG",
			exp:  "MOV (P,1),(P,2)",
		},
		{
			name: "repeated parameter",
			line: "&A &A &A",
			exp:  "(P,1) (P,1) (P,1)",
		},
		{
			name: "maximal munch keeps &LONGER intact",
			line: "MOV &LONGER,&LONG",
			exp:  "MOV &LONGER,(P,2)",
		},
		{
			name: "bare sigil is not a parameter",
			line: "AND & OR",
			exp:  "AND & OR",
		},
		{
			name: "no parameters at all",
			line: "  HALT\t",
			exp:  "  HALT\t",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.substitute(tc.line, d)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if got != tc.exp {
				t.Errorf("substitute(%q) = %q, expected %q",
					tc.line, got, tc.exp)
			}
		})
	}
}
