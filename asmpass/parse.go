package asmpass

import (
	"regexp"
	"strconv"
	"strings"
)

// literalRE matches the literal operand forms =5, =-3 and ='A'
var literalRE = regexp.MustCompile(`^=('[^']'|-?\d+)$`)

// exprRE matches the expressions the evaluator understands: a symbol with
// an optional signed offset, such as NEXT or NEXT+5
var exprRE = regexp.MustCompile(`^([A-Za-z_]\w*)([+-]\d+)?$`)

// parseLine tokenizes a source line into its label, opcode and operands.
// Comments introduced by ';' or '#' are stripped first. A label is either
// a first token ending in ':' or, failing that, a first token that cannot
// be an opcode, directive, register or literal when at least one more
// token follows it. The opcode is uppercased; operands are comma-split
// and trimmed.
func (a *Pass1) parseLine(line string) (label, opcode string, operands []string) {
	line = strings.TrimSpace(commentRE.Split(line, 2)[0])
	if line == "" {
		return "", "", nil
	}

	tokens := strings.Fields(line)

	if strings.HasSuffix(tokens[0], ":") {
		label = strings.TrimSuffix(tokens[0], ":")
		tokens = tokens[1:]
	} else if len(tokens) >= 2 {
		t0 := strings.ToUpper(tokens[0])
		if _, isOp := opcodes[t0]; !isOp &&
			!directives[t0] && !isRegister(t0) && !isLiteral(t0) {
			label = tokens[0]
			tokens = tokens[1:]
		}
	}

	if len(tokens) == 0 {
		return label, "", nil
	}

	opcode = strings.ToUpper(tokens[0])

	rest := strings.Join(tokens[1:], " ")
	for _, op := range strings.Split(rest, ",") {
		op = strings.TrimSpace(op)
		if op != "" {
			operands = append(operands, op)
		}
	}

	return label, opcode, operands
}

var commentRE = regexp.MustCompile(`[;#]`)

func isLiteral(token string) bool {
	return literalRE.MatchString(strings.TrimSpace(token))
}

func isRegister(token string) bool {
	return registers[strings.ToUpper(token)]
}

func isNumber(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}

// evaluateExpression resolves expressions of the forms 100, SYMBOL and
// SYMBOL+5 against the symbol table. It reports false for anything it
// cannot resolve, including references to symbols that have no address
// yet.
func (a *Pass1) evaluateExpression(expr string) (int, bool) {
	expr = strings.ReplaceAll(expr, " ", "")

	if n, err := strconv.Atoi(expr); err == nil {
		return n, true
	}

	m := exprRE.FindStringSubmatch(expr)
	if m == nil {
		return 0, false
	}

	sym, ok := a.symtab[m[1]]
	if !ok || !sym.defined {
		return 0, false
	}

	val := sym.address

	if m[2] != "" {
		offset, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}

		val += offset
	}

	return val, true
}
