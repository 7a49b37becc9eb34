package macro

import (
	"fmt"
	"strings"
)

// parseHeader splits a trimmed macro header line such as
//
//	NAME &ARG1,&ARG2
//
// into the macro name and its formal parameters in declaration order. The
// first whitespace-delimited token is the name; if there is none the
// header is invalid. The remaining text is split on commas, each piece is
// trimmed and empty pieces are dropped. Every parameter must start with
// the sigil. A header with no parameters at all is valid.
func parseHeader(header string, sigil rune) (string, []string, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", nil, ErrInvalidHeader
	}

	name := fields[0]
	rest := strings.Join(fields[1:], " ")

	var params []string

	for _, p := range strings.Split(rest, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if !strings.HasPrefix(p, string(sigil)) {
			return "", nil,
				fmt.Errorf("%w: %q does not start with %q",
					ErrInvalidParameterName, p, string(sigil))
		}

		params = append(params, p)
	}

	return name, params, nil
}
