package argv

import (
	"strconv"
	"strings"

	"github.com/dzonerzy/go-argv/internal/intern"
)

// Classify runs the single classification pass over tokens, appending into
// the parser's containers. Every token lands in exactly one of the three
// containers; a parameter's value token is consumed together with its name.
//
// Classify validates mode and tokens before touching any container, so a
// failed call leaves the parser unmodified. Calling Classify twice on the
// same instance is an error (ErrorTypeAlreadyClassified); Reset first, or
// use a fresh Parser per argument vector.
func (p *Parser) Classify(tokens []string, mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if p.classified {
		return NewParseError(ErrorTypeAlreadyClassified,
			"parser already holds a classified argument vector; Reset before reuse")
	}
	for i, tok := range tokens {
		if tok == "" {
			return &ParseError{
				Type:     ErrorTypeEmptyToken,
				Message:  "empty token in argument vector",
				Position: i,
			}
		}
	}
	p.classified = true

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !isOption(tok) {
			p.positionals = append(p.positionals, tok)
			p.tracef("positional[%d] %q", len(p.positionals)-1, tok)
			continue
		}

		name := trimOptionMarks(tok)

		// Inline name=value form bypasses all lookahead
		if !mode.Has(NoSplitOnEquals) {
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				p.putParam(name[:eq], name[eq+1:])
				continue
			}
		}

		if mode.Has(SingleDashMultiflag) && len(tok)-len(name) == 1 && !p.IsRegistered(name) {
			// Expand -xvf into x, v, f. A trailing character that is itself a
			// registered parameter name is held back and resolved by the
			// lookahead below (tar-style -xvf archive.tar).
			var held string
			if n := len(name); n > 0 {
				if last := intern.InternByte(name[n-1]); p.IsRegistered(last) {
					held = last
					name = name[:n-1]
				}
			}
			for j := 0; j < len(name); j++ {
				p.putFlag(intern.InternByte(name[j]))
			}
			if held == "" {
				continue
			}
			name = held
		}

		// An option with no following value token is a flag
		if i == len(tokens)-1 || isOption(tokens[i+1]) {
			p.putFlag(intern.Intern(name))
			continue
		}

		// A value-bearing token follows. Registered names always take it;
		// unregistered names take it only under PreferParamForUnregistered.
		if p.IsRegistered(name) || mode.Has(PreferParamForUnregistered) {
			p.putParam(name, tokens[i+1])
			i++
			continue
		}
		p.putFlag(intern.Intern(name))
	}
	return nil
}

// isOption reports whether tok carries option semantics: it starts with a
// dash-like marker and is not a numeric literal. Numeric detection takes
// precedence, so "-3.14" is always positional.
func isOption(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	if tok[0] != '-' && tok[0] != '/' {
		return false
	}
	return !isNumber(tok)
}

// isNumber reports whether tok parses in full as a signed decimal number
func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// trimOptionMarks strips leading dash markers from a name. If the name has
// no leading dashes, or consists only of dashes, leading slashes are
// stripped instead. This asymmetry matches DOS-style /flag tokens while
// leaving "--" and "-" intact; it is a compatibility heuristic, not a
// POSIX/Windows rule.
func trimOptionMarks(name string) string {
	pos := indexNot(name, '-')
	if pos <= 0 {
		pos = indexNot(name, '/')
	}
	if pos >= 0 {
		return name[pos:]
	}
	return name
}

// indexNot returns the index of the first byte in s that is not c, or -1
func indexNot(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return i
		}
	}
	return -1
}
