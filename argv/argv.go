// Package argv classifies a raw argument vector into positional arguments,
// boolean flags, and named parameters without requiring every option to be
// declared up front. Classification is a single heuristic pass tuned by a
// Mode bitmask; a registry of pre-declared parameter names resolves the
// ambiguous cases.
//
// A command line is made of two kinds of tokens:
//  1. Positional arguments, i.e. free-standing values
//  2. Options: tokens beginning with '-' (or '/'). Of those:
//     2.1 Flags: boolean options, presence alone is the signal
//     2.2 Parameters: a name followed by a non-option value
package argv

import (
	"github.com/dzonerzy/go-argv/internal/intern"
	argvio "github.com/dzonerzy/go-argv/io"
)

// Parser holds the registry consulted during classification and the three
// output containers populated by it. A Parser classifies at most once; use
// Reset (or the Acquire/Release pool) to reuse an instance.
type Parser struct {
	positionals []string
	params      map[string]string
	flags       map[string]int // multiset: name -> occurrence count
	registered  map[string]struct{}

	classified bool
	logger     *argvio.Logger
}

// New creates a Parser, pre-registering any given names as parameter names.
// Leading dashes in the names are stripped.
func New(registered ...string) *Parser {
	p := &Parser{
		params:     make(map[string]string),
		flags:      make(map[string]int),
		registered: make(map[string]struct{}),
	}
	p.RegisterMany(registered)
	return p
}

// ClassifyArgs builds a Parser with no registered names and classifies
// tokens in one call.
func ClassifyArgs(tokens []string, mode Mode) (*Parser, error) {
	p := New()
	if err := p.Classify(tokens, mode); err != nil {
		return nil, err
	}
	return p, nil
}

// Register declares name as a parameter name ("always takes a value").
// Registering an already registered name is a no-op.
func (p *Parser) Register(name string) {
	p.registered[intern.Intern(trimOptionMarks(name))] = struct{}{}
}

// RegisterMany declares each name in names as a parameter name
func (p *Parser) RegisterMany(names []string) {
	for _, name := range names {
		p.Register(name)
	}
}

// IsRegistered reports whether name was declared as a parameter name.
// Comparison is on the dash-stripped form.
func (p *Parser) IsRegistered(name string) bool {
	_, ok := p.registered[trimOptionMarks(name)]
	return ok
}

// SetLogger attaches a logger; classification decisions are traced at debug
// level. A nil logger disables tracing.
func (p *Parser) SetLogger(l *argvio.Logger) {
	p.logger = l
}

// Reset returns the Parser to its freshly constructed state: empty
// containers, empty registry, ready to classify again. Container capacity is
// retained for reuse.
func (p *Parser) Reset() {
	p.positionals = p.positionals[:0]
	clear(p.params)
	clear(p.flags)
	clear(p.registered)
	p.classified = false
}

// Positionals returns the positional arguments in original left-to-right
// order. The returned slice is the parser's backing store; treat it as
// read-only.
func (p *Parser) Positionals() []string {
	return p.positionals
}

// NumPositionals returns the number of positional arguments
func (p *Parser) NumPositionals() int {
	return len(p.positionals)
}

// Params returns the recorded name -> value parameter mapping. Treat it as
// read-only.
func (p *Parser) Params() map[string]string {
	return p.params
}

// Flags returns the recorded flag multiset as a name -> count mapping.
// Treat it as read-only.
func (p *Parser) Flags() map[string]int {
	return p.flags
}

// putFlag records one occurrence of a flag. name must already be
// dash-stripped and interned.
func (p *Parser) putFlag(name string) {
	p.flags[name]++
	p.tracef("flag %q (count %d)", name, p.flags[name])
}

// putParam records a parameter. The first occurrence of a name wins;
// later inserts for the same name are no-ops.
func (p *Parser) putParam(name, value string) {
	if _, ok := p.params[name]; ok {
		p.tracef("param %q already set, keeping first value", name)
		return
	}
	p.params[intern.Intern(name)] = value
	p.tracef("param %q = %q", name, value)
}

func (p *Parser) tracef(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}
