package argv

import "github.com/dzonerzy/go-argv/internal/pool"

// parserPool recycles Parser instances. Reset runs on every Get, so a pooled
// parser always starts from the unclassified state with empty containers.
var parserPool = pool.NewPoolWithReset(
	func() *Parser { return New() },
	func(p *Parser) { p.Reset() },
)

// Acquire returns a pooled Parser ready for one classification pass.
// Callers that classify many argument vectors (shells, batch runners) avoid
// re-allocating the containers each time.
func Acquire() *Parser {
	return parserPool.Get()
}

// Release returns a Parser to the pool. The caller must not touch p
// afterwards.
func Release(p *Parser) {
	parserPool.Put(p)
}
