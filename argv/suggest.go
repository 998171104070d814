package argv

import "github.com/dzonerzy/go-argv/internal/fuzzy"

// suggestMaxDistance is the edit distance ceiling for did-you-mean lookups
const suggestMaxDistance = 2

// Suggest returns the recorded or registered name closest to name, for
// did-you-mean hints when a flag or parameter lookup comes back empty.
// Returns "" when nothing is within edit distance.
func (p *Parser) Suggest(name string) string {
	candidates := make([]string, 0, len(p.flags)+len(p.params)+len(p.registered))
	for n := range p.flags {
		candidates = append(candidates, n)
	}
	for n := range p.params {
		candidates = append(candidates, n)
	}
	for n := range p.registered {
		candidates = append(candidates, n)
	}
	return fuzzy.FindBestName(trimOptionMarks(name), candidates, suggestMaxDistance)
}
