package argv

import "testing"

// TestSuggest tests did-you-mean lookups over recorded and registered names
func TestSuggest(t *testing.T) {
	p := New("output")
	mustClassify(t, p, []string{"--verbose", "--level=3"}, DefaultMode)

	if got := p.Suggest("verbse"); got != "verbose" {
		t.Errorf("Suggest(verbse) = %q, want verbose", got)
	}
	if got := p.Suggest("--levl"); got != "level" {
		t.Errorf("Suggest(--levl) = %q, want level", got)
	}
	// Registered names count as candidates even when never seen in the input
	if got := p.Suggest("outpt"); got != "output" {
		t.Errorf("Suggest(outpt) = %q, want output", got)
	}
	if got := p.Suggest("zzzzzz"); got != "" {
		t.Errorf("Suggest(zzzzzz) = %q, want empty", got)
	}
}
