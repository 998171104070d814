package argv

import "testing"

// TestAcquireRelease tests that pooled parsers always come back fresh
func TestAcquireRelease(t *testing.T) {
	p := Acquire()
	p.Register("x")
	mustClassify(t, p, []string{"--x", "1", "pos"}, DefaultMode)
	Release(p)

	// Whatever instance the pool hands out next must be unclassified and empty
	p2 := Acquire()
	defer Release(p2)

	if p2.NumPositionals() != 0 || len(p2.Params()) != 0 || len(p2.Flags()) != 0 {
		t.Errorf("Pooled parser not reset: %v %v %v",
			p2.Positionals(), p2.Params(), p2.Flags())
	}
	if p2.IsRegistered("x") {
		t.Error("Pooled parser retained registry entries")
	}
	if err := p2.Classify([]string{"a"}, DefaultMode); err != nil {
		t.Errorf("Pooled parser must accept a new pass: %v", err)
	}
}

// BenchmarkClassifyPooled measures pooled classification of a typical vector
func BenchmarkClassifyPooled(b *testing.B) {
	tokens := []string{"run", "--port", "9000", "-v", "in.txt", "--name=joe"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := Acquire()
		p.Register("port")
		if err := p.Classify(tokens, DefaultMode); err != nil {
			b.Fatal(err)
		}
		Release(p)
	}
}

// BenchmarkClassifyFresh measures per-call parser construction for contrast
func BenchmarkClassifyFresh(b *testing.B) {
	tokens := []string{"run", "--port", "9000", "-v", "in.txt", "--name=joe"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := New("port")
		if err := p.Classify(tokens, DefaultMode); err != nil {
			b.Fatal(err)
		}
	}
}
