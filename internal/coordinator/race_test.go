package coordinator

import (
	"fmt"
	"math/bits"
	"sync"
	"testing"

	"github.com/dolr-ai/videohash-indexer/internal/hashcode"
)

// farApartHashes returns n hash strings whose codes are pairwise more than
// 10 bits apart, so every one of them misses every other under the default
// threshold. Each code repeats a single even-weight byte across all 8 byte
// positions; two distinct even-weight bytes differ in at least 2 bits, so
// two distinct codes differ in at least 16.
func farApartHashes(n int) []string {
	if n > 128 {
		panic("only 128 even-weight bytes exist")
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		b := uint64(i) << 1
		if bits.OnesCount64(uint64(i))%2 == 1 {
			b |= 1
		}
		out[i] = hashcode.String(b * 0x0101010101010101)
	}
	return out
}

// TestConcurrentDistinctInserts verifies that concurrent SearchOrInsert
// calls with pairwise-distant hashes all land: none of them may observe a
// spurious match against another in-flight insert, and none may be lost.
func TestConcurrentDistinctInserts(t *testing.T) {
	c := New()

	const n = 64
	hashes := farApartHashes(n)

	var wg sync.WaitGroup
	wg.Add(n)
	verdicts := make([]Verdict, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			verdicts[i], errs[i] = c.SearchOrInsert(fmt.Sprintf("video-%d", i), hashes[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d error: %v", i, errs[i])
		}
		if !verdicts[i].HashAdded || verdicts[i].MatchFound {
			t.Fatalf("goroutine %d verdict = %+v, want miss+insert", i, verdicts[i])
		}
	}
	if c.Len() != n {
		t.Fatalf("final population = %d, want %d", c.Len(), n)
	}
}

// TestConcurrentDeleteWithReaders runs deletions against a populated index
// while other goroutines hammer the read-only surface. The deletes force
// swap-remove relocations under contention; afterwards every surviving
// entry must still resolve to its original hash.
func TestConcurrentDeleteWithReaders(t *testing.T) {
	c := New()

	const n = 64
	hashes := farApartHashes(n)
	for i := 0; i < n; i++ {
		if _, err := c.SearchOrInsert(fmt.Sprintf("video-%d", i), hashes[i]); err != nil {
			t.Fatalf("setup insert %d: %v", i, err)
		}
	}

	var wg sync.WaitGroup

	// Delete the even-numbered entries.
	for i := 0; i < n; i += 2 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := c.Delete(fmt.Sprintf("video-%d", i)); err != nil {
				t.Errorf("Delete(video-%d): %v", i, err)
			}
		}(i)
	}

	// Readers run concurrently with the deletes; they make no assumptions
	// about which deletions have landed yet, only that reads never race.
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				c.Lookup(fmt.Sprintf("video-%d", i))
				c.Len()
			}
		}()
	}

	wg.Wait()

	if c.Len() != n/2 {
		t.Fatalf("final population = %d, want %d", c.Len(), n/2)
	}
	for i := 1; i < n; i += 2 {
		code, ok := c.Lookup(fmt.Sprintf("video-%d", i))
		if !ok {
			t.Fatalf("video-%d missing after unrelated deletes", i)
		}
		want, err := hashcode.Parse(hashes[i])
		if err != nil {
			t.Fatal(err)
		}
		if code != want {
			t.Fatalf("video-%d code = %#x, want %#x", i, code, want)
		}
	}
	for i := 0; i < n; i += 2 {
		if _, ok := c.Lookup(fmt.Sprintf("video-%d", i)); ok {
			t.Fatalf("video-%d still present after delete", i)
		}
	}
}
