package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"udyam-portal/pkg/validation"
)

func TestNumberIssuer_Format(t *testing.T) {
	issuer := NewNumberIssuer("DL", "05")
	for i := 0; i < 5; i++ {
		n := issuer.Next()
		assert.True(t, validation.ValidUdyamNumber(n), "number %q", n)
	}
}

func TestNumberIssuer_UniqueUnderConcurrency(t *testing.T) {
	issuer := NewNumberIssuer("MH", "12")

	const workers = 20
	var mu sync.Mutex
	seen := make(map[string]bool, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := issuer.Next()
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers)
}
