package service

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NumberIssuer hands out registration numbers in the published format
// UDYAM-XX-NN-NNNNNN. The running counter is seeded from the clock so
// restarts do not restart the visible sequence from zero; numbers are
// display identifiers, not a persistence key.
type NumberIssuer struct {
	region  string
	series  string
	counter atomic.Uint64
}

func NewNumberIssuer(region, series string) *NumberIssuer {
	n := &NumberIssuer{region: region, series: series}
	n.counter.Store(uint64(time.Now().UnixNano()) % 900000)
	return n
}

// Next returns a fresh registration number. Safe for concurrent use.
func (n *NumberIssuer) Next() string {
	v := n.counter.Add(1) % 1000000
	return fmt.Sprintf("UDYAM-%s-%s-%06d", n.region, n.series, v)
}
