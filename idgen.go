package acctbatch

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IDGenerator hands out 8-digit account numbers: six random digits followed
// by the run counter modulo 100. Numbers are not checked for uniqueness.
type IDGenerator struct {
	rnd *rand.Rand
	seq int
}

// NewIDGenerator seeds the random digits from the wall clock.
func NewIDGenerator() *IDGenerator {
	seed := uint64(time.Now().UnixNano())
	return NewIDGeneratorFrom(rand.NewPCG(seed, seed>>1))
}

// NewIDGeneratorFrom draws the random digits from src.
func NewIDGeneratorFrom(src rand.Source) *IDGenerator {
	return &IDGenerator{rnd: rand.New(src)}
}

// Next returns a new account number and advances the run counter, whether or
// not the caller ends up admitting the account.
func (g *IDGenerator) Next() string {
	buf := make([]byte, 0, 8)
	for i := 0; i < 6; i++ {
		buf = append(buf, byte('0'+g.rnd.IntN(10)))
	}
	id := fmt.Sprintf("%s%02d", buf, g.seq%100)
	g.seq++
	return id
}

// Count is the number of account numbers handed out so far.
func (g *IDGenerator) Count() int {
	return g.seq
}
