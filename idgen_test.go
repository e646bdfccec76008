package acctbatch_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arhyth/acctbatch"
)

func TestIDGenerator(t *testing.T) {
	t.Run("returns six random digits and a two digit sequence", func(tt *testing.T) {
		as := assert.New(tt)
		g := acctbatch.NewIDGeneratorFrom(rand.NewPCG(1, 2))
		for i := 0; i < 3; i++ {
			id := g.Next()
			as.Len(id, 8)
			as.Regexp(`^[0-9]{8}$`, id)
			as.Equal(fmt.Sprintf("%02d", i), id[6:])
		}
		as.Equal(3, g.Count())
	})

	t.Run("sequence wraps modulo 100", func(tt *testing.T) {
		as := assert.New(tt)
		g := acctbatch.NewIDGeneratorFrom(rand.NewPCG(3, 4))
		var id string
		for i := 0; i <= 100; i++ {
			id = g.Next()
			if i == 99 {
				as.Equal("99", id[6:])
			}
		}
		as.Equal("00", id[6:])
		as.Equal(101, g.Count())
	})

	t.Run("same seed gives same digits", func(tt *testing.T) {
		a := acctbatch.NewIDGeneratorFrom(rand.NewPCG(5, 6))
		b := acctbatch.NewIDGeneratorFrom(rand.NewPCG(5, 6))
		assert.Equal(tt, a.Next(), b.Next())
	})

	t.Run("wall clock seeded generator has the same shape", func(tt *testing.T) {
		id := acctbatch.NewIDGenerator().Next()
		assert.Regexp(tt, `^[0-9]{6}00$`, id)
	})
}
