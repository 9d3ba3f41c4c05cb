package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackInvolution(t *testing.T) {
	cases := []Flags{
		{},
		{Negative: true},
		{Carry: true, Zero: true},
		{Negative: true, Overflow: true, Break: true, Decimal: true, InterruptDisable: true, Zero: true, Carry: true},
		{Overflow: true, Zero: true},
	}
	for _, f := range cases {
		assert.Equal(t, f, Unpack(Pack(f)))
	}
}

func TestPackSetsUnusedBit(t *testing.T) {
	b := Pack(Flags{})
	assert.Equal(t, byte(0b0010_0000), b)
}

func TestPackCanonicalLayout(t *testing.T) {
	b := Pack(Flags{Negative: true, Carry: true})
	assert.Equal(t, byte(0b1010_0001), b)
}
