package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWordOfRoundTrip(t *testing.T) {
	for w := 0; w <= 0xffff; w += 0x101 {
		word := Word(w)
		low, high := Split(word)
		assert.Equal(t, word, WordOf(low, high))
	}
}

func TestZeroOf(t *testing.T) {
	assert.Equal(t, Word(0x42), ZeroOf(0x42))
}

func TestSplitKnownValue(t *testing.T) {
	low, high := Split(0xabcd)
	assert.Equal(t, Byte(0xcd), low)
	assert.Equal(t, Byte(0xab), high)
}
