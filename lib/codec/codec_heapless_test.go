//go:build heapless

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeenix/mayheap"
)

// TestDecodeVecOverflow decodes more elements than the requested ceiling can
// hold: the decode fails whole and no container comes back, under any codec.
func TestDecodeVecOverflow(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()
			data, err := c.Encode([]int64{1, 2, 3, 4, 5})
			require.NoError(t, err)

			v, err := DecodeVec[int64](c, data, 3)
			assert.ErrorIs(t, err, mayheap.ErrBufferOverflow)
			assert.Nil(t, v)
		})
	}
}

// TestDecodeStringOverflow is the text twin of TestDecodeVecOverflow.
func TestDecodeStringOverflow(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()
			data, err := c.Encode("hello world")
			require.NoError(t, err)

			s, err := DecodeString(c, data, 4)
			assert.ErrorIs(t, err, mayheap.ErrBufferOverflow)
			assert.Nil(t, s)
		})
	}
}
