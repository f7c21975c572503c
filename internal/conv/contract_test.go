package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xconv/internal/tensor"
)

func TestMatmul(t *testing.T) {
	// a = [[1 2 3] [4 5 6]], b = [[7 8] [9 10] [11 12]]
	expected := []int64{58, 64, 139, 154}

	t.Run("int64", func(t *testing.T) {
		got := matmul(false, []int64{1, 2, 3, 4, 5, 6}, []int64{7, 8, 9, 10, 11, 12}, 2, 3, 2)
		assert.Equal(t, expected, got)
	})

	t.Run("int64 transposed", func(t *testing.T) {
		got := matmul(true, []int64{1, 2, 3, 4, 5, 6}, []int64{7, 9, 11, 8, 10, 12}, 2, 3, 2)
		assert.Equal(t, expected, got)
	})

	t.Run("float64", func(t *testing.T) {
		got := matmul(false, []float64{1, 2, 3, 4, 5, 6}, []float64{7, 8, 9, 10, 11, 12}, 2, 3, 2)
		assert.InDeltaSlice(t, []float64{58, 64, 139, 154}, got, 1e-12)
	})

	t.Run("float64 transposed", func(t *testing.T) {
		got := matmul(true, []float64{1, 2, 3, 4, 5, 6}, []float64{7, 9, 11, 8, 10, 12}, 2, 3, 2)
		assert.InDeltaSlice(t, []float64{58, 64, 139, 154}, got, 1e-12)
	})

	t.Run("float32", func(t *testing.T) {
		got := matmul(false, []float32{1, 2, 3, 4, 5, 6}, []float32{7, 8, 9, 10, 11, 12}, 2, 3, 2)
		assert.InDeltaSlice(t, []float32{58, 64, 139, 154}, got, 1e-4)
	})

	t.Run("float32 transposed", func(t *testing.T) {
		got := matmul(true, []float32{1, 2, 3, 4, 5, 6}, []float32{7, 9, 11, 8, 10, 12}, 2, 3, 2)
		assert.InDeltaSlice(t, []float32{58, 64, 139, 154}, got, 1e-4)
	})

	t.Run("uint8 wraps", func(t *testing.T) {
		got := matmul(false, []uint8{16}, []uint8{16}, 1, 1, 1)
		assert.Equal(t, []uint8{0}, got)
	})
}

func TestContract_Layouts(t *testing.T) {
	// Two output channels over a 1-channel, 2-tap patch with three outputs.
	kernel := tensor.MustFromSlice([]int32{1, 1, 1, -1}, tensor.Shape{2, 1, 2})

	// channel-first patch [C=1, K=2, O=3]
	cf, err := contractChannelFirst(kernel, []int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 7, 9, -3, -3, -3}, cf.Data())

	// channel-last patch [O=3, C=1, K=2] holding the same windows
	cl, err := contractChannelLast(kernel, []int32{1, 4, 2, 5, 3, 6}, tensor.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int32{5, -3, 7, -3, 9, -3}, cl.Data())
}
