package conv

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/xconv/internal/tensor"
)

// contractChannelFirst computes kernel(Cout, C*K) x patch(C*K, O) and returns
// it viewed as outShape = (Cout, O...).
func contractChannelFirst[T tensor.Numeric](kernel *tensor.Tensor[T], patch []T, outShape tensor.Shape) (*tensor.Tensor[T], error) {
	outChannels := kernel.Dim(0)
	depth := kernel.NumElements() / outChannels
	outputs := len(patch) / depth

	kernelMatrix, err := kernel.Reshape(tensor.Shape{outChannels, depth})
	if err != nil {
		return nil, err
	}
	result := matmul(false, kernelMatrix.Data(), patch, outChannels, depth, outputs)
	return tensor.FromData(result, outShape)
}

// contractChannelLast computes patch(O, C*K) x kernel(Cout, C*K)^T and returns
// it viewed as outShape = (O..., Cout).
func contractChannelLast[T tensor.Numeric](kernel *tensor.Tensor[T], patch []T, outShape tensor.Shape) (*tensor.Tensor[T], error) {
	outChannels := kernel.Dim(0)
	depth := kernel.NumElements() / outChannels
	outputs := len(patch) / depth

	kernelMatrix, err := kernel.Reshape(tensor.Shape{outChannels, depth})
	if err != nil {
		return nil, err
	}
	result := matmul(true, patch, kernelMatrix.Data(), outputs, depth, outChannels)
	return tensor.FromData(result, outShape)
}

// matmul returns the row-major (m, n) product a x b, where a is (m, k) and b is
// (k, n), or (n, k) when transB is set.
//
// float32 and float64 go through gonum's BLAS Gemm; floating point results may
// therefore differ in the last bits from a reference that sums in another order.
// Every other element type uses an exact triple loop.
func matmul[T tensor.Numeric](transB bool, a, b []T, m, k, n int) []T {
	c := make([]T, m*n)

	switch av := any(a).(type) {
	case []float64:
		blas64.Gemm(blas.NoTrans, transposeFlag(transB), 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: av},
			generalB64(any(b).([]float64), transB, k, n),
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: any(c).([]float64)})
		return c
	case []float32:
		blas32.Gemm(blas.NoTrans, transposeFlag(transB), 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: av},
			generalB32(any(b).([]float32), transB, k, n),
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: any(c).([]float32)})
		return c
	}

	if transB {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += a[i*k+kIdx] * b[j*k+kIdx]
				}
				c[i*n+j] = sum
			}
		}
		return c
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

func transposeFlag(trans bool) blas.Transpose {
	if trans {
		return blas.Trans
	}
	return blas.NoTrans
}

func generalB64(b []float64, transB bool, k, n int) blas64.General {
	if transB {
		return blas64.General{Rows: n, Cols: k, Stride: k, Data: b}
	}
	return blas64.General{Rows: k, Cols: n, Stride: n, Data: b}
}

func generalB32(b []float32, transB bool, k, n int) blas32.General {
	if transB {
		return blas32.General{Rows: n, Cols: k, Stride: k, Data: b}
	}
	return blas32.General{Rows: k, Cols: n, Stride: n, Data: b}
}
