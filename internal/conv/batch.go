package conv

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xconv/internal/parallel"
	"github.com/born-ml/xconv/internal/tensor"
)

// Convolve1DBatch applies Convolve1D to every input with a shared kernel and
// options. Samples are independent and may run concurrently according to cfg;
// results keep the order of inputs. The returned error names the first failing
// sample it observed.
func Convolve1DBatch[T tensor.Numeric](inputs []*tensor.Tensor[T], kernel *tensor.Tensor[T], options KernelOptions, cfg parallel.Config) ([]*tensor.Tensor[T], error) {
	results := make([]*tensor.Tensor[T], len(inputs))
	err := parallel.For(len(inputs), func(i int) error {
		out, err := Convolve1D(inputs[i], kernel, options)
		if err != nil {
			return errors.WithMessagef(err, "sample %d", i)
		}
		results[i] = out
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Convolve2DBatch applies Convolve2D to every input with a shared kernel and
// options. See Convolve1DBatch for the concurrency contract.
func Convolve2DBatch[T tensor.Numeric](inputs []*tensor.Tensor[T], kernel *tensor.Tensor[T], options Options2D, cfg parallel.Config) ([]*tensor.Tensor[T], error) {
	results := make([]*tensor.Tensor[T], len(inputs))
	err := parallel.For(len(inputs), func(i int) error {
		out, err := Convolve2DOptions(inputs[i], kernel, options)
		if err != nil {
			return errors.WithMessagef(err, "sample %d", i)
		}
		results[i] = out
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}
