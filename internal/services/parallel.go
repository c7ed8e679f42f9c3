package services

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the list size below which sums are computed inline.
const parallelThreshold = 32

// DefaultWorkers sizes the worker pool to the available CPUs, leaving one for the caller.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

// sumParallel evaluates f over items with at most workers goroutines and adds the
// results in item order, so the result does not depend on scheduling.
func sumParallel[T any](items []T, workers int, f func(T) float64) float64 {
	parts := make([]float64, len(items))

	if workers <= 1 || len(items) < parallelThreshold {
		for i, item := range items {
			parts[i] = f(item)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, item := range items {
			g.Go(func() error {
				parts[i] = f(item)
				return nil
			})
		}
		_ = g.Wait() // f cannot fail
	}

	var total float64
	for _, p := range parts {
		total += p
	}
	return total
}
