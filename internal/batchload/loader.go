package batchload

import (
	"fmt"
	"iter"
)

const nonPositiveBatchSizeTemplateConstant = "batch size must be positive, got %d"

// LoaderFunc maps one file path to a loaded result.
type LoaderFunc[ResultType any] func(filePath string) (ResultType, error)

// Batches returns a lazy sequence of batches over filePaths. The sequence
// yields exactly ceil(len(filePaths)/batchSize) batches; every batch except
// possibly the last holds batchSize results. The loader runs for a path only
// when the batch containing it is consumed, and a loader failure is yielded in
// place of the failing batch before the sequence stops. Ranging over the
// sequence again restarts from the first batch.
func Batches[ResultType any](filePaths []string, batchSize int, loader LoaderFunc[ResultType]) (iter.Seq2[[]ResultType, error], error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf(nonPositiveBatchSizeTemplateConstant, batchSize)
	}

	batchSequence := func(yield func([]ResultType, error) bool) {
		for batchStart := 0; batchStart < len(filePaths); batchStart += batchSize {
			batchEnd := min(batchStart+batchSize, len(filePaths))

			loadedBatch := make([]ResultType, 0, batchEnd-batchStart)
			for _, filePath := range filePaths[batchStart:batchEnd] {
				loadedResult, loadError := loader(filePath)
				if loadError != nil {
					yield(nil, loadError)
					return
				}
				loadedBatch = append(loadedBatch, loadedResult)
			}

			if !yield(loadedBatch, nil) {
				return
			}
		}
	}

	return batchSequence, nil
}
