package batchload_test

import (
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/datakit/internal/batchload"
)

const pathNameTemplateConstant = "file-%03d"

func buildPathList(pathCount int) []string {
	pathList := make([]string, 0, pathCount)
	for pathIndex := 0; pathIndex < pathCount; pathIndex++ {
		pathList = append(pathList, fmt.Sprintf(pathNameTemplateConstant, pathIndex))
	}
	return pathList
}

func identityLoader(filePath string) (string, error) {
	return filePath, nil
}

func collectBatches(testInstance *testing.T, batchSequence iter.Seq2[[]string, error]) [][]string {
	testInstance.Helper()

	var collectedBatches [][]string
	for loadedBatch, loadError := range batchSequence {
		require.NoError(testInstance, loadError)
		collectedBatches = append(collectedBatches, loadedBatch)
	}
	return collectedBatches
}

func TestBatchesPartitioning(testInstance *testing.T) {
	testScenarios := []struct {
		title                    string
		pathCount                int
		batchSize                int
		expectedBatchCount       int
		expectedFinalBatchLength int
	}{
		{title: "evenPartition", pathCount: 8, batchSize: 4, expectedBatchCount: 2, expectedFinalBatchLength: 4},
		{title: "shortFinalBatch", pathCount: 10, batchSize: 4, expectedBatchCount: 3, expectedFinalBatchLength: 2},
		{title: "singleOversizedBatch", pathCount: 3, batchSize: 10, expectedBatchCount: 1, expectedFinalBatchLength: 3},
		{title: "unitBatches", pathCount: 3, batchSize: 1, expectedBatchCount: 3, expectedFinalBatchLength: 1},
		{title: "emptyInputYieldsNoBatches", pathCount: 0, batchSize: 4, expectedBatchCount: 0, expectedFinalBatchLength: 0},
	}

	for _, testScenario := range testScenarios {
		testInstance.Run(testScenario.title, func(testInstance *testing.T) {
			pathList := buildPathList(testScenario.pathCount)

			batchSequence, constructionError := batchload.Batches(pathList, testScenario.batchSize, identityLoader)
			require.NoError(testInstance, constructionError)

			collectedBatches := collectBatches(testInstance, batchSequence)
			require.Len(testInstance, collectedBatches, testScenario.expectedBatchCount)

			reassembledPaths := make([]string, 0, testScenario.pathCount)
			for batchIndex, collectedBatch := range collectedBatches {
				if batchIndex < len(collectedBatches)-1 {
					require.Len(testInstance, collectedBatch, testScenario.batchSize)
				} else {
					require.Len(testInstance, collectedBatch, testScenario.expectedFinalBatchLength)
				}
				reassembledPaths = append(reassembledPaths, collectedBatch...)
			}
			require.Equal(testInstance, pathList, reassembledPaths)
		})
	}
}

func TestBatchesRejectsNonPositiveBatchSize(testInstance *testing.T) {
	for _, invalidBatchSize := range []int{0, -1} {
		_, constructionError := batchload.Batches(buildPathList(4), invalidBatchSize, identityLoader)
		require.Error(testInstance, constructionError)
		require.Contains(testInstance, constructionError.Error(), "batch size must be positive")
	}
}

func TestBatchesLoadsLazilyAtBatchBoundaries(testInstance *testing.T) {
	loadedPathCount := 0
	countingLoader := func(filePath string) (string, error) {
		loadedPathCount++
		return filePath, nil
	}

	batchSequence, constructionError := batchload.Batches(buildPathList(6), 2, countingLoader)
	require.NoError(testInstance, constructionError)

	nextBatch, stopPulling := iter.Pull2(batchSequence)
	defer stopPulling()

	require.Zero(testInstance, loadedPathCount)

	_, firstBatchError, firstBatchAvailable := nextBatch()
	require.True(testInstance, firstBatchAvailable)
	require.NoError(testInstance, firstBatchError)
	require.Equal(testInstance, 2, loadedPathCount)

	_, secondBatchError, secondBatchAvailable := nextBatch()
	require.True(testInstance, secondBatchAvailable)
	require.NoError(testInstance, secondBatchError)
	require.Equal(testInstance, 4, loadedPathCount)
}

func TestBatchesSurfacesLoaderFailureAndStops(testInstance *testing.T) {
	loaderFailure := errors.New("loader failure")
	failingPath := fmt.Sprintf(pathNameTemplateConstant, 3)
	failingLoader := func(filePath string) (string, error) {
		if filePath == failingPath {
			return "", loaderFailure
		}
		return filePath, nil
	}

	batchSequence, constructionError := batchload.Batches(buildPathList(6), 2, failingLoader)
	require.NoError(testInstance, constructionError)

	var deliveredBatches [][]string
	var observedError error
	for loadedBatch, loadError := range batchSequence {
		if loadError != nil {
			observedError = loadError
			continue
		}
		deliveredBatches = append(deliveredBatches, loadedBatch)
	}

	require.ErrorIs(testInstance, observedError, loaderFailure)
	require.Len(testInstance, deliveredBatches, 1)
}

func TestBatchesRestartsPerRange(testInstance *testing.T) {
	batchSequence, constructionError := batchload.Batches(buildPathList(5), 2, identityLoader)
	require.NoError(testInstance, constructionError)

	firstPass := collectBatches(testInstance, batchSequence)
	secondPass := collectBatches(testInstance, batchSequence)
	require.Equal(testInstance, firstPass, secondPass)
	require.Len(testInstance, secondPass, 3)
}
