package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/temirov/datakit/internal/arrayinfo"
)

const (
	fieldSeparatorsConstant          = ", \t"
	initialScanBufferSizeConstant    = 64 * 1024
	maximumScanBufferSizeConstant    = 16 * 1024 * 1024
	emptyInputMessageConstant        = "input contains no numeric rows"
	raggedRowTemplateConstant        = "row %d has %d values, expected %d"
	invalidValueTemplateConstant     = "row %d: invalid numeric value %q: %w"
	invalidAxisValueTemplateConstant = "invalid axis value %q"
)

// parseMatrix reads a whitespace- or comma-separated block of numbers and
// builds a dense matrix. Every non-empty line becomes one row; all rows must
// hold the same number of values.
func parseMatrix(inputReader io.Reader) (*mat.Dense, error) {
	lineScanner := bufio.NewScanner(inputReader)
	// Wide rows overflow the default token limit.
	lineScanner.Buffer(make([]byte, initialScanBufferSizeConstant), maximumScanBufferSizeConstant)

	var matrixValues []float64
	rowCount := 0
	columnCount := 0

	for lineScanner.Scan() {
		rowFields := strings.FieldsFunc(lineScanner.Text(), func(fieldRune rune) bool {
			return strings.ContainsRune(fieldSeparatorsConstant, fieldRune)
		})
		if len(rowFields) == 0 {
			continue
		}

		if rowCount == 0 {
			columnCount = len(rowFields)
		} else if len(rowFields) != columnCount {
			return nil, fmt.Errorf(raggedRowTemplateConstant, rowCount+1, len(rowFields), columnCount)
		}

		for _, rowField := range rowFields {
			parsedValue, parseError := strconv.ParseFloat(rowField, 64)
			if parseError != nil {
				return nil, fmt.Errorf(invalidValueTemplateConstant, rowCount+1, rowField, parseError)
			}
			matrixValues = append(matrixValues, parsedValue)
		}
		rowCount++
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, scanError
	}
	if rowCount == 0 {
		return nil, errors.New(emptyInputMessageConstant)
	}

	return mat.NewDense(rowCount, columnCount, matrixValues), nil
}

// resolveAxis converts the textual axis value to a reporter axis. Empty means
// reduce over all elements; any integer is passed through so the reporter can
// apply its own bounds check.
func resolveAxis(axisValue string) (*arrayinfo.Axis, error) {
	trimmedAxisValue := strings.TrimSpace(axisValue)
	if len(trimmedAxisValue) == 0 {
		return nil, nil
	}

	parsedAxis, parseError := strconv.Atoi(trimmedAxisValue)
	if parseError != nil {
		return nil, fmt.Errorf(invalidAxisValueTemplateConstant, axisValue)
	}

	reductionAxis := arrayinfo.Axis(parsedAxis)
	return &reductionAxis, nil
}
