package arrayinfo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	matrixExpectedTypeNameConstant = "mat.Matrix"
	matrixDimensionCountConstant   = 2
	typeMismatchTemplateConstant   = "value was expecting %s, got %s"
	axisOutOfRangeTemplateConstant = "axis %d out of range for %d dimensions"
	reportHeaderConstant           = "======= ARRAY INFO ======="
	reportLineTemplateConstant     = "%5s : %s\n"
	shapeLabelConstant             = "shape"
	maximumLabelConstant           = "max"
	minimumLabelConstant           = "min"
	meanLabelConstant              = "mean"
	varianceLabelConstant          = "var"
	shapeElementSeparatorConstant  = ", "
	reducedValueSeparatorConstant  = " "
	floatFormatVerbConstant        = byte('g')
	floatFormatPrecisionConstant   = -1
	floatFormatBitSizeConstant     = 64
)

// Axis selects the dimension a reduction runs along.
type Axis int

// Supported reduction axes for two-dimensional matrices.
const (
	AxisColumns Axis = 0
	AxisRows    Axis = 1
)

// Options control how statistics are reduced.
type Options struct {
	// Axis reduces each statistic along the selected dimension. Nil reduces
	// over all elements, producing one scalar per statistic.
	Axis *Axis
}

// Report holds the computed summary statistics. Each statistic slice has one
// element when reduced over all elements, or one element per column (axis 0)
// or per row (axis 1) otherwise.
type Report struct {
	Shape    []int
	Max      []float64
	Min      []float64
	Mean     []float64
	Variance []float64
	Axis     *Axis
}

// TypeMismatchError reports a value that is not a numeric matrix.
type TypeMismatchError struct {
	ExpectedType string
	ActualType   string
}

// Error names the expected and the actual type.
func (typeMismatchError *TypeMismatchError) Error() string {
	return fmt.Sprintf(typeMismatchTemplateConstant, typeMismatchError.ExpectedType, typeMismatchError.ActualType)
}

// Describe validates value as a numeric matrix and computes its summary
// statistics, honoring the reduction axis uniformly across all four
// reductions. Variance is the population variance.
func Describe(value any, options Options) (Report, error) {
	matrixValue, isMatrix := value.(mat.Matrix)
	if !isMatrix {
		return Report{}, &TypeMismatchError{
			ExpectedType: matrixExpectedTypeNameConstant,
			ActualType:   fmt.Sprintf("%T", value),
		}
	}

	rowCount, columnCount := matrixValue.Dims()
	report := Report{Shape: []int{rowCount, columnCount}, Axis: options.Axis}

	if options.Axis == nil {
		flattenedValues := flattenMatrix(matrixValue, rowCount, columnCount)
		report.Max = []float64{floats.Max(flattenedValues)}
		report.Min = []float64{floats.Min(flattenedValues)}
		report.Mean = []float64{stat.Mean(flattenedValues, nil)}
		report.Variance = []float64{stat.PopVariance(flattenedValues, nil)}
		return report, nil
	}

	switch *options.Axis {
	case AxisColumns:
		for columnIndex := 0; columnIndex < columnCount; columnIndex++ {
			appendStatistics(&report, mat.Col(nil, columnIndex, matrixValue))
		}
	case AxisRows:
		for rowIndex := 0; rowIndex < rowCount; rowIndex++ {
			appendStatistics(&report, mat.Row(nil, rowIndex, matrixValue))
		}
	default:
		return Report{}, fmt.Errorf(axisOutOfRangeTemplateConstant, *options.Axis, matrixDimensionCountConstant)
	}

	return report, nil
}

// Fprint computes the statistics for value and writes the labeled ARRAY INFO
// block to writer.
func Fprint(writer io.Writer, value any, options Options) error {
	report, describeError := Describe(value, options)
	if describeError != nil {
		return describeError
	}
	return FprintReport(writer, report)
}

// FprintReport writes the labeled ARRAY INFO block for an already computed report.
func FprintReport(writer io.Writer, report Report) error {
	reportLines := []struct {
		label string
		value string
	}{
		{label: shapeLabelConstant, value: formatShape(report.Shape)},
		{label: maximumLabelConstant, value: formatStatistic(report.Axis, report.Max)},
		{label: minimumLabelConstant, value: formatStatistic(report.Axis, report.Min)},
		{label: meanLabelConstant, value: formatStatistic(report.Axis, report.Mean)},
		{label: varianceLabelConstant, value: formatStatistic(report.Axis, report.Variance)},
	}

	if _, writeError := fmt.Fprintln(writer, reportHeaderConstant); writeError != nil {
		return writeError
	}
	for _, reportLine := range reportLines {
		if _, writeError := fmt.Fprintf(writer, reportLineTemplateConstant, reportLine.label, reportLine.value); writeError != nil {
			return writeError
		}
	}
	return nil
}

func flattenMatrix(matrixValue mat.Matrix, rowCount int, columnCount int) []float64 {
	flattenedValues := make([]float64, 0, rowCount*columnCount)
	for rowIndex := 0; rowIndex < rowCount; rowIndex++ {
		for columnIndex := 0; columnIndex < columnCount; columnIndex++ {
			flattenedValues = append(flattenedValues, matrixValue.At(rowIndex, columnIndex))
		}
	}
	return flattenedValues
}

func appendStatistics(report *Report, values []float64) {
	report.Max = append(report.Max, floats.Max(values))
	report.Min = append(report.Min, floats.Min(values))
	report.Mean = append(report.Mean, stat.Mean(values, nil))
	report.Variance = append(report.Variance, stat.PopVariance(values, nil))
}

func formatShape(shape []int) string {
	shapeElements := make([]string, 0, len(shape))
	for _, shapeElement := range shape {
		shapeElements = append(shapeElements, strconv.Itoa(shapeElement))
	}
	return "(" + strings.Join(shapeElements, shapeElementSeparatorConstant) + ")"
}

func formatStatistic(axis *Axis, values []float64) string {
	formattedValues := make([]string, 0, len(values))
	for _, statisticValue := range values {
		formattedValues = append(formattedValues, strconv.FormatFloat(statisticValue, floatFormatVerbConstant, floatFormatPrecisionConstant, floatFormatBitSizeConstant))
	}

	if axis == nil && len(formattedValues) == 1 {
		return formattedValues[0]
	}
	return "[" + strings.Join(formattedValues, reducedValueSeparatorConstant) + "]"
}
