// Empirical distributions: text parsing, cumulative-table construction,
// and inverse-transform sampling.

package sim

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DistributionTolerance is the maximum allowed |sum(p) - 1| for a Table.
const DistributionTolerance = 0.001

// Bin is a single (value, probability) pair of an empirical distribution.
type Bin struct {
	Value       float64
	Probability float64
}

// Table is an ordered discrete probability table.
type Table []Bin

// CumulativeBin holds a value and the running probability up to and including it.
type CumulativeBin struct {
	Value      float64
	Cumulative float64
}

// CumulativeTable is the CDF derived from a Table. The last entry is always exactly 1.0.
type CumulativeTable []CumulativeBin

// ParseTable reads one "<value>, <probability>" pair per line. Blank lines are skipped.
func ParseTable(text string) (Table, error) {
	var table Table
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d %q: want \"<value>, <probability>\"", ErrMalformedDistributionLine, lineNo, line)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: value: %v", ErrMalformedDistributionLine, lineNo, line, err)
		}
		prob, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: probability: %v", ErrMalformedDistributionLine, lineNo, line, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: line %d %q: value must be finite", ErrMalformedDistributionLine, lineNo, line)
		}
		if prob < 0 || prob > 1 || math.IsNaN(prob) {
			return nil, fmt.Errorf("%w: line %d %q: probability %g not in [0, 1]", ErrProbabilityOutOfRange, lineNo, line, prob)
		}
		table = append(table, Bin{Value: value, Probability: prob})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading distribution: %w", err)
	}
	return table, nil
}

// ParseCumulative parses text and builds its cumulative table in one step.
func ParseCumulative(text string) (CumulativeTable, error) {
	table, err := ParseTable(text)
	if err != nil {
		return nil, err
	}
	return BuildCumulative(table)
}

// BuildCumulative converts a probability table into a cumulative table.
func BuildCumulative(table Table) (CumulativeTable, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrInvalidDistribution)
	}
	probs := make([]float64, len(table))
	for i, b := range table {
		if b.Value < 0 || math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
			return nil, fmt.Errorf("%w: entry %d has value %g; durations must be finite and non-negative", ErrInvalidDistribution, i+1, b.Value)
		}
		if b.Probability < 0 {
			return nil, fmt.Errorf("%w: entry %d (value %g) has negative probability %g", ErrInvalidDistribution, i+1, b.Value, b.Probability)
		}
		probs[i] = b.Probability
	}
	sum := floats.Sum(probs)
	if math.Abs(sum-1.0) > DistributionTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %.6f, want 1.0 ± %g", ErrInvalidDistribution, sum, DistributionTolerance)
	}

	running := floats.CumSum(make([]float64, len(probs)), probs)
	cdf := make(CumulativeTable, len(table))
	for i, b := range table {
		cdf[i] = CumulativeBin{Value: b.Value, Cumulative: running[i]}
	}
	// absorb floating-point drift
	cdf[len(cdf)-1].Cumulative = 1.0
	return cdf, nil
}

// Sample draws one value by inverse-transform sampling.
// If rounding leaves no entry with cumulative >= r, the last value is returned.
func (c CumulativeTable) Sample(src RandomSource) float64 {
	r := src.Float64()
	for _, b := range c {
		if b.Cumulative >= r {
			return b.Value
		}
	}
	return c[len(c)-1].Value
}

// Table returns the per-entry probabilities recovered from the running sums.
func (c CumulativeTable) Table() Table {
	t := make(Table, len(c))
	prev := 0.0
	for i, b := range c {
		t[i] = Bin{Value: b.Value, Probability: b.Cumulative - prev}
		prev = b.Cumulative
	}
	return t
}

// String renders the table in the same "<value>, <probability>" text format ParseTable reads.
func (t Table) String() string {
	var sb strings.Builder
	for _, b := range t {
		sb.WriteString(strconv.FormatFloat(b.Value, 'g', -1, 64))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatFloat(b.Probability, 'g', -1, 64))
		sb.WriteString("\n")
	}
	return sb.String()
}
