// Package profiling summarizes the numeric content of an inferred column:
// summary statistics, distribution shape, and an approximate normality test.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"coltype/domain/convert"
	"coltype/domain/core"
)

// Summary holds the basic summary statistics of a numeric column
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Distribution holds distribution-shape markers
type Distribution struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	IsNormal bool    `json:"is_normal"`
	ShapiroP float64 `json:"shapiro_p"`
}

// ColumnProfile is the profiling report for one column
type ColumnProfile struct {
	ID           core.ProfileID `json:"id"`
	Column       string         `json:"column"`
	CreatedAt    core.Timestamp `json:"created_at"`
	NumericCount int            `json:"numeric_count"`
	Summary      Summary        `json:"summary"`
	Distribution Distribution   `json:"distribution"`
}

// Profiler handles numeric column profiling
type Profiler struct{}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// ProfileColumn profiles the numeric portion of a converted column. Values
// with int, float or percent kinds contribute; everything else is skipped.
// Returns core.ErrNoData when the column holds no numeric values.
func (p *Profiler) ProfileColumn(column string, values []convert.Value) (*ColumnProfile, error) {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNumeric() {
			data = append(data, v.AsFloat())
		}
	}
	if len(data) == 0 {
		return nil, core.ErrNoData
	}

	profile := &ColumnProfile{
		ID:           core.ProfileID(core.NewID()),
		Column:       column,
		CreatedAt:    core.Now(),
		NumericCount: len(data),
	}

	if err := p.fillSummary(data, &profile.Summary); err != nil {
		return nil, err
	}

	skewness := calculateSkewness(data, profile.Summary.Mean, profile.Summary.StdDev)
	kurtosis := calculateKurtosis(data, profile.Summary.Mean, profile.Summary.StdDev)
	isNormal, shapiroP := testNormality(skewness, kurtosis, len(data))

	profile.Distribution = Distribution{
		Skewness: skewness,
		Kurtosis: kurtosis,
		IsNormal: isNormal,
		ShapiroP: shapiroP,
	}

	return profile, nil
}

func (p *Profiler) fillSummary(data []float64, s *Summary) error {
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return err
	}
	// stats.Percentile rejects very small inputs; clamp the quartiles to
	// the column bounds instead of failing a valid column.
	if q25, qerr := stats.Percentile(data, 25); qerr == nil {
		s.Q25 = q25
	} else {
		s.Q25 = s.Min
	}
	if q75, qerr := stats.Percentile(data, 75); qerr == nil {
		s.Q75 = q75
	} else {
		s.Q75 = s.Max
	}
	return nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes sample kurtosis (not excess)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n
	excessKurtosis := kurtosis - 3

	// Bias correction for sample excess kurtosis
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excessKurtosis = excessKurtosis*correction + 6/(n+1)
	}

	return excessKurtosis + 3
}

// testNormality approximates a normality test from skewness and kurtosis.
// The combined statistic is mapped to a p-value through a chi-squared
// distribution with 2 degrees of freedom.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	isNormal = pValue > 0.05
	return isNormal, pValue
}
