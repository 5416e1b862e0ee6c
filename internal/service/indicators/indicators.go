package indicators

import "math"

// TradingDaysPerYear is the annualization base for daily return series.
const TradingDaysPerYear = 252

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// EMA computes an exponential moving average seeded with the SMA of the
// first period values. With fewer than period points it degrades to the
// mean of what is available.
func EMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if period <= 0 || len(prices) < period {
		return Mean(prices)
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	ema := sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
	}

	return ema
}

// LogReturns computes log returns r_t = ln(P_t / P_{t-1}).
// It returns a slice of length len(prices)-1, or nil if insufficient data.
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		cur := prices[i]
		if prev <= 0 || cur <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

// StdDev returns the population standard deviation, or 0 when fewer
// than two points are given.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - mean
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(xs)))
}

// AnnualizedVolatility scales the standard deviation of a return series
// by sqrt(periodsPerYear).
func AnnualizedVolatility(returns []float64, periodsPerYear float64) float64 {
	return StdDev(returns) * math.Sqrt(periodsPerYear)
}

// PearsonCorrelation computes the Pearson correlation coefficient of two
// equally sized series. Returns 0 when the coefficient is undefined
// (mismatched lengths, fewer than two points, or zero variance).
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	num := 0.0
	sumX2 := 0.0
	sumY2 := 0.0
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}

	den := math.Sqrt(sumX2) * math.Sqrt(sumY2)
	if den == 0 {
		return 0
	}
	return num / den
}
