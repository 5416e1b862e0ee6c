package indicators

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil) = %v, want 0", got)
	}
}

func TestEMA(t *testing.T) {
	// Seed SMA(1,2,3)=2, multiplier 0.5: (4-2)*0.5+2=3, (5-3)*0.5+3=4.
	got := EMA([]float64{1, 2, 3, 4, 5}, 3)
	if !almostEqual(got, 4) {
		t.Fatalf("EMA = %v, want 4", got)
	}
}

func TestEMAShortSeries(t *testing.T) {
	if got := EMA([]float64{10, 12}, 5); got != 11 {
		t.Fatalf("expected mean of available points, got %v", got)
	}
	if got := EMA(nil, 5); got != 0 {
		t.Fatalf("expected 0 for empty series, got %v", got)
	}
}

func TestLogReturns(t *testing.T) {
	rs := LogReturns([]float64{100, 110, 99})
	if len(rs) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(rs))
	}
	if !almostEqual(rs[0], math.Log(1.1)) {
		t.Fatalf("rs[0] = %v", rs[0])
	}
	if !almostEqual(rs[1], math.Log(0.9)) {
		t.Fatalf("rs[1] = %v", rs[1])
	}

	if rs := LogReturns([]float64{100}); rs != nil {
		t.Fatalf("expected nil for single point, got %v", rs)
	}
}

func TestLogReturnsNonPositivePrices(t *testing.T) {
	rs := LogReturns([]float64{100, 0, 50})
	if len(rs) != 2 || rs[0] != 0 || rs[1] != 0 {
		t.Fatalf("expected zeroed returns around non-positive price, got %v", rs)
	}
}

func TestStdDevPopulation(t *testing.T) {
	// Known population standard deviation of 2.
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, 2) {
		t.Fatalf("StdDev = %v, want 2", got)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.015, -0.005}
	want := StdDev(returns) * math.Sqrt(TradingDaysPerYear)
	if got := AnnualizedVolatility(returns, TradingDaysPerYear); !almostEqual(got, want) {
		t.Fatalf("AnnualizedVolatility = %v, want %v", got, want)
	}
}

func TestPearsonCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	up := []float64{2, 4, 6, 8}
	down := []float64{8, 6, 4, 2}

	if got := PearsonCorrelation(x, up); !almostEqual(got, 1) {
		t.Fatalf("perfect positive correlation = %v, want 1", got)
	}
	if got := PearsonCorrelation(x, down); !almostEqual(got, -1) {
		t.Fatalf("perfect negative correlation = %v, want -1", got)
	}
}

func TestPearsonCorrelationUndefined(t *testing.T) {
	if got := PearsonCorrelation([]float64{1, 2}, []float64{1}); got != 0 {
		t.Fatalf("mismatched lengths should give 0, got %v", got)
	}
	if got := PearsonCorrelation([]float64{3, 3, 3}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("zero variance should give 0, got %v", got)
	}
}
