package loans

import (
	"math"
	"testing"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
		expectedRange     []float64 // [min, max] expected range
	}{
		{
			name:              "Standard 30-year mortgage",
			principal:         240000,
			annualRatePercent: 6.0,
			termMonths:        360,
			expectedRange:     []float64{1400, 1500}, // Around $1439
		},
		{
			name:              "5-year loan",
			principal:         50000,
			annualRatePercent: 7.5,
			termMonths:        60,
			expectedRange:     []float64{1001, 1002}, // Around $1001.90
		},
		{
			name:              "Zero interest loan",
			principal:         12000,
			annualRatePercent: 0.0,
			termMonths:        60,
			expectedRange:     []float64{200, 200}, // Exactly $200
		},
		{
			name:              "High interest loan",
			principal:         10000,
			annualRatePercent: 18.0,
			termMonths:        36,
			expectedRange:     []float64{360, 380}, // Around $372
		},
		{
			name:              "Zero principal",
			principal:         0,
			annualRatePercent: 5.0,
			termMonths:        60,
			expectedRange:     []float64{0, 0},
		},
		{
			name:              "Negative rate",
			principal:         10000,
			annualRatePercent: -1.0,
			termMonths:        60,
			expectedRange:     []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMonthlyPayment(tt.principal, tt.annualRatePercent, tt.termMonths)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("CalculateMonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name              string
		remainingBalance  float64
		annualRatePercent float64
		expected          float64
	}{
		{
			name:              "Standard mortgage interest",
			remainingBalance:  200000,
			annualRatePercent: 6.0,
			expected:          1000.0, // 200000 * 0.06 / 12
		},
		{
			name:              "Zero interest",
			remainingBalance:  10000,
			annualRatePercent: 0.0,
			expected:          0.0,
		},
		{
			name:              "High interest",
			remainingBalance:  5000,
			annualRatePercent: 24.0,
			expected:          100.0, // 5000 * 0.24 / 12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingBalance, tt.annualRatePercent)

			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateInterestPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestAmortizeReferenceLoan(t *testing.T) {
	// 50000 at 7.5% over 5 years is the reference example used by the UI.
	schedule := Amortize(50000, 7.5, 5)

	if len(schedule.Rows) != 60 {
		t.Fatalf("Amortize() produced %d rows, expected 60", len(schedule.Rows))
	}

	if math.Abs(schedule.MonthlyPayment-1001.90) > 0.01 {
		t.Errorf("Amortize() monthly payment = %.2f, expected 1001.90", schedule.MonthlyPayment)
	}

	finalRow := schedule.Rows[len(schedule.Rows)-1]
	if finalRow.RemainingBalance != 0 {
		t.Errorf("final row balance = %v, expected exactly 0", finalRow.RemainingBalance)
	}

	var principalSum float64
	for _, row := range schedule.Rows {
		principalSum += row.Principal
	}
	if math.Abs(principalSum-50000) > 0.01 {
		t.Errorf("sum of principal portions = %.4f, expected ~50000", principalSum)
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	schedule := Amortize(12000, 0, 5)

	expectedPayment := 12000.0 / 60.0
	if schedule.MonthlyPayment != expectedPayment {
		t.Errorf("monthly payment = %v, expected exactly %v", schedule.MonthlyPayment, expectedPayment)
	}

	for _, row := range schedule.Rows {
		if row.Interest != 0 {
			t.Errorf("month %d interest = %v, expected 0", row.Month, row.Interest)
		}
	}

	if schedule.TotalInterest != 0 {
		t.Errorf("total interest = %v, expected 0", schedule.TotalInterest)
	}
}

func TestAmortizePropertyChecks(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
	}{
		{
			name:              "Small personal loan",
			principal:         5000,
			annualRatePercent: 12.0,
			termYears:         2,
		},
		{
			name:              "Mid-size loan",
			principal:         150000,
			annualRatePercent: 4.25,
			termYears:         15,
		},
		{
			name:              "Long mortgage",
			principal:         400000,
			annualRatePercent: 6.875,
			termYears:         30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := Amortize(tt.principal, tt.annualRatePercent, tt.termYears)

			expectedRows := tt.termYears * 12
			if len(schedule.Rows) != expectedRows {
				t.Fatalf("Amortize() produced %d rows, expected %d", len(schedule.Rows), expectedRows)
			}

			var principalSum float64
			previousBalance := tt.principal
			for _, row := range schedule.Rows {
				principalSum += row.Principal
				if row.RemainingBalance > previousBalance {
					t.Errorf("month %d balance %.4f exceeds previous %.4f", row.Month, row.RemainingBalance, previousBalance)
				}
				if row.RemainingBalance < 0 {
					t.Errorf("month %d balance %.4f is negative", row.Month, row.RemainingBalance)
				}
				previousBalance = row.RemainingBalance
			}

			if math.Abs(principalSum-tt.principal) > 0.01 {
				t.Errorf("sum of principal portions = %.4f, expected ~%.2f", principalSum, tt.principal)
			}

			if schedule.Rows[expectedRows-1].RemainingBalance != 0 {
				t.Errorf("final balance = %v, expected 0", schedule.Rows[expectedRows-1].RemainingBalance)
			}
		})
	}
}

func TestAmortizeDegenerateInputs(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
	}{
		{
			name:              "Zero principal",
			principal:         0,
			annualRatePercent: 5.0,
			termYears:         5,
		},
		{
			name:              "Negative principal",
			principal:         -1000,
			annualRatePercent: 5.0,
			termYears:         5,
		},
		{
			name:              "Negative rate",
			principal:         10000,
			annualRatePercent: -0.5,
			termYears:         5,
		},
		{
			name:              "Zero term",
			principal:         10000,
			annualRatePercent: 5.0,
			termYears:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := Amortize(tt.principal, tt.annualRatePercent, tt.termYears)

			if schedule.MonthlyPayment != 0 {
				t.Errorf("monthly payment = %v, expected 0", schedule.MonthlyPayment)
			}
			if len(schedule.Rows) != 0 {
				t.Errorf("rows = %d, expected empty schedule", len(schedule.Rows))
			}
		})
	}
}

func TestAutoLoan(t *testing.T) {
	tests := []struct {
		name              string
		vehiclePrice      float64
		downPayment       float64
		tradeIn           float64
		annualRatePercent float64
		termMonths        int
		expectedFinanced  float64
		paymentRange      []float64
	}{
		{
			name:              "Typical car purchase",
			vehiclePrice:      30000,
			downPayment:       5000,
			tradeIn:           3000,
			annualRatePercent: 4.0,
			termMonths:        60,
			expectedFinanced:  22000,
			paymentRange:      []float64{400, 410}, // Around $405
		},
		{
			name:              "Zero interest promotion",
			vehiclePrice:      24000,
			downPayment:       0,
			tradeIn:           0,
			annualRatePercent: 0.0,
			termMonths:        48,
			expectedFinanced:  24000,
			paymentRange:      []float64{500, 500},
		},
		{
			name:              "Down payment covers price",
			vehiclePrice:      20000,
			downPayment:       15000,
			tradeIn:           5000,
			annualRatePercent: 4.0,
			termMonths:        60,
			expectedFinanced:  0,
			paymentRange:      []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := AutoLoan(tt.vehiclePrice, tt.downPayment, tt.tradeIn, tt.annualRatePercent, tt.termMonths)

			if quote.FinancedAmount != tt.expectedFinanced {
				t.Errorf("financed amount = %v, expected %v", quote.FinancedAmount, tt.expectedFinanced)
			}
			if quote.MonthlyPayment < tt.paymentRange[0] || quote.MonthlyPayment > tt.paymentRange[1] {
				t.Errorf("monthly payment = %.2f, expected range [%.2f, %.2f]",
					quote.MonthlyPayment, tt.paymentRange[0], tt.paymentRange[1])
			}
			if quote.FinancedAmount > 0 {
				expectedInterest := quote.TotalPaid - quote.FinancedAmount
				if math.Abs(quote.TotalInterest-expectedInterest) > 0.01 {
					t.Errorf("total interest = %.2f, expected %.2f", quote.TotalInterest, expectedInterest)
				}
			}
		})
	}
}
