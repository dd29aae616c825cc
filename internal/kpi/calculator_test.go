package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekpi/internal/shared/testutil"
	"weekpi/pkg/contracts/domain"
)

func TestAggregate(t *testing.T) {
	t.Run("sums every measure", func(t *testing.T) {
		plan := 250000.0
		records := []domain.InsuranceRecord{
			testutil.SampleRecord(),
			testutil.SampleRecord(testutil.WithSignedPremium(8000), func(r *domain.InsuranceRecord) {
				r.PremiumPlan = &plan
			}),
		}

		agg := Aggregate(records)

		assert.Equal(t, 13000.0, agg.SignedPremium)
		assert.Equal(t, 8000.0, agg.MaturedPremium)
		assert.Equal(t, 4.0, agg.PolicyCount)
		assert.Equal(t, 2.0, agg.ClaimCaseCount)
		assert.Equal(t, 2400.0, agg.ReportedClaimPayment)
		assert.Equal(t, 1200.0, agg.ExpenseAmount)
		assert.Equal(t, 11000.0, agg.CommercialPremiumBeforeDiscount)
		assert.Equal(t, 1600.0, agg.MarginalContribution)
		assert.Equal(t, 250000.0, agg.PremiumPlan)
		assert.Equal(t, 2, agg.RecordCount)
	})

	t.Run("order independent", func(t *testing.T) {
		records := testutil.Records(5)
		reversed := make([]domain.InsuranceRecord, len(records))
		for i, r := range records {
			reversed[len(records)-1-i] = r
		}

		assert.Equal(t, Aggregate(records), Aggregate(reversed))
	})

	t.Run("empty set", func(t *testing.T) {
		agg := Aggregate(nil)
		assert.Equal(t, AggregatedData{}, agg)
	})
}

func TestCalculate(t *testing.T) {
	opts := Options{CurrentWeekNumber: ptr(25)}

	t.Run("single record ratios", func(t *testing.T) {
		res := Calculate([]domain.InsuranceRecord{testutil.SampleRecord()}, opts)

		assert.Equal(t, domain.ModeCurrent, res.Mode)
		assert.Equal(t, 1, res.RecordCount)
		assert.Equal(t, 2.0, res.PolicyCount)
		assert.Equal(t, 1.0, res.ClaimCaseCount)

		// 1200 claims over 4000 matured, 600 expense over 5000 signed.
		require.NotNil(t, res.LossRatio)
		assert.InDelta(t, 30.0, *res.LossRatio, 1e-9)
		require.NotNil(t, res.ExpenseRatio)
		assert.InDelta(t, 12.0, *res.ExpenseRatio, 1e-9)
		require.NotNil(t, res.MaturityRatio)
		assert.InDelta(t, 80.0, *res.MaturityRatio, 1e-9)
		require.NotNil(t, res.ContributionMarginRatio)
		assert.InDelta(t, 20.0, *res.ContributionMarginRatio, 1e-9)
		require.NotNil(t, res.VariableCostRatio)
		assert.InDelta(t, 36.0, *res.VariableCostRatio, 1e-9)
		require.NotNil(t, res.CombinedCostRatio)
		assert.InDelta(t, 42.0, *res.CombinedCostRatio, 1e-9)
		require.NotNil(t, res.MaturedClaimRatio)
		assert.InDelta(t, 50.0, *res.MaturedClaimRatio, 1e-9)
		require.NotNil(t, res.AutonomyCoefficient)
		assert.InDelta(t, 5000.0/5500.0, *res.AutonomyCoefficient, 1e-9)

		require.NotNil(t, res.AveragePremium)
		assert.InDelta(t, 2500.0, *res.AveragePremium, 1e-9)
		require.NotNil(t, res.AverageClaim)
		assert.InDelta(t, 1200.0, *res.AverageClaim, 1e-9)
		require.NotNil(t, res.AverageExpense)
		assert.InDelta(t, 300.0, *res.AverageExpense, 1e-9)
		require.NotNil(t, res.AverageContribution)
		assert.InDelta(t, 400.0, *res.AverageContribution, 1e-9)
	})

	t.Run("ten thousand unit conversion", func(t *testing.T) {
		res := Calculate([]domain.InsuranceRecord{
			testutil.SampleRecord(testutil.WithSignedPremium(123456)),
		}, opts)

		assert.Equal(t, 12.0, res.SignedPremium10k)
	})

	t.Run("empty set yields zero totals and nil rates", func(t *testing.T) {
		res := Calculate(nil, opts)

		assert.Equal(t, 0.0, res.SignedPremium10k)
		assert.Equal(t, 0.0, res.PolicyCount)
		assert.Equal(t, 0, res.RecordCount)
		assert.Nil(t, res.LossRatio)
		assert.Nil(t, res.ExpenseRatio)
		assert.Nil(t, res.CombinedCostRatio)
		assert.Nil(t, res.AveragePremium)
		assert.True(t, res.IsEmpty())
	})

	t.Run("zero matured premium leaves loss ratio nil", func(t *testing.T) {
		res := Calculate([]domain.InsuranceRecord{
			testutil.SampleRecord(func(r *domain.InsuranceRecord) {
				r.MaturedPremium = 0
				r.ReportedClaimPayment = 0
			}),
		}, opts)

		assert.Nil(t, res.LossRatio)
		require.NotNil(t, res.MaturedClaimRatio) // claim frequency still has policies behind it
	})
}
