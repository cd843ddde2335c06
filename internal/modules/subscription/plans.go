package subscription

import "time"

// DefaultPlans is the tier catalog seeded into a fresh database.
func DefaultPlans() []Plan {
	now := time.Now()
	return []Plan{
		{
			ID:           PlanBasic,
			DisplayName:  "Starter",
			PriceMonthly: 149,
			TrialDays:    0,
			Features:     "Property Alerts,Weekly Newsletter",
			IsActive:     true,
			CreatedAt:    now,
		},
		{
			ID:           PlanPremium,
			DisplayName:  "Pro",
			PriceMonthly: 499,
			TrialDays:    7,
			Features:     "All Starter features,Virtual Tours,Priority Booking",
			IsActive:     true,
			CreatedAt:    now,
		},
		{
			ID:           PlanElite,
			DisplayName:  "Elite",
			PriceMonthly: 999,
			TrialDays:    14,
			Features:     "All Pro features,Personal Advisor,Investment Briefs",
			IsActive:     true,
			CreatedAt:    now,
		},
	}
}
