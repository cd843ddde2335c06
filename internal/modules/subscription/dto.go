package subscription

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type ActivateRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	BillingCycle  string `json:"billing_cycle" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type ChangePlanRequest struct {
	PlanID       string `json:"plan_id" binding:"required"`
	BillingCycle string `json:"billing_cycle" binding:"required"`
}

type AutoRenewRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// PlanView decorates a plan with both cycle prices and split features.
type PlanView struct {
	ID           PlanID   `json:"id"`
	DisplayName  string   `json:"display_name"`
	PriceMonthly int64    `json:"price_monthly"`
	PriceAnnual  int64    `json:"price_annual"`
	TrialDays    int      `json:"trial_days"`
	Features     []string `json:"features"`
}

func newPlanView(p *Plan) PlanView {
	return PlanView{
		ID:           p.ID,
		DisplayName:  p.DisplayName,
		PriceMonthly: p.PriceMonthly,
		PriceAnnual:  p.PriceAnnual(),
		TrialDays:    p.TrialDays,
		Features:     p.FeatureList(),
	}
}
