package subscription

import (
	"database/sql"
	"math"
	"strings"
	"time"
)

// PlanID identifies a membership tier.
type PlanID string

const (
	PlanBasic   PlanID = "Basic"
	PlanPremium PlanID = "Premium"
	PlanElite   PlanID = "Elite"
)

// Status of a subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// BillingCycle for the subscription.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// Plan is one membership tier. DisplayName is the marketing name shown on
// the pricing page (Basic sells as "Starter", Premium as "Pro").
type Plan struct {
	ID           PlanID `gorm:"column:id;primaryKey" json:"id"`
	DisplayName  string `gorm:"column:display_name" json:"display_name"`
	PriceMonthly int64  `gorm:"column:price_monthly" json:"price_monthly"`
	TrialDays    int    `gorm:"column:trial_days" json:"trial_days"`

	// Comma-separated marketing bullet points
	Features string `gorm:"column:features" json:"-"`

	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Plan) TableName() string { return "membership_plans" }

// PriceAnnual is the discounted yearly price: 10% off twelve months.
func (p Plan) PriceAnnual() int64 {
	return int64(math.Round(float64(p.PriceMonthly) * 12 * 0.9))
}

// PriceFor returns the charge for one billing cycle.
func (p Plan) PriceFor(cycle BillingCycle) int64 {
	if cycle == BillingAnnual {
		return p.PriceAnnual()
	}
	return p.PriceMonthly
}

func (p Plan) FeatureList() []string {
	if p.Features == "" {
		return nil
	}
	parts := strings.Split(p.Features, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// User is a registered member account.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	City         string    `gorm:"column:city" json:"city"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Subscription tracks one member's plan over time.
type Subscription struct {
	ID            string       `gorm:"column:id;primaryKey" json:"id"`
	UserID        int64        `gorm:"column:user_id;index" json:"user_id"`
	PlanID        PlanID       `gorm:"column:plan_id" json:"plan_id"`
	DisplayName   string       `gorm:"column:display_name" json:"display_name"`
	Status        Status       `gorm:"column:status" json:"status"`
	BillingCycle  BillingCycle `gorm:"column:billing_cycle" json:"billing_cycle"`
	Price         int64        `gorm:"column:price" json:"price"`
	PaymentMethod string       `gorm:"column:payment_method" json:"payment_method"`
	AutoRenew     bool         `gorm:"column:auto_renew" json:"auto_renew"`

	StartedAt   time.Time    `gorm:"column:started_at" json:"started_at"`
	NextBilling time.Time    `gorm:"column:next_billing" json:"next_billing"`
	TrialEndsAt sql.NullTime `gorm:"column:trial_ends_at" json:"trial_ends_at,omitempty"`
	CancelledAt sql.NullTime `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// IsOverdue reports whether the next billing date has passed.
func (s *Subscription) IsOverdue(now time.Time) bool {
	return now.After(s.NextBilling)
}

// nextBillingFrom computes the following charge date for a cycle.
func nextBillingFrom(start time.Time, cycle BillingCycle) time.Time {
	if cycle == BillingAnnual {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}
