package subscription

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"luxestate/internal/pkg/jwt"
)

var paymentMethods = map[string]bool{
	"UPI":        true,
	"Card":       true,
	"NetBanking": true,
	"Wallets":    true,
}

// Service handles member accounts and their mock-paid subscriptions. No
// real charge ever happens; activation records the chosen method and
// price as if payment succeeded.
type Service struct {
	repo Repository
	jwt  *jwt.Service
}

func NewService(repo Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtService}
}

// SignUp registers an account and returns it with a session token.
func (s *Service) SignUp(ctx context.Context, name, email, password, phone, city string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		City:         city,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Plans returns the active tiers for the pricing page.
func (s *Service) Plans(ctx context.Context) ([]*Plan, error) {
	return s.repo.ListPlans(ctx)
}

// Activate starts a subscription on the chosen plan and cycle. An
// existing active subscription is cancelled first, so a second Activate
// acts as a plan change that restarts from now.
func (s *Service) Activate(ctx context.Context, userID int64, planID PlanID, cycle BillingCycle, paymentMethod string) (*Subscription, error) {
	plan, err := s.repo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if cycle != BillingMonthly && cycle != BillingAnnual {
		return nil, ErrInvalidBillingCycle
	}
	if !paymentMethods[paymentMethod] {
		return nil, ErrInvalidPaymentMethod
	}

	existing, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.PlanID == planID && existing.BillingCycle == cycle {
			return nil, ErrAlreadySubscribed
		}
		existing.Status = StatusCancelled
		existing.CancelledAt = sql.NullTime{Time: time.Now(), Valid: true}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	sub := &Subscription{
		ID:            uuid.NewString(),
		UserID:        userID,
		PlanID:        plan.ID,
		DisplayName:   plan.DisplayName,
		Status:        StatusActive,
		BillingCycle:  cycle,
		Price:         plan.PriceFor(cycle),
		PaymentMethod: paymentMethod,
		AutoRenew:     true,
		StartedAt:     now,
		NextBilling:   nextBillingFrom(now, cycle),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if plan.TrialDays > 0 {
		sub.TrialEndsAt = sql.NullTime{Time: now.AddDate(0, 0, plan.TrialDays), Valid: true}
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Current returns the member's active subscription and its plan.
func (s *Service) Current(ctx context.Context, userID int64) (*Subscription, *Plan, error) {
	sub, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if sub == nil {
		return nil, nil, ErrSubscriptionNotFound
	}
	plan, err := s.repo.GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		return nil, nil, err
	}
	return sub, plan, nil
}

// Cancel ends the active subscription immediately.
func (s *Service) Cancel(ctx context.Context, userID int64) (*Subscription, error) {
	sub, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	now := time.Now()
	sub.Status = StatusCancelled
	sub.CancelledAt = sql.NullTime{Time: now, Valid: true}
	sub.NextBilling = now
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SetAutoRenew toggles renewal on the active subscription.
func (s *Service) SetAutoRenew(ctx context.Context, userID int64, enabled bool) (*Subscription, error) {
	sub, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	sub.AutoRenew = enabled
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ChangePlan restarts the subscription on a new plan, keeping the payment
// method.
func (s *Service) ChangePlan(ctx context.Context, userID int64, planID PlanID, cycle BillingCycle) (*Subscription, error) {
	current, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrSubscriptionNotFound
	}
	return s.Activate(ctx, userID, planID, cycle, current.PaymentMethod)
}

// UpdatePaymentMethod swaps the payment method on the active
// subscription.
func (s *Service) UpdatePaymentMethod(ctx context.Context, userID int64, method string) (*Subscription, error) {
	if !paymentMethods[method] {
		return nil, ErrInvalidPaymentMethod
	}

	sub, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	sub.PaymentMethod = method
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ExpireOverdue sweeps active subscriptions past their billing date with
// auto-renew off. Run periodically from the expire command.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	return s.repo.ExpireOverdue(ctx, time.Now())
}
