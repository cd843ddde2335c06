package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"luxestate/internal/pkg/jwt"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) ListPlans(ctx context.Context) ([]*Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Plan), args.Error(1)
}

func (m *MockRepository) GetPlanByID(ctx context.Context, id PlanID) (*Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) GetActiveByUserID(ctx context.Context, userID int64) (*Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, sub *Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, sub *Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, jwt.New("test-secret", time.Hour))
}

func premiumPlan() *Plan {
	return &Plan{ID: PlanPremium, DisplayName: "Pro", PriceMonthly: 499, TrialDays: 7, IsActive: true}
}

func TestSignUp(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*subscription.User")).Return(nil)

	s := newTestService(repo)
	user, token, err := s.SignUp(context.Background(), "Asha Rao", "Asha@Example.COM", "secret123", "+91-98765", "Mumbai")
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "asha@example.com", user.Email) // normalized
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	assert.NotEmpty(t, token)
	repo.AssertExpectations(t)
}

func TestSignUp_EmailTaken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(ErrEmailTaken)

	s := newTestService(repo)
	_, _, err := s.SignUp(context.Background(), "A", "dup@example.com", "secret123", "1", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &User{ID: 7, Email: "asha@example.com", PasswordHash: string(hash)}

	repo := new(MockRepository)
	repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(stored, nil)
	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	s := newTestService(repo)

	user, token, err := s.Login(context.Background(), "ASHA@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NotEmpty(t, token)

	_, _, err = s.Login(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestActivate_Monthly(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlanByID", mock.Anything, PlanPremium).Return(premiumPlan(), nil)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).Return(nil)

	s := newTestService(repo)
	sub, err := s.Activate(context.Background(), 7, PlanPremium, BillingMonthly, "Card")
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, int64(499), sub.Price)
	assert.Equal(t, "Pro", sub.DisplayName)
	assert.True(t, sub.AutoRenew)
	assert.True(t, sub.TrialEndsAt.Valid)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), sub.TrialEndsAt.Time, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), sub.NextBilling, time.Minute)
}

func TestActivate_AnnualDiscount(t *testing.T) {
	plan := &Plan{ID: PlanElite, DisplayName: "Elite", PriceMonthly: 999, TrialDays: 14, IsActive: true}
	repo := new(MockRepository)
	repo.On("GetPlanByID", mock.Anything, PlanElite).Return(plan, nil)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(repo)
	sub, err := s.Activate(context.Background(), 7, PlanElite, BillingAnnual, "UPI")
	require.NoError(t, err)

	// 999 * 12 * 0.9, rounded
	assert.Equal(t, int64(10789), sub.Price)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), sub.NextBilling, time.Minute)
}

func TestActivate_ReplacesExistingPlan(t *testing.T) {
	existing := &Subscription{ID: "old", UserID: 7, PlanID: PlanBasic, Status: StatusActive, BillingCycle: BillingMonthly}

	repo := new(MockRepository)
	repo.On("GetPlanByID", mock.Anything, PlanPremium).Return(premiumPlan(), nil)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *Subscription) bool {
		return s.ID == "old" && s.Status == StatusCancelled && s.CancelledAt.Valid
	})).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(repo)
	sub, err := s.Activate(context.Background(), 7, PlanPremium, BillingMonthly, "Card")
	require.NoError(t, err)
	assert.Equal(t, PlanPremium, sub.PlanID)
	repo.AssertExpectations(t)
}

func TestActivate_Rejections(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlanByID", mock.Anything, PlanID("Gold")).Return(nil, nil)
	repo.On("GetPlanByID", mock.Anything, PlanPremium).Return(premiumPlan(), nil)
	active := &Subscription{PlanID: PlanPremium, BillingCycle: BillingMonthly, Status: StatusActive}
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(active, nil)

	s := newTestService(repo)

	_, err := s.Activate(context.Background(), 7, "Gold", BillingMonthly, "Card")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = s.Activate(context.Background(), 7, PlanPremium, "weekly", "Card")
	assert.ErrorIs(t, err, ErrInvalidBillingCycle)

	_, err = s.Activate(context.Background(), 7, PlanPremium, BillingMonthly, "Cheque")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = s.Activate(context.Background(), 7, PlanPremium, BillingMonthly, "Card")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestCancel(t *testing.T) {
	active := &Subscription{ID: "sub1", UserID: 7, Status: StatusActive, NextBilling: time.Now().AddDate(0, 1, 0)}

	repo := new(MockRepository)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(active, nil)
	repo.On("GetActiveByUserID", mock.Anything, int64(8)).Return(nil, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(repo)

	sub, err := s.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, sub.Status)
	assert.True(t, sub.CancelledAt.Valid)
	assert.WithinDuration(t, time.Now(), sub.NextBilling, time.Minute) // expires immediately

	_, err = s.Cancel(context.Background(), 8)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestSetAutoRenew(t *testing.T) {
	active := &Subscription{ID: "sub1", UserID: 7, Status: StatusActive, AutoRenew: true}

	repo := new(MockRepository)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(active, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(repo)
	sub, err := s.SetAutoRenew(context.Background(), 7, false)
	require.NoError(t, err)
	assert.False(t, sub.AutoRenew)
}

func TestUpdatePaymentMethod(t *testing.T) {
	active := &Subscription{ID: "sub1", UserID: 7, Status: StatusActive, PaymentMethod: "Card"}

	repo := new(MockRepository)
	repo.On("GetActiveByUserID", mock.Anything, int64(7)).Return(active, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(repo)

	_, err := s.UpdatePaymentMethod(context.Background(), 7, "Cash")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	sub, err := s.UpdatePaymentMethod(context.Background(), 7, "NetBanking")
	require.NoError(t, err)
	assert.Equal(t, "NetBanking", sub.PaymentMethod)
}

func TestPlanPricing(t *testing.T) {
	cases := []struct {
		monthly int64
		annual  int64
	}{
		{149, 1609},
		{499, 5389},
		{999, 10789},
	}
	for _, tc := range cases {
		p := Plan{PriceMonthly: tc.monthly}
		assert.Equal(t, tc.annual, p.PriceAnnual())
		assert.Equal(t, tc.monthly, p.PriceFor(BillingMonthly))
		assert.Equal(t, tc.annual, p.PriceFor(BillingAnnual))
	}
}
