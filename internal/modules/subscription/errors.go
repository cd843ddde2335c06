package subscription

import "errors"

var (
	ErrEmailTaken           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPlanNotFound         = errors.New("membership plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("already subscribed to this plan")
	ErrInvalidBillingCycle  = errors.New("invalid billing cycle")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
