package store

import "context"

// Well-known list keys. Each holds a JSON array, newest entry first.
const (
	KeyViewingRequests       = "viewingRequests"
	KeyScheduleRequests      = "scheduleRequests"
	KeyContactMessages       = "contactMessages"
	KeyNewsletterSubscribers = "newsletterSubscribers"
	KeyAnalyticsEvents       = "analyticsEvents"
	KeyPreApprovalRequests   = "preApprovalRequests"
	KeyExpertRequests        = "expertRequests"
)

// Store is the narrow key-value contract every module persists through.
// Implementations are injected so services can run against an in-memory
// fake in tests.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
