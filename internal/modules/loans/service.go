package loans

import (
	"context"
	"errors"
	"math"
	"time"

	"luxestate/internal/store"
)

var (
	ErrInvalidLoanInput = errors.New("loan amount, down payment and term must be positive")
	ErrMissingContact   = errors.New("name, email and phone are required")
)

// Breakdown is the output of the mortgage calculator.
type Breakdown struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// PreApproval is one stored pre-approval request.
type PreApproval struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PropertyPrice string `json:"propertyPrice"`
	LoanAmount    string `json:"loanAmount"`
	Message       string `json:"message"`
	SubmittedAt   string `json:"submittedAt"`
}

// ExpertRequest is one stored consultation request.
type ExpertRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}

// MonthlyPayment computes the amortized monthly installment for a
// principal at an annual percentage rate over a term in years. A zero
// rate degenerates to straight division.
func MonthlyPayment(principal, annualRatePct float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 || principal <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r == 0 {
		return principal / n
	}
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

type Service struct {
	records *store.Records
}

func NewService(records *store.Records) *Service {
	return &Service{records: records}
}

// Calculate produces the full payment breakdown for a loan scenario.
func (s *Service) Calculate(loanAmount, downPayment, annualRatePct float64, termYears int) (Breakdown, error) {
	if loanAmount <= 0 || downPayment < 0 || downPayment >= loanAmount || termYears <= 0 {
		return Breakdown{}, ErrInvalidLoanInput
	}

	principal := loanAmount - downPayment
	monthly := MonthlyPayment(principal, annualRatePct, termYears)
	total := monthly * float64(termYears*12)

	return Breakdown{
		Principal:      principal,
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}, nil
}

// SubmitPreApproval stores a pre-approval request.
func (s *Service) SubmitPreApproval(ctx context.Context, req PreApproval) (PreApproval, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return PreApproval{}, ErrMissingContact
	}
	req.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.records.Append(ctx, store.KeyPreApprovalRequests, req); err != nil {
		return PreApproval{}, err
	}
	return req, nil
}

// ListPreApprovals returns pre-approval requests, newest first.
func (s *Service) ListPreApprovals(ctx context.Context) []PreApproval {
	var out []PreApproval
	s.records.ReadInto(ctx, store.KeyPreApprovalRequests, &out)
	if out == nil {
		out = []PreApproval{}
	}
	return out
}

// SubmitExpertRequest stores a speak-with-expert request.
func (s *Service) SubmitExpertRequest(ctx context.Context, req ExpertRequest) (ExpertRequest, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return ExpertRequest{}, ErrMissingContact
	}
	req.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.records.Append(ctx, store.KeyExpertRequests, req); err != nil {
		return ExpertRequest{}, err
	}
	return req, nil
}

// ListExpertRequests returns consultation requests, newest first.
func (s *Service) ListExpertRequests(ctx context.Context) []ExpertRequest {
	var out []ExpertRequest
	s.records.ReadInto(ctx, store.KeyExpertRequests, &out)
	if out == nil {
		out = []ExpertRequest{}
	}
	return out
}
