package services

import (
	"fmt"
	"log"
	"time"
)

// MockPaymentService simulates payment processing. No real gateway is wired;
// every payment succeeds immediately.
type MockPaymentService struct {
	environment string
}

// NewMockPaymentService creates a new mock payment service
func NewMockPaymentService(environment string) *MockPaymentService {
	log.Printf("Payment service: using mock (%s environment)", environment)
	return &MockPaymentService{environment: environment}
}

// ProcessPayment processes a payment
func (s *MockPaymentService) ProcessPayment(amount int64, billingInfo PaymentBillingInfo) (*PaymentResult, error) {
	paymentID := fmt.Sprintf("mock_pay_%d_%d", time.Now().Unix(), amount)

	log.Printf("Mock Payment: processing payment of $%.2f", float64(amount)/100)

	return &PaymentResult{
		PaymentID:     paymentID,
		Status:        "success",
		Amount:        amount,
		TransactionID: fmt.Sprintf("txn_%d", time.Now().Unix()),
		ProcessedAt:   time.Now(),
	}, nil
}
