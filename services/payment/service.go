package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"legalease/config"
	"legalease/models"
	"legalease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPaymentNotFound is returned when a payment id is not in the ledger.
var ErrPaymentNotFound = errors.New("payment not found")

const paymentExpiry = 15 * time.Minute

// Mock confirmation details returned once a payment settles.
const (
	mockConfirmations = 12
	mockBlockNumber   = 12345678
)

// Service simulates a Base-network payment rail. Payments start pending
// and settle on the first status check. No real funds move.
type Service interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error)
	GetStatus(ctx context.Context, paymentID, transactionHash string) (*models.PaymentStatus, error)
}

type MockPaymentService struct {
	mu     sync.Mutex
	ledger map[string]*models.PaymentResponse
	byHash map[string]string
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{
		ledger: make(map[string]*models.PaymentResponse),
		byHash: make(map[string]string),
	}
}

// newTransactionHash produces a 0x-prefixed 64-hex-digit hash.
func newTransactionHash() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in bad shape; a
		// zeroed hash still satisfies the format contract.
		return "0x" + hex.EncodeToString(make([]byte, 32))
	}
	return "0x" + hex.EncodeToString(b)
}

func (s *MockPaymentService) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {
	paymentID := uuid.New().String()
	resp := &models.PaymentResponse{
		PaymentID:       paymentID,
		TransactionHash: newTransactionHash(),
		Status:          models.PaymentPending,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ServiceType:     req.ServiceType,
		PaymentURL:      fmt.Sprintf("%s/payment/%s", config.AppConfig.AppURL, paymentID),
		ExpiresAt:       time.Now().Add(paymentExpiry),
	}

	s.mu.Lock()
	s.ledger[paymentID] = resp
	s.byHash[resp.TransactionHash] = paymentID
	s.mu.Unlock()

	utils.GetLogger().Info("payment created",
		zap.String("paymentId", paymentID),
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("serviceType", req.ServiceType),
	)
	return resp, nil
}

// GetStatus looks a payment up by id or transaction hash. A pending payment
// settles to confirmed on its first status check; an expired pending payment
// fails instead.
func (s *MockPaymentService) GetStatus(ctx context.Context, paymentID, transactionHash string) (*models.PaymentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if paymentID == "" && transactionHash != "" {
		paymentID = s.byHash[transactionHash]
	}
	entry, ok := s.ledger[paymentID]
	if !ok {
		if transactionHash != "" {
			// Hash not issued by this process; report a settled mock
			// payment so status polling never dead-ends.
			return &models.PaymentStatus{
				TransactionHash: transactionHash,
				Status:          models.PaymentConfirmed,
				Amount:          0.05,
				Currency:        "ETH",
				Confirmations:   mockConfirmations,
				BlockNumber:     mockBlockNumber,
				Timestamp:       time.Now(),
			}, nil
		}
		return nil, ErrPaymentNotFound
	}

	if entry.Status == models.PaymentPending {
		if time.Now().After(entry.ExpiresAt) {
			entry.Status = models.PaymentFailed
		} else {
			entry.Status = models.PaymentConfirmed
		}
	}

	status := &models.PaymentStatus{
		PaymentID:       entry.PaymentID,
		TransactionHash: entry.TransactionHash,
		Status:          entry.Status,
		Amount:          entry.Amount,
		Currency:        entry.Currency,
		Confirmations:   0,
		Timestamp:       time.Now(),
	}
	if entry.Status == models.PaymentConfirmed {
		status.Confirmations = mockConfirmations
		status.BlockNumber = mockBlockNumber
	}
	return status, nil
}
