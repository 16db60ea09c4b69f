package session

import (
	"context"
	"time"

	"legalease/models"
	"legalease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages user session lifecycle on top of a Store.
type Service interface {
	CreateSession(ctx context.Context, farcasterID, walletAddress, jurisdiction string) (*models.UserSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.UserSession, error)
	AddQuery(ctx context.Context, sessionID, queryString, responseType string, cost float64) (*models.UserSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type DefaultSessionService struct {
	Store Store
}

func NewDefaultSessionService(store Store) *DefaultSessionService {
	return &DefaultSessionService{Store: store}
}

func (s *DefaultSessionService) CreateSession(ctx context.Context, farcasterID, walletAddress, jurisdiction string) (*models.UserSession, error) {
	now := time.Now()
	session := &models.UserSession{
		ID:            uuid.New().String(),
		FarcasterID:   farcasterID,
		WalletAddress: walletAddress,
		Jurisdiction:  jurisdiction,
		Queries:       []models.SessionQuery{},
		TotalSpent:    0,
		CreatedAt:     now,
		LastActive:    now,
	}
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("session created",
		zap.String("sessionId", session.ID),
		zap.String("jurisdiction", jurisdiction),
		zap.String("wallet", maskWallet(walletAddress)),
	)
	return session, nil
}

// GetSession fetches a session and touches its lastActive timestamp.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.LastActive = time.Now()
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddQuery appends a billed query to the session and bumps totalSpent.
func (s *DefaultSessionService) AddQuery(ctx context.Context, sessionID, queryString, responseType string, cost float64) (*models.UserSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if responseType == "" {
		responseType = "summary"
	}
	if cost <= 0 {
		cost = 0.01
	}
	query := models.SessionQuery{
		ID:           uuid.New().String(),
		QueryString:  queryString,
		Jurisdiction: session.Jurisdiction,
		ResponseType: responseType,
		Cost:         cost,
		Timestamp:    time.Now(),
	}
	session.Queries = append(session.Queries, query)
	session.TotalSpent += cost
	session.LastActive = time.Now()
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("query added to session",
		zap.String("sessionId", sessionID),
		zap.String("responseType", responseType),
		zap.Float64("cost", cost),
		zap.Int("totalQueries", len(session.Queries)),
	)
	return session, nil
}

func (s *DefaultSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	utils.GetLogger().Info("session deleted",
		zap.String("sessionId", sessionID),
		zap.Int("totalQueries", len(session.Queries)),
		zap.Duration("duration", time.Since(session.CreatedAt)),
	)
	return nil
}

func maskWallet(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
