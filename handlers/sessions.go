package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"legalease/config"
	"legalease/models"
	"legalease/services/session"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionIDFromRequest resolves the target session from the sessionId query
// parameter, falling back to a Bearer session token.
func sessionIDFromRequest(c *gin.Context) string {
	if id := c.Query("sessionId"); id != "" {
		return id
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		id, err := utils.ExtractSessionIDFromToken(strings.TrimPrefix(auth, "Bearer "))
		if err == nil {
			return id
		}
	}
	return ""
}

// CreateSessionHandler serves POST /api/sessions.
func CreateSessionHandler(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FarcasterID   string `json:"farcasterId"`
			WalletAddress string `json:"walletAddress"`
			Jurisdiction  string `json:"jurisdiction"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}
		if input.Jurisdiction == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Jurisdiction is required")
			return
		}
		if !models.IsValidJurisdiction(input.Jurisdiction) {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Jurisdiction is not supported")
			return
		}
		if input.WalletAddress != "" && !utils.IsValidWalletAddress(input.WalletAddress) {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid wallet address format")
			return
		}

		sess, err := svc.CreateSession(c.Request.Context(), input.FarcasterID, input.WalletAddress, input.Jurisdiction)
		if err != nil {
			utils.GetLogger().Error("session creation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternalError, "Failed to create session")
			return
		}

		ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
		token, err := utils.GenerateSessionToken(sess.ID, ttl)
		if err != nil {
			utils.GetLogger().Error("session token generation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternalError, "Failed to create session")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"sessionId":    sess.ID,
				"token":        token,
				"jurisdiction": sess.Jurisdiction,
				"createdAt":    sess.CreatedAt,
			},
			"message": "Session created successfully",
		})
	}
}

// GetSessionHandler serves GET /api/sessions. The response is a trimmed view
// of the session: query text is truncated and only the last five queries are
// included.
func GetSessionHandler(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := sessionIDFromRequest(c)
		if sessionID == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeMissingParameter, "Session ID is required")
			return
		}

		sess, err := svc.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				utils.JSONError(c, http.StatusNotFound, utils.CodeSessionNotFound, "Session not found or expired")
				return
			}
			utils.GetLogger().Error("session retrieval failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternalError, "Failed to retrieve session")
			return
		}

		recent := sess.Queries
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		recentViews := make([]gin.H, 0, len(recent))
		for _, q := range recent {
			recentViews = append(recentViews, gin.H{
				"id":          q.ID,
				"queryString": utils.TruncateText(q.QueryString, 100),
				"timestamp":   q.Timestamp,
				"cost":        q.Cost,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"id":            sess.ID,
				"jurisdiction":  sess.Jurisdiction,
				"totalQueries":  len(sess.Queries),
				"totalSpent":    sess.TotalSpent,
				"createdAt":     sess.CreatedAt,
				"lastActive":    sess.LastActive,
				"recentQueries": recentViews,
			},
			"message": "Session retrieved successfully",
		})
	}
}

// UpdateSessionHandler serves PUT /api/sessions: appends a billed query.
func UpdateSessionHandler(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			SessionID string  `json:"sessionId"`
			Query     string  `json:"query"`
			Type      string  `json:"responseType"`
			Cost      float64 `json:"cost"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}
		sessionID := input.SessionID
		if sessionID == "" {
			sessionID = sessionIDFromRequest(c)
		}
		if sessionID == "" || strings.TrimSpace(input.Query) == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Session ID and query are required")
			return
		}

		sess, err := svc.AddQuery(c.Request.Context(), sessionID, input.Query, input.Type, input.Cost)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				utils.JSONError(c, http.StatusNotFound, utils.CodeSessionNotFound, "Session not found or expired")
				return
			}
			utils.GetLogger().Error("session update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternalError, "Failed to update session")
			return
		}

		last := sess.Queries[len(sess.Queries)-1]
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"queryId":      last.ID,
				"totalQueries": len(sess.Queries),
				"totalSpent":   sess.TotalSpent,
			},
			"message": "Query added to session successfully",
		})
	}
}

// DeleteSessionHandler serves DELETE /api/sessions.
func DeleteSessionHandler(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := sessionIDFromRequest(c)
		if sessionID == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeMissingParameter, "Session ID is required")
			return
		}

		if err := svc.DeleteSession(c.Request.Context(), sessionID); err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				utils.JSONError(c, http.StatusNotFound, utils.CodeSessionNotFound, "Session not found or expired")
				return
			}
			utils.GetLogger().Error("session deletion failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternalError, "Failed to delete session")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Session deleted successfully",
		})
	}
}
