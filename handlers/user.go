package handlers

import (
	"net/http"
	"time"

	"legalease/models"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func defaultPreferences() models.UserPreferences {
	return models.UserPreferences{
		Notifications: true,
		DataSharing:   false,
		Language:      "en",
	}
}

// CreateUserProfileHandler serves POST /api/user. Profiles are not
// persisted; the endpoint echoes a freshly initialized profile.
func CreateUserProfileHandler() gin.HandlerFunc {
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
		if input.FarcasterID == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "farcasterId is required")
			return
		}
		if input.Jurisdiction == "" {
			input.Jurisdiction = "GENERAL"
		}

		now := time.Now().UTC()
		profile := models.UserProfile{
			FarcasterID:   input.FarcasterID,
			WalletAddress: input.WalletAddress,
			Jurisdiction:  input.Jurisdiction,
			CreatedAt:     now,
			UpdatedAt:     now,
			Preferences:   defaultPreferences(),
			Usage: models.UserUsage{
				QueriesUsed:        0,
				TemplatesGenerated: 0,
			},
		}

		utils.GetLogger().Info("user profile created",
			zap.String("farcasterId", input.FarcasterID),
			zap.String("jurisdiction", input.Jurisdiction),
			zap.Bool("walletProvided", input.WalletAddress != ""),
		)
		c.JSON(http.StatusOK, profile)
	}
}

// GetUserProfileHandler serves GET /api/user with a mock profile.
func GetUserProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		farcasterID := c.Query("farcasterId")
		walletAddress := c.Query("walletAddress")
		if farcasterID == "" && walletAddress == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeMissingParameter, "Either farcasterId or walletAddress is required")
			return
		}
		if farcasterID == "" {
			farcasterID = "unknown"
		}

		now := time.Now().UTC()
		profile := models.UserProfile{
			FarcasterID:   farcasterID,
			WalletAddress: walletAddress,
			Jurisdiction:  "GENERAL",
			CreatedAt:     now.AddDate(0, 0, -30),
			LastActive:    now,
			Preferences:   defaultPreferences(),
			Usage: models.UserUsage{
				QueriesUsed:        15,
				TemplatesGenerated: 3,
				TotalSpent:         0.15,
				FavoriteCategories: []string{"employment", "tenant-rights"},
			},
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateUserProfileHandler serves PUT /api/user: echoes updated preferences.
func UpdateUserProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FarcasterID  string                  `json:"farcasterId"`
			Jurisdiction string                  `json:"jurisdiction"`
			Preferences  *models.UserPreferences `json:"preferences"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}
		if input.FarcasterID == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "farcasterId is required")
			return
		}
		if input.Jurisdiction == "" {
			input.Jurisdiction = "GENERAL"
		}
		prefs := defaultPreferences()
		if input.Preferences != nil {
			prefs = *input.Preferences
			if prefs.Language == "" {
				prefs.Language = "en"
			}
		}

		utils.GetLogger().Info("user preferences updated",
			zap.String("farcasterId", input.FarcasterID),
			zap.String("jurisdiction", input.Jurisdiction),
		)
		c.JSON(http.StatusOK, gin.H{
			"farcasterId":  input.FarcasterID,
			"jurisdiction": input.Jurisdiction,
			"preferences":  prefs,
			"updatedAt":    time.Now().UTC(),
		})
	}
}
