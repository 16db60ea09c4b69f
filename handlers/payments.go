package handlers

import (
	"errors"
	"net/http"

	"legalease/models"
	"legalease/services/payment"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatePaymentHandler serves POST /api/payments.
func CreatePaymentHandler(svc payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}
		if result := utils.ValidatePaymentRequest(req); !result.IsValid {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid payment request", result.Errors...)
			return
		}

		resp, err := svc.CreatePayment(c.Request.Context(), req)
		if err != nil {
			utils.GetLogger().Error("payment creation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodePaymentError, "Failed to process payment")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"data":      resp,
			"paymentId": resp.PaymentID,
			"message":   "Payment initiated successfully",
		})
	}
}

// PaymentStatusHandler serves GET /api/payments. Lookup is by paymentId or
// transactionHash; hash format is validated before any lookup.
func PaymentStatusHandler(svc payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Query("paymentId")
		txHash := c.Query("transactionHash")

		if paymentID == "" && txHash == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeMissingParameter, "Either transactionHash or paymentId is required")
			return
		}
		if txHash != "" && !utils.IsValidTransactionHash(txHash) {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeInvalidHash, "Invalid transaction hash format")
			return
		}

		status, err := svc.GetStatus(c.Request.Context(), paymentID, txHash)
		if err != nil {
			if errors.Is(err, payment.ErrPaymentNotFound) {
				utils.JSONError(c, http.StatusNotFound, utils.CodePaymentError, "Payment not found")
				return
			}
			utils.GetLogger().Error("payment status check failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodePaymentError, "Failed to check payment status")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    status,
			"message": "Payment status retrieved successfully",
		})
	}
}
