package api

import (
	"net/http"
	"time"

	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"

	"github.com/gin-gonic/gin"
)

// CreatePaymentRequest is the body of POST /payments. Amount is a pointer
// so that an explicit 0 passes the presence check.
type CreatePaymentRequest struct {
	UserID string     `json:"userId" validate:"required"` // Payer, stored as a plain string
	Season string     `json:"season" validate:"required"` // Season paid for
	Amount *float64   `json:"amount" validate:"required"` // Amount paid
	Date   *time.Time `json:"date"`                       // Defaults to now
}

// UpdatePaymentRequest is the partial body of PUT /payments/:id
type UpdatePaymentRequest struct {
	UserID *string    `json:"userId"` // Nil fields are left unchanged
	Season *string    `json:"season"`
	Amount *float64   `json:"amount"`
	Date   *time.Time `json:"date"`
}

func (r UpdatePaymentRequest) fields() map[string]any {
	f := map[string]any{}
	setIf(f, "user_id", r.UserID)
	setIf(f, "season_id", r.Season)
	setIf(f, "amount", r.Amount)
	setIf(f, "date", r.Date)
	return f
}

// ListPaymentsHandler returns every payment with its season expanded
func ListPaymentsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := s.ListPayments(c.Request.Context())
		if err != nil {
			storeFailure(c, err, "Payment not found", "Failed to fetch payments")
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// CreatePaymentHandler validates and records a payment
func CreatePaymentHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest
		if !bindAndValidate(c, &req) {
			return
		}
		payment := domain.Payment{UserID: req.UserID, SeasonID: req.Season, Amount: *req.Amount}
		if req.Date != nil {
			payment.Date = *req.Date
		}
		if err := s.CreatePayment(c.Request.Context(), &payment); err != nil {
			storeFailure(c, err, "Payment not found", "Failed to add payment")
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

// UpdatePaymentHandler applies a partial update without validation
func UpdatePaymentHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentRequest
		if !bindJSON(c, &req) {
			return
		}
		payment, err := s.UpdatePayment(c.Request.Context(), c.Param("id"), req.fields())
		if err != nil {
			storeFailure(c, err, "Payment not found", "Failed to update payment")
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

// DeletePaymentHandler removes a payment and answers 204
func DeletePaymentHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
			storeFailure(c, err, "Payment not found", "Failed to delete payment")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
