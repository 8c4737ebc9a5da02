package handlers

import (
	"net/http"

	"hostiva/services/verify"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerifyHandler serves the public invoice authenticity check.
type VerifyHandler struct {
	Verifier verify.InvoiceVerificationService
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(verifier verify.InvoiceVerificationService) *VerifyHandler {
	return &VerifyHandler{Verifier: verifier}
}

// VerifyInvoiceHandler checks the five query parameters against the stored
// invoice. The endpoint is public and always answers 200 with a
// {valid, invoice?, message?} body; internal failures collapse into the
// same generic negative answer so nothing leaks to a guessing caller.
func (h *VerifyHandler) VerifyInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	req := verify.VerifyRequest{
		InvoiceNumber:   c.Query("invoiceNumber"),
		VerificationKey: c.Query("key"),
		Email:           c.Query("email"),
		PinHash:         c.Query("pinHash"),
		Signature:       c.Query("signature"),
	}

	result, err := h.Verifier.Verify(req)
	if err != nil {
		logger.Error("Invoice verification failed internally", zap.Error(err))
		c.JSON(http.StatusOK, verify.VerificationResult{
			Valid:   false,
			Message: verify.MsgVerificationFailed,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
