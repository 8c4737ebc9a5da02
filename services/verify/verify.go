package verify

import (
	"fmt"
	"strings"

	"hostiva/models"
	"hostiva/utils"

	"go.uber.org/zap"
)

// Public failure messages. MsgVerificationFailed is shared by the unknown
// invoice and mismatch cases so a caller cannot tell which check failed.
const (
	MsgMissingFields      = "all fields are required"
	MsgVerificationFailed = "invoice verification could not be confirmed"
)

// Verify checks the five supplied strings against the stored invoice.
//
// The invoice number lookup is exact-case; the remaining four comparisons
// are case-insensitive (codes are printed uppercased and commonly typed
// back in lowercase). Every one of the four must match: there is no partial
// result, and no failure reason ever names the failing field.
func (s *DefaultInvoiceVerificationService) Verify(req VerifyRequest) (VerificationResult, error) {
	logger := utils.GetLogger()

	if isBlank(req.InvoiceNumber) || isBlank(req.VerificationKey) || isBlank(req.Email) ||
		isBlank(req.PinHash) || isBlank(req.Signature) {
		return VerificationResult{Valid: false, Message: MsgMissingFields}, nil
	}

	invoice, err := s.Repo.GetInvoiceByNumber(req.InvoiceNumber)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("failed to look up invoice: %w", err)
	}
	if invoice == nil {
		logger.Debug("verification attempt for unknown invoice",
			zap.String("invoiceNumber", req.InvoiceNumber))
		return VerificationResult{Valid: false, Message: MsgVerificationFailed}, nil
	}

	user, err := s.Repo.GetUserByID(invoice.UserID)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("failed to look up invoice owner: %w", err)
	}

	matched := strings.EqualFold(req.VerificationKey, invoice.VerificationKey) &&
		strings.EqualFold(req.PinHash, invoice.PinHash) &&
		strings.EqualFold(req.Signature, invoice.Signature) &&
		user != nil && strings.EqualFold(req.Email, user.Email)

	if !matched {
		logger.Debug("verification attempt rejected",
			zap.String("invoiceNumber", req.InvoiceNumber))
		return VerificationResult{Valid: false, Message: MsgVerificationFailed}, nil
	}

	return VerificationResult{
		Valid: true,
		Invoice: &models.InvoiceSummary{
			InvoiceNumber: invoice.InvoiceNumber,
			Amount:        invoice.Amount,
			ClientName:    user.DisplayName(),
		},
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
