package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hostiva/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves the admin invoice endpoints.
type InvoiceHandler struct {
	Documents billing.InvoiceDocumentService
	Invoices  billing.InvoiceListingService
	Logger    *zap.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(documents billing.InvoiceDocumentService, invoices billing.InvoiceListingService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Documents: documents, Invoices: invoices, Logger: logger}
}

// DownloadInvoicePDFHandler renders one invoice as a PDF attachment. The
// route sits behind the admin auth middleware; composition diagnostics are
// surfaced in the error body since only admins reach this handler.
func (h *InvoiceHandler) DownloadInvoicePDFHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	doc, fileName, err := h.Documents.ComposeByID(id)
	if err != nil {
		if errors.Is(err, billing.ErrInvoiceNotFound) {
			logger.Warn("Invoice not found for PDF download", zap.String("id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to compose invoice PDF", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Data(http.StatusOK, "application/pdf", doc)
}

// ListInvoicesHandler returns the invoice listing for the admin dashboard.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	logger := getLogger(c)

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		offset = 0
	}

	invoices, err := h.Invoices.ListInvoices(limit, offset)
	if err != nil {
		logger.Error("Failed to list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}
