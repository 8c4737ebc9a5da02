package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostiva/models"
	"hostiva/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDocumentService struct {
	doc      []byte
	fileName string
	err      error
}

func (f *fakeDocumentService) ComposeByID(id string) ([]byte, string, error) {
	return f.doc, f.fileName, f.err
}

type fakeListingService struct {
	invoices []models.Invoice
	err      error
}

func (f *fakeListingService) ListInvoices(limit, offset int64) ([]models.Invoice, error) {
	return f.invoices, f.err
}

func newInvoiceRouter(docs billing.InvoiceDocumentService, list billing.InvoiceListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewInvoiceHandler(docs, list, zap.NewNop())
	r := gin.New()
	r.GET("/api/admin/invoices", h.ListInvoicesHandler)
	r.GET("/api/admin/invoices/:id/pdf", h.DownloadInvoicePDFHandler)
	return r
}

func TestDownloadInvoicePDFHandler(t *testing.T) {
	docs := &fakeDocumentService{
		doc:      []byte("%PDF-1.4 fake"),
		fileName: "Hostiva_INV-1.pdf",
	}
	router := newInvoiceRouter(docs, &fakeListingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invoices/inv-1/pdf", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Hostiva_INV-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store, no-cache, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestDownloadInvoicePDFHandlerNotFound(t *testing.T) {
	docs := &fakeDocumentService{err: billing.ErrInvoiceNotFound}
	router := newInvoiceRouter(docs, &fakeListingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invoices/nope/pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadInvoicePDFHandlerSurfacesDiagnostics(t *testing.T) {
	docs := &fakeDocumentService{
		err: &billing.CompositionError{InvoiceID: "inv-1", Err: errors.New("malformed date")},
	}
	router := newInvoiceRouter(docs, &fakeListingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invoices/inv-1/pdf", nil)
	router.ServeHTTP(w, req)

	// This endpoint is admin-only, so the diagnostic is included.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "malformed date")
}

func TestListInvoicesHandler(t *testing.T) {
	list := &fakeListingService{invoices: []models.Invoice{
		{ID: "inv-1", InvoiceNumber: "INV-1", Amount: 45000},
	}}
	router := newInvoiceRouter(&fakeDocumentService{}, list)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invoices", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV-1")
}
