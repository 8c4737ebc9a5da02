package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Admin endpoints.
	AdminLoginHandler         gin.HandlerFunc
	AdminLogoutHandler        gin.HandlerFunc
	ListInvoicesHandler       gin.HandlerFunc
	DownloadInvoicePDFHandler gin.HandlerFunc

	// Public endpoints.
	VerifyInvoiceHandler gin.HandlerFunc
}
