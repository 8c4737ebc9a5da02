// File: hostiva/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostiva/config"
	"hostiva/database"
	billingRepo "hostiva/database/repository/billing"
	"hostiva/handlers"
	"hostiva/middleware"
	"hostiva/routes"
	adminSvc "hostiva/services/admin"
	"hostiva/services/billing"
	"hostiva/services/verify"
	"hostiva/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	repo := billingRepo.NewMongoBillingRepo()

	// services.
	documentService := &billing.DefaultInvoiceDocumentService{
		Repo: repo,
		Company: billing.CompanyInfo{
			Name:         config.AppConfig.CompanyName,
			Tagline:      config.AppConfig.CompanyTagline,
			Address:      config.AppConfig.CompanyAddress,
			SupportEmail: config.AppConfig.SupportEmail,
			SupportPhone: config.AppConfig.SupportPhone,
			LogoPath:     config.AppConfig.LogoPath,
		},
	}
	listingService := &billing.DefaultInvoiceListingService{Repo: repo}
	verificationService := &verify.DefaultInvoiceVerificationService{Repo: repo}
	adminAuthService := &adminSvc.DefaultAdminAuthService{
		Repo:      repo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	invoiceHandler := handlers.NewInvoiceHandler(documentService, listingService, logger)
	verifyHandler := handlers.NewVerifyHandler(verificationService)
	adminHandler := handlers.NewAdminHandler(adminAuthService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminLoginHandler:         adminHandler.AdminLoginHandler,
		AdminLogoutHandler:        adminHandler.AdminLogoutHandler,
		ListInvoicesHandler:       invoiceHandler.ListInvoicesHandler,
		DownloadInvoicePDFHandler: invoiceHandler.DownloadInvoicePDFHandler,
		VerifyInvoiceHandler:      verifyHandler.VerifyInvoiceHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
