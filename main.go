// File: musebot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"musebot/config"
	"musebot/database"
	recordsRepo "musebot/database/repository/records"
	"musebot/handlers"
	"musebot/middleware"
	"musebot/routes"
	"musebot/services/dialogue"
	"musebot/services/gateway"
	"musebot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRecords := recordsRepo.NewMongoRecordRepo()

	// gateways.
	gatewayTimeout := time.Duration(config.AppConfig.GatewayTimeoutSec) * time.Second
	availabilityGW := gateway.NewHTTPAvailabilityGateway(config.AppConfig.AvailabilityAPIURL, gatewayTimeout)

	var escalationGW gateway.EscalationGateway
	if config.AppConfig.GeminiAPIKey != "" {
		gw, err := gateway.NewGeminiEscalationGateway(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini FAQ responder: %v", err)
		}
		escalationGW = gw
	} else {
		escalationGW = gateway.NewHTTPEscalationGateway(config.AppConfig.FAQServiceURL, gatewayTimeout)
	}

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := dialogue.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	dialogueService := &dialogue.DefaultDialogueService{
		Sessions:       sessionStore,
		Availability:   availabilityGW,
		Escalation:     escalationGW,
		Records:        bookingRecords,
		TicketBasePath: "/api/tickets/",
	}

	chatHandler := handlers.NewChatHandler(dialogueService)
	ticketHandler := handlers.NewTicketHandler(bookingRecords)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleChat:   chatHandler.HandleChat,
		ResetSession: chatHandler.ResetSession,
		GetTicket:    ticketHandler.GetTicket,
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
