package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpg/internal/api"
	"smartpg/internal/app/service"
	"smartpg/internal/app/worker"
	"smartpg/internal/common/security"
	"smartpg/internal/domain/repository"
	"smartpg/internal/platform/config"
	"smartpg/internal/platform/database"
	"smartpg/internal/platform/queue"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	queue.ConnectRedis()
	defer queue.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	complaintRepo := repository.NewPgComplaintRepository(database.DB)
	noticeRepo := repository.NewPgNoticeRepository(database.DB)
	menuRepo := repository.NewPgMenuRepository(database.DB)

	// 6. Initialize Services
	events := service.NewRedisEventPublisher(queue.RDB)
	authService := service.NewAuthService(userRepo)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, events)
	noticeService := service.NewNoticeService(noticeRepo, userRepo, events)
	residentService := service.NewResidentService(userRepo)
	menuService := service.NewMenuService(menuRepo)
	chatService := service.NewChatService(queue.RDB, service.OpenAICompletion())

	// 7. Bootstrap the admin account
	if err := authService.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Could not bootstrap admin account: %v", err)
	}
	fmt.Println("Admin account ready.")

	// 8. Initialize Notification Worker (as a goroutine)
	notificationWorker := worker.NewNotificationWorker(queue.RDB)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go notificationWorker.Start(workerCtx)
	fmt.Println("Notification worker started.")

	// 9. Initialize Router & HTTP Server
	router := api.NewRouter(authService, complaintService, noticeService, residentService, menuService, chatService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 10. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
