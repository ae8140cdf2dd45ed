package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledgerhub/internal/api"
	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common/security"
	"ledgerhub/internal/domain/repository"
	"ledgerhub/internal/platform/cache"
	"ledgerhub/internal/platform/config"
	"ledgerhub/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Token Service
	tokens := security.NewTokenService(cfg.JWTKey, cfg.JWTExp)

	// 3. Database
	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Schema setup failed: %v", err)
	}
	log.Println("Database connected.")

	// 4. Redis (summary cache)
	rdb, err := cache.Connect(cfg)
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected.")

	// 5. Repositories
	userRepo := repository.NewPgUserRepository(db)
	categoryRepo := repository.NewPgCategoryRepository(db)
	expenseRepo := repository.NewPgExpenseRepository(db)
	bookRepo := repository.NewPgBookRepository(db)
	studentRepo := repository.NewPgStudentRepository(db)

	// 6. Services
	authService := service.NewAuthService(userRepo, tokens)
	categoryService := service.NewCategoryService(categoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, cache.NewSummaryCache(rdb, cfg.SummaryCacheTTL))
	libraryService := service.NewLibraryService(bookRepo)
	studentService := service.NewStudentService(studentRepo)

	// 7. Router & HTTP Server
	router := api.NewRouter(tokens, userRepo, authService, categoryService, expenseService, libraryService, studentService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
