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

	"github.com/bungkust/shoplist/internal/database"
	"github.com/bungkust/shoplist/internal/logging"
	"github.com/bungkust/shoplist/internal/server"
	"github.com/bungkust/shoplist/internal/storage"
)

func main() {
	port := os.Getenv("SHOPLIST_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SHOPLIST_DB_PATH")
	if dbPath == "" {
		dbPath = "shoplist.db"
	}

	logger := logging.Setup(os.Getenv("SHOPLIST_LOG_LEVEL"), os.Getenv("SHOPLIST_LOG_FORMAT"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	srv := server.New(storage.NewSQLite(db), logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Periodic rate-limiter cleanup
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			case <-cleanupDone:
				return
			}
		}
	}()

	go func() {
		fmt.Printf("shoplist running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	close(cleanupDone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
