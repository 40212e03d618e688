package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mritunjaysukla/RMS/configs"
	"github.com/mritunjaysukla/RMS/routes"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB: opened here, closed at shutdown
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("open db failed: %v", err)
	}
	defer func() {
		if err := configs.CloseDB(db); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedTables(db, cfg.TableCount); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}

	// notifications: event bus feeding the websocket hub
	hub := ws.NewNotifyHub()
	go hub.Run()
	bus := services.NewEventBus(hub)
	bus.Start()
	defer bus.Stop()

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, bus, hub)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("server running at", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
