package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"henawys-art/internal/config"
	"henawys-art/internal/db"
	"henawys-art/internal/messaging/kafka"
	taskrepo "henawys-art/internal/repository/task"
	"henawys-art/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[worker] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	subscriber := kafka.NewSubscriber(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, logger)
	w := worker.New(subscriber, taskrepo.NewPostgres(pool, logger), logger)

	logger.Printf("consuming topic %s as group %s", cfg.KafkaTopic, cfg.KafkaGroupID)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("worker stopped: %v", err)
	}
	logger.Println("worker stopped")
}
