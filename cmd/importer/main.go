package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"henawys-art/internal/config"
	"henawys-art/internal/db"
	"henawys-art/internal/importer"
	"henawys-art/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, logger))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
