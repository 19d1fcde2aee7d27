package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/aleksandar-ristic/StarterStore/internal/config"
	"github.com/aleksandar-ristic/StarterStore/internal/db"
	"github.com/aleksandar-ristic/StarterStore/internal/importer"
	productrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/product"
)

func main() {
	path := flag.String("file", "products.csv", "path to the catalog CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, repo)

	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}
	logger.Printf("imported %d products", count)
}
