package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/internal/service"
	"ai-bankassist-be/pkg/database"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/extract"
	"ai-bankassist-be/pkg/vector"

	"github.com/fatih/color"
)

// Ingests KB documents from disk into one tenant's index without going
// through the HTTP surface. Useful for seeding environments.
func main() {
	tenant := flag.String("tenant", "", "tenant the documents belong to (required)")
	dir := flag.String("dir", "", "directory of documents to ingest (required)")
	docType := flag.String("doc-type", "product_sheet", "document type stored with each doc")
	department := flag.String("department", "", "owning department, if any")
	country := flag.String("country", "", "country code, if any")
	version := flag.String("version", "v1", "document version label")
	flag.Parse()

	if *tenant == "" || *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("✗ database connection failed: %v", err)
		os.Exit(1)
	}

	baseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.EmbeddingProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	embedder, err := embedding.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		baseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.EmbeddingDimension,
	)
	if err != nil {
		color.Red("✗ embedding provider init failed: %v", err)
		os.Exit(1)
	}

	registry := vector.NewRegistry(cfg.Rag.VectorDir, cfg.Ai.EmbeddingDimension)
	ingester := service.NewIngestionService(
		unitofwork.NewRepositoryFactory(db),
		embedder,
		registry,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
		logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production"),
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		color.Red("✗ cannot read %s: %v", *dir, err)
		os.Exit(1)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		if !extract.SupportedExtension(entry.Name()) {
			color.Yellow("- skipping %s (unsupported)", entry.Name())
			continue
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		color.Yellow("nothing to ingest in %s", *dir)
		return
	}

	color.Cyan("Ingesting %d file(s) for tenant %s...", len(paths), *tenant)

	res, err := ingester.IngestFiles(context.Background(), paths, service.IngestMeta{
		Tenant:     *tenant,
		DocType:    *docType,
		Department: *department,
		Country:    *country,
		Version:    *version,
	})
	if err != nil {
		color.Red("✗ ingestion failed: %v", err)
		os.Exit(1)
	}

	color.Green("✓ ingested %d docs, %d chunks", res.Docs, res.Chunks)
	color.Green("  index: %s (trace %s)", res.IndexPath, res.TraceId)
}
