package service

import (
	"context"
	"fmt"
	"path/filepath"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/extract"
	"ai-bankassist-be/pkg/utils"
	"ai-bankassist-be/pkg/vector"
)

// IngestMeta is the per-batch metadata attached to every doc and chunk.
type IngestMeta struct {
	Tenant     string
	DocType    string
	Department string
	Country    string
	Version    string
}

type IIngestionService interface {
	IngestFiles(ctx context.Context, paths []string, meta IngestMeta) (*dto.IngestResponse, error)
}

// ingestionService runs extract → chunk → embed → index → persist for a
// batch of files. The index and its rows are written per batch: vectors
// land in the tenant index, chunk text and doc metadata in Postgres.
type ingestionService struct {
	uowFactory   unitofwork.RepositoryFactory
	embedder     embedding.EmbeddingProvider
	registry     *vector.Registry
	chunkSize    int
	chunkOverlap int
	logger       logger.ILogger
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	embedder embedding.EmbeddingProvider,
	registry *vector.Registry,
	chunkSize int,
	chunkOverlap int,
	logger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		uowFactory:   uowFactory,
		embedder:     embedder,
		registry:     registry,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		logger:       logger,
	}
}

func (s *ingestionService) IngestFiles(ctx context.Context, paths []string, meta IngestMeta) (*dto.IngestResponse, error) {
	traceID := newTraceID()

	idx, err := s.registry.Get(meta.Tenant)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	totalChunks := 0
	for _, path := range paths {
		chunks, err := s.ingestFile(ctx, uow, idx, path, meta)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", filepath.Base(path), err)
		}
		totalChunks += chunks
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	committed = true

	// Rows are committed; persist the index last. A crash between the two
	// leaves vectors missing, and re-ingesting the batch repairs that.
	if err := idx.Save(); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}

	s.logger.Info("ingestion", "batch ingested", map[string]interface{}{
		"trace":  traceID,
		"tenant": meta.Tenant,
		"docs":   len(paths),
		"chunks": totalChunks,
	})
	return &dto.IngestResponse{
		Docs:      len(paths),
		Chunks:    totalChunks,
		IndexPath: idx.Path(),
		TraceId:   traceID,
	}, nil
}

func (s *ingestionService) ingestFile(ctx context.Context, uow unitofwork.UnitOfWork, idx *vector.FlatIndex, path string, meta IngestMeta) (int, error) {
	pages, err := extract.Extract(path)
	if err != nil {
		return 0, err
	}

	filename := filepath.Base(path)
	doc := &entity.KbDoc{
		Path:       path,
		Filename:   filename,
		DocType:    meta.DocType,
		Tenant:     meta.Tenant,
		Department: optional(meta.Department),
		Country:    optional(meta.Country),
		Version:    optional(meta.Version),
	}
	if err := uow.KbDocRepository().Create(ctx, doc); err != nil {
		return 0, err
	}

	var chunkEntities []*entity.KbChunk
	var texts []string
	var metadata []vector.Metadata
	chunkIndex := 0
	for _, page := range pages {
		for _, text := range utils.SplitText(page.Content, s.chunkSize, s.chunkOverlap) {
			md := vector.Metadata{
				"content": text,
				"doc":     filename,
				"doc_id":  doc.Id,
				"tenant":  meta.Tenant,
			}
			if meta.Department != "" {
				md["department"] = meta.Department
			}
			if page.Number != nil {
				md["page"] = *page.Number
			}

			chunkEntities = append(chunkEntities, &entity.KbChunk{
				DocId:      doc.Id,
				Content:    text,
				ChunkIndex: chunkIndex,
				PageNumber: page.Number,
				Metadata:   map[string]interface{}{"doc_type": meta.DocType},
			})
			texts = append(texts, text)
			metadata = append(metadata, md)
			chunkIndex++
		}
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if err := idx.Add(vectors, metadata); err != nil {
		return 0, err
	}

	if err := uow.KbChunkRepository().CreateBatch(ctx, chunkEntities); err != nil {
		return 0, err
	}
	return len(chunkEntities), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
