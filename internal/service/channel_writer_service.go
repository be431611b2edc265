package service

import (
	"context"
	"fmt"
	"time"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/unitofwork"
)

// ChannelWriterService creates channel records from validated pipeline
// output. The ID sequence, name and detail rows all run inside one
// transaction.
type ChannelWriterService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChannelWriterService(uowFactory unitofwork.RepositoryFactory) *ChannelWriterService {
	return &ChannelWriterService{uowFactory: uowFactory}
}

func (s *ChannelWriterService) OpenChannel(ctx context.Context, tenant string, entities *dto.EntitySchema, citations []dto.CitationDTO, status string) (*dto.ChannelRecordDTO, error) {
	if status == "" {
		status = "active"
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

	seqDate := time.Now().UTC().Format("20060102")
	counter, err := uow.ChannelSequenceRepository().Next(ctx, tenant, seqDate)
	if err != nil {
		return nil, fmt.Errorf("next channel sequence: %w", err)
	}

	channelType := "general"
	if entities.ChannelType != nil && *entities.ChannelType != "" {
		channelType = *entities.ChannelType
	}

	channel := &entity.Channel{
		Id:          BuildChannelID(seqDate, counter),
		Name:        BuildChannelName(channelType, entities.Department),
		ChannelType: channelType,
		Department:  entities.Department,
		Status:      status,
		Tenant:      tenant,
	}
	if err := uow.ChannelRepository().Create(ctx, channel); err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}

	details := BuildDetails(channel.Id, entities, citations)
	if err := uow.ChannelDetailRepository().CreateBatch(ctx, details); err != nil {
		return nil, fmt.Errorf("create channel details: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	committed = true

	record := &dto.ChannelRecordDTO{
		Id:          channel.Id,
		Name:        channel.Name,
		ChannelType: channel.ChannelType,
		Department:  channel.Department,
		Status:      channel.Status,
		Tenant:      channel.Tenant,
		CreatedAt:   channel.CreatedAt,
	}
	for _, d := range details {
		record.Details = append(record.Details, dto.ChannelDetailDTO{
			Key:       d.Key,
			Value:     d.Value,
			SourceDoc: d.SourceDoc,
			Citation:  d.Citation,
		})
	}
	return record, nil
}

// BuildChannelID renders CH-<YYYYMMDD>-<NNNN> from the daily counter.
func BuildChannelID(seqDate string, counter int64) string {
	return fmt.Sprintf("%s-%s-%04d", constant.ChannelIDPrefix, seqDate, counter)
}

// BuildChannelName joins the channel type with the department, defaulting
// to "general" when no department was extracted.
func BuildChannelName(channelType string, department *string) string {
	dept := "general"
	if department != nil && *department != "" {
		dept = *department
	}
	return channelType + "-" + dept
}

// BuildDetails renders one row per non-null entity. Every row carries the
// first retrieval citation as its provenance, formatted "doc (page N)".
func BuildDetails(channelId string, entities *dto.EntitySchema, citations []dto.CitationDTO) []*entity.ChannelDetail {
	var sourceDoc, citationText *string
	if len(citations) > 0 {
		first := citations[0]
		doc := first.Doc
		text := FormatCitation(first)
		sourceDoc = &doc
		citationText = &text
	}

	pairs := entities.Pairs()
	details := make([]*entity.ChannelDetail, 0, len(pairs))
	for _, pair := range pairs {
		details = append(details, &entity.ChannelDetail{
			ChannelId: channelId,
			Key:       pair.Key,
			Value:     pair.Value,
			SourceDoc: sourceDoc,
			Citation:  citationText,
		})
	}
	return details
}

// FormatCitation renders "doc (page N)", or just the doc when the source
// has no pagination.
func FormatCitation(c dto.CitationDTO) string {
	if c.Page != nil {
		return fmt.Sprintf("%s (page %d)", c.Doc, *c.Page)
	}
	return c.Doc
}
