package service

import (
	"context"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
)

const defaultListLimit = 100

type IChannelService interface {
	Show(ctx context.Context, id string) (*dto.ChannelRecordDTO, error)
	List(ctx context.Context, req *dto.ListChannelsRequest) (*dto.ListChannelsResponse, error)
}

type channelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChannelService(uowFactory unitofwork.RepositoryFactory) IChannelService {
	return &channelService{uowFactory: uowFactory}
}

// Show returns the channel with its denormalized details, or nil when the
// ID is unknown.
func (s *channelService) Show(ctx context.Context, id string) (*dto.ChannelRecordDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	channel, err := uow.ChannelRepository().FindOne(ctx,
		specification.ByChannelId{Id: id},
		specification.WithDetails{},
	)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	return channelToDTO(channel), nil
}

func (s *channelService) List(ctx context.Context, req *dto.ListChannelsRequest) (*dto.ListChannelsResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 1000 {
		limit = defaultListLimit
	}

	specs := []specification.Specification{
		specification.WithDetails{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if req.Tenant != "" {
		specs = append(specs, specification.ByTenant{Tenant: req.Tenant})
	}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	channels, err := uow.ChannelRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListChannelsResponse{Channels: make([]dto.ChannelRecordDTO, 0, len(channels))}
	for _, c := range channels {
		resp.Channels = append(resp.Channels, *channelToDTO(c))
	}
	resp.Total = len(resp.Channels)
	return resp, nil
}

func channelToDTO(c *entity.Channel) *dto.ChannelRecordDTO {
	record := &dto.ChannelRecordDTO{
		Id:          c.Id,
		Name:        c.Name,
		ChannelType: c.ChannelType,
		Department:  c.Department,
		Status:      c.Status,
		Tenant:      c.Tenant,
		CreatedAt:   c.CreatedAt,
		Details:     make([]dto.ChannelDetailDTO, 0, len(c.Details)),
	}
	for _, d := range c.Details {
		record.Details = append(record.Details, dto.ChannelDetailDTO{
			Key:       d.Key,
			Value:     d.Value,
			SourceDoc: d.SourceDoc,
			Citation:  d.Citation,
		})
	}
	return record
}
