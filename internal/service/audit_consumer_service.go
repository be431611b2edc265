package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains the audit topic and persists events. The
// publisher already redacted the utterance; this side stores what it gets.
type auditConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AuditEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	event := &entity.AuditEvent{
		TraceId:    payload.TraceId,
		EventType:  payload.EventType,
		Tenant:     payload.Tenant,
		Channel:    payload.Channel,
		Utterance:  payload.Utterance,
		Intent:     payload.Intent,
		Confidence: payload.Confidence,
		Entities:   payload.Entities,
		Status:     payload.Status,
		Error:      payload.Error,
	}

	if err := uow.AuditEventRepository().Create(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to persist audit event %s: %v", payload.TraceId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
