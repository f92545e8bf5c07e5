package service

import (
	"context"
	"encoding/json"
	"errors"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService implements the autosave policy: every successful persist
// publishes a message, and this worker refreshes the document's rolling
// autosave snapshot in response.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	versionService IVersionService
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	versionService IVersionService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		versionService: versionService,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.DocumentPersistedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("autosave", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid messages are never retriable
		return
	}

	if err := cs.versionService.Autosave(ctx, payload.DocumentId); err != nil {
		if errors.Is(err, apperror.ErrDocumentNotFound) {
			// Document deleted between persist and autosave.
			msg.Ack()
			return
		}
		// Autosave is best effort; a nack here would redeliver immediately and
		// spin on a persistently failing snapshot. The next persist retries.
		cs.logger.Error("autosave", "failed to take autosave snapshot", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
			"error":       err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("autosave", "autosave snapshot refreshed", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
	})
	msg.Ack()
}
