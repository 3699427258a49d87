package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderPaid, n.handleOrderPaid)
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUserPromoted, n.handleUserPromoted)
}

func (n *NotificationService) handleOrderPaid(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderPaid", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserPromoted(ctx context.Context, event events.Event) error {
	n.logger.Info("UserPromoted", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	return nil
}
