package api

import (
	"context"
	"time"

	"collegehub/internal/models"
	"collegehub/internal/realtime"
)

type ChatService struct {
	client *Client
}

func (s *ChatService) List(ctx context.Context) ([]models.Message, error) {
	res, err := s.client.Get(ctx, "/api/chat/messages")
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := decode(res, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *ChatService) Send(ctx context.Context, text string) (models.Message, error) {
	res, err := s.client.Post(ctx, "/api/chat/messages", map[string]any{"text": text})
	if err != nil {
		return models.Message{}, err
	}
	var sent models.Message
	if err := decode(res, &sent); err != nil {
		return models.Message{}, err
	}
	return sent, nil
}

// Watch re-fetches the full message list on an interval and hands each
// snapshot to onUpdate. Stop by calling the returned function or cancelling
// ctx.
func (s *ChatService) Watch(ctx context.Context, interval time.Duration, onUpdate func([]models.Message), onError func(error)) func() {
	return realtime.Subscribe(ctx, interval, s.List, onUpdate, onError)
}
