package api

import (
	"context"
	"fmt"
	"time"

	"collegehub/internal/models"
	"collegehub/internal/realtime"
)

type DirectMessagesService struct {
	client *Client
}

// With returns the conversation with another user.
func (s *DirectMessagesService) With(ctx context.Context, userID int) ([]models.DirectMessage, error) {
	res, err := s.client.Get(ctx, fmt.Sprintf("/api/messages/%d", userID))
	if err != nil {
		return nil, err
	}
	var messages []models.DirectMessage
	if err := decode(res, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *DirectMessagesService) Send(ctx context.Context, userID int, text string) (models.DirectMessage, error) {
	res, err := s.client.Post(ctx, fmt.Sprintf("/api/messages/%d", userID), map[string]any{"text": text})
	if err != nil {
		return models.DirectMessage{}, err
	}
	var sent models.DirectMessage
	if err := decode(res, &sent); err != nil {
		return models.DirectMessage{}, err
	}
	return sent, nil
}

// Watch polls one conversation on an interval, replacing the subscriber's
// state wholesale per tick.
func (s *DirectMessagesService) Watch(ctx context.Context, userID int, interval time.Duration, onUpdate func([]models.DirectMessage), onError func(error)) func() {
	return realtime.Subscribe(ctx, interval, func(ctx context.Context) ([]models.DirectMessage, error) {
		return s.With(ctx, userID)
	}, onUpdate, onError)
}
