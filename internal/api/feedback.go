package api

import "context"

type FeedbackService struct {
	client *Client
}

// Accept marks a feedback entry as accepted.
func (s *FeedbackService) Accept(ctx context.Context, id int) error {
	_, err := s.client.Post(ctx, "/api/feedback/accept", map[string]any{"id": id})
	return err
}
