package api

import (
	"context"

	"collegehub/internal/models"
)

type ActivitiesService struct {
	client *Client
}

func (s *ActivitiesService) List(ctx context.Context) ([]models.Activity, error) {
	res, err := s.client.Get(ctx, "/api/activities")
	if err != nil {
		return nil, err
	}
	var activities []models.Activity
	if err := decode(res, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
