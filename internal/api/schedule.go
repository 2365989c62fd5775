package api

import (
	"context"
	"fmt"

	"collegehub/internal/models"
)

type ScheduleService struct {
	client *Client
}

func (s *ScheduleService) List(ctx context.Context) ([]models.Meeting, error) {
	res, err := s.client.Get(ctx, "/api/schedule")
	if err != nil {
		return nil, err
	}
	var meetings []models.Meeting
	if err := decode(res, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Create sends startTime/endTime as start_time/end_time, the names the
// backend's schedule table uses.
func (s *ScheduleService) Create(ctx context.Context, meeting models.Meeting) (models.Meeting, error) {
	payload, err := snakePayload(meeting)
	if err != nil {
		return models.Meeting{}, err
	}
	res, err := s.client.Post(ctx, "/api/schedule", payload)
	if err != nil {
		return models.Meeting{}, err
	}
	var created models.Meeting
	if err := decode(res, &created); err != nil {
		return models.Meeting{}, err
	}
	return created, nil
}

func (s *ScheduleService) Update(ctx context.Context, id int, meeting models.Meeting) (models.Meeting, error) {
	payload, err := snakePayload(meeting)
	if err != nil {
		return models.Meeting{}, err
	}
	res, err := s.client.Put(ctx, fmt.Sprintf("/api/schedule/%d", id), payload)
	if err != nil {
		return models.Meeting{}, err
	}
	var updated models.Meeting
	if err := decode(res, &updated); err != nil {
		return models.Meeting{}, err
	}
	return updated, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/schedule/%d", id))
	return err
}
