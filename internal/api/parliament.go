package api

import (
	"context"
	"fmt"

	"collegehub/internal/models"
)

// ParliamentService talks to the parliament routes, which live under a bare
// /parliament prefix with verb-style paths instead of the /api REST shape the
// other resources use. The wire format is snake_case (group_name, avatar_url)
// and goes through the same key-mapper as every other service.
type ParliamentService struct {
	client *Client
}

func (s *ParliamentService) List(ctx context.Context) ([]models.ParliamentMember, error) {
	res, err := s.client.Get(ctx, "/parliament/getAll")
	if err != nil {
		return nil, err
	}
	var members []models.ParliamentMember
	if err := decode(res, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *ParliamentService) Add(ctx context.Context, member models.ParliamentMember) (models.ParliamentMember, error) {
	payload, err := snakePayload(member)
	if err != nil {
		return models.ParliamentMember{}, err
	}
	res, err := s.client.Post(ctx, "/parliament/add", payload)
	if err != nil {
		return models.ParliamentMember{}, err
	}
	var added models.ParliamentMember
	if err := decode(res, &added); err != nil {
		return models.ParliamentMember{}, err
	}
	return added, nil
}

func (s *ParliamentService) Update(ctx context.Context, id int, member models.ParliamentMember) (models.ParliamentMember, error) {
	payload, err := snakePayload(member)
	if err != nil {
		return models.ParliamentMember{}, err
	}
	res, err := s.client.Put(ctx, fmt.Sprintf("/parliament/update/%d", id), payload)
	if err != nil {
		return models.ParliamentMember{}, err
	}
	var updated models.ParliamentMember
	if err := decode(res, &updated); err != nil {
		return models.ParliamentMember{}, err
	}
	return updated, nil
}

func (s *ParliamentService) Remove(ctx context.Context, id int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/parliament/remove/%d", id))
	return err
}

func (s *ParliamentService) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/api/parliament/%d/avatar", id), map[string]any{"avatarUrl": avatarURL})
	return err
}
