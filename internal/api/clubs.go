package api

import (
	"context"
	"fmt"

	"collegehub/internal/models"
)

type ClubsService struct {
	client *Client
}

func (s *ClubsService) List(ctx context.Context) ([]models.Club, error) {
	res, err := s.client.Get(ctx, "/api/clubs")
	if err != nil {
		return nil, err
	}
	var clubs []models.Club
	if err := decode(res, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (s *ClubsService) Get(ctx context.Context, clubID int) (models.Club, error) {
	res, err := s.client.Get(ctx, fmt.Sprintf("/api/clubs/%d", clubID))
	if err != nil {
		return models.Club{}, err
	}
	var club models.Club
	if err := decode(res, &club); err != nil {
		return models.Club{}, err
	}
	return club, nil
}

// Create sends the club with snake_case field names (club_avatar,
// background_url, creator_id) and normalizes whatever casing the backend
// echoes back.
func (s *ClubsService) Create(ctx context.Context, club models.Club) (models.Club, error) {
	payload, err := snakePayload(club)
	if err != nil {
		return models.Club{}, err
	}
	res, err := s.client.Post(ctx, "/api/clubs", payload)
	if err != nil {
		return models.Club{}, err
	}
	var created models.Club
	if err := decode(res, &created); err != nil {
		return models.Club{}, err
	}
	return created, nil
}

func (s *ClubsService) Join(ctx context.Context, clubID int) error {
	_, err := s.client.Post(ctx, fmt.Sprintf("/api/clubs/%d/join", clubID), nil)
	return err
}

func (s *ClubsService) Leave(ctx context.Context, clubID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/clubs/%d/leave", clubID))
	return err
}

func (s *ClubsService) Delete(ctx context.Context, clubID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/clubs/%d", clubID))
	return err
}

func (s *ClubsService) Members(ctx context.Context, clubID int) ([]models.User, error) {
	res, err := s.client.Get(ctx, fmt.Sprintf("/api/clubs/%d/members", clubID))
	if err != nil {
		return nil, err
	}
	var members []models.User
	if err := decode(res, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *ClubsService) RemoveMember(ctx context.Context, clubID, memberID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/clubs/%d/members/%d", clubID, memberID))
	return err
}
