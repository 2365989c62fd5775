package api

import (
	"context"
	"fmt"

	"collegehub/internal/models"
)

type ProjectsService struct {
	client *Client
}

func (s *ProjectsService) List(ctx context.Context) ([]models.Project, error) {
	res, err := s.client.Get(ctx, "/api/projects")
	if err != nil {
		return nil, err
	}
	var projects []models.Project
	if err := decode(res, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectsService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	payload, err := snakePayload(project)
	if err != nil {
		return models.Project{}, err
	}
	res, err := s.client.Post(ctx, "/api/projects", payload)
	if err != nil {
		return models.Project{}, err
	}
	var created models.Project
	if err := decode(res, &created); err != nil {
		return models.Project{}, err
	}
	return created, nil
}

func (s *ProjectsService) Delete(ctx context.Context, projectID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/projects/%d", projectID))
	return err
}
