package api

import (
	"context"
	"fmt"

	"collegehub/internal/models"
)

type NewsService struct {
	client *Client
}

func (s *NewsService) List(ctx context.Context) ([]models.NewsPost, error) {
	res, err := s.client.Get(ctx, "/api/news")
	if err != nil {
		return nil, err
	}
	var posts []models.NewsPost
	if err := decode(res, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *NewsService) Create(ctx context.Context, post models.NewsPost) (models.NewsPost, error) {
	res, err := s.client.Post(ctx, "/api/news", post)
	if err != nil {
		return models.NewsPost{}, err
	}
	var created models.NewsPost
	if err := decode(res, &created); err != nil {
		return models.NewsPost{}, err
	}
	return created, nil
}

func (s *NewsService) Like(ctx context.Context, postID int) error {
	_, err := s.client.Post(ctx, fmt.Sprintf("/api/news/%d/like", postID), nil)
	return err
}

func (s *NewsService) Delete(ctx context.Context, postID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/news/%d", postID))
	return err
}

func (s *NewsService) Comments(ctx context.Context, newsID int) ([]models.Comment, error) {
	res, err := s.client.Get(ctx, fmt.Sprintf("/api/news/%d/comments", newsID))
	if err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := decode(res, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *NewsService) AddComment(ctx context.Context, newsID int, text string) (models.Comment, error) {
	res, err := s.client.Post(ctx, fmt.Sprintf("/api/news/%d/comments", newsID), map[string]any{"text": text})
	if err != nil {
		return models.Comment{}, err
	}
	var comment models.Comment
	if err := decode(res, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (s *NewsService) UpdateComment(ctx context.Context, newsID, commentID int, text string) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/api/news/%d/comments/%d", newsID, commentID), map[string]any{"text": text})
	return err
}

func (s *NewsService) DeleteComment(ctx context.Context, newsID, commentID int) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/api/news/%d/comments/%d", newsID, commentID))
	return err
}
