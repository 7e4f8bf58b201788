package services

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("service not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(items))
	for _, item := range items {
		out = append(out, item.Summarize())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Offering, error) {
	return s.repo.GetByID(ctx, strings.ToLower(strings.TrimSpace(id)))
}
