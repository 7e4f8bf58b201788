package casestudies

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("case study not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// CategoryError names the facet that carried an unknown value.
type CategoryError struct {
	Field string
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%s: unknown category %q", e.Field, e.Value)
}

func (e *CategoryError) Unwrap() error {
	return ErrUnknownCategory
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ParseCriteria turns raw request values into Criteria, rejecting values
// outside the category enums.
func ParseCriteria(query string, industries, functions []string) (Criteria, error) {
	c := Criteria{Query: strings.TrimSpace(query)}
	for _, raw := range industries {
		v := IndustryCategory(strings.ToLower(strings.TrimSpace(raw)))
		if !v.Valid() {
			return Criteria{}, &CategoryError{Field: "industry", Value: raw}
		}
		c.Industries = append(c.Industries, v)
	}
	for _, raw := range functions {
		v := FunctionCategory(strings.ToLower(strings.TrimSpace(raw)))
		if !v.Valid() {
			return Criteria{}, &CategoryError{Field: "function", Value: raw}
		}
		c.Functions = append(c.Functions, v)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, c Criteria) ([]CaseStudy, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return Detail{}, err
	}
	return Detail{CaseStudy: item, Related: Related(items, id)}, nil
}

// Exists reports whether id names a published case study.
func (s *Service) Exists(ctx context.Context, id string) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}

func (s *Service) Facets(ctx context.Context) (FacetSet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return FacetSet{}, err
	}
	return Facets(items), nil
}

func (s *Service) Matrix(ctx context.Context) (Matrix, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Matrix{}, err
	}
	return BuildMatrix(items), nil
}

func (s *Service) Testimonials(ctx context.Context) ([]SourcedTestimonial, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Testimonials(items), nil
}
