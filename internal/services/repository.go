package services

import (
	"context"
	"slices"
)

type Repository interface {
	List(ctx context.Context) ([]Offering, error)
	GetByID(ctx context.Context, id string) (Offering, error)
}

type StaticRepository struct {
	items []Offering
	byID  map[string]int
}

func NewRepository() *StaticRepository {
	return NewStaticRepository(catalog)
}

func NewStaticRepository(items []Offering) *StaticRepository {
	owned := make([]Offering, len(items))
	byID := make(map[string]int, len(items))
	for i, item := range items {
		owned[i] = clone(item)
		byID[item.ID] = i
	}
	return &StaticRepository{items: owned, byID: byID}
}

func (r *StaticRepository) List(ctx context.Context) ([]Offering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Offering, len(r.items))
	for i, item := range r.items {
		out[i] = clone(item)
	}
	return out, nil
}

func (r *StaticRepository) GetByID(ctx context.Context, id string) (Offering, error) {
	if err := ctx.Err(); err != nil {
		return Offering{}, err
	}
	i, ok := r.byID[id]
	if !ok {
		return Offering{}, ErrNotFound
	}
	return clone(r.items[i]), nil
}

// Catalog returns a copy of the published services.
func Catalog() []Offering {
	out := make([]Offering, len(catalog))
	for i, item := range catalog {
		out[i] = clone(item)
	}
	return out
}

func clone(s Offering) Offering {
	s.Details.Benefits = slices.Clone(s.Details.Benefits)
	s.Details.Features = slices.Clone(s.Details.Features)
	s.Details.Process = slices.Clone(s.Details.Process)
	s.Details.FAQs = slices.Clone(s.Details.FAQs)
	s.CaseStudies = slices.Clone(s.CaseStudies)
	return s
}
