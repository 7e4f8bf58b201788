package casestudies

import (
	"context"
	"slices"
)

type Repository interface {
	List(ctx context.Context) ([]CaseStudy, error)
	GetByID(ctx context.Context, id string) (CaseStudy, error)
}

// StaticRepository serves a fixed, compiled-in case-study set. It is safe
// for concurrent use because nothing writes to it after construction.
type StaticRepository struct {
	items []CaseStudy
	byID  map[string]int
}

// NewRepository returns a repository over the published catalog.
func NewRepository() *StaticRepository {
	return NewStaticRepository(catalog)
}

func NewStaticRepository(items []CaseStudy) *StaticRepository {
	owned := make([]CaseStudy, len(items))
	byID := make(map[string]int, len(items))
	for i, item := range items {
		owned[i] = clone(item)
		byID[item.ID] = i
	}
	return &StaticRepository{items: owned, byID: byID}
}

func (r *StaticRepository) List(ctx context.Context) ([]CaseStudy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]CaseStudy, len(r.items))
	for i, item := range r.items {
		out[i] = clone(item)
	}
	return out, nil
}

func (r *StaticRepository) GetByID(ctx context.Context, id string) (CaseStudy, error) {
	if err := ctx.Err(); err != nil {
		return CaseStudy{}, err
	}
	i, ok := r.byID[id]
	if !ok {
		return CaseStudy{}, ErrNotFound
	}
	return clone(r.items[i]), nil
}

// Catalog returns a copy of the published case studies.
func Catalog() []CaseStudy {
	out := make([]CaseStudy, len(catalog))
	for i, item := range catalog {
		out[i] = clone(item)
	}
	return out
}

func clone(cs CaseStudy) CaseStudy {
	cs.Technologies = slices.Clone(cs.Technologies)
	cs.Results = slices.Clone(cs.Results)
	cs.RelatedCases = slices.Clone(cs.RelatedCases)
	if cs.Testimonial != nil {
		t := *cs.Testimonial
		cs.Testimonial = &t
	}
	return cs
}
