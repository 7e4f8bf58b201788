package services

import (
	"errors"
	"fmt"

	"flowworks-backend/internal/utils"
)

// ValidateCatalog checks service ids, details and case-study references.
// knownCase reports whether a case-study id exists.
func ValidateCatalog(items []Offering, knownCase func(id string) bool) error {
	var errs []error
	seen := make(map[string]struct{}, len(items))
	for _, s := range items {
		if !utils.IsSlug(s.ID) {
			errs = append(errs, fmt.Errorf("service %q: id is not a slug", s.ID))
		}
		if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("service %q: duplicate id", s.ID))
		}
		seen[s.ID] = struct{}{}

		if s.Title == "" || s.Description == "" {
			errs = append(errs, fmt.Errorf("service %q: title and description are required", s.ID))
		}
		if len(s.Details.Benefits) == 0 || len(s.Details.Features) == 0 || len(s.Details.Process) == 0 {
			errs = append(errs, fmt.Errorf("service %q: benefits, features and process are required", s.ID))
		}
		for i, step := range s.Details.Process {
			if step.Step != i+1 {
				errs = append(errs, fmt.Errorf("service %q: process step %d is numbered %d", s.ID, i+1, step.Step))
			}
		}
		for _, faq := range s.Details.FAQs {
			if faq.Question == "" || faq.Answer == "" {
				errs = append(errs, fmt.Errorf("service %q: faq entries need a question and an answer", s.ID))
			}
		}
		for _, id := range s.CaseStudies {
			if knownCase == nil || !knownCase(id) {
				errs = append(errs, fmt.Errorf("service %q: case study %q does not exist", s.ID, id))
			}
		}
	}
	return errors.Join(errs...)
}
