package casestudies

import (
	"errors"
	"fmt"

	"flowworks-backend/internal/utils"
)

// ValidateCatalog checks the referential invariants the types cannot
// express and reports every violation at once.
func ValidateCatalog(cases []CaseStudy) error {
	var errs []error
	seen := make(map[string]struct{}, len(cases))
	for _, cs := range cases {
		if !utils.IsSlug(cs.ID) {
			errs = append(errs, fmt.Errorf("case %q: id is not a slug", cs.ID))
		}
		if _, dup := seen[cs.ID]; dup {
			errs = append(errs, fmt.Errorf("case %q: duplicate id", cs.ID))
		}
		seen[cs.ID] = struct{}{}

		if cs.Title == "" || cs.Company == "" || cs.Summary == "" {
			errs = append(errs, fmt.Errorf("case %q: title, company and summary are required", cs.ID))
		}
		if !cs.Industry.Valid() || cs.Industry == IndustryAll {
			errs = append(errs, fmt.Errorf("case %q: invalid industry %q", cs.ID, cs.Industry))
		}
		if !cs.Function.Valid() || cs.Function == FunctionAll {
			errs = append(errs, fmt.Errorf("case %q: invalid function %q", cs.ID, cs.Function))
		}
		for _, r := range cs.Results {
			if !r.Category.Valid() {
				errs = append(errs, fmt.Errorf("case %q: result %q has unknown category %q", cs.ID, r.Text, r.Category))
			}
		}
	}

	for _, cs := range cases {
		for _, rel := range cs.RelatedCases {
			if rel == cs.ID {
				errs = append(errs, fmt.Errorf("case %q: relates to itself", cs.ID))
				continue
			}
			if _, ok := seen[rel]; !ok {
				errs = append(errs, fmt.Errorf("case %q: related case %q does not exist", cs.ID, rel))
			}
		}
	}
	return errors.Join(errs...)
}

// Known returns a membership test over the ids in cases, for checks that
// reference case studies from other catalogs.
func Known(cases []CaseStudy) func(id string) bool {
	ids := make(map[string]struct{}, len(cases))
	for _, cs := range cases {
		ids[cs.ID] = struct{}{}
	}
	return func(id string) bool {
		_, ok := ids[id]
		return ok
	}
}
