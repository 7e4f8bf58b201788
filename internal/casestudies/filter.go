package casestudies

import (
	"slices"
	"strings"
)

// Criteria selects case studies. Within a facet the selected values are
// OR'd; the query and the two facets are AND'd. An empty facet, or one
// holding its sentinel, matches everything.
type Criteria struct {
	Query      string
	Industries []IndustryCategory
	Functions  []FunctionCategory
}

// Filter returns the cases matching c in catalog order.
func Filter(cases []CaseStudy, c Criteria) []CaseStudy {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	out := make([]CaseStudy, 0, len(cases))
	for _, cs := range cases {
		if !matchesQuery(cs, query) {
			continue
		}
		if !matchesIndustry(cs, c.Industries) {
			continue
		}
		if !matchesFunction(cs, c.Functions) {
			continue
		}
		out = append(out, cs)
	}
	return out
}

func matchesQuery(cs CaseStudy, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range searchableFields(cs) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func searchableFields(cs CaseStudy) []string {
	fields := make([]string, 0, 5+len(cs.Technologies)+len(cs.Results))
	fields = append(fields, cs.Title, cs.Company, cs.Summary, cs.Challenge, cs.Solution)
	fields = append(fields, cs.Technologies...)
	for _, r := range cs.Results {
		fields = append(fields, r.Text)
	}
	return fields
}

func matchesIndustry(cs CaseStudy, selected []IndustryCategory) bool {
	if len(selected) == 0 || slices.Contains(selected, IndustryAll) {
		return true
	}
	return slices.Contains(selected, cs.Industry)
}

func matchesFunction(cs CaseStudy, selected []FunctionCategory) bool {
	if len(selected) == 0 || slices.Contains(selected, FunctionAll) {
		return true
	}
	return slices.Contains(selected, cs.Function)
}

func DefaultIndustrySelection() []IndustryCategory {
	return []IndustryCategory{IndustryAll}
}

func DefaultFunctionSelection() []FunctionCategory {
	return []FunctionCategory{FunctionAll}
}

// ToggleIndustry applies one click on an industry option to the current
// selection and returns the new selection. sel is not modified.
func ToggleIndustry(sel []IndustryCategory, v IndustryCategory) []IndustryCategory {
	return toggle(sel, v, IndustryAll)
}

// ToggleFunction is ToggleIndustry for the function facet.
func ToggleFunction(sel []FunctionCategory, v FunctionCategory) []FunctionCategory {
	return toggle(sel, v, FunctionAll)
}

// toggle implements the multi-select rules shared by both facets:
// picking the sentinel resets to it; picking a concrete value drops the
// sentinel; picking a selected value removes it; an emptied selection
// falls back to the sentinel.
func toggle[T comparable](sel []T, v, sentinel T) []T {
	if v == sentinel {
		return []T{sentinel}
	}
	out := make([]T, 0, len(sel)+1)
	removed := false
	for _, s := range sel {
		switch {
		case s == sentinel:
		case s == v:
			removed = true
		default:
			out = append(out, s)
		}
	}
	if !removed {
		out = append(out, v)
	}
	if len(out) == 0 {
		return []T{sentinel}
	}
	return out
}

// Facets counts cases per category. The sentinel options carry the total.
func Facets(cases []CaseStudy) FacetSet {
	industryCounts := make(map[IndustryCategory]int)
	functionCounts := make(map[FunctionCategory]int)
	for _, cs := range cases {
		industryCounts[cs.Industry]++
		functionCounts[cs.Function]++
	}

	set := FacetSet{
		Industries: make([]FacetOption, 0, len(Industries)),
		Functions:  make([]FacetOption, 0, len(Functions)),
	}
	for _, ind := range Industries {
		opt := FacetOption{Value: string(ind), Label: ind.Label(), Count: industryCounts[ind]}
		if ind == IndustryAll {
			opt.Count = len(cases)
			opt.Default = true
		}
		set.Industries = append(set.Industries, opt)
	}
	for _, fn := range Functions {
		opt := FacetOption{Value: string(fn), Label: fn.Label(), Count: functionCounts[fn]}
		if fn == FunctionAll {
			opt.Count = len(cases)
			opt.Default = true
		}
		set.Functions = append(set.Functions, opt)
	}
	return set
}

// BuildMatrix lays cases out on the industry x function grid. Sentinel
// values have no row or column. Every cell is present, possibly empty.
func BuildMatrix(cases []CaseStudy) Matrix {
	m := Matrix{
		Industries: concreteIndustries(),
		Functions:  concreteFunctions(),
	}
	rowOf := make(map[IndustryCategory]int, len(m.Industries))
	colOf := make(map[FunctionCategory]int, len(m.Functions))

	m.Cells = make([][]MatrixCell, len(m.Industries))
	for i, ind := range m.Industries {
		rowOf[ind] = i
		m.Cells[i] = make([]MatrixCell, len(m.Functions))
		for j, fn := range m.Functions {
			colOf[fn] = j
			m.Cells[i][j] = MatrixCell{Industry: ind, Function: fn, CaseIDs: []string{}}
		}
	}

	for _, cs := range cases {
		i, okRow := rowOf[cs.Industry]
		j, okCol := colOf[cs.Function]
		if !okRow || !okCol {
			continue
		}
		m.Cells[i][j].CaseIDs = append(m.Cells[i][j].CaseIDs, cs.ID)
	}
	return m
}

func concreteIndustries() []IndustryCategory {
	out := make([]IndustryCategory, 0, len(Industries)-1)
	for _, ind := range Industries {
		if ind != IndustryAll {
			out = append(out, ind)
		}
	}
	return out
}

func concreteFunctions() []FunctionCategory {
	out := make([]FunctionCategory, 0, len(Functions)-1)
	for _, fn := range Functions {
		if fn != FunctionAll {
			out = append(out, fn)
		}
	}
	return out
}

// Related resolves the related ids of the case with the given id, in
// declared order. Unknown ids are skipped.
func Related(cases []CaseStudy, id string) []Summary {
	byID := index(cases)
	cs, ok := byID[id]
	if !ok {
		return nil
	}
	out := make([]Summary, 0, len(cs.RelatedCases))
	for _, rel := range cs.RelatedCases {
		if r, ok := byID[rel]; ok {
			out = append(out, r.Summarize())
		}
	}
	return out
}

// Testimonials collects every case testimonial in catalog order.
func Testimonials(cases []CaseStudy) []SourcedTestimonial {
	out := make([]SourcedTestimonial, 0)
	for _, cs := range cases {
		if cs.Testimonial == nil {
			continue
		}
		out = append(out, SourcedTestimonial{
			Testimonial: *cs.Testimonial,
			CaseID:      cs.ID,
			Company:     cs.Company,
		})
	}
	return out
}

func index(cases []CaseStudy) map[string]CaseStudy {
	byID := make(map[string]CaseStudy, len(cases))
	for _, cs := range cases {
		byID[cs.ID] = cs
	}
	return byID
}
