package services

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Details struct {
	Benefits []Benefit     `json:"benefits"`
	Features []string      `json:"features"`
	Process  []ProcessStep `json:"process"`
	FAQs     []FAQ         `json:"faqs"`
}

// Offering is one service the consultancy sells.
type Offering struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	// Icon names an icon in the frontend's icon set.
	Icon        string   `json:"icon"`
	Details     Details  `json:"details"`
	CaseStudies []string `json:"caseStudies,omitempty"`
}

// Summary is the list view without the nested details.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (s Offering) Summarize() Summary {
	return Summary{
		ID:          s.ID,
		Title:       s.Title,
		Tagline:     s.Tagline,
		Description: s.Description,
		Icon:        s.Icon,
	}
}
