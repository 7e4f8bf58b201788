package casestudies

type IndustryCategory string

const (
	// IndustryAll is the "your industry" default that applies no industry filter.
	IndustryAll                  IndustryCategory = "your-industry"
	IndustryCarHauling           IndustryCategory = "car-hauling"
	IndustryConstruction         IndustryCategory = "construction"
	IndustryHealthcare           IndustryCategory = "healthcare"
	IndustryProfessionalServices IndustryCategory = "professional-services"
	IndustryECommerce            IndustryCategory = "e-commerce"
	IndustryRealEstate           IndustryCategory = "real-estate"
	IndustryLogistics            IndustryCategory = "logistics"
	IndustryFinancialServices    IndustryCategory = "financial-services"
)

type FunctionCategory string

const (
	// FunctionAll is the "custom solutions" default that applies no function filter.
	FunctionAll               FunctionCategory = "custom-solutions"
	FunctionIndustrySpecific  FunctionCategory = "industry-specific"
	FunctionFinanceAccounting FunctionCategory = "finance-accounting"
	FunctionSalesCRM          FunctionCategory = "sales-crm"
	FunctionOperations        FunctionCategory = "operations"
	FunctionMarketing         FunctionCategory = "marketing"
	FunctionCustomerSupport   FunctionCategory = "customer-support"
	FunctionProjectManagement FunctionCategory = "project-management"
)

// Industries lists every industry category in display order, sentinel first.
var Industries = []IndustryCategory{
	IndustryAll,
	IndustryCarHauling,
	IndustryConstruction,
	IndustryHealthcare,
	IndustryProfessionalServices,
	IndustryECommerce,
	IndustryRealEstate,
	IndustryLogistics,
	IndustryFinancialServices,
}

// Functions lists every function category in display order, sentinel first.
var Functions = []FunctionCategory{
	FunctionAll,
	FunctionIndustrySpecific,
	FunctionFinanceAccounting,
	FunctionSalesCRM,
	FunctionOperations,
	FunctionMarketing,
	FunctionCustomerSupport,
	FunctionProjectManagement,
}

var industryLabels = map[IndustryCategory]string{
	IndustryAll:                  "Your Industry",
	IndustryCarHauling:           "Car Hauling",
	IndustryConstruction:         "Construction",
	IndustryHealthcare:           "Healthcare",
	IndustryProfessionalServices: "Professional Services",
	IndustryECommerce:            "E-commerce",
	IndustryRealEstate:           "Real Estate",
	IndustryLogistics:            "Logistics",
	IndustryFinancialServices:    "Financial Services",
}

var functionLabels = map[FunctionCategory]string{
	FunctionAll:               "Custom Solutions",
	FunctionIndustrySpecific:  "Industry-Specific",
	FunctionFinanceAccounting: "Finance & Accounting",
	FunctionSalesCRM:          "Sales & CRM",
	FunctionOperations:        "Operations",
	FunctionMarketing:         "Marketing",
	FunctionCustomerSupport:   "Customer Support",
	FunctionProjectManagement: "Project Management",
}

func (c IndustryCategory) Valid() bool {
	_, ok := industryLabels[c]
	return ok
}

func (c IndustryCategory) Label() string {
	return industryLabels[c]
}

func (c FunctionCategory) Valid() bool {
	_, ok := functionLabels[c]
	return ok
}

func (c FunctionCategory) Label() string {
	return functionLabels[c]
}

// ResultCategory tags a result line at data-entry time so the display
// label never has to be guessed from the wording.
type ResultCategory string

const (
	ResultTimeSavings        ResultCategory = "time-savings"
	ResultCostSavings        ResultCategory = "cost-savings"
	ResultRevenue            ResultCategory = "revenue"
	ResultAccuracy           ResultCategory = "accuracy"
	ResultEfficiency         ResultCategory = "efficiency"
	ResultCustomerExperience ResultCategory = "customer-experience"
	ResultScale              ResultCategory = "scale"
)

var resultLabels = map[ResultCategory]string{
	ResultTimeSavings:        "Time Saved",
	ResultCostSavings:        "Cost Reduction",
	ResultRevenue:            "Revenue Impact",
	ResultAccuracy:           "Accuracy",
	ResultEfficiency:         "Efficiency",
	ResultCustomerExperience: "Customer Experience",
	ResultScale:              "Scale",
}

func (c ResultCategory) Valid() bool {
	_, ok := resultLabels[c]
	return ok
}

func (c ResultCategory) Label() string {
	return resultLabels[c]
}

type Result struct {
	Text     string         `json:"text"`
	Category ResultCategory `json:"category"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type CaseStudy struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Company      string           `json:"company"`
	Location     string           `json:"location"`
	Industry     IndustryCategory `json:"industryCategory"`
	Function     FunctionCategory `json:"functionCategory"`
	Summary      string           `json:"summary"`
	Challenge    string           `json:"challenge"`
	Solution     string           `json:"solution"`
	Duration     string           `json:"duration,omitempty"`
	Featured     bool             `json:"featured"`
	Technologies []string         `json:"technologies"`
	Results      []Result         `json:"results"`
	Testimonial  *Testimonial     `json:"testimonial,omitempty"`
	RelatedCases []string         `json:"relatedCases,omitempty"`
}

// Summary is the card-sized view used in related-case lists.
type Summary struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Industry IndustryCategory `json:"industryCategory"`
	Function FunctionCategory `json:"functionCategory"`
	Summary  string           `json:"summary"`
}

func (c CaseStudy) Summarize() Summary {
	return Summary{
		ID:       c.ID,
		Title:    c.Title,
		Company:  c.Company,
		Industry: c.Industry,
		Function: c.Function,
		Summary:  c.Summary,
	}
}

// Detail is a case study with its related cases resolved.
type Detail struct {
	CaseStudy
	Related []Summary `json:"related"`
}

type SourcedTestimonial struct {
	Testimonial
	CaseID  string `json:"caseId"`
	Company string `json:"company"`
}

type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
	// Default marks the sentinel option that clears the facet.
	Default bool `json:"default,omitempty"`
}

type FacetSet struct {
	Industries []FacetOption `json:"industries"`
	Functions  []FacetOption `json:"functions"`
}

type MatrixCell struct {
	Industry IndustryCategory `json:"industry"`
	Function FunctionCategory `json:"function"`
	CaseIDs  []string         `json:"caseIds"`
}

// Matrix is the industry x function grid. Cells holds one row per entry
// of Industries and one column per entry of Functions.
type Matrix struct {
	Industries []IndustryCategory `json:"industries"`
	Functions  []FunctionCategory `json:"functions"`
	Cells      [][]MatrixCell     `json:"cells"`
}
