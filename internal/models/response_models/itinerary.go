package response_models

// Section names an activity can be filed under. Anything else announced by a
// "####" heading is remembered but never addressable.
const (
	SectionMorning   = "morning"
	SectionAfternoon = "afternoon"
	SectionEvening   = "evening"
)

// ItineraryTree is the structured day/section/activity representation parsed
// out of the raw model reply. RawText keeps the verbatim reply so the client
// can fall back to plain display when the structured part came out empty.
type ItineraryTree struct {
	Title                 string     `json:"title"`
	DateRange             string     `json:"dateRange"`
	BudgetLabel           string     `json:"budgetLabel"`
	TravelStyle           string     `json:"travelStyle"`
	WithChildren          bool       `json:"withChildren"`
	RawText               string     `json:"rawText"`
	Days                  []DayPlan  `json:"days"`
	CostBreakdown         []CostItem `json:"costBreakdown"`
	SpecialConsiderations []string   `json:"specialConsiderations"`
}

type DayPlan struct {
	Label    string                `json:"label"`
	Sections map[string][]Activity `json:"sections"`
}

type Activity struct {
	Time        string           `json:"time"`
	Description string           `json:"description"`
	Details     []ActivityDetail `json:"details"`
}

type ActivityDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CostItem keeps cost categories in first-seen order, which a plain map
// would lose.
type CostItem struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}
