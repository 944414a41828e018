package request_models

// TripRequest carries the structured trip parameters the itinerary pipeline
// consumes. Validation happens in the itinerary service so the error order is
// deterministic, not via binding tags.
type TripRequest struct {
	Destination string  `json:"destination"`
	Budget      float64 `json:"budget"`
	Days        int     `json:"days"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Transport   string  `json:"transport"`
	Requirement string  `json:"requirement"`
	Child       bool    `json:"child"`
}
