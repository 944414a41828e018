package services

import (
	"fmt"
	"strconv"

	"wayfare/internal/models/request_models"
)

const itineraryPromptTemplate = `
Create a detailed day-by-day itinerary for:
- Destination: %s
- Budget: $%s
- Duration: %d days
- Travel Dates: %s to %s
- Transportation: %s
- Travel Style: %s
- Travelling with children: %s

Please include:
1. Daily schedule with timings
2. Recommended attractions and activities
3. Estimated costs for each activity
4. Transportation details between locations
5. Dining recommendations
6. Any special considerations based on the travel style and children status
`

// BuildItineraryPrompt turns a validated TripRequest into the generation
// prompt. Pure function: same request, byte-identical prompt, so retries are
// safe to issue.
func BuildItineraryPrompt(req request_models.TripRequest) string {
	child := "No"
	if req.Child {
		child = "Yes"
	}

	return fmt.Sprintf(itineraryPromptTemplate,
		req.Destination,
		FormatBudget(req.Budget),
		req.Days,
		req.StartDate,
		req.EndDate,
		req.Transport,
		req.Requirement,
		child,
	)
}

// FormatBudget renders a budget amount without trailing zeros, so 25000.0
// prints as "25000" and 199.5 as "199.5".
func FormatBudget(budget float64) string {
	return strconv.FormatFloat(budget, 'f', -1, 64)
}
