package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryTree, error)
}

type ItineraryService struct {
	generator utils.GenerationClientInterface
}

func NewItineraryService(generator utils.GenerationClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		generator: generator,
	}
}

// CreateItinerary runs the full pipeline: validate, build the prompt, call
// the generation API once, parse the reply. No retry and no caching; the
// model is not repeatable and retry policy belongs to the caller.
func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryTree, error) {
	if err := ValidateTripRequest(req); err != nil {
		return nil, err
	}

	prompt := BuildItineraryPrompt(req)

	startTime := time.Now()
	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Printf("Itinerary generation for %q took %s", req.Destination, time.Since(startTime))

	tree := ParseItinerary(raw)
	tree.Title = fmt.Sprintf("%d-Day Itinerary for %s", req.Days, req.Destination)
	tree.DateRange = req.StartDate + " - " + req.EndDate
	tree.BudgetLabel = "$" + FormatBudget(req.Budget)
	tree.TravelStyle = req.Requirement
	tree.WithChildren = req.Child

	return &tree, nil
}

// ValidateTripRequest checks the request invariants in a fixed order:
// required fields first, then date ordering, then day count, then budget
// sign. The first violation wins so error reporting is deterministic.
func ValidateTripRequest(req request_models.TripRequest) error {
	required := []struct {
		field string
		empty bool
	}{
		{"destination", req.Destination == ""},
		{"budget", req.Budget == 0},
		{"days", req.Days == 0},
		{"startDate", req.StartDate == ""},
		{"endDate", req.EndDate == ""},
		{"transport", req.Transport == ""},
		{"requirement", req.Requirement == ""},
	}
	for _, f := range required {
		if f.empty {
			return utils.NewFieldError(f.field, fmt.Sprintf("Missing required field: %s", f.field))
		}
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return utils.NewFieldError("startDate", "Invalid start date format, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return utils.NewFieldError("endDate", "Invalid end date format, expected YYYY-MM-DD")
	}
	if start.After(end) {
		return utils.NewFieldError("startDate", "Start date cannot be after end date")
	}

	if req.Days < 1 {
		return utils.NewFieldError("days", "Number of days must be positive")
	}

	if req.Budget < 0 {
		return utils.NewFieldError("budget", "Budget must be positive")
	}

	return nil
}
