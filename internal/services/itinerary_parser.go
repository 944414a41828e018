package services

import (
	"strings"

	"wayfare/internal/models/response_models"
)

// parseMode tracks which part of the reply the scanner is currently inside.
type parseMode int

const (
	modeNone parseMode = iota
	modeDays
	modeCostBreakdown
	modeSpecialConsiderations
)

const (
	dayHeaderPrefix     = "### Day"
	sectionHeaderPrefix = "####"
	costHeaderPrefix    = "### Overall Cost Breakdown"
	specialHeaderPrefix = "### Special Considerations"
	bulletPrefix        = "- "
	boldBulletPrefix    = "- **"
	detailLinePrefix    = "  - **"
	boldDelimiter       = "**: "
)

// ParseItinerary scans the model reply line by line and assembles the
// day/section/activity tree plus the cost breakdown and special
// considerations. It never fails: lines that match no rule, or match a rule
// without the context it needs (a detail before any activity, a split with no
// delimiter), are dropped silently. The format is a prompt-engineering
// convention, not a contract, so best effort is the whole contract here.
func ParseItinerary(text string) response_models.ItineraryTree {
	tree := response_models.ItineraryTree{
		RawText:               text,
		Days:                  []response_models.DayPlan{},
		CostBreakdown:         []response_models.CostItem{},
		SpecialConsiderations: []string{},
	}

	mode := modeNone
	currentSection := ""
	costIndex := make(map[string]int)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, dayHeaderPrefix):
			tree.Days = append(tree.Days, response_models.DayPlan{
				Label:    strings.TrimSpace(strings.TrimPrefix(trimmed, "###")),
				Sections: map[string][]response_models.Activity{},
			})
			currentSection = ""
			mode = modeDays

		case strings.HasPrefix(trimmed, sectionHeaderPrefix):
			// A section header resumes day parsing, even after the cost
			// breakdown or special considerations blocks.
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, sectionHeaderPrefix)))
			mode = modeDays

		case strings.HasPrefix(trimmed, costHeaderPrefix):
			mode = modeCostBreakdown

		case strings.HasPrefix(trimmed, specialHeaderPrefix):
			mode = modeSpecialConsiderations

		case mode == modeCostBreakdown && strings.HasPrefix(trimmed, boldBulletPrefix):
			name, value, ok := strings.Cut(strings.TrimPrefix(trimmed, boldBulletPrefix), boldDelimiter)
			if !ok {
				continue
			}
			if idx, seen := costIndex[name]; seen {
				tree.CostBreakdown[idx].Amount = value
				continue
			}
			costIndex[name] = len(tree.CostBreakdown)
			tree.CostBreakdown = append(tree.CostBreakdown, response_models.CostItem{Category: name, Amount: value})

		case mode == modeSpecialConsiderations && strings.HasPrefix(trimmed, bulletPrefix):
			tree.SpecialConsiderations = append(tree.SpecialConsiderations, strings.TrimPrefix(trimmed, bulletPrefix))

		case strings.HasPrefix(line, detailLinePrefix):
			// Attribute line: attach to the most recently appended activity
			// in the current section. Orphans are dropped.
			if mode != modeDays || len(tree.Days) == 0 || !addressableSection(currentSection) {
				continue
			}
			day := &tree.Days[len(tree.Days)-1]
			activities := day.Sections[currentSection]
			if len(activities) == 0 {
				continue
			}
			name, value, ok := strings.Cut(strings.TrimPrefix(trimmed, boldBulletPrefix), boldDelimiter)
			if !ok {
				continue
			}
			last := &activities[len(activities)-1]
			last.Details = append(last.Details, response_models.ActivityDetail{Name: name, Value: value})

		case strings.HasPrefix(trimmed, boldBulletPrefix):
			if mode != modeDays || len(tree.Days) == 0 || !addressableSection(currentSection) {
				continue
			}
			timeLabel, description, ok := strings.Cut(strings.TrimPrefix(trimmed, boldBulletPrefix), boldDelimiter)
			if !ok {
				continue
			}
			day := &tree.Days[len(tree.Days)-1]
			day.Sections[currentSection] = append(day.Sections[currentSection], response_models.Activity{
				Time:        timeLabel,
				Description: description,
				Details:     []response_models.ActivityDetail{},
			})
		}
	}

	return tree
}

func addressableSection(name string) bool {
	switch name {
	case response_models.SectionMorning, response_models.SectionAfternoon, response_models.SectionEvening:
		return true
	}
	return false
}
