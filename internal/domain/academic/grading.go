package academic

import (
	"strings"
)

// GradingSystemID identifies one of the built-in grading scales
type GradingSystemID string

const (
	SystemUS         GradingSystemID = "US"
	SystemECTS       GradingSystemID = "ECTS"
	SystemUK         GradingSystemID = "UK"
	SystemPercentage GradingSystemID = "Percentage"
)

// DefaultSystem is used when nothing else has been selected
const DefaultSystem = SystemUS

// Grade is a single label of a grading scale with its grade-point value
type Grade struct {
	Label  string  `json:"label"`
	Points float64 `json:"points"`
}

// GradingSystem maps grade labels to grade points in [0, 4]
type GradingSystem struct {
	ID     GradingSystemID `json:"id"`
	Name   string          `json:"name"`
	Grades []Grade         `json:"grades"`
}

var catalog = []GradingSystem{
	{
		ID:   SystemUS,
		Name: "US (4.0 Scale)",
		Grades: []Grade{
			{"A+", 4.0}, {"A", 4.0}, {"A-", 3.7},
			{"B+", 3.3}, {"B", 3.0}, {"B-", 2.7},
			{"C+", 2.3}, {"C", 2.0}, {"C-", 1.7},
			{"D+", 1.3}, {"D", 1.0}, {"F", 0.0},
		},
	},
	{
		ID:   SystemECTS,
		Name: "ECTS European",
		Grades: []Grade{
			{"A", 4.0}, {"B", 3.0}, {"C", 2.0}, {"D", 1.0}, {"E", 0.5}, {"F", 0.0},
		},
	},
	{
		ID:   SystemUK,
		Name: "UK Classification",
		Grades: []Grade{
			{"First", 4.0}, {"2:1", 3.3}, {"2:2", 2.7}, {"Third", 2.0}, {"Pass", 1.0}, {"Fail", 0.0},
		},
	},
	{
		ID:   SystemPercentage,
		Name: "Percentage (100 Scale)",
		Grades: []Grade{
			{"90-100", 4.0}, {"80-89", 3.0}, {"70-79", 2.0}, {"60-69", 1.0}, {"0-59", 0.0},
		},
	},
}

// GradingSystems returns the catalog in display order. The result is a copy.
func GradingSystems() []GradingSystem {
	out := make([]GradingSystem, len(catalog))
	for i, gs := range catalog {
		out[i] = gs
		out[i].Grades = append([]Grade(nil), gs.Grades...)
	}
	return out
}

// LookupSystem finds a grading system by identifier. The match is
// case-insensitive so "ects" and "ECTS" both resolve.
func LookupSystem(id string) (GradingSystem, bool) {
	for _, gs := range catalog {
		if strings.EqualFold(string(gs.ID), strings.TrimSpace(id)) {
			return gs, true
		}
	}
	return GradingSystem{}, false
}

// Resolve matches label case-insensitively and returns the canonical label
// spelling together with its grade points.
func (gs GradingSystem) Resolve(label string) (Grade, bool) {
	label = strings.TrimSpace(label)
	for _, g := range gs.Grades {
		if strings.EqualFold(g.Label, label) {
			return g, true
		}
	}
	return Grade{}, false
}

// Labels returns the grade labels in catalog order
func (gs GradingSystem) Labels() []string {
	labels := make([]string, len(gs.Grades))
	for i, g := range gs.Grades {
		labels[i] = g.Label
	}
	return labels
}
