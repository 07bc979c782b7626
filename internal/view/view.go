// Package view turns domain records into the display-ready values the
// dashboard and project pages render.
package view

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"fundraiser/internal/domain"
	"fundraiser/internal/format"
)

const (
	// FeaturedLimit is how many projects the dashboard features.
	FeaturedLimit = 6
	// SupportersLimit caps the recent supporters list.
	SupportersLimit = 10
)

// MetricCard is one animated impact counter.
type MetricCard struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// ImpactMetrics is the dashboard's global impact section.
type ImpactMetrics struct {
	Cards  []MetricCard `json:"cards"`
	Raised string       `json:"raised"`
}

// ProjectCard summarises a project in a list.
type ProjectCard struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	LocationType domain.LocationType  `json:"location_type"`
	Status       domain.ProjectStatus `json:"status"`
	Completed    bool                 `json:"completed"`
	ImageURL     *string              `json:"image_url"`
	Raised       string               `json:"raised"`
	Goal         string               `json:"goal"`
	Progress     float64              `json:"progress"`
	Funded       string               `json:"funded"`
}

// Supporter is one entry of a project's recent supporters.
type Supporter struct {
	Initial string `json:"initial"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Monthly bool   `json:"monthly"`
}

// ProjectDetail is the single-project page.
type ProjectDetail struct {
	ProjectCard
	Started    string      `json:"started"`
	Supporters []Supporter `json:"supporters"`
}

// Dashboard is the landing page.
type Dashboard struct {
	Metrics         ImpactMetrics `json:"metrics"`
	MetricsLoading  bool          `json:"metrics_loading"`
	Featured        []ProjectCard `json:"featured"`
	ProjectsLoading bool          `json:"projects_loading"`
	ProjectsError   string        `json:"projects_error,omitempty"`
}

// NewImpactMetrics formats the counters with a "+" suffix.
func NewImpactMetrics(m domain.GlobalMetrics) ImpactMetrics {
	card := func(label string, v int) MetricCard {
		return MetricCard{Label: label, Value: float64(v), Display: format.Number(float64(v)) + "+"}
	}
	return ImpactMetrics{
		Cards: []MetricCard{
			card("Countries Reached", m.TotalCountries),
			card("Active Projects", m.TotalProjects),
			card("Villages Transformed", m.TotalVillages),
		},
		Raised: format.Currency(m.TotalRaised),
	}
}

// NewProjectCard builds the list summary of p.
func NewProjectCard(p domain.Project) ProjectCard {
	progress := format.Progress(p.RaisedAmount, p.GoalAmount)
	return ProjectCard{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		LocationType: p.LocationType,
		Status:       p.Status,
		Completed:    p.IsCompleted(),
		ImageURL:     p.ImageURL,
		Raised:       format.Currency(p.RaisedAmount),
		Goal:         format.Currency(p.GoalAmount),
		Progress:     progress,
		Funded:       format.Percent(progress) + " funded",
	}
}

// Featured returns cards for the first FeaturedLimit projects.
func Featured(projects []domain.Project) []ProjectCard {
	if len(projects) > FeaturedLimit {
		projects = projects[:FeaturedLimit]
	}
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewProjectCard(p))
	}
	return cards
}

// RecentSupporters orders donations newest first, keeping store order for
// equal timestamps, and keeps at most SupportersLimit of them.
func RecentSupporters(donations []domain.Donation) []Supporter {
	sorted := append([]domain.Donation(nil), donations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > SupportersLimit {
		sorted = sorted[:SupportersLimit]
	}
	out := make([]Supporter, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, Supporter{
			Initial: initial(d.DonorName),
			Name:    d.DonorName,
			Date:    format.DateOf(d.CreatedAt),
			Amount:  format.Currency(d.Amount),
			Monthly: d.IsRecurring,
		})
	}
	return out
}

// NewProjectDetail builds the project page from the project and its donations.
func NewProjectDetail(p domain.Project, donations []domain.Donation) ProjectDetail {
	return ProjectDetail{
		ProjectCard: NewProjectCard(p),
		Started:     "Started " + format.DateOf(p.CreatedAt),
		Supporters:  RecentSupporters(donations),
	}
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
