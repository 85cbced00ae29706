// Package content holds the portfolio page text: profile, sections,
// project cards and the resume.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed page.yaml
var pageYAML []byte

// Widget names the live widget a project card opens, if any.
type Widget string

const (
	WidgetNone       Widget = ""
	WidgetCalculator Widget = "calculator"
	WidgetTimer      Widget = "timer"
)

type Profile struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Project struct {
	ID      string   `yaml:"id" json:"id"`
	Section string   `yaml:"section" json:"section"`
	Widget  Widget   `yaml:"widget" json:"widget,omitempty"`
	Title   string   `yaml:"title" json:"title"`
	Text    string   `yaml:"text" json:"text"`
	Details []string `yaml:"details" json:"details,omitempty"`
}

// DetailsHeading is the heading shown above the detail bullets.
func (p Project) DetailsHeading() string {
	if strings.HasPrefix(p.ID, "lab") {
		return "Learning Objectives:"
	}
	return "Key Features:"
}

type Page struct {
	Profile  Profile   `yaml:"profile"`
	Sections []Section `yaml:"sections"`
	Projects []Project `yaml:"projects"`
	Resume   []string  `yaml:"resume"`
}

// Load parses the embedded page.
func Load() (*Page, error) {
	return Parse(pageYAML)
}

// Parse decodes a page document and checks that every project belongs to a
// known section.
func Parse(b []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	known := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		known[s.ID] = true
	}
	for _, pr := range p.Projects {
		if !known[pr.Section] {
			return nil, fmt.Errorf("project %q: unknown section %q", pr.ID, pr.Section)
		}
		switch pr.Widget {
		case WidgetNone, WidgetCalculator, WidgetTimer:
		default:
			return nil, fmt.Errorf("project %q: unknown widget %q", pr.ID, pr.Widget)
		}
	}
	return &p, nil
}

// Project looks up a project card. Unknown ids get a placeholder card.
func (p *Page) Project(id string) Project {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr
		}
	}
	return Project{ID: id, Title: "Details", Text: "No details available."}
}

// InSection returns the project cards of one section in page order.
func (p *Page) InSection(section string) []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Section == section {
			out = append(out, pr)
		}
	}
	return out
}
