// Package content holds the data shown on the cube: one entry per face plus
// the about and contact sections.
package content

import (
	"errors"

	"github.com/Faultbox/venture-cube/internal/cube"
)

var (
	// ErrMissingFace is returned when a face has no entry.
	ErrMissingFace = errors.New("missing face entry")
	// ErrInvalidColor is returned for colors not in "#rrggbb" form.
	ErrInvalidColor = errors.New("invalid color")
)

// Kind selects the panel layout for an entry.
type Kind string

const (
	KindVenture Kind = "venture"
	KindAbout   Kind = "about"
	KindContact Kind = "contact"
)

// Stat is a headline figure on a venture panel.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Entry is the content payload of one face.
type Entry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Color       Color    `yaml:"color"`
	Kind        Kind     `yaml:"kind,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Stats       []Stat   `yaml:"stats,omitempty"`
	Tech        []string `yaml:"tech,omitempty"`
}

// TimelineItem is one step on the about page.
type TimelineItem struct {
	When   string `yaml:"when"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// About is shown by the about entry.
type About struct {
	Background string         `yaml:"background"`
	Timeline   []TimelineItem `yaml:"timeline"`
}

// Link is a contact channel.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Contact is shown by the contact entry.
type Contact struct {
	Links []Link `yaml:"links"`
}

// Table maps faces to entries.
type Table struct {
	Faces   map[cube.FaceID]Entry
	About   About
	Contact Contact
}

// Entry returns the entry for a face.
func (t *Table) Entry(face cube.FaceID) (Entry, bool) {
	e, ok := t.Faces[face]
	return e, ok
}

// FaceByKind returns the first face, in FaceID order, whose entry has kind k.
func (t *Table) FaceByKind(k Kind) (cube.FaceID, bool) {
	for f := cube.Front; f < cube.Count; f++ {
		if e, ok := t.Faces[f]; ok && e.kind() == k {
			return f, true
		}
	}
	return 0, false
}

func (e Entry) kind() Kind {
	if e.Kind == "" {
		return KindVenture
	}
	return e.Kind
}

// Default returns the built-in table.
func Default() *Table {
	return &Table{
		Faces: map[cube.FaceID]Entry{
			cube.Front: {
				ID:          "aerointel",
				Name:        "AEROINTEL",
				Tagline:     "GPS-Denied Drone Navigation",
				Color:       Hex(0xf97316),
				Kind:        KindVenture,
				Description: "Defense-grade navigation for autonomous drones operating in contested environments. When GPS fails, AEROINTEL keeps flying.",
				Stats:       []Stat{{"€105K", "MoD Contract"}, {"2024", "Founded"}},
				Tech:        []string{"Computer Vision", "Sensor Fusion", "SLAM", "Edge AI"},
			},
			cube.Back: {
				ID:          "dutchdrones",
				Name:        "Dutch Drones",
				Tagline:     "Autonomous Bridge Maintenance",
				Color:       Hex(0x22c55e),
				Kind:        KindVenture,
				Description: "Robotic systems that inspect and clean the Netherlands' 24,000+ bridges. Safer, faster, and more thorough than scaffolding crews.",
				Stats:       []Stat{{"RWS", "Pilot Target"}, {"24K+", "Dutch Bridges"}},
				Tech:        []string{"Robotics", "Drones", "Computer Vision", "Automation"},
			},
			cube.Right: {
				ID:          "datadividend",
				Name:        "DataDividend",
				Tagline:     "AI Training Data Marketplace",
				Color:       Hex(0x8b5cf6),
				Kind:        KindVenture,
				Description: "A marketplace where individuals sell their data directly to AI companies. Fair compensation for the fuel that powers machine learning.",
				Stats:       []Stat{{"B2B", "Model"}, {"Mr Joseph", "Also Known As"}},
				Tech:        []string{"Data Markets", "Privacy", "AI/ML", "Blockchain"},
			},
			cube.Left: {
				ID:          "textme",
				Name:        "text.me",
				Tagline:     "WhatsApp-Native AI Coaching",
				Color:       Hex(0x06b6d4),
				Kind:        KindVenture,
				Description: "AI coaching bots that live where you already are — WhatsApp. Personal development, accountability, and guidance without another app.",
				Stats:       []Stat{{"B2C", "Model"}, {"WhatsApp", "Platform"}},
				Tech:        []string{"LLMs", "WhatsApp API", "Conversational AI", "Coaching"},
			},
			cube.Top: {
				ID:      "about",
				Name:    "About",
				Tagline: "Aerospace Engineer → Founder",
				Color:   Hex(0xec4899),
				Kind:    KindAbout,
			},
			cube.Bottom: {
				ID:      "contact",
				Name:    "Contact",
				Tagline: "Let's Build Something",
				Color:   Hex(0xeab308),
				Kind:    KindContact,
			},
		},
		About: About{
			Background: "Aerospace engineer turned multi-founder. Building autonomous systems, AI products, and defense technology across four active ventures.",
			Timeline: []TimelineItem{
				{When: "2024 - Present", Title: "Founder × 4", Detail: "AEROINTEL, Dutch Drones, DataDividend, text.me"},
				{When: "2020 - Present", Title: "System Engineer", Detail: "Capgemini Engineering"},
				{When: "Education", Title: "Aerospace Engineering", Detail: "TU Delft"},
			},
		},
		Contact: Contact{
			Links: []Link{
				{Label: "jasper@lortije.com", URL: "mailto:jasper@lortije.com"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/jasperlortije"},
				{Label: "Twitter", URL: "https://twitter.com/jasperlortije"},
				{Label: "GitHub", URL: "https://github.com/jasperlortije"},
			},
		},
	}
}
