package content

import "github.com/Faultbox/venture-cube/internal/cube"

// SectionKind tells the UI how to lay out a section.
type SectionKind int

const (
	SectionStats SectionKind = iota
	SectionParagraph
	SectionTags
	SectionTimeline
	SectionLinks
)

// Section is one block of an info panel.
type Section struct {
	Kind     SectionKind
	Heading  string
	Text     string
	Stats    []Stat
	Tags     []string
	Timeline []TimelineItem
	Links    []Link
}

// Panel is a layout-neutral description of an info panel.
type Panel struct {
	Face     cube.FaceID
	Title    string
	Tagline  string
	Color    Color
	Sections []Section
}

// BuildPanel converts the entry on a face into a panel. It returns false when
// the face has no entry.
func (t *Table) BuildPanel(face cube.FaceID) (Panel, bool) {
	e, ok := t.Faces[face]
	if !ok {
		return Panel{}, false
	}
	p := Panel{Face: face, Title: e.Name, Tagline: e.Tagline, Color: e.Color}

	switch e.kind() {
	case KindAbout:
		p.Sections = append(p.Sections,
			Section{Kind: SectionParagraph, Heading: "Background", Text: t.About.Background},
			Section{Kind: SectionTimeline, Heading: "Journey", Timeline: t.About.Timeline},
		)
	case KindContact:
		p.Sections = append(p.Sections, Section{Kind: SectionLinks, Links: t.Contact.Links})
	default:
		if len(e.Stats) > 0 {
			p.Sections = append(p.Sections, Section{Kind: SectionStats, Stats: e.Stats})
		}
		if e.Description != "" {
			p.Sections = append(p.Sections, Section{Kind: SectionParagraph, Text: e.Description})
		}
		if len(e.Tech) > 0 {
			p.Sections = append(p.Sections, Section{Kind: SectionTags, Tags: e.Tech})
		}
	}
	return p, true
}
