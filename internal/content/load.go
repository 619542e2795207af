package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/venture-cube/internal/cube"
)

// file is the on-disk layout. Faces are keyed by name.
type file struct {
	Faces   map[string]Entry `yaml:"faces"`
	About   *About           `yaml:"about,omitempty"`
	Contact *Contact         `yaml:"contact,omitempty"`
}

// LoadFile reads a YAML content file over the built-in table. Each face
// present in the file replaces the built-in entry for that face; about and
// contact sections replace theirs when present.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML content over the built-in table and validates it.
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	t := Default()
	for name, e := range f.Faces {
		face, err := cube.ParseFace(name)
		if err != nil {
			return nil, err
		}
		t.Faces[face] = e
	}
	if f.About != nil {
		t.About = *f.About
	}
	if f.Contact != nil {
		t.Contact = *f.Contact
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Marshal encodes the table in the file layout.
func (t *Table) Marshal() ([]byte, error) {
	f := file{
		Faces:   make(map[string]Entry, len(t.Faces)),
		About:   &t.About,
		Contact: &t.Contact,
	}
	for face, e := range t.Faces {
		f.Faces[face.String()] = e
	}
	return yaml.Marshal(&f)
}

// Validate requires an entry with a name and a valid color on every face,
// and a known kind.
func (t *Table) Validate() error {
	for f := cube.Front; f < cube.Count; f++ {
		e, ok := t.Faces[f]
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingFace, f)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: %v has no name", ErrMissingFace, f)
		}
		if _, _, _, err := e.Color.RGB(); err != nil {
			return fmt.Errorf("face %v: %w", f, err)
		}
		switch e.kind() {
		case KindVenture, KindAbout, KindContact:
		default:
			return fmt.Errorf("face %v: unknown kind %q", f, e.Kind)
		}
	}
	return nil
}
