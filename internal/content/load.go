package content

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Load decodes the YAML file at path over base. Fields missing from the file
// keep their base values; lists present in the file replace the base lists.
func Load(path string, base Portfolio) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, errors.Wrapf(err, "read content file %s", path)
	}

	p, err := Decode(bytes.NewReader(data), base)
	if err != nil {
		return Portfolio{}, errors.Wrapf(err, "content file %s", path)
	}
	return p, nil
}

// Decode reads YAML from r over base. Unknown keys are rejected.
func Decode(r io.Reader, base Portfolio) (Portfolio, error) {
	p := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Portfolio{}, errors.Wrap(err, "decode yaml")
	}
	return p, nil
}

// Validate reports content authoring mistakes: titles and names key their
// cards, so they must be unique within their collection, and so must the
// entries of each skill list and tech list.
func Validate(p Portfolio) error {
	if dups := lo.FindDuplicatesBy(p.Skills, func(g SkillGroup) string { return g.Title }); len(dups) > 0 {
		return errors.Errorf("duplicate skill group title %q", dups[0].Title)
	}
	for _, g := range p.Skills {
		if dups := lo.FindDuplicates(g.Items); len(dups) > 0 {
			return errors.Errorf("skill group %q: duplicate item %q", g.Title, dups[0])
		}
	}

	if dups := lo.FindDuplicatesBy(p.Projects, func(pr Project) string { return pr.Name }); len(dups) > 0 {
		return errors.Errorf("duplicate project name %q", dups[0].Name)
	}
	for _, pr := range p.Projects {
		if dups := lo.FindDuplicates(pr.Tech); len(dups) > 0 {
			return errors.Errorf("project %q: duplicate tech tag %q", pr.Name, dups[0])
		}
	}
	return nil
}
