package config

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"issue_translator/internal/processing"
	"issue_translator/internal/resolution"

	"gopkg.in/yaml.v3"
)

// Translation is the static rule file: which sheets to export, which columns
// to keep, and how to rewrite users and issue keys.
type Translation struct {
	Sheets      []string          `yaml:"sheets"`
	Columns     []string          `yaml:"columns"`
	UserColumns []string          `yaml:"user_columns"`
	Users       map[string]string `yaml:"users"`
	ProjectKey  ProjectKey        `yaml:"project_key"`
}

type ProjectKey struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// LoadTranslation reads and validates a YAML rule file.
func LoadTranslation(path string) (*Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation config: %w", err)
	}
	return ParseTranslation(data)
}

// ParseTranslation decodes and validates YAML rule data. Unknown keys are rejected.
func ParseTranslation(data []byte) (*Translation, error) {
	var t Translation
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to parse translation config: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid translation config: %w", err)
	}
	return &t, nil
}

func (t *Translation) Validate() error {
	if len(t.Sheets) == 0 {
		return fmt.Errorf("at least one sheet is required")
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("at least one column is required")
	}
	for _, c := range t.UserColumns {
		if !slices.Contains(t.Columns, c) {
			return fmt.Errorf("user column %q is not in columns", c)
		}
	}
	for _, p := range []string{t.ProjectKey.Old, t.ProjectKey.New} {
		if strings.ContainsAny(p, "- \t") {
			return fmt.Errorf("project key prefix %q must not contain '-' or spaces", p)
		}
	}
	if (t.ProjectKey.Old == "") != (t.ProjectKey.New == "") {
		return fmt.Errorf("project_key needs both old and new")
	}
	return nil
}

// Rules builds the per-sheet transform rules.
func (t *Translation) Rules() (processing.Rules, error) {
	users, err := resolution.NewUserTable(t.Users)
	if err != nil {
		return processing.Rules{}, err
	}
	keys, err := resolution.NewKeyRule(t.ProjectKey.Old, t.ProjectKey.New)
	if err != nil {
		return processing.Rules{}, err
	}

	return processing.Rules{
		Columns:     slices.Clone(t.Columns),
		UserColumns: slices.Clone(t.UserColumns),
		Users:       users,
		Keys:        keys,
	}, nil
}
