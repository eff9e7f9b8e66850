// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package composer

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Option is one place to vote for
type Option struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Menu drives both the poll and the random lunch suggestions
type Menu struct {
	Title       string   `yaml:"title"`
	Options     []Option `yaml:"options"`
	Suggestions []string `yaml:"suggestions"`
}

const defaultTitle = "*Where should we eat lunch?*"

func DefaultMenu() Menu {
	return Menu{
		Title: defaultTitle,
		Options: []Option{
			{ID: "texas-longhorn", Title: ":hamburger: Texas Longhorn", Description: "Some nice burgers here!"},
			{ID: "sushi-sun", Title: ":sushi: Sushi Sun", Description: "Here we can enjoy sushi!"},
			{ID: "re-orient", Title: ":seedling: Re-orient", Description: "Meze for us!"},
		},
		Suggestions: []string{"Texas Longhorn", "Sushi!", "I think pizza!"},
	}
}

// LoadMenu reads a menu from YAML. Empty path returns DefaultMenu.
// Options without an id get a generated one; a missing title or suggestion
// list falls back to the defaults.
func LoadMenu(path string) (Menu, error) {
	if path == "" {
		return DefaultMenu(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("failed to read menu: %w", err)
	}

	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Menu{}, fmt.Errorf("failed to parse menu %s: %w", path, err)
	}

	def := DefaultMenu()
	if m.Title == "" {
		m.Title = def.Title
	}
	if len(m.Suggestions) == 0 {
		m.Suggestions = def.Suggestions
	}
	for i := range m.Options {
		if m.Options[i].ID == "" {
			m.Options[i].ID = uuid.NewString()
		}
	}

	if err := m.Validate(); err != nil {
		return Menu{}, fmt.Errorf("menu %s: %w", path, err)
	}
	return m, nil
}
