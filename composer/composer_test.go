// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package composer

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/blockkit"
)

// decodedPoll round-trips the poll through JSON the way Slack would deliver
// it back in a callback
func decodedPoll(t *testing.T, m Menu) []slack.Block {
	t.Helper()

	poll, err := BuildPoll(m)
	if err != nil {
		t.Fatalf("BuildPoll failed: %v", err)
	}
	raw, err := json.Marshal(poll)
	if err != nil {
		t.Fatal(err)
	}
	var blocks slack.Blocks
	if err := json.Unmarshal(raw, &blocks); err != nil {
		t.Fatalf("Poll does not parse as blocks: %v", err)
	}
	return blocks.BlockSet
}

func TestBuildPoll(t *testing.T) {
	m := DefaultMenu()
	blocks := decodedPoll(t, m)

	if want := 2 + 2*len(m.Options); len(blocks) != want {
		t.Fatalf("Expected %d blocks, got %d", want, len(blocks))
	}
	if blocks[0].BlockType() != slack.MBTSection || blocks[1].BlockType() != slack.MBTDivider {
		t.Errorf("Expected title section and divider, got %s, %s", blocks[0].BlockType(), blocks[1].BlockType())
	}

	for i, opt := range m.Options {
		section, ok := blocks[2+2*i].(*slack.SectionBlock)
		if !ok || section.BlockID != opt.ID {
			t.Fatalf("Option %s: unexpected section %+v", opt.ID, blocks[2+2*i])
		}
		if section.Accessory == nil || section.Accessory.ButtonElement == nil {
			t.Errorf("Option %s: missing vote button", opt.ID)
		}

		idx, ok := blockkit.Next(blocks, opt.ID)
		if !ok || idx != 3+2*i {
			t.Fatalf("Option %s: context block not found after section", opt.ID)
		}
		ctx, ok := blocks[idx].(*slack.ContextBlock)
		if !ok {
			t.Fatalf("Option %s: expected context block, got %T", opt.ID, blocks[idx])
		}
		elements := ctx.ContextElements.Elements
		if len(elements) != 1 {
			t.Fatalf("Option %s: expected single element, got %+v", opt.ID, elements)
		}
		if label, ok := elements[0].(*slack.TextBlockObject); !ok || label.Text != NoVotesText {
			t.Errorf("Option %s: expected 'No votes', got %+v", opt.ID, elements[0])
		}
	}
}

func TestBuildPoll_SectionText(t *testing.T) {
	m := Menu{
		Title: "*Lunch?*",
		Options: []Option{
			{ID: "a", Title: "Tacos", Description: "Spicy"},
			{ID: "b", Title: "Soup"},
		},
	}
	blocks := decodedPoll(t, m)

	textOf := func(b slack.Block) string {
		section, ok := b.(*slack.SectionBlock)
		if !ok || section.Text == nil {
			t.Fatalf("Expected section with text, got %+v", b)
		}
		return section.Text.Text
	}

	if got := textOf(blocks[0]); got != "*Lunch?*" {
		t.Errorf("Unexpected title %q", got)
	}
	if got := textOf(blocks[2]); got != "Tacos\nSpicy" {
		t.Errorf("Unexpected option text %q", got)
	}
	if got := textOf(blocks[4]); got != "Soup" {
		t.Errorf("Option without description should be its title, got %q", got)
	}
}

func TestBuildPoll_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		menu    Menu
		wantErr error
	}{
		{"no options", Menu{Title: "x"}, ErrNoOptions},
		{"empty id", Menu{Options: []Option{{Title: "Tacos"}}}, ErrEmptyOptionID},
		{"empty title", Menu{Options: []Option{{ID: "a"}}}, ErrEmptyTitle},
		{"duplicate id", Menu{Options: []Option{{ID: "a", Title: "x"}, {ID: "a", Title: "y"}}}, ErrDuplicateOption},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildPoll(tc.menu); !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func writeMenu(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMenu(t *testing.T) {
	path := writeMenu(t, `
title: "*Friday lunch*"
options:
  - id: tacos
    title: ":taco: Taco Truck"
    description: Street tacos
  - title: ":ramen: Noodle Bar"
suggestions:
  - Tacos again
`)

	m, err := LoadMenu(path)
	if err != nil {
		t.Fatal(err)
	}

	if m.Title != "*Friday lunch*" {
		t.Errorf("Unexpected title %q", m.Title)
	}
	if len(m.Options) != 2 || m.Options[0].ID != "tacos" {
		t.Fatalf("Unexpected options %+v", m.Options)
	}
	if _, err := uuid.Parse(m.Options[1].ID); err != nil {
		t.Errorf("Expected generated UUID for option without id, got %q", m.Options[1].ID)
	}
	if len(m.Suggestions) != 1 || m.Suggestions[0] != "Tacos again" {
		t.Errorf("Unexpected suggestions %v", m.Suggestions)
	}
}

func TestLoadMenu_Defaults(t *testing.T) {
	m, err := LoadMenu("")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Options) != 3 {
		t.Errorf("Expected built-in menu, got %d options", len(m.Options))
	}

	m, err = LoadMenu(writeMenu(t, "options:\n  - id: a\n    title: A\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != defaultTitle {
		t.Errorf("Expected default title, got %q", m.Title)
	}
	if len(m.Suggestions) == 0 {
		t.Error("Expected default suggestions")
	}
}

func TestLoadMenu_Errors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"bad yaml", writeMenu(t, "options: [")},
		{"no options", writeMenu(t, "title: x\n")},
		{"duplicate ids", writeMenu(t, "options:\n  - {id: a, title: A}\n  - {id: a, title: B}\n")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMenu(tc.path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
