package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// ---------------------------------------------------------------------------
// Keymap (TOML-based)
// ---------------------------------------------------------------------------

// keymapFile is the on-disk TOML structure; each entry lists the keys bound
// to one action.
type keymapFile struct {
	Sheet   []string `toml:"sheet"`
	Cover   []string `toml:"cover"`
	Drawer  []string `toml:"drawer"`
	Toast   []string `toml:"toast"`
	Note    []string `toml:"note"`
	Lock    []string `toml:"lock"`
	Dismiss []string `toml:"dismiss"`
	Quit    []string `toml:"quit"`
}

const defaultKeymapTOML = `# slide-demo keybindings
# Each action takes a list of bubbletea key names.

sheet = ["s"]
cover = ["c"]
drawer = ["d"]
toast = ["n"]
note = ["e"]
lock = ["L"]
dismiss = ["esc"]
quit = ["q", "ctrl+c"]
`

type keymap struct {
	Sheet   key.Binding
	Cover   key.Binding
	Drawer  key.Binding
	Toast   key.Binding
	Note    key.Binding
	Lock    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// loadKeymap reads ~/.config/slide/keymap.toml, creating it with defaults on
// first run.
func loadKeymap() (keymap, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return keymap{}, fmt.Errorf("user config dir: %w", err)
	}
	path := filepath.Join(dir, "slide", "keymap.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return keymap{}, fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultKeymapTOML), 0o644); wErr != nil {
			return keymap{}, fmt.Errorf("write default keymap: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return keymap{}, fmt.Errorf("read keymap: %w", err)
	}
	return parseKeymap(string(data))
}

func parseKeymap(data string) (keymap, error) {
	var file keymapFile
	if _, err := toml.Decode(defaultKeymapTOML, &file); err != nil {
		return keymap{}, fmt.Errorf("default keymap: %w", err)
	}
	if _, err := toml.Decode(data, &file); err != nil {
		return keymap{}, fmt.Errorf("decode keymap: %w", err)
	}

	bind := func(keys []string, help string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), help),
		)
	}
	return keymap{
		Sheet:   bind(file.Sheet, "sheet"),
		Cover:   bind(file.Cover, "cover"),
		Drawer:  bind(file.Drawer, "drawer"),
		Toast:   bind(file.Toast, "toast"),
		Note:    bind(file.Note, "note"),
		Lock:    bind(file.Lock, "lock"),
		Dismiss: bind(file.Dismiss, "dismiss"),
		Quit:    bind(file.Quit, "quit"),
	}, nil
}

// footer renders the one-line key help in scope order.
func (k keymap) footer() string {
	entries := []key.Binding{k.Sheet, k.Cover, k.Drawer, k.Toast, k.Note, k.Lock, k.Quit}
	parts := make([]string, 0, len(entries))
	for _, b := range entries {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ·  ")
}
