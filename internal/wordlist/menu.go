package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/taipo/internal/model"
)

// Menu lists the selectable word list combinations.
type Menu struct {
	Items []MenuItem `toml:"list"`
}

// MenuItem is one selectable entry. Its files are loaded and concatenated.
type MenuItem struct {
	Label string   `toml:"label"`
	Files []string `toml:"files"`
}

// LoadMenu reads a TOML menu file.
func LoadMenu(path string) (Menu, error) {
	var menu Menu
	if _, err := toml.DecodeFile(path, &menu); err != nil {
		return Menu{}, fmt.Errorf("failed to decode menu: %w", err)
	}
	for i, item := range menu.Items {
		if strings.TrimSpace(item.Label) == "" {
			return Menu{}, fmt.Errorf("menu entry %d has no label", i+1)
		}
		if len(item.Files) == 0 {
			return Menu{}, fmt.Errorf("menu entry %q has no files", item.Label)
		}
	}
	return menu, nil
}

// Find returns the item with the given label, ignoring case.
func (m Menu) Find(label string) (MenuItem, bool) {
	for _, item := range m.Items {
		if strings.EqualFold(item.Label, label) {
			return item, true
		}
	}
	return MenuItem{}, false
}

// LoadItem loads every file of item. Relative paths resolve against dir.
func LoadItem(dir string, item MenuItem, opts Options) ([]List, error) {
	lists := make([]List, 0, len(item.Files))
	for _, file := range item.Files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		list, err := Load(path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// Targets concatenates the targets of lists in order. Plain lists are
// filtered to typeable text.
func Targets(lists []List) []model.Target {
	var out []model.Target
	for _, list := range lists {
		out = append(out, Filter(list.Targets, FilterForKind(list.Kind))...)
	}
	return out
}

// Resolve loads name as a file path if it exists, otherwise as a menu label.
func Resolve(name, menuPath, dir string, opts Options) ([]List, error) {
	if _, err := os.Stat(name); err == nil {
		list, err := Load(name, opts)
		if err != nil {
			return nil, err
		}
		return []List{list}, nil
	}
	menu, err := LoadMenu(menuPath)
	if err != nil {
		return nil, err
	}
	item, ok := menu.Find(name)
	if !ok {
		return nil, fmt.Errorf("word list %q not found in %s", name, menuPath)
	}
	return LoadItem(dir, item, opts)
}
