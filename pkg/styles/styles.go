// Package styles loads user style sheets that extend the markup style
// table. A sheet maps style names to one directive name or a list of
// them, in TOML or YAML.
package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tinge/pkg/errors"
	"github.com/arthur-debert/tinge/pkg/logging"
	"github.com/arthur-debert/tinge/pkg/markup"
)

var log = logging.GetLogger("styles")

// Default sheet locations relative to the XDG config dir, tried in
// order.
var defaultSheets = []string{
	filepath.Join("tinge", "styles.toml"),
	filepath.Join("tinge", "styles.yaml"),
}

// Load reads a style sheet from path. The format is chosen by file
// extension; anything that is not .yaml/.yml parses as TOML.
func Load(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSheetRead, "reading style sheet %s", path)
	}

	raw := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSheetParse, "parsing style sheet %s", path)
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSheetParse, "parsing style sheet %s", path)
		}
	}

	sheet := make(map[string][]string, len(raw))
	for name, value := range raw {
		directives, err := coerceDirectives(value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSheetInvalid, "style %q in %s", name, path)
		}
		sheet[name] = directives
	}
	return sheet, nil
}

// coerceDirectives accepts a scalar directive name or a list of them.
// A scalar style maps to a singleton list.
func coerceDirectives(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		directives := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("directive %v is not a string", item)
			}
			directives = append(directives, s)
		}
		return directives, nil
	default:
		return nil, fmt.Errorf("value %v is neither a name nor a list of names", v)
	}
}

// LoadDefault loads the first style sheet found in the default
// locations. A missing sheet is not an error: it returns an empty map.
func LoadDefault() (map[string][]string, error) {
	for _, rel := range defaultSheets {
		path, err := xdg.SearchConfigFile(rel)
		if err != nil {
			continue
		}
		log.Debug().Str("path", path).Msg("Loading style sheet")
		return Load(path)
	}
	return map[string][]string{}, nil
}

// Apply installs a sheet into the markup style table.
func Apply(sheet map[string][]string) {
	for name, directives := range sheet {
		markup.SetStyle(name, directives...)
	}
}
