package mission

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"war/game"
)

const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale      string            `yaml:"locale"`
	Fixed       []string          `yaml:"fixed"`
	Templates   templates         `yaml:"templates"`
	Comparators map[string]string `yaml:"comparators"`
}

type templates struct {
	Eliminate string `yaml:"eliminate"`
	Control   string `yaml:"control"`
	Reduce    string `yaml:"reduce"`
	Streak    string `yaml:"streak"`
	EachColor string `yaml:"each_color"`
}

var comparatorKeys = map[Comparator]string{
	AtLeast:  "at_least",
	AtMost:   "at_most",
	Exactly:  "exactly",
	MoreThan: "more_than",
	LessThan: "less_than",
}

// Goal is a Control mission instantiated by Generate.
type Goal struct {
	Count      int
	Comparator Comparator
	Threshold  int
}

// Defaults used when generating missions from templates.
var (
	DefaultGoals = []Goal{
		{Count: 2, Comparator: MoreThan, Threshold: 5},
		{Count: 3, Comparator: AtLeast, Threshold: 3},
		{Count: 2, Comparator: Exactly, Threshold: 5},
	}
	DefaultReduceThreshold = 3
	DefaultStreak          = 3
)

// Catalog holds the mission sentences of one locale.
type Catalog struct {
	file catalogFile
}

// LoadCatalog returns the embedded catalog that best matches locale,
// falling back to BaseLocale.
func LoadCatalog(locale string) (*Catalog, error) {
	return LoadCatalogFS(embeddedLocales, locale)
}

// LoadCatalogFS loads locales/*.yaml from fsys and picks the best match for locale.
func LoadCatalogFS(fsys fs.FS, locale string) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob mission catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no mission catalogs found")
	}
	sort.Strings(paths)

	files := make([]catalogFile, 0, len(paths))
	tags := make([]language.Tag, 0, len(paths))
	base := -1
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := file.validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", path, file.Locale, err)
		}
		if file.Locale == BaseLocale {
			base = len(files)
		}
		files = append(files, file)
		tags = append(tags, tag)
	}
	if base < 0 {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The matcher falls back to its first tag, so the base locale goes first.
	tags[0], tags[base] = tags[base], tags[0]
	files[0], files[base] = files[base], files[0]

	_, index, _ := language.NewMatcher(tags).Match(language.Make(strings.TrimSpace(locale)))
	return &Catalog{file: files[index]}, nil
}

func (f catalogFile) validate() error {
	if strings.TrimSpace(f.Locale) == "" {
		return fmt.Errorf("locale is required")
	}
	if f.Templates.Eliminate == "" || f.Templates.Control == "" || f.Templates.Reduce == "" || f.Templates.Streak == "" || f.Templates.EachColor == "" {
		return fmt.Errorf("all mission templates are required")
	}
	for cmp, key := range comparatorKeys {
		if f.Comparators[key] == "" {
			return fmt.Errorf("comparator %q (%s) is required", key, cmp)
		}
	}
	return nil
}

func (c *Catalog) Locale() string {
	return c.file.Locale
}

// Fixed returns the hard-coded mission sentences.
func (c *Catalog) Fixed() []string {
	out := make([]string, len(c.file.Fixed))
	copy(out, c.file.Fixed)
	return out
}

// Generate instantiates the templates for the colors on the board: one
// elimination per enemy color, then control, reduce and streak goals, and
// holding every starting color when the board has more than one.
func (c *Catalog) Generate(colors []string, playerColor string) []string {
	var missions []string
	for _, color := range colors {
		if sameColor(color, playerColor) {
			continue
		}
		missions = append(missions, c.Eliminate(color))
	}
	for _, goal := range DefaultGoals {
		missions = append(missions, c.Control(goal))
	}
	missions = append(missions, c.Reduce(DefaultReduceThreshold), c.Streak(DefaultStreak))
	if len(colors) > 1 {
		missions = append(missions, c.EachColor())
	}
	return missions
}

func (c *Catalog) Eliminate(color string) string {
	return fill(c.file.Templates.Eliminate, "{color}", color)
}

func (c *Catalog) Control(goal Goal) string {
	return fill(c.file.Templates.Control,
		"{count}", strconv.Itoa(goal.Count),
		"{comparator}", c.file.Comparators[comparatorKeys[goal.Comparator]],
		"{threshold}", strconv.Itoa(goal.Threshold))
}

func (c *Catalog) Reduce(threshold int) string {
	return fill(c.file.Templates.Reduce, "{threshold}", strconv.Itoa(threshold))
}

func (c *Catalog) Streak(count int) string {
	return fill(c.file.Templates.Streak, "{count}", strconv.Itoa(count))
}

func (c *Catalog) EachColor() string {
	return Truncate(c.file.Templates.EachColor)
}

func fill(template string, pairs ...string) string {
	return Truncate(strings.NewReplacer(pairs...).Replace(template))
}

// Missions returns the fixed list when the board is empty, else the generated one.
func (c *Catalog) Missions(m *game.Map, playerColor string) []string {
	if m == nil || m.Len() == 0 {
		return c.Fixed()
	}
	return c.Generate(m.Colors(), playerColor)
}
