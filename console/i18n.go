package console

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type messageFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var (
	registerOnce sync.Once
	registerErr  error
	// base locale first: the matcher falls back to it
	supported []language.Tag
)

// register loads every embedded locale into the x/text message catalog.
func register() error {
	registerOnce.Do(func() {
		supported, registerErr = registerFS(embeddedLocales)
	})
	return registerErr
}

func registerFS(fsys fs.FS) ([]language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob console catalogs: %w", err)
	}
	sort.Strings(paths)

	var tags []language.Tag
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file messageFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", path, file.Locale, err)
		}
		for key, value := range file.Messages {
			if err := message.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", path, key, err)
			}
		}
		if file.Locale == BaseLocale {
			tags = append([]language.Tag{tag}, tags...)
		} else {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 || tags[0].String() != BaseLocale {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return tags, nil
}

// NewPrinter returns a printer for the supported locale closest to locale.
func NewPrinter(locale string) (*message.Printer, error) {
	if err := register(); err != nil {
		return nil, err
	}
	_, index, _ := language.NewMatcher(supported).Match(language.Make(strings.TrimSpace(locale)))
	return message.NewPrinter(supported[index]), nil
}
