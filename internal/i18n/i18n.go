// Package i18n provides the localized messages shown to users.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// BaseLocale is the locale every key must be defined in.
var BaseLocale = language.English

var supportedTags = []language.Tag{
	language.English,
	language.Korean,
}

var tagMatcher = language.NewMatcher(supportedTags)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the messages of every supported locale.
type Catalog struct {
	builder *catalog.Builder
	keys    map[language.Tag][]string
}

var loadEmbedded = sync.OnceValues(func() (*Catalog, error) {
	return LoadFromFS(localeFS)
})

// LoadFromFS reads locales/*.yaml from fsys into a Catalog.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(BaseLocale)),
		keys:    make(map[language.Tag][]string),
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w", path, file.Locale, err)
		}
		for key, value := range file.Messages {
			if strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("%s: blank message key", path)
			}
			if err := c.builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("%s: set %q: %w", path, key, err)
			}
			c.keys[tag] = append(c.keys[tag], key)
		}
		slices.Sort(c.keys[tag])
	}

	if _, ok := c.keys[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	return c, nil
}

// Keys returns the sorted message keys defined for tag.
func (c *Catalog) Keys(tag language.Tag) []string {
	return slices.Clone(c.keys[tag])
}

// Supported returns the supported language tags.
func Supported() []language.Tag {
	return slices.Clone(supportedTags)
}

// Match returns the supported tag closest to locale. Unparsable or empty
// input yields the base locale.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return BaseLocale
	}
	// POSIX locales look like ko_KR.UTF-8.
	locale, _, _ = strings.Cut(locale, ".")
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return supportedTags[index]
}

// Localizer formats messages for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the supported locale closest to locale.
func New(locale string) (*Localizer, error) {
	c, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	return c.Localizer(Match(locale)), nil
}

// Localizer returns a Localizer bound to tag.
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

// Tag returns the locale in use.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Text formats the message registered under key. Unknown keys are
// formatted as-is.
func (l *Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
