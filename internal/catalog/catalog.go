package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ytget/quranpak-player/internal/model"
)

// DefaultFilename is the catalog read when configuration does not name one.
const DefaultFilename = "surahs.json"

var (
	// ErrNotFound indicates that the catalog file does not exist.
	ErrNotFound = errors.New("catalog file not found")
	// ErrMalformed indicates that the catalog file could not be decoded.
	ErrMalformed = errors.New("catalog file is malformed")
	// ErrInvalid indicates that a decoded record breaks the catalog rules.
	ErrInvalid = errors.New("catalog record is invalid")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Catalog is the ordered, read-only chapter list.
type Catalog struct {
	path     string
	chapters []model.Chapter
}

// Empty returns a catalog with no chapters.
func Empty() *Catalog {
	return &Catalog{}
}

// New builds a catalog from already validated chapters.
func New(chapters []model.Chapter) *Catalog {
	copied := make([]model.Chapter, len(chapters))
	copy(copied, chapters)
	return &Catalog{chapters: copied}
}

// Load reads and validates the catalog at path. JSON is expected unless the
// extension is .yaml or .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	chapters, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}

	return &Catalog{path: path, chapters: chapters}, nil
}

// Parse decodes and validates catalog data.
func Parse(data []byte, format Format) ([]model.Chapter, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var (
		chapters []model.Chapter
		err      error
	)

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &chapters)
	default:
		err = json.Unmarshal(data, &chapters)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err = validate(chapters); err != nil {
		return nil, err
	}

	return chapters, nil
}

// Path returns the file the catalog was loaded from, if any.
func (c *Catalog) Path() string {
	return c.path
}

// Len returns the number of chapters.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.chapters)
}

// At returns the chapter at index i in file order.
func (c *Catalog) At(i int) (model.Chapter, bool) {
	if c == nil || i < 0 || i >= len(c.chapters) {
		return model.Chapter{}, false
	}
	return c.chapters[i], true
}

// Chapters returns a copy of all chapters in file order.
func (c *Catalog) Chapters() []model.Chapter {
	if c == nil {
		return nil
	}
	out := make([]model.Chapter, len(c.chapters))
	copy(out, c.chapters)
	return out
}

// Labels returns one selector entry per chapter, formatted "<id>: <name>".
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, c.Len())
	for _, ch := range c.Chapters() {
		labels = append(labels, ch.Label())
	}
	return labels
}

// Format selects the decoder used by Parse.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func validate(chapters []model.Chapter) error {
	v := newValidator()
	seen := make(map[int]int, len(chapters))

	for i, ch := range chapters {
		if err := v.Struct(ch); err != nil {
			return fmt.Errorf("%w: record %d: %s", ErrInvalid, i, describe(err))
		}

		if first, dup := seen[ch.ID]; dup {
			return fmt.Errorf("%w: record %d: id %d already used by record %d", ErrInvalid, i, ch.ID, first)
		}
		seen[ch.ID] = i
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names in messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

func describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		parts = append(parts, e.Field()+" "+friendlyMessage(e))
	}
	return strings.Join(parts, "; ")
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "http_url":
		return "must be an absolute http(s) URL"
	default:
		return "is invalid"
	}
}
