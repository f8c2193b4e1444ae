package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata envelope at the top of a localized Markdown file.
// Locale and kind may be omitted when they are derivable from the file path and
// importer configuration.
type FrontMatter struct {
	Title           string `yaml:"title"`
	Slug            string `yaml:"slug"`
	Locale          string `yaml:"locale"`
	Kind            string `yaml:"kind"`
	Description     string `yaml:"description"`
	MetaTitle       string `yaml:"meta_title"`
	MetaDescription string `yaml:"meta_description"`
	Icon            string `yaml:"icon"`
	FeaturedImage   string `yaml:"featured_image"`
	Author          string `yaml:"author"`
	Draft           bool   `yaml:"draft"`
}

// Document is one parsed Markdown file: its metadata, the Markdown body with
// the frontmatter delimiters stripped, and provenance for logging and change
// detection.
type Document struct {
	Path         string
	Locale       string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	Checksum     []byte
}

// ParseFrontMatter extracts the metadata envelope and the remaining Markdown
// body from source.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}
	return meta, body, nil
}
