package post

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	delimiter  = "---"
	dateLayout = "2006-01-02"
)

var (
	// ErrNoFrontMatter is returned for documents that do not open with a
	// front matter delimiter.
	ErrNoFrontMatter = errors.New("no front matter found")

	// ErrUnterminatedFrontMatter indicates the document opened a front matter
	// block but never closed it.
	ErrUnterminatedFrontMatter = errors.New("front matter start delimiter found but closing delimiter is missing")

	// ErrMissingField is wrapped by errors naming a required front matter key
	// that is absent or null.
	ErrMissingField = errors.New("missing required front matter field")
)

// SplitFrontMatter separates the YAML front matter (--- delimited) from the
// Markdown body. LF and CRLF documents are both accepted, and the closing
// delimiter may be the last line of the file.
func SplitFrontMatter(src []byte) (fm, body []byte, err error) {
	nl := detectNewline(src)
	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(src, open) {
		return nil, src, ErrNoFrontMatter
	}
	rest := src[len(open):]

	// Empty block.
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], nil
	}
	if bytes.Equal(rest, []byte(delimiter)) {
		return []byte{}, nil, nil
	}

	closing := []byte(nl + delimiter + nl)
	if idx := bytes.Index(rest, closing); idx >= 0 {
		return rest[:idx+len(nl)], rest[idx+len(closing):], nil
	}
	if bytes.HasSuffix(rest, []byte(nl+delimiter)) {
		return rest[:len(rest)-len(delimiter)], nil, nil
	}
	return nil, nil, ErrUnterminatedFrontMatter
}

func detectNewline(src []byte) string {
	if i := bytes.IndexByte(src, '\n'); i > 0 && src[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// frontMatter is the strict schema every post must satisfy. Pointers tell
// an absent key apart from a zero value.
type frontMatter struct {
	Title       *text         `yaml:"title"`
	Date        *calendarDate `yaml:"date"`
	Subtitle    *text         `yaml:"subtitle"`
	Tags        *tagList      `yaml:"tags"`
	Excerpt     *text         `yaml:"excerpt"`
	ReadingTime *minutes      `yaml:"reading_time"`
}

func parseFrontMatter(b []byte) (frontMatter, error) {
	var fm frontMatter
	if err := yaml.Unmarshal(b, &fm); err != nil {
		return frontMatter{}, err
	}
	return fm, fm.validate()
}

func (fm frontMatter) validate() error {
	switch {
	case fm.Title == nil:
		return fmt.Errorf("%w: title", ErrMissingField)
	case fm.Date == nil:
		return fmt.Errorf("%w: date", ErrMissingField)
	case fm.Tags == nil:
		return fmt.Errorf("%w: tags", ErrMissingField)
	case fm.Excerpt == nil:
		return fmt.Errorf("%w: excerpt", ErrMissingField)
	case fm.ReadingTime == nil:
		return fmt.Errorf("%w: reading_time", ErrMissingField)
	}
	return nil
}

// calendarDate is a date without time of day, written as YYYY-MM-DD.
type calendarDate struct {
	time.Time
}

func (d *calendarDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a YYYY-MM-DD value", value.Line)
	}
	t, err := time.Parse(dateLayout, value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q: %w", value.Line, value.Value, err)
	}
	d.Time = t
	return nil
}

// text is a YAML string scalar. Numbers, booleans and other resolved
// scalars are rejected instead of being stringified.
type text string

func (s *text) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: expected a string, got %s", value.Line, value.ShortTag())
	}
	*s = text(value.Value)
	return nil
}

// tagList is a sequence of string scalars.
type tagList []string

func (l *tagList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: tags must be a list of strings", value.Line)
	}
	tags := make(tagList, 0, len(value.Content))
	for _, item := range value.Content {
		var tag text
		if err := tag.UnmarshalYAML(item); err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		tags = append(tags, string(tag))
	}
	*l = tags
	return nil
}

// minutes is a non-negative integer that fits in 32 bits. Floats are
// rejected rather than truncated.
type minutes uint32

func (m *minutes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: reading_time must be a whole number, got %q", value.Line, value.Value)
	}
	var n uint64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("line %d: invalid reading_time %q: %w", value.Line, value.Value, err)
	}
	if n > math.MaxUint32 {
		return fmt.Errorf("line %d: reading_time %d out of range", value.Line, n)
	}
	*m = minutes(n)
	return nil
}
