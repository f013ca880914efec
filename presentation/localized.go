package presentation

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localized renders numbers with the digit grouping and decimal separator of tag.
func Localized(tag language.Tag) Representation {
	return localized{printer: message.NewPrinter(tag)}
}

type localized struct {
	printer *message.Printer
}

func (l localized) ToStringOf(v any) string {
	return l.toString(v, visited{})
}

func (l localized) toString(v any, seen visited) string {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return l.printer.Sprintf("%d", v)
	case float32, float64:
		return l.printer.Sprintf("%v", v)
	}
	return render(v, seen, l.toString)
}

func (l localized) UnambiguousToStringOf(v any) string {
	return unambiguous(l, v)
}

// Parse returns the representation for a config value: "standard" or "localized:<bcp47-tag>".
func Parse(s string) (Representation, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "standard" {
		return Standard{}, nil
	}
	name, tag, ok := strings.Cut(s, ":")
	if !ok || name != "localized" {
		return nil, fmt.Errorf("unknown representation %q", s)
	}
	lt, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", tag, err)
	}
	return Localized(lt), nil
}
