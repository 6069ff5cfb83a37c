package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Submission is the typed view over a completed chain's collected answers
// and the context captured when the chain started.
type Submission struct {
	ChatID   int64
	Language string
	values   map[string]string
	context  map[string]string
}

func NewSubmission(chatID int64, language string, values, context map[string]string) Submission {
	return Submission{ChatID: chatID, Language: language, values: values, context: context}
}

func (s Submission) String(name string) string {
	return s.values[name]
}

// Optional returns nil for a skipped optional field.
func (s Submission) Optional(name string) *string {
	v := s.values[name]
	if v == "" {
		return nil
	}
	return &v
}

func (s Submission) Int(name string) (int, error) {
	n, err := strconv.Atoi(s.values[name])
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return n, nil
}

func (s Submission) Int64(name string) (int64, error) {
	n, err := strconv.ParseInt(s.values[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return n, nil
}

func (s Submission) Decimal(name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s.values[name])
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}

func (s Submission) Date(name string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s.values[name])
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", name, err)
	}
	return t, nil
}

// OptionalDate returns nil for a skipped optional date.
func (s Submission) OptionalDate(name string) (*time.Time, error) {
	if s.values[name] == "" {
		return nil, nil
	}
	t, err := s.Date(name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s Submission) Location(name string) (lat, lon float64, err error) {
	rawLat, rawLon, ok := strings.Cut(s.values[name], ",")
	if !ok {
		return 0, 0, fmt.Errorf("field %s: not a location", name)
	}
	if lat, err = strconv.ParseFloat(rawLat, 64); err != nil {
		return 0, 0, fmt.Errorf("field %s: %w", name, err)
	}
	if lon, err = strconv.ParseFloat(rawLon, 64); err != nil {
		return 0, 0, fmt.Errorf("field %s: %w", name, err)
	}
	return lat, lon, nil
}

// ContextInt64 reads an id captured when the chain was started.
func (s Submission) ContextInt64(key string) (int64, error) {
	n, err := strconv.ParseInt(s.context[key], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("context %s: %w", key, err)
	}
	return n, nil
}

func (s Submission) Context(key string) string {
	return s.context[key]
}
