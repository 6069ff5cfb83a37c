package prompt

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/shopspring/decimal"
)

type InputKind int

const (
	InputText InputKind = iota
	InputLocation
)

// ParseFunc normalizes a raw answer or rejects it with a *ParseError.
type ParseFunc func(raw string) (string, error)

// FieldSpec describes one question of a chain. Optional fields accept an
// empty answer or "-" and are stored as "".
type FieldSpec struct {
	Name     string
	Prompt   i18n.Key
	Optional bool
	Input    InputKind
	Parse    ParseFunc
}

// ParseError is a rejected answer. Key names the localized explanation.
type ParseError struct {
	Key i18n.Key
}

func (e *ParseError) Error() string {
	return "invalid answer: " + string(e.Key)
}

func reject(key i18n.Key) error {
	return &ParseError{Key: key}
}

const DateLayout = "2006-01-02"

var validate = validator.New()

func Text(max int) ParseFunc {
	return func(raw string) (string, error) {
		if len([]rune(raw)) > max {
			return "", reject(i18n.ParseTooLong)
		}
		return raw, nil
	}
}

func PositiveInt(raw string) (string, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return "", reject(i18n.ParseNumber)
	}
	return strconv.FormatInt(n, 10), nil
}

func NonNegativeInt(raw string) (string, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return "", reject(i18n.ParseNumber)
	}
	if n < 0 {
		return "", reject(i18n.ParseNonNegative)
	}
	return strconv.Itoa(n), nil
}

func Price(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil || !d.IsPositive() {
		return "", reject(i18n.ParsePrice)
	}
	return d.StringFixed(2), nil
}

func Percent(raw string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
	if err != nil || n < 1 || n > 100 {
		return "", reject(i18n.ParsePercent)
	}
	return strconv.Itoa(n), nil
}

func Date(raw string) (string, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", reject(i18n.ParseDate)
	}
	return d.Format(DateLayout), nil
}

func Phone(raw string) (string, error) {
	phone := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(raw)
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	if err := validate.Var(phone, "e164"); err != nil {
		return "", reject(i18n.ParsePhone)
	}
	return phone, nil
}

func URL(raw string) (string, error) {
	if err := validate.Var(raw, "required,url,startswith=http"); err != nil {
		return "", reject(i18n.ParseURL)
	}
	return raw, nil
}

func Code(raw string) (string, error) {
	code := strings.ToUpper(raw)
	if err := validate.Var(code, "alphanum,max=64"); err != nil {
		return "", reject(i18n.ParseAlphanum)
	}
	return code, nil
}

func DeliveryStatus(raw string) (string, error) {
	status, ok := models.ParseDeliveryStatus(strings.ToLower(raw))
	if !ok {
		return "", reject(i18n.ParseStatus)
	}
	return string(status), nil
}
