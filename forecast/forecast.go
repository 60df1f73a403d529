package forecast

import (
	"errors"
	"fmt"
	"io"

	"weather-console/models"
)

// ErrUnknownKind буква типа прогноза вне a/b/c
var ErrUnknownKind = errors.New("invalid forecast type selected")

// Kind вариант отображения прогноза
type Kind int

const (
	Basic Kind = iota
	Advanced
	Premium
)

func (k Kind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	case Premium:
		return "premium"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind переводит пункт меню a/b/c в вариант прогноза
func ParseKind(letter string) (Kind, error) {
	switch letter {
	case "a":
		return Basic, nil
	case "b":
		return Advanced, nil
	case "c":
		return Premium, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, letter)
	}
}

// Forecast прогноз на один день, готовый к выводу
type Forecast struct {
	kind  Kind
	day   models.Day
	hours []models.Hour
}

// New проверяет ответ API. Вывод выполняет только Render.
func New(kind Kind, payload *models.Payload) (*Forecast, error) {
	fd, err := payload.FirstDay()
	if err != nil {
		return nil, err
	}
	return &Forecast{
		kind:  kind,
		day:   *fd.Day,
		hours: fd.Hour,
	}, nil
}

func (f *Forecast) Kind() Kind {
	return f.kind
}

func (f *Forecast) Render(w io.Writer) error {
	switch f.kind {
	case Basic:
		return f.renderBasic(w)
	case Advanced:
		return f.renderAdvanced(w)
	case Premium:
		return f.renderPremium(w)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, f.kind)
	}
}

func (f *Forecast) renderBasic(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Today's temperature: %s°C\nConditions: %s\n",
		models.FormatTemp(f.day.AvgTempC), f.day.Condition.Text)
	return err
}

func (f *Forecast) renderAdvanced(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Today's temperature:"); err != nil {
		return err
	}
	for _, h := range f.hours {
		if _, err := fmt.Fprintf(w, "%s - Temp: %s°C, Condition: %s\n",
			h.TimeOfDay(), models.FormatTemp(h.TempC), h.Condition.Text); err != nil {
			return err
		}
	}
	return nil
}

func (f *Forecast) renderPremium(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Detailed Forecast with Predictive Analysis:\nToday's temperature: %s°C\n",
		models.FormatTemp(f.day.AvgTempC)); err != nil {
		return err
	}
	for _, h := range f.hours {
		feelsLike := "N/A"
		if h.FeelsLikeC != nil {
			feelsLike = models.FormatTemp(*h.FeelsLikeC) + "°C"
		}
		if _, err := fmt.Fprintf(w, "%s - Temp: %s°C, Feels Like: %s\n",
			h.TimeOfDay(), models.FormatTemp(h.TempC), feelsLike); err != nil {
			return err
		}
	}
	return nil
}
