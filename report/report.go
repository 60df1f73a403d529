package report

import (
	"fmt"
	"io"

	"weather-console/models"
)

// Plotter рисует график температуры по времени суток
type Plotter interface {
	Plot(title string, labels []string, values []float64) error
}

// Report данные о погоде за один день для фиксированного места
type Report struct {
	location models.Location
	date     string
	day      models.Day
	hours    []models.Hour
}

func New(payload *models.Payload) (*Report, error) {
	fd, err := payload.FirstDay()
	if err != nil {
		return nil, err
	}
	if payload.Location == nil {
		return nil, fmt.Errorf("%w: location is missing", models.ErrValidation)
	}

	return &Report{
		location: *payload.Location,
		date:     fd.Date,
		day:      *fd.Day,
		hours:    fd.Hour,
	}, nil
}

func (r *Report) Location() models.Location {
	return r.location
}

func (r *Report) Date() string {
	return r.date
}

// AvgTempC средняя дневная температура, база для предсказания
func (r *Report) AvgTempC() float64 {
	return r.day.AvgTempC
}

// Summary выводит место и дневной агрегат
func (r *Report) Summary(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Weather Information for %s, %s, %s:\n"+
			"Condition: %s\n"+
			"Max Temp: %s°C, Min Temp: %s°C, Avg Temp: %s°C\n"+
			"Humidity: %s%%\n"+
			"UV Index: %s\n",
		r.location.Name, r.location.Region, r.location.Country,
		r.day.Condition.Text,
		models.FormatTemp(r.day.MaxTempC), models.FormatTemp(r.day.MinTempC), models.FormatTemp(r.day.AvgTempC),
		models.FormatNumber(r.day.AvgHumidity),
		models.FormatTemp(r.day.UV),
	)
	return err
}

// Hourly выводит почасовые записи в исходном порядке
func (r *Report) Hourly(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Hourly Forecast:"); err != nil {
		return err
	}
	for _, h := range r.hours {
		if _, err := fmt.Fprintf(w, "Time: %s, Temperature: %s°C, Condition: %s\n",
			h.Time, models.FormatTemp(h.TempC), h.Condition.Text); err != nil {
			return err
		}
	}
	return nil
}

// Series пары время суток / температура для графика
func (r *Report) Series() ([]string, []float64) {
	labels := make([]string, 0, len(r.hours))
	temps := make([]float64, 0, len(r.hours))
	for _, h := range r.hours {
		labels = append(labels, h.TimeOfDay())
		temps = append(temps, h.TempC)
	}
	return labels, temps
}

func (r *Report) Plot(p Plotter) error {
	labels, temps := r.Series()
	return p.Plot(fmt.Sprintf("Temperature Trend for %s", r.date), labels, temps)
}
