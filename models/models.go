package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation возвращается, когда ответ API отсутствует или не содержит ожидаемых полей
var ErrValidation = errors.New("no data provided for weather information")

// Payload ответ history.json от WeatherAPI для одной даты
type Payload struct {
	Location *Location `json:"location"`
	Forecast *Forecast `json:"forecast"`
}

// Location место, для которого получены данные
type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// ForecastDay один календарный день: агрегат и почасовые записи
type ForecastDay struct {
	Date string `json:"date"`
	Day  *Day   `json:"day"`
	Hour []Hour `json:"hour"`
}

// Day дневной агрегат
type Day struct {
	MaxTempC    float64   `json:"maxtemp_c"`
	MinTempC    float64   `json:"mintemp_c"`
	AvgTempC    float64   `json:"avgtemp_c"`
	AvgHumidity float64   `json:"avghumidity"` // влажность %
	UV          float64   `json:"uv"`
	Condition   Condition `json:"condition"`
}

// Hour почасовая запись, Time в формате "YYYY-MM-DD HH:MM"
type Hour struct {
	Time       string    `json:"time"`
	TempC      float64   `json:"temp_c"`
	FeelsLikeC *float64  `json:"feelslike_c,omitempty"` // nil, если API не прислал значение
	Condition  Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
}

// TimeOfDay возвращает часть метки времени после даты
func (h Hour) TimeOfDay() string {
	if _, after, ok := strings.Cut(h.Time, " "); ok {
		return after
	}
	return h.Time
}

// FirstDay проверяет форму ответа и возвращает первый день прогноза
func (p *Payload) FirstDay() (*ForecastDay, error) {
	if p == nil {
		return nil, ErrValidation
	}
	if p.Forecast == nil || len(p.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("%w: forecast.forecastday is empty", ErrValidation)
	}

	day := p.Forecast.ForecastDay[0]
	if day.Day == nil {
		return nil, fmt.Errorf("%w: forecast.forecastday[0].day is missing", ErrValidation)
	}
	return &day, nil
}

// FormatTemp форматирует градусы так, что целое значение сохраняет ".0"
func FormatTemp(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// FormatNumber форматирует число без лишних нулей
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
