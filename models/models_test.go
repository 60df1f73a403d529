package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyJSON = `{
  "location": {"name": "Turku", "region": "Southwest Finland", "country": "Finland"},
  "forecast": {"forecastday": [{
    "date": "2026-10-10",
    "day": {"maxtemp_c": 11.2, "mintemp_c": 4.1, "avgtemp_c": 7.5, "avghumidity": 86, "uv": 1.0,
            "condition": {"text": "Patchy rain nearby"}},
    "hour": [
      {"time": "2026-10-10 00:00", "temp_c": 5.0, "feelslike_c": 2.3, "condition": {"text": "Clear"}},
      {"time": "2026-10-10 01:00", "temp_c": 4.6, "condition": {"text": "Mist"}}
    ]
  }]}
}`

func TestPayloadDecode(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(historyJSON), &p))

	day, err := p.FirstDay()
	require.NoError(t, err)

	assert.Equal(t, "Turku", p.Location.Name)
	assert.Equal(t, "2026-10-10", day.Date)
	assert.Equal(t, 7.5, day.Day.AvgTempC)
	assert.Equal(t, float64(86), day.Day.AvgHumidity)
	require.Len(t, day.Hour, 2)
	require.NotNil(t, day.Hour[0].FeelsLikeC)
	assert.Equal(t, 2.3, *day.Hour[0].FeelsLikeC)
	assert.Nil(t, day.Hour[1].FeelsLikeC)
	assert.Equal(t, "01:00", day.Hour[1].TimeOfDay())
}

func TestFirstDayValidation(t *testing.T) {
	var nilPayload *Payload
	_, err := nilPayload.FirstDay()
	assert.ErrorIs(t, err, ErrValidation)

	_, err = (&Payload{}).FirstDay()
	assert.ErrorIs(t, err, ErrValidation)

	_, err = (&Payload{Forecast: &Forecast{ForecastDay: []ForecastDay{{Date: "2026-10-10"}}}}).FirstDay()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimeOfDayWithoutDate(t *testing.T) {
	assert.Equal(t, "13:00", Hour{Time: "13:00"}.TimeOfDay())
}

func TestFormatTemp(t *testing.T) {
	assert.Equal(t, "15.0", FormatTemp(15))
	assert.Equal(t, "-3.4", FormatTemp(-3.4))
	assert.Equal(t, "0.0", FormatTemp(0))
	assert.Equal(t, "86", FormatNumber(86))
	assert.Equal(t, "1.5", FormatNumber(1.5))
}
