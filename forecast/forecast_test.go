package forecast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-console/models"
)

func ptr(v float64) *float64 { return &v }

func testPayload() *models.Payload {
	return &models.Payload{
		Location: &models.Location{Name: "Turku", Region: "Southwest Finland", Country: "Finland"},
		Forecast: &models.Forecast{ForecastDay: []models.ForecastDay{{
			Date: "2026-10-10",
			Day: &models.Day{
				MaxTempC: 11.2, MinTempC: 4.1, AvgTempC: 15, AvgHumidity: 86, UV: 1,
				Condition: models.Condition{Text: "Partly cloudy"},
			},
			Hour: []models.Hour{
				{Time: "2026-10-10 00:00", TempC: 5, FeelsLikeC: ptr(2.3), Condition: models.Condition{Text: "Clear"}},
				{Time: "2026-10-10 01:00", TempC: 4.6, Condition: models.Condition{Text: "Mist"}},
				{Time: "2026-10-10 02:00", TempC: 4.2, FeelsLikeC: ptr(1), Condition: models.Condition{Text: "Fog"}},
			},
		}}},
	}
}

func render(t *testing.T, kind Kind) string {
	t.Helper()
	f, err := New(kind, testPayload())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestParseKind(t *testing.T) {
	for letter, want := range map[string]Kind{"a": Basic, "b": Advanced, "c": Premium} {
		got, err := ParseKind(letter)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, letter := range []string{"", "d", "A", "1"} {
		_, err := ParseKind(letter)
		assert.ErrorIs(t, err, ErrUnknownKind, letter)
	}
}

func TestNewRejectsMissingPayload(t *testing.T) {
	for _, kind := range []Kind{Basic, Advanced, Premium} {
		f, err := New(kind, nil)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Nil(t, f)
	}

	_, err := New(Basic, &models.Payload{Forecast: &models.Forecast{}})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRenderBasic(t *testing.T) {
	out := render(t, Basic)

	assert.Equal(t, "Today's temperature: 15.0°C\nConditions: Partly cloudy\n", out)
	assert.NotContains(t, out, "00:00")
}

func TestRenderAdvanced(t *testing.T) {
	out := render(t, Advanced)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Today's temperature:", lines[0])
	assert.Equal(t, "00:00 - Temp: 5.0°C, Condition: Clear", lines[1])
	assert.Equal(t, "01:00 - Temp: 4.6°C, Condition: Mist", lines[2])
	assert.Equal(t, "02:00 - Temp: 4.2°C, Condition: Fog", lines[3])
}

func TestRenderPremium(t *testing.T) {
	out := render(t, Premium)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "Detailed Forecast with Predictive Analysis:", lines[0])
	assert.Equal(t, "Today's temperature: 15.0°C", lines[1])
	assert.Equal(t, "00:00 - Temp: 5.0°C, Feels Like: 2.3°C", lines[2])
	assert.Equal(t, "01:00 - Temp: 4.6°C, Feels Like: N/A", lines[3])
	assert.Equal(t, "02:00 - Temp: 4.2°C, Feels Like: 1.0°C", lines[4])
}

func TestRenderEmptyHours(t *testing.T) {
	p := testPayload()
	p.Forecast.ForecastDay[0].Hour = nil

	f, err := New(Advanced, p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	assert.Equal(t, "Today's temperature:\n", buf.String())
}
