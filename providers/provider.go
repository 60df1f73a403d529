package providers

import (
	"context"
	"errors"

	"weather-console/models"
)

// ErrTransport сетевая ошибка, неуспешный статус или нечитаемый ответ API
var ErrTransport = errors.New("weather API request failed")

// Gateway источник исторических данных о погоде для фиксированного места
type Gateway interface {
	Name() string
	FetchByDate(ctx context.Context, date string) (*models.Payload, error)
}
