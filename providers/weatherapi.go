package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"weather-console/models"
)

const (
	defaultBaseURL = "https://api.weatherapi.com/v1"
	historyPath    = "/history.json"
	userAgent      = "weather-console/1.0"
)

// Options параметры подключения к WeatherAPI
type Options struct {
	APIKey   string
	Location string
	BaseURL  string
	Timeout  time.Duration // 0 - без таймаута
}

type WeatherAPIProvider struct {
	apiKey   string
	location string
	client   *resty.Client
	logger   *zap.Logger
}

func NewWeatherAPIProvider(opts Options, logger *zap.Logger) *WeatherAPIProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Повторы не настраиваются: ошибка запроса прерывает текущее действие
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	p := &WeatherAPIProvider{
		apiKey:   opts.APIKey,
		location: opts.Location,
		client:   client,
		logger:   logger,
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		p.logger.Debug("weatherapi request",
			zap.String("method", req.Method),
			zap.String("path", req.URL),
			zap.String("location", p.location),
			zap.String("date", req.QueryParam.Get("dt")))
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		p.logger.Debug("weatherapi response",
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", resp.Time()),
			zap.Int("bytes", len(resp.Body())))
		return nil
	})

	return p
}

func (p *WeatherAPIProvider) Name() string {
	return "WeatherAPI"
}

// FetchByDate запрашивает history.json для заранее проверенной даты
func (p *WeatherAPIProvider) FetchByDate(ctx context.Context, date string) (*models.Payload, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": p.apiKey,
			"q":   p.location,
			"dt":  date,
		}).
		Get(historyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: http request: %w", ErrTransport, err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var apiError struct {
			Error struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}

		if err := json.Unmarshal(resp.Body(), &apiError); err == nil && apiError.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s error (status %d): %s", ErrTransport, p.Name(), resp.StatusCode(), apiError.Error.Message)
		}

		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode())
	}

	var payload models.Payload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode JSON: %w", ErrTransport, err)
	}

	return &payload, nil
}
