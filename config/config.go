package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	WeatherAPIKey  string
	Location       string
	BaseURL        string
	RequestTimeout time.Duration
	PlotHeight     int
	LogLevel       string
}

// defaults значения по умолчанию; пустая переменная окружения считается незаданной
var defaults = map[string]any{
	"WEATHER_LOCATION":     "Turku",
	"WEATHERAPI_BASE_URL":  "https://api.weatherapi.com/v1",
	"HTTP_TIMEOUT_SECONDS": 10,
	"PLOT_HEIGHT":          12,
	"LOG_LEVEL":            "warn",
}

// Load собирает конфигурацию из окружения и .env файла
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	config := &Config{
		WeatherAPIKey:  v.GetString("WEATHERAPI_API_KEY"),
		Location:       v.GetString("WEATHER_LOCATION"),
		BaseURL:        v.GetString("WEATHERAPI_BASE_URL"),
		RequestTimeout: time.Duration(getInt(v, "HTTP_TIMEOUT_SECONDS")) * time.Second,
		PlotHeight:     getInt(v, "PLOT_HEIGHT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}

	if config.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WeatherAPI key is not set (WEATHERAPI_API_KEY)")
	}

	return config, nil
}

// getInt как viper.GetInt, но нечисловое или отрицательное значение заменяется значением по умолчанию
func getInt(v *viper.Viper, key string) int {
	if n, err := cast.ToIntE(v.Get(key)); err == nil && n >= 0 {
		return n
	}
	return cast.ToInt(defaults[key])
}
