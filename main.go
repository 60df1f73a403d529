package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weather-console/app"
	"weather-console/chart"
	"weather-console/config"
	"weather-console/dates"
	"weather-console/forecast"
	"weather-console/logging"
	"weather-console/providers"
	"weather-console/report"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	// Загружаем конфигурацию
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	application := newApplication()

	// Создаем CLI команды
	var rootCmd = &cobra.Command{
		Use:   "weather",
		Short: "Погода для " + cfg.Location,
		Long:  "Интерактивное меню: прогноз по дате, почасовые данные, график температуры и предсказание",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Команда прогноза по дате
	var forecastCmd = &cobra.Command{
		Use:   "forecast [дата]",
		Short: "Прогноз за дату (a - базовый, b - расширенный, c - премиум)",
		Args:  dateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, _ := cmd.Flags().GetString("type")
			kind, err := forecast.ParseKind(letter)
			if err != nil {
				return err
			}
			return application.CheckWeather(cmd.Context(), args[0], kind)
		},
	}
	forecastCmd.Flags().StringP("type", "t", "a", "Тип прогноза (a, b, c)")

	var summaryCmd = &cobra.Command{
		Use:   "summary [дата]",
		Short: "Сводка за день",
		Args:  dateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Summary(cmd.Context(), args[0])
		},
	}

	var hourlyCmd = &cobra.Command{
		Use:   "hourly [дата]",
		Short: "Почасовая погода за дату",
		Args:  dateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.HourlyDetail(cmd.Context(), args[0])
		},
	}

	var graphCmd = &cobra.Command{
		Use:   "graph [дата]",
		Short: "График температуры за дату",
		Args:  dateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.TemperatureGraph(cmd.Context(), args[0])
		},
	}

	var predictCmd = &cobra.Command{
		Use:   "predict [дата]",
		Short: "Предсказать среднюю температуру на дату",
		Args:  dateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Predict(cmd.Context(), args[0])
		},
	}

	rootCmd.AddCommand(forecastCmd, summaryCmd, hourlyCmd, graphCmd, predictCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newApplication() *app.Application {
	clock := clockwork.NewRealClock()

	gateway := providers.NewWeatherAPIProvider(providers.Options{
		APIKey:   cfg.WeatherAPIKey,
		Location: cfg.Location,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.RequestTimeout,
	}, logger.Named("weatherapi"))

	return app.New(app.Deps{
		Gateway:    gateway,
		Classifier: dates.New(clock),
		Predictor:  report.NewPredictor(clock, report.NewUniformFluctuator(nil)),
		Plotter:    chart.NewASCII(os.Stdout, cfg.PlotHeight),
		Logger:     logger.Named("app"),
		In:         os.Stdin,
		Out:        os.Stdout,
	})
}

// dateArg ровно один аргумент в формате YYYY-MM-DD
func dateArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if !dates.Validate(args[0]) {
		return fmt.Errorf("%w: %q", dates.ErrInvalidFormat, args[0])
	}
	return nil
}
