package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-console/dates"
	"weather-console/forecast"
	"weather-console/providers"
	"weather-console/report"
)

const (
	msgInvalidDate   = "Invalid date format. Please enter the date in YYYY-MM-DD format."
	msgTooOld        = "historical data only available up until 1 year in the past"
	msgFutureBlocked = "feature not available for future dates"
	msgInvalidChoice = "Invalid input, please try again."
	msgInvalidKind   = "Invalid forecast type selected."
	msgExit          = "Exiting program."
)

// Deps зависимости приложения
type Deps struct {
	Gateway    providers.Gateway
	Classifier *dates.Classifier
	Predictor  *report.Predictor
	Plotter    report.Plotter
	Logger     *zap.Logger
	In         io.Reader
	Out        io.Writer
}

// Application консольное меню погоды
type Application struct {
	gateway    providers.Gateway
	classifier *dates.Classifier
	predictor  *report.Predictor
	plotter    report.Plotter
	logger     *zap.Logger
	in         *bufio.Scanner
	out        io.Writer
}

func New(deps Deps) *Application {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Application{
		gateway:    deps.Gateway,
		classifier: deps.Classifier,
		predictor:  deps.Predictor,
		plotter:    deps.Plotter,
		logger:     logger,
		in:         bufio.NewScanner(deps.In),
		out:        deps.Out,
	}
}

// Run крутит меню до выбора 5, конца ввода или неверного типа прогноза
func (a *Application) Run(ctx context.Context) error {
	for {
		a.printMenu()
		choice, ok := a.prompt("Enter your choice: ")
		if !ok {
			a.println(msgExit)
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = a.menuCheckWeather(ctx)
		case "2":
			err = a.menuDated(ctx, "Enter the date for hourly details (YYYY-MM-DD): ", a.HourlyDetail)
		case "3":
			err = a.menuDated(ctx, "Enter the date for temperature graph (YYYY-MM-DD): ", a.TemperatureGraph)
		case "4":
			err = a.menuDated(ctx, "Enter the date for prediction (YYYY-MM-DD): ", a.Predict)
		case "5":
			a.println(msgExit)
			return nil
		default:
			a.println(msgInvalidChoice)
			continue
		}

		if errors.Is(err, forecast.ErrUnknownKind) {
			// Неверный тип прогноза завершает программу целиком
			a.println(msgInvalidKind)
			a.logger.Info("forecast type rejected, leaving menu", zap.Error(err))
			return nil
		}
		if errors.Is(err, errEndOfInput) {
			a.println(msgExit)
			return nil
		}
		if err != nil {
			a.logger.Info("action failed", zap.String("choice", choice), zap.Error(err))
			a.println("Error: " + err.Error())
		}
	}
}

var errEndOfInput = errors.New("end of input")

func (a *Application) printMenu() {
	a.println("\nChoose an action:")
	a.println("1: Check weather by date")
	a.println("2: Detailed hourly weather")
	a.println("3: Show temperature graph")
	a.println("4: Predict weather for a specific day")
	a.println("5: Exit program")
}

func (a *Application) menuCheckWeather(ctx context.Context) error {
	date, ok := a.prompt("Enter the date (YYYY-MM-DD): ")
	if !ok {
		return errEndOfInput
	}
	if !dates.Validate(date) {
		a.println(msgInvalidDate)
		return nil
	}

	d, _ := dates.Parse(date)
	if a.classifier.Classify(d) != dates.Past {
		// Будущее и слишком старые даты не требуют выбора типа
		return a.CheckWeather(ctx, date, forecast.Basic)
	}

	a.println("Select Forecast Type:")
	a.println("a: Basic Forecast")
	a.println("b: Advanced Forecast")
	a.println("c: Premium Forecast")
	letter, ok := a.prompt("Enter forecast type: ")
	if !ok {
		return errEndOfInput
	}
	kind, err := forecast.ParseKind(letter)
	if err != nil {
		return err
	}
	return a.CheckWeather(ctx, date, kind)
}

func (a *Application) menuDated(ctx context.Context, question string, action func(context.Context, string) error) error {
	date, ok := a.prompt(question)
	if !ok {
		return errEndOfInput
	}
	if !dates.Validate(date) {
		a.println(msgInvalidDate)
		return nil
	}
	return action(ctx, date)
}

// CheckWeather показывает прогноз выбранного типа, для будущей даты - предсказание
func (a *Application) CheckWeather(ctx context.Context, date string, kind forecast.Kind) error {
	d, err := dates.Parse(date)
	if err != nil {
		return err
	}
	logger := a.actionLogger("check_weather", date)

	switch a.classifier.Classify(d) {
	case dates.Future:
		return a.predictFromToday(ctx, logger, date)
	case dates.TooOld:
		a.println(msgTooOld)
		return nil
	}

	payload, err := a.gateway.FetchByDate(ctx, date)
	if err != nil {
		return err
	}
	f, err := forecast.New(kind, payload)
	if err != nil {
		return err
	}
	logger.Debug("rendering forecast", zap.Stringer("kind", kind))
	return f.Render(a.out)
}

// HourlyDetail почасовые данные за прошедший день
func (a *Application) HourlyDetail(ctx context.Context, date string) error {
	r, err := a.pastReport(ctx, "hourly_detail", date)
	if err != nil || r == nil {
		return err
	}
	return r.Hourly(a.out)
}

// TemperatureGraph график температуры за прошедший день
func (a *Application) TemperatureGraph(ctx context.Context, date string) error {
	r, err := a.pastReport(ctx, "temperature_graph", date)
	if err != nil || r == nil {
		return err
	}
	return r.Plot(a.plotter)
}

// Summary сводка дневного агрегата за прошедший день
func (a *Application) Summary(ctx context.Context, date string) error {
	r, err := a.pastReport(ctx, "summary", date)
	if err != nil || r == nil {
		return err
	}
	return r.Summary(a.out)
}

// Predict предсказание от данных за сегодня; допускает будущее и последний год
func (a *Application) Predict(ctx context.Context, date string) error {
	d, err := dates.Parse(date)
	if err != nil {
		return err
	}
	logger := a.actionLogger("predict", date)

	if a.classifier.IsOlderThanOneYear(d) {
		a.println(msgTooOld)
		return nil
	}
	return a.predictFromToday(ctx, logger, date)
}

func (a *Application) predictFromToday(ctx context.Context, logger *zap.Logger, date string) error {
	payload, err := a.gateway.FetchByDate(ctx, a.classifier.Today())
	if err != nil {
		return err
	}
	r, err := report.New(payload)
	if err != nil {
		return err
	}
	pred, err := r.Predict(date, a.predictor, a.out)
	if err != nil {
		return err
	}
	logger.Debug("prediction done",
		zap.Stringer("direction", pred.Direction),
		zap.Int("terms", pred.Terms),
		zap.Float64("temperature", pred.Temperature))
	return nil
}

// pastReport загружает отчет за дату не старше года; nil без ошибки, если дата отклонена
func (a *Application) pastReport(ctx context.Context, action, date string) (*report.Report, error) {
	d, err := dates.Parse(date)
	if err != nil {
		return nil, err
	}
	logger := a.actionLogger(action, date)

	switch a.classifier.Classify(d) {
	case dates.Future:
		a.println(msgFutureBlocked)
		return nil, nil
	case dates.TooOld:
		a.println(msgTooOld)
		return nil, nil
	}

	payload, err := a.gateway.FetchByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	logger.Debug("payload received", zap.String("provider", a.gateway.Name()))
	return report.New(payload)
}

func (a *Application) actionLogger(action, date string) *zap.Logger {
	return a.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("action", action),
		zap.String("date", date))
}

func (a *Application) prompt(question string) (string, bool) {
	fmt.Fprint(a.out, question)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *Application) println(s string) {
	fmt.Fprintln(a.out, s)
}
