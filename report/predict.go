package report

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/jonboulle/clockwork"

	"weather-console/dates"
)

// FluctuationRange граница случайного суточного колебания, °C
const FluctuationRange = 2.0

// Fluctuator источник суточных колебаний температуры
type Fluctuator interface {
	Fluctuate() float64
}

// UniformFluctuator равномерное распределение на [-FluctuationRange, FluctuationRange]
type UniformFluctuator struct {
	rng *rand.Rand
}

func NewUniformFluctuator(rng *rand.Rand) *UniformFluctuator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &UniformFluctuator{rng: rng}
}

// unitSteps число шагов на [0, 1]; обе границы достижимы
const unitSteps = 1 << 53

// Fluctuate значение из замкнутого отрезка [-FluctuationRange, FluctuationRange]
func (u *UniformFluctuator) Fluctuate() float64 {
	unit := float64(u.rng.Uint64N(unitSteps+1)) / unitSteps
	return (unit*2 - 1) * FluctuationRange
}

// Direction в какую сторону от сегодня экстраполируется температура
type Direction int

const (
	FutureDay Direction = iota
	PastDay
)

func (d Direction) String() string {
	if d == PastDay {
		return "past"
	}
	return "future"
}

// Prediction результат предсказания средней температуры
type Prediction struct {
	Date        string
	Temperature float64 // округлено до 0.1
	Direction   Direction
	Terms       int // число сложенных колебаний
}

// Predictor случайное блуждание от средней температуры сегодняшнего дня
type Predictor struct {
	classifier *dates.Classifier
	source     Fluctuator
}

func NewPredictor(clock clockwork.Clock, source Fluctuator) *Predictor {
	if source == nil {
		source = NewUniformFluctuator(nil)
	}
	return &Predictor{
		classifier: dates.New(clock),
		source:     source,
	}
}

// Predict для прошлой даты добавляет одно колебание к base,
// для сегодня и будущего - по одному колебанию на каждый день разницы
func (p *Predictor) Predict(target string, base float64) (Prediction, error) {
	d, err := dates.Parse(target)
	if err != nil {
		return Prediction{}, err
	}

	dayDifference := p.classifier.DayDifference(d)

	pred := Prediction{Date: target, Direction: FutureDay}
	total := 0.0
	if dayDifference < 0 {
		pred.Direction = PastDay
		total = p.source.Fluctuate()
		pred.Terms = 1
	} else {
		for range dayDifference {
			total += p.source.Fluctuate()
		}
		pred.Terms = dayDifference
	}

	pred.Temperature = math.Round((base+total)*10) / 10
	return pred, nil
}

// Predict предсказывает температуру на target от средней температуры отчета
func (r *Report) Predict(target string, engine *Predictor, w io.Writer) (Prediction, error) {
	pred, err := engine.Predict(target, r.day.AvgTempC)
	if err != nil {
		return Prediction{}, err
	}

	notice := "Predicting for a future day."
	if pred.Direction == PastDay {
		notice = "Predicting for a past day using data from one day earlier."
	}
	if _, err := fmt.Fprintf(w, "%s\nPredicted average temperature for %s: %.1f°C\n",
		notice, pred.Date, pred.Temperature); err != nil {
		return pred, err
	}
	return pred, nil
}
