package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// Layout формат даты, принимаемый от пользователя и API
const Layout = "2006-01-02"

// ErrInvalidFormat дата не соответствует YYYY-MM-DD
var ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// Range результат классификации даты
type Range int

const (
	Past Range = iota
	Future
	TooOld
)

func (r Range) String() string {
	switch r {
	case Future:
		return "future"
	case TooOld:
		return "too_old"
	default:
		return "past"
	}
}

// Validate true, если строка является реальной календарной датой YYYY-MM-DD
func Validate(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Parse разбирает дату без учета часового пояса
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return t, nil
}

// Classifier сравнивает даты с текущим днем по часам clock
type Classifier struct {
	clock clockwork.Clock
}

func New(clock clockwork.Clock) *Classifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Classifier{clock: clock}
}

// Today текущая дата в формате YYYY-MM-DD
func (c *Classifier) Today() string {
	return c.clock.Now().Format(Layout)
}

// IsFuture true, если дата позже сегодняшней
func (c *Classifier) IsFuture(d time.Time) bool {
	return calendarDay(d).After(c.today())
}

// IsOlderThanOneYear true, если полночь даты d раньше момента "сейчас минус 365 дней".
// Дата ровно год назад считается устаревшей, как только прошла полночь.
func (c *Classifier) IsOlderThanOneYear(d time.Time) bool {
	now := c.clock.Now()
	y, m, day := d.Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return midnight.Before(now.AddDate(0, 0, -365))
}

func (c *Classifier) Classify(d time.Time) Range {
	switch {
	case c.IsFuture(d):
		return Future
	case c.IsOlderThanOneYear(d):
		return TooOld
	default:
		return Past
	}
}

// DayDifference число календарных дней от сегодня до d, отрицательное для прошлого
func (c *Classifier) DayDifference(d time.Time) int {
	return DaysBetween(c.today(), calendarDay(d))
}

func (c *Classifier) today() time.Time {
	return calendarDay(c.clock.Now())
}

// DaysBetween число календарных дней между from и to
func DaysBetween(from, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}

// calendarDay переносит дату в полночь UTC, отбрасывая время и зону
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
