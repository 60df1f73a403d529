package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ErrNoData нечего рисовать
var ErrNoData = errors.New("no hourly data to plot")

const defaultHeight = 12

// ASCII рисует линейный график в терминале
type ASCII struct {
	out    io.Writer
	height int
}

func NewASCII(out io.Writer, height int) *ASCII {
	if height <= 0 {
		height = defaultHeight
	}
	return &ASCII{out: out, height: height}
}

// Plot выводит график температуры, подпись и ось времени суток
func (a *ASCII) Plot(title string, labels []string, values []float64) error {
	if len(values) == 0 {
		return ErrNoData
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(a.height),
		asciigraph.Precision(1),
		asciigraph.Caption(title),
	)

	_, err := fmt.Fprintf(a.out, "Temperature (°C)\n%s\n\nTime of Day: %s\n", graph, strings.Join(labels, " "))
	return err
}
