package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DonutRenderer draws doughnut charts as a ring of terminal cells
type DonutRenderer struct {
	Rows       int    // ring height in cells; columns are twice this
	EmptyColor string // ring color when both segments are zero
}

// NewDonutRenderer returns a renderer with a 9-row ring
func NewDonutRenderer() *DonutRenderer {
	return &DonutRenderer{Rows: 9, EmptyColor: "#6D7383"}
}

type donut struct {
	cfg       Config
	rows      int
	empty     string
	destroyed bool
}

func (r *DonutRenderer) New(cfg Config) (Chart, error) {
	if cfg.Type != "doughnut" {
		return nil, fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
	if cfg.Data[0] < 0 || cfg.Data[1] < 0 {
		return nil, fmt.Errorf("chart data must not be negative")
	}
	rows := r.Rows
	if rows < 3 {
		rows = 3
	}
	return &donut{cfg: cfg, rows: rows, empty: r.EmptyColor}, nil
}

func (d *donut) Destroy() {
	d.destroyed = true
}

func (d *donut) View() string {
	if d.destroyed {
		return ""
	}

	total := d.cfg.Data[0] + d.cfg.Data[1]
	first := lipgloss.NewStyle().Foreground(lipgloss.Color(d.cfg.Colors[0]))
	second := lipgloss.NewStyle().Foreground(lipgloss.Color(d.cfg.Colors[1]))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(d.empty))

	var split float64
	if total > 0 {
		split = float64(d.cfg.Data[0]) / float64(total)
	}

	rows := d.rows
	cols := rows * 2
	cy := float64(rows-1) / 2
	cx := float64(cols-1) / 2
	outer := float64(rows) / 2
	inner := outer * 0.5

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Terminal cells are about twice as tall as wide
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			r := math.Hypot(dx, dy)
			if r > outer || r < inner {
				b.WriteByte(' ')
				continue
			}

			switch {
			case total == 0:
				b.WriteString(muted.Render("█"))
			case ringFraction(dx, dy) < split:
				b.WriteString(first.Render("█"))
			default:
				b.WriteString(second.Render("█"))
			}
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ringFraction is the clockwise position from 12 o'clock, in [0,1)
func ringFraction(dx, dy float64) float64 {
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}
