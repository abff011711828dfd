package chart

import (
	"fmt"
)

// Fixed segment colors: completed, pending
const (
	ColorCompleted = "#4CAF50"
	ColorPending   = "#FFC107"
)

// Config describes a two-segment proportion chart
type Config struct {
	Type   string
	Labels [2]string
	Data   [2]int
	Colors [2]string
}

// Chart is one rendered chart instance. Destroy releases it; a destroyed
// chart renders nothing.
type Chart interface {
	View() string
	Destroy()
}

// Renderer is the charting collaborator that builds chart instances
type Renderer interface {
	New(cfg Config) (Chart, error)
}

// Adapter keeps exactly one live chart and replaces it on every update
type Adapter struct {
	renderer Renderer
	current  Chart
}

// NewAdapter creates an adapter with no chart yet
func NewAdapter(r Renderer) *Adapter {
	return &Adapter{renderer: r}
}

// DoughnutConfig builds the completed/pending configuration
func DoughnutConfig(completed, pending int) Config {
	return Config{
		Type:   "doughnut",
		Labels: [2]string{"Completed", "Pending"},
		Data:   [2]int{completed, pending},
		Colors: [2]string{ColorCompleted, ColorPending},
	}
}

// Update disposes the previous chart, then renders a new one
func (a *Adapter) Update(completed, pending int) error {
	if a.current != nil {
		a.current.Destroy()
		a.current = nil
	}

	c, err := a.renderer.New(DoughnutConfig(completed, pending))
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	a.current = c
	return nil
}

// View renders the current chart, or nothing before the first Update
func (a *Adapter) View() string {
	if a.current == nil {
		return ""
	}
	return a.current.View()
}

// Close disposes the current chart
func (a *Adapter) Close() {
	if a.current != nil {
		a.current.Destroy()
		a.current = nil
	}
}
