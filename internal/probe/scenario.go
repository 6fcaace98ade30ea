// Package probe drives a virtual.Grid without a GUI. It loads scripted
// scenarios from YAML and reports every event the engine emits.
package probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/vgui/virtual"
)

// Scenario is a mounted grid and a script to run against it.
type Scenario struct {
	Rows           AxisSpec `yaml:"rows"`
	Columns        AxisSpec `yaml:"columns"`
	Viewport       Viewport `yaml:"viewport"`
	Direction      string   `yaml:"direction"`
	UseIsScrolling bool     `yaml:"use_is_scrolling"`
	Steps          []Step   `yaml:"steps"`
}

// AxisSpec sizes one axis. Sizes, when set, repeats over the items and makes
// the axis dynamic; otherwise every item is Size long.
type AxisSpec struct {
	Count     int       `yaml:"count"`
	Size      float32   `yaml:"size"`
	Sizes     []float32 `yaml:"sizes"`
	Estimated float32   `yaml:"estimated"`
	Overscan  int       `yaml:"overscan"`
}

func (a AxisSpec) source() virtual.SizeSource {
	if len(a.Sizes) == 0 {
		return virtual.FixedSize(a.Size)
	}
	sizes := a.Sizes
	return virtual.DynamicSize(func(i int) float32 { return sizes[i%len(sizes)] }, a.Estimated)
}

type Viewport struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Step is one scripted action. Exactly one field is set, except for Flush
// which may stand alone to advance a frame without input.
type Step struct {
	Scroll       *ScrollStep `yaml:"scroll,omitempty"`
	Wheel        *WheelStep  `yaml:"wheel,omitempty"`
	ScrollToItem *ItemStep   `yaml:"scroll_to_item,omitempty"`
	Reset        *ResetStep  `yaml:"reset,omitempty"`
	Drag         *DragStep   `yaml:"drag,omitempty"`
	Resize       *Viewport   `yaml:"resize,omitempty"`
	Flush        bool        `yaml:"flush,omitempty"`
}

type ScrollStep struct {
	Left *float32 `yaml:"left"`
	Top  *float32 `yaml:"top"`
}

type WheelStep struct {
	DX    float32 `yaml:"dx"`
	DY    float32 `yaml:"dy"`
	Shift bool    `yaml:"shift"`
}

type ItemStep struct {
	Row    int    `yaml:"row"`
	Column int    `yaml:"column"`
	Align  string `yaml:"align"`
}

type ResetStep struct {
	Row    int  `yaml:"row"`
	Column int  `yaml:"column"`
	Force  bool `yaml:"force"`
}

// DragStep presses the scrollbar of Axis at From and releases it at To.
// A press off the thumb is a track click.
type DragStep struct {
	Axis string  `yaml:"axis"`
	From float32 `yaml:"from"`
	To   float32 `yaml:"to"`
}

var ErrBadStep = errors.New("step must set exactly one action")

// Name returns the action of s.
func (s Step) Name() string {
	switch {
	case s.Scroll != nil:
		return "scroll"
	case s.Wheel != nil:
		return "wheel"
	case s.ScrollToItem != nil:
		return "scroll_to_item"
	case s.Reset != nil:
		return "reset"
	case s.Drag != nil:
		return "drag"
	case s.Resize != nil:
		return "resize"
	}
	return "flush"
}

func (s Step) validate() error {
	n := 0
	for _, set := range []bool{s.Scroll != nil, s.Wheel != nil, s.ScrollToItem != nil, s.Reset != nil, s.Drag != nil, s.Resize != nil} {
		if set {
			n++
		}
	}
	if n > 1 || (n == 0 && !s.Flush) {
		return ErrBadStep
	}
	if s.Drag != nil {
		if _, err := parseAxis(s.Drag.Axis); err != nil {
			return err
		}
	}
	if s.ScrollToItem != nil {
		if _, err := virtual.ParseAlignment(s.ScrollToItem.Align); err != nil {
			return err
		}
	}
	return nil
}

func parseAxis(s string) (virtual.Axis, error) {
	switch s {
	case "", "row", "vertical":
		return virtual.AxisRow, nil
	case "column", "horizontal":
		return virtual.AxisColumn, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// GridConfig builds the engine configuration of sc.
func (sc *Scenario) GridConfig() (virtual.GridConfig, error) {
	dir, err := virtual.ParseDirection(sc.Direction)
	if err != nil {
		return virtual.GridConfig{}, err
	}
	return virtual.GridConfig{
		TotalRow:       sc.Rows.Count,
		TotalColumn:    sc.Columns.Count,
		RowHeight:      sc.Rows.source(),
		ColumnWidth:    sc.Columns.source(),
		Width:          sc.Viewport.Width,
		Height:         sc.Viewport.Height,
		Direction:      dir,
		RowCache:       sc.Rows.Overscan,
		ColumnCache:    sc.Columns.Overscan,
		UseIsScrolling: sc.UseIsScrolling,
	}, nil
}

// ParseScenario decodes a YAML scenario. Unknown keys are rejected.
func ParseScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := ParseScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
