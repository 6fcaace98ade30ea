package probe_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/vgui/internal/probe"
	"github.com/go-theft-auto/vgui/virtual"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := probe.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunScenario(t *testing.T) {
	out, err := execute(t, "run", "testdata/grid.yaml")
	require.NoError(t, err)

	for _, want := range []string{
		"mount rows=1000 columns=10 viewport=300x200 direction=ltr",
		"range rows=0-11 visible=0-9 columns=0-3 visible=0-2",
		"scroll left=0 top=400 dir=forward/forward requested=true",
		"range rows=19-31 visible=20-29 columns=0-3 visible=0-2",
		"step 1 scroll: left=0 top=400 scrolling=true",
		"range rows=18-31 visible=20-29 columns=0-3 visible=0-2",
		"step 2 flush: left=0 top=400 scrolling=false",
		"step 3 wheel: left=0 top=400 scrolling=false",
		"scroll left=0 top=440 dir=forward/forward requested=true",
		"step 4 drag: left=0 top=9900 scrolling=true",
		"step 5 drag: left=0 top=19800 scrolling=true",
		"range rows=493-506 visible=495-505 columns=0-3 visible=0-2",
		"step 6 scroll_to_item: left=0 top=9910 scrolling=true",
		"step 7 reset: left=0 top=9910 scrolling=false",
		"step 8 settle: left=0 top=9910 scrolling=false",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "step 3 wheel"), strings.Index(out, "top=440"), "wheel applies when the frame ends")
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRangeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fixed", []string{"--count", "1000", "--size", "20", "--offset", "450", "--viewport", "200"}, "visible=22-32 overscan=21-33 total=20000"},
		{"scrolling forward", []string{"--count", "1000", "--size", "20", "--offset", "450", "--viewport", "200", "--overscan", "3", "--scrolling"}, "visible=22-32 overscan=21-35"},
		{"scrolling backward", []string{"--count", "1000", "--size", "20", "--offset", "450", "--viewport", "200", "--overscan", "3", "--scrolling", "--backward"}, "visible=22-32 overscan=19-33"},
		{"dynamic", []string{"--count", "4", "--sizes", "10,30", "--viewport", "25"}, "visible=0-1 overscan=0-2"},
		{"empty", []string{"--size", "20", "--viewport", "200"}, "visible=0-0 overscan=0-0 total=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"range"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRangeCommandErrors(t *testing.T) {
	_, err := execute(t, "range", "--count", "10")
	assert.Error(t, err)

	_, err = execute(t, "range", "--count", "-1", "--size", "20")
	assert.ErrorIs(t, err, virtual.ErrInvalidTotal)

	_, err = execute(t, "range", "--count", "10", "--size", "20", "--viewport", "-5")
	assert.ErrorIs(t, err, virtual.ErrInvalidViewport)
}

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"minimal", "rows: {count: 3, size: 10}\ncolumns: {count: 1, size: 10}\n", nil},
		{"two actions", "steps:\n  - flush: true\n  - wheel: {dy: 1}\n    scroll: {top: 4}\n", probe.ErrBadStep},
		{"empty step", "steps:\n  - {}\n", probe.ErrBadStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := probe.ParseScenario(strings.NewReader(tt.yaml))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseScenarioRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":   "rows: {count: 3, size: 10, colour: red}\n",
		"bad axis":      "steps:\n  - drag: {axis: diagonal, from: 1, to: 2}\n",
		"bad alignment": "steps:\n  - scroll_to_item: {row: 1, align: sideways}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := probe.ParseScenario(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestRunnerRejectsInvalidGrid(t *testing.T) {
	sc, err := probe.ParseScenario(strings.NewReader("rows: {count: -1, size: 10}\ncolumns: {count: 1, size: 10}\n"))
	require.NoError(t, err)
	_, err = probe.NewRunner(sc, &bytes.Buffer{})
	assert.ErrorIs(t, err, virtual.ErrInvalidTotal)

	sc.Rows.Count, sc.Direction = 1, "upside-down"
	_, err = probe.NewRunner(sc, &bytes.Buffer{})
	assert.Error(t, err)
}
