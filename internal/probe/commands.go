package probe

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/vgui"
	"github.com/go-theft-auto/vgui/virtual"
)

// NewRootCmd creates the vprobe command with its run and range subcommands.
func NewRootCmd(version string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:          "vprobe",
		Short:        "Drive the virtualization engine without a GUI",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			vgui.SetVerbose(verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine debug output to stderr")
	cmd.AddCommand(NewRunCmd(), NewRangeCmd())
	return cmd
}

// NewRunCmd creates the run command which plays a scenario file.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Play a scenario and print every scroll and range event",
		Example: `  # Scroll a 1000 row grid and watch the window move
  vprobe run testdata/grid.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			r, err := NewRunner(sc, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer r.Close()
			return r.Run()
		},
	}
}

type rangeFlags struct {
	count     int
	size      float32
	sizes     []float32
	estimated float32
	offset    float32
	viewport  float32
	overscan  int
	scrolling bool
	backward  bool
}

// NewRangeCmd creates the range command which computes one window.
func NewRangeCmd() *cobra.Command {
	var f rangeFlags
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Compute the visible range of one axis",
		Example: `  # Rows of 20px scrolled to 450 in a 200px viewport
  vprobe range --count 1000 --size 20 --offset 450 --viewport 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRange(cmd, f)
		},
	}
	cmd.Flags().IntVar(&f.count, "count", 0, "number of items")
	cmd.Flags().Float32Var(&f.size, "size", 0, "fixed item size")
	cmd.Flags().Float32SliceVar(&f.sizes, "sizes", nil, "item sizes, repeated over the items")
	cmd.Flags().Float32Var(&f.estimated, "estimated", 0, "estimate for unmeasured dynamic items")
	cmd.Flags().Float32Var(&f.offset, "offset", 0, "scroll offset")
	cmd.Flags().Float32Var(&f.viewport, "viewport", 0, "viewport size")
	cmd.Flags().IntVar(&f.overscan, "overscan", 1, "overscan count")
	cmd.Flags().BoolVar(&f.scrolling, "scrolling", false, "compute the range of a scroll in progress")
	cmd.Flags().BoolVar(&f.backward, "backward", false, "the scroll in progress moves backward")
	return cmd
}

var errNoSize = errors.New("one of --size or --sizes is required")

func runRange(cmd *cobra.Command, f rangeFlags) error {
	if f.size == 0 && len(f.sizes) == 0 {
		return errNoSize
	}
	axis := AxisSpec{Count: f.count, Size: f.size, Sizes: f.sizes, Estimated: f.estimated}
	src := axis.source()
	// validate through a one column grid so flag errors read like config errors
	cfg := virtual.GridConfig{TotalRow: f.count, TotalColumn: 1, RowHeight: src, ColumnWidth: virtual.FixedSize(1)}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if f.viewport < 0 {
		return fmt.Errorf("viewport: %w", virtual.ErrInvalidViewport)
	}

	m := src.Model(f.count, nil)
	dir := virtual.Forward
	if f.backward {
		dir = virtual.Backward
	}
	r := virtual.CalcVisibleRange(m, f.offset, f.viewport, f.overscan, f.scrolling, dir)
	fmt.Fprintf(cmd.OutOrStdout(), "visible=%d-%d overscan=%d-%d total=%g\n", r.Start, r.Stop, r.OverscanStart, r.OverscanStop, m.EstimatedTotalSize())
	return nil
}
