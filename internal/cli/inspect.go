package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"datefield/internal/bounds"
	"datefield/internal/dateinput"
)

func newState(s settings) (dateinput.State, error) {
	return dateinput.New(s.cfg, s.value, s.env)
}

type segmentOut struct {
	Segment string       `json:"segment"`
	Token   string       `json:"token"`
	Text    string       `json:"text"`
	Display string       `json:"display"`
	Valid   bool         `json:"valid"`
	Bounds  bounds.Range `json:"bounds"`
}

func segmentsOut(st dateinput.State) []segmentOut {
	var out []segmentOut
	for _, seg := range st.Segments() {
		out = append(out, segmentOut{
			Segment: string(seg.Kind()),
			Token:   seg.Token(),
			Text:    seg.Text(),
			Display: seg.Display(),
			Valid:   seg.Valid(),
			Bounds:  seg.Bounds(),
		})
	}
	return out
}

func newBoundsCmd(app *App) *cobra.Command {
	var year, month string
	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Show the allowed year, month and day ranges under --min/--max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings()
			if err != nil {
				return writeErr(cmd, err)
			}
			y, err := optionalFlagInt("year", year)
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := optionalFlagInt("month", month)
			if err != nil {
				return writeErr(cmd, err)
			}
			lim := s.cfg.Limits
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"year":  bounds.Year(lim.Min, lim.Max),
				"month": bounds.Month(lim.Min, lim.Max, y),
				"day":   bounds.Day(lim.Min, lim.Max, m, y),
			}})
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "Year the month and day ranges are computed for")
	cmd.Flags().StringVar(&month, "month", "", "Month the day range is computed for")
	return cmd
}

func optionalFlagInt(flag, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &invalidFlagError{flag: flag, value: raw, err: err}
	}
	return &n, nil
}

func newDecomposeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose [value]",
		Short: "Split a value into the segments the field would show",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				app.Value = args[0]
			}
			s, err := app.settings()
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := newState(s)
			if err != nil {
				return writeErr(cmd, err)
			}
			native := st.Native()
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"placeholder": st.Placeholder(),
				"segments":    segmentsOut(st),
				"value":       encodeValue(st.Value(), s.cfg.MaxDetail),
				"native": map[string]any{
					"type": native.InputType(),
					"text": native.Text(),
					"min":  native.Min(),
					"max":  native.Max(),
				},
			}})
		},
	}
}

func newComposeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compose <segment>...",
		Short: "Type segment texts in layout order and report the resulting value",
		Example: `  datefield compose 9 20 2017
  datefield compose --locale de 20 9 2017
  datefield compose --pattern dd.MM 5 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Value = ""
			s, err := app.settings()
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := newState(s)
			if err != nil {
				return writeErr(cmd, err)
			}
			if n := len(st.Segments()); len(args) != n {
				return writeErr(cmd, &segmentCountError{want: n, got: len(args), placeholder: st.Placeholder()})
			}

			var last dateinput.Output
			for i, text := range args {
				var outs []dateinput.Output
				st, outs = dateinput.Update(st, dateinput.Input{Index: i, Text: text})
				for _, o := range outs {
					last = o
				}
			}
			out := resultOut{Invalid: true}
			if c, ok := last.(dateinput.Change); ok && !st.Invalid() {
				out = resultOut{Value: encodeValue(c.Value, s.cfg.MaxDetail)}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"result":   out,
				"segments": segmentsOut(st),
			}})
		},
	}
}
