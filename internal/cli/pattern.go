package cli

import "github.com/spf13/cobra"

type elementOut struct {
	Literal string `json:"literal,omitempty"`
	Token   string `json:"token,omitempty"`
	Segment string `json:"segment,omitempty"`
}

func newPatternCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern",
		Short: "Show the layout the locale (or --pattern) produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings()
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := newState(s)
			if err != nil {
				return writeErr(cmd, err)
			}
			var elems []elementOut
			for _, el := range st.Layout() {
				if !el.IsSegment() {
					elems = append(elems, elementOut{Literal: el.Literal})
					continue
				}
				seg := st.Segment(el.Segment)
				elems = append(elems, elementOut{Token: seg.Token(), Segment: string(seg.Kind())})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"locale":      s.cfg.Locale.String(),
				"maxDetail":   string(s.cfg.MaxDetail),
				"placeholder": st.Placeholder(),
				"divider":     st.Divider(),
				"elements":    elems,
			}})
		},
	}
}
