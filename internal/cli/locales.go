package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"datefield/internal/locale"
)

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the environment locale and the languages with month names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := locale.NewCatalog()
			if err != nil {
				return writeErr(cmd, err)
			}
			var langs []string
			for _, tag := range catalog.Languages() {
				langs = append(langs, tag.String())
			}
			sort.Strings(langs)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"default":    locale.Default().String(),
				"monthNames": langs,
			}})
		},
	}
}
