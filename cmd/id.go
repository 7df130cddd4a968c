package cmd

import (
	"github.com/colorful-cli/colorful/colorapi"
	"github.com/colorful-cli/colorful/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(idCmd)
	addSpecFlags(idCmd)
	addOutputFlags(idCmd)
}

var idCmd = &cobra.Command{
	Use:     "id [hex]",
	Aliases: []string{"identify"},
	Short:   "Describe a color in every color space",
	Example: `  colorful id 0047AB
  colorful id --hsl 0,100,50 --verbose
  colorful id --cmyk 0,100,100,0 --format yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := specFromFlags(cmd, args)
		handleErr(err)

		color, err := colorapi.Default().Identify(cmd.Context(), spec)
		handleErr(err)

		handleErr(emit(cmd, color, func(opts render.Options) string {
			return render.Color(color, opts)
		}))
		handleErr(preview(cmd, color.Image.Named))
	},
}
