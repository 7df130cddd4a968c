package cmd

import (
	"github.com/colorful-cli/colorful/colorapi"
	"github.com/colorful-cli/colorful/key"
	"github.com/colorful-cli/colorful/render"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addSchemeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "Scheme mode (default from scheme.mode, else analogic)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colorapi.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().IntP("count", "c", 0, "Number of colors; negative values are made positive")
}

// schemeOptions reads --mode and --count, falling back to scheme.mode and scheme.count.
// Unset options are left to the service.
func schemeOptions(cmd *cobra.Command) (colorapi.SchemeOptions, error) {
	var opts colorapi.SchemeOptions

	mode := viper.GetString(key.SchemeMode)
	if cmd.Flags().Changed("mode") {
		mode = lo.Must(cmd.Flags().GetString("mode"))
	}
	if mode != "" {
		m, err := colorapi.ParseMode(mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mo.Some(m)
	}

	if cmd.Flags().Changed("count") {
		opts.Count = mo.Some(lo.Must(cmd.Flags().GetInt("count")))
	} else if count := viper.GetInt(key.SchemeCount); count != 0 {
		opts.Count = mo.Some(count)
	}

	return opts, nil
}

func init() {
	rootCmd.AddCommand(schemeCmd)
	addSpecFlags(schemeCmd)
	addSchemeFlags(schemeCmd)
	addOutputFlags(schemeCmd)
}

var schemeCmd = &cobra.Command{
	Use:   "scheme [hex]",
	Short: "Generate a palette around a seed color",
	Example: `  colorful scheme 0047AB --mode monochrome-dark
  colorful scheme --rgb 255,0,0 --mode triad --count 3 --format json`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := specFromFlags(cmd, args)
		handleErr(err)

		opts, err := schemeOptions(cmd)
		handleErr(err)

		scheme, err := colorapi.Default().Scheme(cmd.Context(), spec, opts)
		handleErr(err)

		handleErr(emit(cmd, scheme, func(opts render.Options) string {
			return render.Scheme(scheme, opts)
		}))
		handleErr(preview(cmd, scheme.Image.Named))
	},
}
