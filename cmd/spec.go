package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/colorful-cli/colorful/colorapi"
	"github.com/colorful-cli/colorful/filesystem"
	"github.com/colorful-cli/colorful/icon"
	"github.com/colorful-cli/colorful/key"
	"github.com/colorful-cli/colorful/open"
	"github.com/colorful-cli/colorful/render"
	"github.com/colorful-cli/colorful/style"
	"github.com/colorful-cli/colorful/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var specKinds = []string{colorapi.KindRGB, colorapi.KindCMYK, colorapi.KindHSL, colorapi.KindHex}

// addSpecFlags registers the mutually exclusive color flags. A single
// positional argument is read as a hex color.
func addSpecFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(colorapi.KindRGB, "", "Red, green and blue channels, e.g. 255,0,0")
	flags.String(colorapi.KindCMYK, "", "Cyan, magenta, yellow and key components, e.g. 0,100,100,0")
	flags.String(colorapi.KindHSL, "", "Hue, saturation and lightness, e.g. 0,100,50")
	flags.String(colorapi.KindHex, "", "Hexadecimal notation, e.g. #FF0000")
	flags.String("unit", "", "Unit appended to hsl saturation and lightness (default %)")

	cmd.MarkFlagsMutuallyExclusive(specKinds...)
	cmd.Args = cobra.MaximumNArgs(1)
}

func specFromFlags(cmd *cobra.Command, args []string) (colorapi.Spec, error) {
	unit := mo.None[rune]()
	if u := lo.Must(cmd.Flags().GetString("unit")); u != "" {
		if utf8.RuneCountInString(u) != 1 {
			return nil, fmt.Errorf("unit must be a single character, got %q", u)
		}
		r, _ := utf8.DecodeRuneInString(u)
		unit = mo.Some(r)
	}

	for _, kind := range specKinds {
		if cmd.Flags().Changed(kind) {
			if len(args) > 0 {
				return nil, fmt.Errorf("both --%s and an argument given", kind)
			}
			return colorapi.ParseSpec(kind, lo.Must(cmd.Flags().GetString(kind)), unit)
		}
	}

	if len(args) == 1 {
		return colorapi.Hex(args[0]), nil
	}

	return nil, errors.New("a color is required: pass --rgb, --cmyk, --hsl, --hex or a hex argument")
}

// addOutputFlags registers --format, --verbose and --output. The first two
// are bound to their config keys when the command runs.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format (text, json, yaml)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.Formats, cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().BoolP("verbose", "V", false, "Describe every color space")
	cmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().Bool("open", false, "Open the service's preview image in the browser")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		lo.Must0(viper.BindPFlag(key.OutputFormat, cmd.Flags().Lookup("format")))
		lo.Must0(viper.BindPFlag(key.OutputVerbose, cmd.Flags().Lookup("verbose")))
	}
}

// preview opens link when --open is set.
func preview(cmd *cobra.Command, link string) error {
	if !lo.Must(cmd.Flags().GetBool("open")) {
		return nil
	}

	target, err := open.Resolve(viper.GetString(key.APIURL), link)
	if err != nil {
		return err
	}

	cmd.PrintErrf("%s opening %s\n", icon.Get(icon.Link), target)
	return open.Start(target)
}

// emit writes v in the configured format. text renders it for the terminal.
func emit(cmd *cobra.Command, v any, text func(render.Options) string) error {
	format, err := render.ParseFormat(viper.GetString(key.OutputFormat))
	if err != nil {
		return err
	}

	output := lo.Must(cmd.Flags().GetString("output"))

	var (
		buf bytes.Buffer
		w   io.Writer = cmd.OutOrStdout()
	)
	if output != "" {
		w = &buf
	}

	if format == render.FormatText {
		opts := render.Options{
			Verbose:     viper.GetBool(key.OutputVerbose),
			SwatchWidth: viper.GetInt(key.OutputSwatchWidth),
			Width:       util.TerminalWidth(0),
		}
		if output != "" {
			opts.SwatchWidth = 0
			opts.Width = 0
		}

		_, err = fmt.Fprintln(w, text(opts))
	} else {
		err = render.Encode(w, v, format)
	}
	if err != nil || output == "" {
		return err
	}

	if err := filesystem.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	cmd.PrintErrf("%s wrote %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), output)
	return nil
}
