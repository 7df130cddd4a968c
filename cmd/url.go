package cmd

import (
	"fmt"

	"github.com/colorful-cli/colorful/colorapi"
	"github.com/colorful-cli/colorful/key"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(urlCmd)
	urlCmd.AddCommand(urlIDCmd, urlSchemeCmd)

	addSpecFlags(urlIDCmd)
	addSpecFlags(urlSchemeCmd)
	addSchemeFlags(urlSchemeCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print request URLs without sending them",
}

var urlIDCmd = &cobra.Command{
	Use:   "id [hex]",
	Short: "Print the URL describing a color",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := specFromFlags(cmd, args)
		handleErr(err)

		url, err := colorapi.IdentifyURL(viper.GetString(key.APIURL), spec)
		handleErr(err)
		fmt.Fprintln(cmd.OutOrStdout(), url)
	},
}

var urlSchemeCmd = &cobra.Command{
	Use:   "scheme [hex]",
	Short: "Print the URL generating a scheme",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := specFromFlags(cmd, args)
		handleErr(err)

		opts, err := schemeOptions(cmd)
		handleErr(err)

		url, err := colorapi.SchemeURL(viper.GetString(key.APIURL), spec, opts)
		handleErr(err)
		fmt.Fprintln(cmd.OutOrStdout(), url)
	},
}
