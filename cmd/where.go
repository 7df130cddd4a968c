package cmd

import (
	"github.com/colorful-cli/colorful/style"
	"github.com/colorful-cli/colorful/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", where.ConfigFile, "file", mo.Some("f")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		if short, ok := t.argShort.Get(); ok {
			whereCmd.Flags().BoolP(t.argLong, short, false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.argLong, false, t.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the paths colorful uses",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(t.argLong)) {
				cmd.Println(t.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(style.Purple).Render
		for i, t := range wherePaths {
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(style.Yellow)("--"+t.argLong))
			cmd.Println(t.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
