package main

import (
	"github.com/colorful-cli/colorful/cmd"
	"github.com/colorful-cli/colorful/config"
	"github.com/colorful-cli/colorful/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
