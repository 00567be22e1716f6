package main

import (
	"nlrb-data/cmd/nlrb-cli/commands"
	"nlrb-data/pkg/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
