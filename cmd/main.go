package main

import (
	"os"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
