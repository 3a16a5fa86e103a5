// @MX:ANCHOR: [AUTO] main is the create-silence entry point. Unexpected errors exit with status 1.
// @MX:REASON: Sole entry point of the binary; delegates to cli.Execute
package main

import (
	"os"

	"github.com/silence-cli/create-silence/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
