// Command consolectl runs console operations from a terminal: member imports,
// database backups and development tokens.
package main

import (
	"context" // Root context
	"os"      // Exit codes

	"github.com/sirupsen/logrus" // Logging library
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
