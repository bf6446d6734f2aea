package main

import (
	"os"

	"github.com/RyanBlaney/vox-prisma/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(err, "command failed")
		os.Exit(1)
	}
}
