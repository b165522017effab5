package main

import (
	"os"

	"github.com/ralt/rpmring/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	// Setup logging format; stdout is reserved for the id list
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
