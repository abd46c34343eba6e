// chessrules is a command line front end for the chess rules engine.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chessrules-go/internal/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := chessrules(); err != nil {
		logrus.Fatal(err)
	}
}

func chessrules() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
