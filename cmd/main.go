package main

import (
	"os"

	"github.com/soundprediction/patternrecall/cmd/patternrecall"
)

func main() {
	if err := patternrecall.Execute(); err != nil {
		os.Exit(1)
	}
}
