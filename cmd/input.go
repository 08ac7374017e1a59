package cmd

import "github.com/katalvlaran/randnet/render"

// Input contains the input for the root command
type Input struct {
	configPath     string
	seed           int64
	iterations     int
	sample         int
	onDisconnected string
	backend        string
	output         string
	createDirs     bool
	stopOnError    bool
	verbose        bool
	jsonLogger     bool

	// sink replaces the PNG writer; nil means gonum/plot.
	sink render.Sink
}
