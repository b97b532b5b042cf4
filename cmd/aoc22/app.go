package main

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc22/cave"
	"github.com/katalvlaran/aoc22/droplet"
	"github.com/katalvlaran/aoc22/elevation"
	"github.com/katalvlaran/aoc22/puzzle"
	"github.com/katalvlaran/aoc22/sensor"
	"github.com/katalvlaran/aoc22/tower"
)

// Environment variables that supply flag defaults, usually from .env.
const (
	envInputDir = "AOC22_INPUT_DIR"
	envWorkers  = "AOC22_WORKERS"
)

// app holds what every command shares: the logger, the registry and the
// values of the persistent flags.
type app struct {
	log      *logrus.Logger
	registry *puzzle.Registry

	inputDir   string
	workers    int
	areaSize   int
	format     string
	profile    string
	profileDir string
	verbose    bool

	profiler interface{ Stop() }
}

// newApp registers every solved day and seeds flag defaults from getenv.
// Unparsable numbers in the environment are ignored.
func newApp(log *logrus.Logger, getenv func(string) string) *app {
	a := &app{
		log:        log,
		registry:   puzzle.NewRegistry(log),
		inputDir:   "inputs",
		workers:    1,
		areaSize:   puzzle.DefaultAreaSize,
		format:     formatText,
		profileDir: ".",
	}
	if dir := getenv(envInputDir); dir != "" {
		a.inputDir = dir
	}
	if w, err := strconv.Atoi(getenv(envWorkers)); err == nil && w > 0 {
		a.workers = w
	}

	days := []struct {
		day   int
		name  string
		solve puzzle.SolveFunc
	}{
		{12, "hill climbing", elevation.Solve},
		{14, "regolith reservoir", cave.Solve},
		{15, "beacon exclusion zone", sensor.Solve},
		{17, "pyroclastic flow", tower.Solve},
		{18, "boiling boulders", droplet.Solve},
	}
	for _, d := range days {
		if err := a.registry.Add(d.day, d.name, d.solve); err != nil {
			panic(err)
		}
	}

	return a
}

// stopProfile flushes and closes a running profile. It is safe to call
// when none was started.
func (a *app) stopProfile() {
	if a.profiler != nil {
		a.profiler.Stop()
		a.profiler = nil
	}
}

// config turns the flag values into solver parameters.
func (a *app) config() puzzle.Config {
	return puzzle.Config{AreaSize: a.areaSize, Workers: a.workers}
}
