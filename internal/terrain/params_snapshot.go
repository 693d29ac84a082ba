package terrain

import (
	"strconv"

	"mapgen/internal/core"
)

// Parameters describes cfg for display in the viewer and the HTTP API.
func Parameters(cfg Config) core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				stringParam("seed", "Seed", cfg.Seed),
				intParam("size", "Size", cfg.MapSize),
				intParam("scale", "Draw scale", cfg.DrawScale),
			},
		},
		{
			Name: "Landmass",
			Params: []core.Parameter{
				intParam("walkers", "Walkers", cfg.Walkers),
				intParam("steps", "Steps per walker", cfg.Steps),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("workers", "Distance workers", cfg.Workers),
				boolParam("strict", "Strict geography", cfg.Strict),
				boolParam("debug", "Debug", cfg.Debug),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the integer knobs the viewer HUD can adjust.
func ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 10, Min: 10, HasMin: true, Max: 512, HasMax: true},
		{Key: "walkers", Label: "Walkers", Type: core.ParamTypeInt, Step: 10, Min: 1, HasMin: true},
		{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Step: 10, Min: 1, HasMin: true},
	}
}

// SetIntParameter updates one of the HUD-adjustable knobs on cfg.
func SetIntParameter(cfg *Config, key string, value int) bool {
	if value < 1 {
		return false
	}
	switch key {
	case "size":
		cfg.MapSize = value
	case "walkers":
		cfg.Walkers = value
	case "steps":
		cfg.Steps = value
	case "scale":
		cfg.DrawScale = value
	case "workers":
		cfg.Workers = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
