package server

import (
	"time"

	"github.com/flixhummel/mcduterm/internal/datapoint"
)

// ClockAddr is the simulated cabin clock datapoint, kept on wall time by the
// running server.
const ClockAddr = "system.clock.time"

func f(v float64) *float64 { return &v }

// SeedSimulation installs the default simulated datapoints. The addresses
// line up with the default page templates so a freshly started terminal and
// simulator work together out of the box.
func SeedSimulation(store *datapoint.MemStore) {
	store.Define("cabin.temp.setpoint",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeNumber, Min: f(15), Max: f(30), Unit: "C"},
		datapoint.NumberValue(21.5),
	)
	store.Define("cabin.temp.actual",
		datapoint.Metadata{Writable: false, Type: datapoint.TypeNumber, Unit: "C"},
		datapoint.NumberValue(22.8),
	)
	store.Define("cabin.lights.main",
		datapoint.Metadata{
			Writable: true,
			Type:     datapoint.TypeBoolean,
			States:   map[string]string{"0": "OFF", "1": "ON"},
		},
		datapoint.BoolValue(true),
	)
	store.Define("cabin.fan.enabled",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeBoolean},
		datapoint.BoolValue(false),
	)
	store.Define("cabin.fan.speed",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeNumber, Min: f(0), Max: f(100), Unit: "%"},
		datapoint.NumberValue(40),
	)
	store.Define("cabin.wake.time",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeString},
		datapoint.StringValue("06:30"),
	)
	store.Define("system.serial",
		datapoint.Metadata{Writable: false, Type: datapoint.TypeString},
		datapoint.StringValue("SIM-315260240"),
	)
	store.Define("system.label",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeString},
		datapoint.StringValue("CABIN A"),
	)
	store.Define("system.reboot",
		datapoint.Metadata{Writable: true, Type: datapoint.TypeBoolean},
		datapoint.BoolValue(false),
	)
	store.Define(ClockAddr,
		datapoint.Metadata{Writable: true, Type: datapoint.TypeString},
		datapoint.StringValue(time.Now().Format("15:04")),
	)
}
