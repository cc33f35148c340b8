// Package config loads kfe run configuration from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected.
//
//	shape:    {classes: 2, features: 100, realizations: 100}
//	params:   {delta: 50, selec: 0.5}
//	optimize: {delta_min: 25, delta_max: 75, delta_step: 1, include_zero_delta: true,
//	           selec_min: 0.25, selec_max: 0.75, selec_step: 0.01, tolerance: 1e-6}
//	log:      {level: info, console: true}
//	store:    {kind: memory, path: ""}
package config
