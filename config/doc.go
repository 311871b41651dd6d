// Package config loads the versioned YAML configuration of dsaviz:
// engine pacing defaults, the bridge address, logging, and the presets
// the catalog falls back to for empty inputs.
//
//	version: 1
//	engine:  { pacing_ms: 300, manual: false }
//	server:  { addr: ":8080", retain: 10m }
//	log:     { level: info, format: text }
//	presets:
//	  words:  [apple, application]
//	  jobs:   [{name: Compile Code, duration: 2000, deadline: 5000, priority: 2}]
//	  sudoku: { easy: [[...]] }
//	  graph:  { nodes: 12, width: 800, height: 500, radius: 150, keep_probability: 0.6, seed: 1 }
//	  hash:   { table_size: 10, policy: chaining }
//
// A document is decoded over Default(), so every omitted key keeps its
// default value.
package config
