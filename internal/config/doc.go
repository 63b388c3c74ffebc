// Package config holds the run configuration of the plots command: where the
// grid comes from, how it is decomposed and how results are reported. Values
// may come from an optional HCL file and are overridden by command-line flags.
//
// Example file:
//
//	input      = "garden.txt"
//	strategy   = "flood"   # or "merge"
//	workers    = 4
//	report     = true
//	view       = false
//	seed       = 42
//	log_level  = "info"
//	log_format = "text"
package config
