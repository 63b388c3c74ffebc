// Package app runs one plots invocation: load the grid text named by the
// configuration, decompose and score it, print the totals and, when asked,
// a per-region report and an interactive colored map.
package app
