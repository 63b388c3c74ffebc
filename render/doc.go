// Package render draws a region.Partition on a terminal screen, one color
// per region. It is a presentation collaborator only: the grid, region,
// boundary and score packages never import it.
//
// Colors come from a seeded HSV palette, so the same seed always paints the
// same region the same way. Screens are tcell screens; tests use
// tcell.NewSimulationScreen.
package render
