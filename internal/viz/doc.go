// Package viz rasterizes scene views for the terminal.
//
//   - [Canvas]: braille sub-pixel grid with a text overlay for vertex labels
//   - [Theme] and [Styles]: built-in color schemes and the lipgloss styles
//     derived from them
//
// A view laid out on a 1000 x 475 drawing surface is scaled uniformly into the
// canvas, so the cube keeps its proportions at any terminal size.
package viz
