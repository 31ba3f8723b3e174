// Package render groups the diagram renderers.
//
// The [venn] subpackage draws two-set Venn diagrams: it places two
// overlapping circles, shades the regions that belong to an operation's
// result, labels each region with its elements and encodes the picture as
// PNG. Drawing is done in process with fogleman/gg; no external tools are
// required.
package render
