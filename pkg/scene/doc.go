// Package scene defines the renderable constructs produced by evaluating a
// script: point sets, segment lists and polyline strips, each with a colour
// and a content-derived identifier.
package scene
