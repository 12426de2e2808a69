package components

import "image/color"

// Marker stores how a target is drawn and labeled in the demo view.
type Marker struct {
	Name  string
	Color color.Color
}
