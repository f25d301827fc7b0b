package domain

import "fmt"

// MenuAction is the closed set of outcomes a menu selection can resolve to.
type MenuAction int

const (
	// MenuInvalid is the zero value: the input matched no menu entry.
	MenuInvalid MenuAction = iota
	MenuOwnership
	MenuStructs
	MenuEnums
	MenuReliability
	MenuQuit
)

// MenuOrder is the priority in which labels are tried during resolution.
// The first action whose label matches wins.
var MenuOrder = [...]MenuAction{
	MenuOwnership,
	MenuStructs,
	MenuEnums,
	MenuReliability,
	MenuQuit,
}

var menuNames = map[MenuAction]string{
	MenuInvalid:     "Invalid",
	MenuOwnership:   "Ownership",
	MenuStructs:     "Structs",
	MenuEnums:       "Enums",
	MenuReliability: "Reliability",
	MenuQuit:        "Quit",
}

var menuLabels = map[MenuAction]string{
	MenuOwnership:   "ownership",
	MenuStructs:     "structs",
	MenuEnums:       "enums",
	MenuReliability: "reliability",
	MenuQuit:        "quit",
}

// String returns the variant name, e.g. "Ownership".
func (a MenuAction) String() string {
	if name, ok := menuNames[a]; ok {
		return name
	}
	return fmt.Sprintf("MenuAction(%d)", int(a))
}

// Label returns the canonical lowercase label used as the matching target.
// MenuInvalid (and any unknown value) has no label.
func (a MenuAction) Label() string {
	return menuLabels[a]
}

// Variant returns the qualified form shown to the user, e.g. "Menu::Ownership".
func (a MenuAction) Variant() string {
	return "Menu::" + a.String()
}

// HasLesson reports whether selecting the action presents a demonstration.
func (a MenuAction) HasLesson() bool {
	switch a {
	case MenuOwnership, MenuStructs, MenuEnums, MenuReliability:
		return true
	}
	return false
}

// ActionForLabel maps a canonical label back to its action.
func ActionForLabel(label string) (MenuAction, bool) {
	for _, a := range MenuOrder {
		if menuLabels[a] == label {
			return a, true
		}
	}
	return MenuInvalid, false
}
