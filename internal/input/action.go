// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

// Action is a symbolic game command with zero or more bound keys. The
// string value is the identifier used in keybinding files and in
// <press_ACTION> help tokens.
type Action string

const (
	ActMoveNorthwest Action = "move_nw"
	ActMoveNorth     Action = "move_n"
	ActMoveNortheast Action = "move_ne"
	ActMoveWest      Action = "move_w"
	ActPause         Action = "pause"
	ActMoveEast      Action = "move_e"
	ActMoveSouthwest Action = "move_sw"
	ActMoveSouth     Action = "move_s"
	ActMoveSoutheast Action = "move_se"

	ActQuit    Action = "quit"
	ActConfirm Action = "confirm"
	ActHelp    Action = "help"

	ActInventory Action = "inventory"
	ActExamine   Action = "examine"
	ActOpen      Action = "open"
	ActSmash     Action = "smash"
	ActPickup    Action = "pickup"
	ActApply     Action = "apply"
	ActWear      Action = "wear"
	ActCraft     Action = "craft"
	ActMap       Action = "map"
	ActSleep     Action = "sleep"
	ActWait      Action = "wait"
	ActAnnotate  Action = "annotate"
)

// Ident returns the identifier used in data files and help tokens.
func (a Action) Ident() string { return string(a) }

// actionLabels are the translatable display names for actions.
var actionLabels = map[Action]string{
	ActMoveNorthwest: "Move northwest",
	ActMoveNorth:     "Move north",
	ActMoveNortheast: "Move northeast",
	ActMoveWest:      "Move west",
	ActPause:         "Pause",
	ActMoveEast:      "Move east",
	ActMoveSouthwest: "Move southwest",
	ActMoveSouth:     "Move south",
	ActMoveSoutheast: "Move southeast",
	ActQuit:          "Quit",
	ActConfirm:       "Confirm",
	ActHelp:          "Help",
	ActInventory:     "Open inventory",
	ActExamine:       "Examine",
	ActOpen:          "Open door or container",
	ActSmash:         "Smash",
	ActPickup:        "Pick up items",
	ActApply:         "Apply or use item",
	ActWear:          "Wear item",
	ActCraft:         "Craft",
	ActMap:           "View map",
	ActSleep:         "Sleep",
	ActWait:          "Wait",
	ActAnnotate:      "Annotate map",
}
