package systems

import (
	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into every viewer's Input component.
// Must run BEFORE UpdateViewer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	current := pollActions()
	tags.Viewer.Each(ecs.World, func(entry *donburi.Entry) {
		ApplyInput(components.Input.Get(entry), current)
	})
}

// ApplyInput shifts the tick's pressed state into input.
func ApplyInput(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
}

func pollActions() [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge analog sticks: left stick moves, right stick looks
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		current[cfg.ActionStrafeLeft] = current[cfg.ActionStrafeLeft] || lx < -deadzone
		current[cfg.ActionStrafeRight] = current[cfg.ActionStrafeRight] || lx > deadzone
		current[cfg.ActionMoveForward] = current[cfg.ActionMoveForward] || ly < -deadzone
		current[cfg.ActionMoveBack] = current[cfg.ActionMoveBack] || ly > deadzone
		current[cfg.ActionTurnLeft] = current[cfg.ActionTurnLeft] || rx < -deadzone
		current[cfg.ActionTurnRight] = current[cfg.ActionTurnRight] || rx > deadzone
		current[cfg.ActionLookUp] = current[cfg.ActionLookUp] || ry < -deadzone
		current[cfg.ActionLookDown] = current[cfg.ActionLookDown] || ry > deadzone
	}

	return current
}
