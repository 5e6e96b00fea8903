package interp

// Default is the process-wide controller for hosts with a single
// first-person view. It starts bound to an empty Cell; call Bind with the
// engine's live state before the first tick.
var Default = New(&Cell{}, DefaultOptions())

// OnTick calls Default.OnTick.
func OnTick() error { return Default.OnTick() }

// Before calls Default.Before.
func Before(frameTime float64) error { return Default.Before(frameTime) }

// After calls Default.After.
func After() error { return Default.After() }

// Reset calls Default.Reset.
func Reset() { Default.Reset() }

// Bind calls Default.Bind.
func Bind(live LiveState) error { return Default.Bind(live) }
