package constants

import (
	"math"
	"time"
)

// Frame Loop Timing
const (
	// TickInterval paces the frame loop; every tick drains input,
	// runs motion, and redraws when state changed
	TickInterval = 10 * time.Millisecond

	// HoldWindow is how long a key counts as held after its last
	// observed event; must exceed the terminal's key-repeat delay or
	// held keys flicker between repeats
	HoldWindow = 320 * time.Millisecond
)

// Movement & Camera
const (
	// MoveStep is the per-tick travel distance in map-cell units
	MoveStep = 0.06

	// RotStep is the per-tick rotation in radians
	RotStep = 0.04

	// TiltStep is the per-tick vertical camera shift in screen rows
	TiltStep = 1

	// TiltLimit bounds camera tilt to [-TiltLimit, +TiltLimit] rows
	TiltLimit = 10
)

// FOV is the horizontal field of view in radians
const FOV = 60 * math.Pi / 180

// Ray Marching
//
// StepLength and MaxSteps are coupled: together they bound both the
// sampling precision and the maximum render distance
// (MaxSteps * StepLength = 12 map units). Change them together.
const (
	StepLength = 0.03
	MaxSteps   = 400

	// MissDistance is returned when a ray exhausts its step budget
	// without leaving the grid or striking a wall
	MissDistance = 15.0

	// DistEpsilon guards the wall-height division at distance zero
	DistEpsilon = 1e-6
)

// EventQueueSize is the capacity of the terminal event channel; input
// bursts beyond this stall the poller, never the frame loop
const EventQueueSize = 256
