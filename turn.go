package guidance

import (
	"math"
)

// DirectionModifier is one of eight compass-relative turn descriptors.
// The order around the compass is fixed: it is shared by the mirror table
// and by angle classification and must stay in sync with the guidance pipeline
type DirectionModifier uint16

const (
	DIRECTION_UTURN = DirectionModifier(iota)
	DIRECTION_SHARP_RIGHT
	DIRECTION_RIGHT
	DIRECTION_SLIGHT_RIGHT
	DIRECTION_STRAIGHT
	DIRECTION_SLIGHT_LEFT
	DIRECTION_LEFT
	DIRECTION_SHARP_LEFT

	directionModifiersNum = 8
)

func (iotaIdx DirectionModifier) String() string {
	return [...]string{"uturn", "sharp_right", "right", "slight_right", "straight", "slight_left", "left", "sharp_left"}[iotaIdx]
}

// TurnType classifies a maneuver at an intersection
type TurnType uint16

const (
	TURN_INVALID = TurnType(iota)
	TURN_NEW_NAME
	TURN_CONTINUE
	TURN_TURN
	TURN_MERGE
	TURN_ON_RAMP
	TURN_OFF_RAMP
	TURN_FORK
	TURN_END_OF_ROAD
	TURN_NOTIFICATION
	TURN_ENTER_ROUNDABOUT
	TURN_ENTER_AND_EXIT_ROUNDABOUT
	TURN_ENTER_ROTARY
	TURN_ENTER_AND_EXIT_ROTARY
	TURN_ENTER_ROUNDABOUT_INTERSECTION
	TURN_ENTER_AND_EXIT_ROUNDABOUT_INTERSECTION
	TURN_ENTER_ROUNDABOUT_AT_EXIT
	TURN_EXIT_ROUNDABOUT
	TURN_ENTER_ROTARY_AT_EXIT
	TURN_EXIT_ROTARY
	TURN_ENTER_ROUNDABOUT_INTERSECTION_AT_EXIT
	TURN_EXIT_ROUNDABOUT_INTERSECTION
	TURN_STAY_ON_ROUNDABOUT
	TURN_SLIPROAD
	TURN_SUPPRESSED
	TURN_NO_TURN
)

func (iotaIdx TurnType) String() string {
	return [...]string{"invalid", "new_name", "continue", "turn", "merge", "on_ramp", "off_ramp", "fork", "end_of_road", "notification", "enter_roundabout", "enter_and_exit_roundabout", "enter_rotary", "enter_and_exit_rotary", "enter_roundabout_intersection", "enter_and_exit_roundabout_intersection", "enter_roundabout_at_exit", "exit_roundabout", "enter_rotary_at_exit", "exit_rotary", "enter_roundabout_intersection_at_exit", "exit_roundabout_intersection", "stay_on_roundabout", "sliproad", "suppressed", "no_turn"}[iotaIdx]
}

// TurnInstruction pairs a maneuver type with its compass-relative direction
type TurnInstruction struct {
	Type              TurnType
	DirectionModifier DirectionModifier
}

// Turn is a maneuver onto a connected road. Angle is measured in degrees,
// range [0;360), counter-clockwise with 0 pointing back at the incoming road
type Turn struct {
	Angle       float64
	Instruction TurnInstruction
}

// ConnectedRoad is a candidate road at an intersection together with the turn onto it
type ConnectedRoad struct {
	Turn         Turn
	EntryAllowed bool
}

// mirroredModifiers swaps every left-hand variant with its right-hand
// counterpart and maps straight/uturn to themselves
var mirroredModifiers = [directionModifiersNum]DirectionModifier{
	DIRECTION_UTURN:        DIRECTION_UTURN,
	DIRECTION_SHARP_RIGHT:  DIRECTION_SHARP_LEFT,
	DIRECTION_RIGHT:        DIRECTION_LEFT,
	DIRECTION_SLIGHT_RIGHT: DIRECTION_SLIGHT_LEFT,
	DIRECTION_STRAIGHT:     DIRECTION_STRAIGHT,
	DIRECTION_SLIGHT_LEFT:  DIRECTION_SLIGHT_RIGHT,
	DIRECTION_LEFT:         DIRECTION_RIGHT,
	DIRECTION_SHARP_LEFT:   DIRECTION_SHARP_RIGHT,
}

var float64Epsilon = math.Nextafter(1, 2) - 1

// Mirror turns a left-hand turn into the equivalent right-hand turn and vice
// versa. It allows intersection handling logic to be written once for a single
// traffic-hand convention and reused for the other by mirroring inputs before,
// and outputs after, the call
func Mirror(road ConnectedRoad) ConnectedRoad {
	if AngularDeviation(road.Turn.Angle, 0) > float64Epsilon {
		road.Turn.Angle = 360 - road.Turn.Angle
		road.Turn.Instruction.DirectionModifier = mirroredModifiers[road.Turn.Instruction.DirectionModifier]
	}
	return road
}

// TurnDirection classifies a turn angle into a direction modifier.
// An angle of zero is a uturn, 180 goes perfectly straight,
// 0-180 are right turns and 180-360 are left turns
func TurnDirection(angle float64) DirectionModifier {
	if angle > 0 && angle < 60 {
		return DIRECTION_SHARP_RIGHT
	}
	if angle >= 60 && angle < 140 {
		return DIRECTION_RIGHT
	}
	if angle >= 140 && angle < 160 {
		return DIRECTION_SLIGHT_RIGHT
	}
	if angle >= 160 && angle <= 200 {
		return DIRECTION_STRAIGHT
	}
	if angle > 200 && angle < 220 {
		return DIRECTION_SLIGHT_LEFT
	}
	if angle >= 220 && angle < 300 {
		return DIRECTION_LEFT
	}
	if angle >= 300 && angle < 340 {
		return DIRECTION_SHARP_LEFT
	}
	return DIRECTION_UTURN
}
