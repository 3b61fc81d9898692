package guidance

// HasRoundaboutType reports whether given instruction is one of the
// roundabout/rotary maneuver types
func HasRoundaboutType(instruction TurnInstruction) bool {
	switch instruction.Type {
	case TURN_ENTER_ROUNDABOUT,
		TURN_ENTER_AND_EXIT_ROUNDABOUT,
		TURN_ENTER_ROTARY,
		TURN_ENTER_AND_EXIT_ROTARY,
		TURN_ENTER_ROUNDABOUT_INTERSECTION,
		TURN_ENTER_AND_EXIT_ROUNDABOUT_INTERSECTION,
		TURN_ENTER_ROUNDABOUT_AT_EXIT,
		TURN_EXIT_ROUNDABOUT,
		TURN_ENTER_ROTARY_AT_EXIT,
		TURN_EXIT_ROTARY,
		TURN_ENTER_ROUNDABOUT_INTERSECTION_AT_EXIT,
		TURN_EXIT_ROUNDABOUT_INTERSECTION,
		TURN_STAY_ON_ROUNDABOUT:
		return true
	}
	return false
}

// EntersRoundabout reports whether given instruction brings the traveler onto
// a roundabout or rotary
func EntersRoundabout(instruction TurnInstruction) bool {
	switch instruction.Type {
	case TURN_ENTER_ROUNDABOUT,
		TURN_ENTER_ROTARY,
		TURN_ENTER_ROUNDABOUT_INTERSECTION,
		TURN_ENTER_ROUNDABOUT_AT_EXIT,
		TURN_ENTER_ROTARY_AT_EXIT,
		TURN_ENTER_ROUNDABOUT_INTERSECTION_AT_EXIT,
		TURN_ENTER_AND_EXIT_ROUNDABOUT,
		TURN_ENTER_AND_EXIT_ROTARY,
		TURN_ENTER_AND_EXIT_ROUNDABOUT_INTERSECTION:
		return true
	}
	return false
}

// LeavesRoundabout reports whether given instruction takes the traveler off
// a roundabout or rotary
func LeavesRoundabout(instruction TurnInstruction) bool {
	switch instruction.Type {
	case TURN_EXIT_ROUNDABOUT,
		TURN_EXIT_ROTARY,
		TURN_EXIT_ROUNDABOUT_INTERSECTION,
		TURN_ENTER_AND_EXIT_ROUNDABOUT,
		TURN_ENTER_AND_EXIT_ROTARY,
		TURN_ENTER_AND_EXIT_ROUNDABOUT_INTERSECTION:
		return true
	}
	return false
}
