package guidance

import (
	"testing"
)

func TestRoundaboutPartition(t *testing.T) {
	cases := []struct {
		turnType TurnType
		enters   bool
		leaves   bool
	}{
		{TURN_ENTER_ROUNDABOUT, true, false},
		{TURN_ENTER_ROTARY, true, false},
		{TURN_ENTER_ROUNDABOUT_INTERSECTION, true, false},
		{TURN_ENTER_ROUNDABOUT_AT_EXIT, true, false},
		{TURN_ENTER_ROTARY_AT_EXIT, true, false},
		{TURN_ENTER_ROUNDABOUT_INTERSECTION_AT_EXIT, true, false},
		{TURN_EXIT_ROUNDABOUT, false, true},
		{TURN_EXIT_ROTARY, false, true},
		{TURN_EXIT_ROUNDABOUT_INTERSECTION, false, true},
		{TURN_ENTER_AND_EXIT_ROUNDABOUT, true, true},
		{TURN_ENTER_AND_EXIT_ROTARY, true, true},
		{TURN_ENTER_AND_EXIT_ROUNDABOUT_INTERSECTION, true, true},
		{TURN_STAY_ON_ROUNDABOUT, false, false},
	}
	for _, c := range cases {
		instruction := TurnInstruction{Type: c.turnType, DirectionModifier: DIRECTION_STRAIGHT}
		if !HasRoundaboutType(instruction) {
			t.Errorf("Instruction %s must have roundabout type", c.turnType)
		}
		if got := EntersRoundabout(instruction); got != c.enters {
			t.Errorf("Entering roundabout for %s must be %v, but got %v", c.turnType, c.enters, got)
		}
		if got := LeavesRoundabout(instruction); got != c.leaves {
			t.Errorf("Leaving roundabout for %s must be %v, but got %v", c.turnType, c.leaves, got)
		}
	}
}

func TestNonRoundaboutTypes(t *testing.T) {
	nonRoundabout := []TurnType{
		TURN_INVALID,
		TURN_NEW_NAME,
		TURN_CONTINUE,
		TURN_TURN,
		TURN_MERGE,
		TURN_ON_RAMP,
		TURN_OFF_RAMP,
		TURN_FORK,
		TURN_END_OF_ROAD,
		TURN_NOTIFICATION,
		TURN_SLIPROAD,
		TURN_SUPPRESSED,
		TURN_NO_TURN,
	}
	for _, turnType := range nonRoundabout {
		instruction := TurnInstruction{Type: turnType, DirectionModifier: DIRECTION_STRAIGHT}
		if HasRoundaboutType(instruction) {
			t.Errorf("Instruction %s must not have roundabout type", turnType)
		}
		if EntersRoundabout(instruction) {
			t.Errorf("Instruction %s must not enter a roundabout", turnType)
		}
		if LeavesRoundabout(instruction) {
			t.Errorf("Instruction %s must not leave a roundabout", turnType)
		}
	}
}
