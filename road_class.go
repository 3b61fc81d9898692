package guidance

// RoadClass is a functional category of a road in the fixed ranked taxonomy
type RoadClass uint16

const (
	ROAD_UNKNOWN = RoadClass(iota)
	ROAD_MOTORWAY
	ROAD_MOTORWAY_LINK
	ROAD_TRUNK
	ROAD_TRUNK_LINK
	ROAD_PRIMARY
	ROAD_PRIMARY_LINK
	ROAD_SECONDARY
	ROAD_SECONDARY_LINK
	ROAD_TERTIARY
	ROAD_TERTIARY_LINK
	ROAD_UNCLASSIFIED
	ROAD_RESIDENTIAL
	ROAD_SERVICE
	ROAD_LIVING_STREET
	ROAD_LOW_PRIORITY

	roadClassesNum = 16
)

func (iotaIdx RoadClass) String() string {
	return [...]string{"unknown", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "unclassified", "residential", "service", "living_street", "low_priority"}[iotaIdx]
}

// Road priorities indicate which roads can be seen as more or less equal.
// They are used in fork discovery: a fork can happen between road classes
// that are at most 1 priority apart from each other. Lower value means
// higher priority, reserved slots hold the neutral mid-value
var roadPriority = [roadClassesNum]int{
	ROAD_UNKNOWN:        10,
	ROAD_MOTORWAY:       0,
	ROAD_MOTORWAY_LINK:  10,
	ROAD_TRUNK:          2,
	ROAD_TRUNK_LINK:     10,
	ROAD_PRIMARY:        4,
	ROAD_PRIMARY_LINK:   10,
	ROAD_SECONDARY:      6,
	ROAD_SECONDARY_LINK: 10,
	ROAD_TERTIARY:       8,
	ROAD_TERTIARY_LINK:  10,
	ROAD_UNCLASSIFIED:   11,
	ROAD_RESIDENTIAL:    10,
	ROAD_SERVICE:        12,
	ROAD_LIVING_STREET:  10,
	ROAD_LOW_PRIORITY:   14,
}

// Priority returns ranking value for given road class.
// Panics on a road class outside of the closed taxonomy
func Priority(roadClass RoadClass) int {
	return roadPriority[roadClass]
}

// IsLowPriorityRoad reports whether given road class belongs to minor service-grade roads
func IsLowPriorityRoad(roadClass RoadClass) bool {
	return roadClass == ROAD_LOW_PRIORITY || roadClass == ROAD_SERVICE
}

// CanBeSeenAsFork reports whether two road classes are of similar enough rank
// to present diverging branches as a fork
func CanBeSeenAsFork(first, second RoadClass) bool {
	diff := Priority(first) - Priority(second)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
