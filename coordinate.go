package guidance

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
)

// EdgeID is an identifier of an edge in the underlying road graph
type EdgeID int

const (
	// Length of a segment (meters) which is representative for initial direction of an edge
	desiredSegmentLength = 10.0
)

// NodePositions resolves graph node identifiers to coordinates.
// It must be total over every node identifier supplied by the graph
type NodePositions interface {
	NodeCoordinate(id osm.NodeID) orb.Point
}

// CompressedGeometry provides interior shape nodes stored for compressed edges.
// InteriorNodes returns nodes ordered from edge start towards edge end
type CompressedGeometry interface {
	HasGeometry(edge EdgeID) bool
	InteriorNodes(edge EdgeID) []osm.NodeID
}

// NodeCoordinateMap is a map-backed NodePositions
type NodeCoordinateMap map[osm.NodeID]orb.Point

// NodeCoordinate returns coordinate for given node identifier
func (m NodeCoordinateMap) NodeCoordinate(id osm.NodeID) orb.Point {
	return m[id]
}

// EdgeGeometryMap is a map-backed CompressedGeometry
type EdgeGeometryMap map[EdgeID][]osm.NodeID

// HasGeometry reports whether given edge carries interior shape nodes
func (m EdgeGeometryMap) HasGeometry(edge EdgeID) bool {
	return len(m[edge]) != 0
}

// InteriorNodes returns interior shape nodes for given edge
func (m EdgeGeometryMap) InteriorNodes(edge EdgeID) []osm.NodeID {
	return m[edge]
}

// RepresentativeCoordinate returns the (potentially interpolated) point lying desiredSegmentLength
// away from the base endpoint of given edge, measured along the true shape of the edge.
// The base endpoint is fromNode, or toNode when the edge is traversed in reverse.
// Uncompressed edges are treated as a single straight segment and yield the far endpoint directly.
// Edges shorter than desiredSegmentLength yield the far endpoint as well
func RepresentativeCoordinate(fromNode, toNode osm.NodeID, edge EdgeID, reversed bool, geometries CompressedGeometry, nodes NodePositions) orb.Point {
	if !geometries.HasGeometry(edge) {
		if reversed {
			return nodes.NodeCoordinate(fromNode)
		}
		return nodes.NodeCoordinate(toNode)
	}

	baseNode, finalNode := fromNode, toNode
	if reversed {
		baseNode, finalNode = toNode, fromNode
	}
	baseCoordinate := nodes.NodeCoordinate(baseNode)
	finalCoordinate := nodes.NodeCoordinate(finalNode)

	interior := geometries.InteriorNodes(edge)
	current := baseCoordinate
	distanceToCurrent := 0.0
	for i := range interior {
		idx := i
		if reversed {
			idx = len(interior) - i - 1
		}
		next := nodes.NodeCoordinate(interior[idx])
		distanceToNext := distanceToCurrent + geo.DistanceHaversine(current, next)
		if distanceToNext >= desiredSegmentLength {
			return pointOnSegmentByFraction(current, next, missingDistanceFactor(distanceToCurrent, distanceToNext))
		}
		current = next
		distanceToCurrent = distanceToNext
	}

	distanceToNext := distanceToCurrent + geo.DistanceHaversine(current, finalCoordinate)
	if distanceToCurrent < desiredSegmentLength && distanceToNext >= desiredSegmentLength {
		return pointOnSegmentByFraction(current, finalCoordinate, missingDistanceFactor(distanceToCurrent, distanceToNext))
	}
	return finalCoordinate
}

// missingDistanceFactor returns interpolation fraction covering the length which
// is missing from the current segment to reach desiredSegmentLength
func missingDistanceFactor(firstDistance, secondDistance float64) float64 {
	segmentLength := secondDistance - firstDistance
	missingDistance := desiredSegmentLength - firstDistance
	return math.Max(0.0, math.Min(missingDistance/segmentLength, 1.0))
}
