package guidance

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// EdgeShapeGeoJSON returns GeoJSON representation of the traversed edge shape
// together with its representative coordinate. Helpful for debugging sampled
// turn bearings in any GeoJSON viewer
func EdgeShapeGeoJSON(fromNode, toNode osm.NodeID, edge EdgeID, reversed bool, geometries CompressedGeometry, nodes NodePositions) ([]byte, error) {
	baseNode, finalNode := fromNode, toNode
	if reversed {
		baseNode, finalNode = toNode, fromNode
	}

	shape := []orb.Point{nodes.NodeCoordinate(baseNode)}
	if geometries.HasGeometry(edge) {
		interior := geometries.InteriorNodes(edge)
		for i := range interior {
			idx := i
			if reversed {
				idx = len(interior) - i - 1
			}
			shape = append(shape, nodes.NodeCoordinate(interior[idx]))
		}
	}
	shape = append(shape, nodes.NodeCoordinate(finalNode))

	pts2d := make([][]float64, len(shape))
	for i := range shape {
		pts2d[i] = []float64{shape[i].Lon(), shape[i].Lat()}
	}

	representative := RepresentativeCoordinate(fromNode, toNode, edge, reversed, geometries, nodes)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry(pts2d)))
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{representative.Lon(), representative.Lat()})))

	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can not convert edge shape to geojson format")
	}
	return b, nil
}
