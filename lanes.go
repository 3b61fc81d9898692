package guidance

// Lane markers which denote a lane without a specific turn marking
const (
	laneEmptyMarker       = '|'
	lanePlaceholderMarker = '&'
)

func isLanePlaceholder(marker byte) bool {
	return marker == laneEmptyMarker || marker == lanePlaceholderMarker
}

// TrimLaneString strips placeholder lanes from given encoded lane string.
// Public service vehicle lanes and similar can introduce additional lanes
// that are not specifically marked for turns: "left|through|" combined with
// one trailing placeholder lane will be corrected to "left|through", since the
// final lane is not drivable. A trim is refused entirely when any of the
// characters it would remove encodes a real lane marking
func TrimLaneString(laneString string, countLeft, countRight int) string {
	if countLeft > 0 {
		sane := countLeft < len(laneString)
		for i := 0; i < countLeft && sane; i++ {
			if !isLanePlaceholder(laneString[i]) {
				sane = false
			}
		}
		if sane {
			laneString = laneString[countLeft:]
		}
	}
	if countRight > 0 {
		sane := countRight < len(laneString)
		for i := 0; i < countRight && sane; i++ {
			if !isLanePlaceholder(laneString[len(laneString)-1-i]) {
				sane = false
			}
		}
		if sane {
			laneString = laneString[:len(laneString)-countRight]
		}
	}
	return laneString
}
