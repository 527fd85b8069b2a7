package domain

import "strings"

// boundaryMarker introduces a multipart boundary declaration in a header line
const boundaryMarker = "; boundary="

// BoundaryState is the state of the boundary scan
type BoundaryState int

const (
	SeekingBoundaryDeclaration BoundaryState = iota
	TrackingKnownBoundary
)

func (s BoundaryState) String() string {
	switch s {
	case SeekingBoundaryDeclaration:
		return "SeekingBoundaryDeclaration"
	case TrackingKnownBoundary:
		return "TrackingKnownBoundary"
	default:
		return "Unknown"
	}
}

// BoundaryScan is the state carried through a scan of a record's lines
type BoundaryScan struct {
	State  BoundaryState
	Token  string
	Offset int // Index of the last "--token" line seen, 0 if none
}

// Step folds one line into the scan and returns the next state
func (s BoundaryScan) Step(index int, line string) (BoundaryScan, error) {
	if s.Token != "" && line == "--"+s.Token {
		s.Offset = index
		s.State = TrackingKnownBoundary
		return s, nil
	}

	if strings.Contains(line, boundaryMarker) {
		eq := strings.IndexByte(line, '=')
		value := line[eq+1:]
		if value == "" {
			return s, &MalformedBoundaryError{Line: index, Text: line}
		}
		s.Token += value
		s.State = TrackingKnownBoundary
	}

	return s, nil
}

// LocateBoundary returns the zero-based index of the last line equal to
// "--" + the declared boundary token, or 0 when no such line exists.
func LocateBoundary(lines []string) (int, error) {
	var scan BoundaryScan
	for i, line := range lines {
		next, err := scan.Step(i, line)
		if err != nil {
			return 0, err
		}
		scan = next
	}
	return scan.Offset, nil
}
