package model

// TransportMode is a closed enumeration of supported transport modes
type TransportMode string

const (
	ModeWalk    TransportMode = "walk"
	ModeTransit TransportMode = "transit"
	ModeCar     TransportMode = "car"
)

// ParseTransportMode validates a mode string from an external caller
func ParseTransportMode(s string) (TransportMode, error) {
	switch TransportMode(s) {
	case ModeWalk, ModeTransit, ModeCar:
		return TransportMode(s), nil
	default:
		return "", ErrInvalidMode
	}
}
