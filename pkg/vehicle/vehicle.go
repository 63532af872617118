package vehicle

// Lanes gives the y coordinate a car drives at for its direction of travel
type Lanes interface {
	LaneFor(speed float64) float64
}
