package pkg

// enum of heuristic distance metrics
type HeuristicType uint8

const (
	EUCLIDEAN HeuristicType = iota
	MANHATTAN
)

func (h HeuristicType) String() string {
	switch h {
	case EUCLIDEAN:
		return "euclidean"
	case MANHATTAN:
		return "manhattan"
	default:
		return "unknown"
	}
}

func (h HeuristicType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

const (
	NOMINAL_PRIMITIVE_COST = 4.5 // cost of one nominal motion primitive, in distance units

	DEFAULT_VELOCITY_TOLERANCE   = 0.1
	DEFAULT_COLLISION_RESOLUTION = 0.5
	DEFAULT_DFS_MAX_DEPTH        = 25
)
