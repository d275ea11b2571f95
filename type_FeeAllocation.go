package stash

import "fmt"

// FeeAllocation defines how the fees of a disposition are charged to the lots it consumes.
type FeeAllocation int

const (
	// FeesPerLot charges the full disposition fees to every lot touched by the disposition.
	// A disposition spanning two lots therefore deducts its fees twice from the proceeds.
	FeesPerLot FeeAllocation = iota
	// FeesProRata splits the disposition fees across the touched lots, proportionally to the consumed quantity.
	FeesProRata
)

func (m FeeAllocation) String() string {
	switch m {
	case FeesPerLot:
		return "per-lot"
	case FeesProRata:
		return "pro-rata"
	default:
		return "unknown"
	}
}

// ParseFeeAllocation parses a string into a FeeAllocation.
func ParseFeeAllocation(s string) (FeeAllocation, error) {
	switch s {
	case "per-lot", "":
		return FeesPerLot, nil
	case "pro-rata":
		return FeesProRata, nil
	default:
		return 0, fmt.Errorf("unknown fee allocation: %q", s)
	}
}

// Set implements flag.Value.
func (m *FeeAllocation) Set(s string) error {
	v, err := ParseFeeAllocation(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
