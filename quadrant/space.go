package quadrant

import "fmt"

// Space fixes the dimension and maximum refinement level that every
// Quadrant operation is performed against. It plays the role the compile
// time P4_TO_P8 switch and P4EST_MAXLEVEL constant play in the original
// implementation, but as an explicit, run time value instead of a build
// tag, so one process can be linked against either geometry.
type Space struct {
	Dim      int
	MaxLevel uint8
}

// MaxLevel2D and MaxLevel3D are chosen, as in the original, so that root
// coordinates fit in an int32: 2*30 = 60 interleaved bits for 2D and 3*19 =
// 57 for 3D.
const (
	MaxLevel2D uint8 = 30
	MaxLevel3D uint8 = 19
)

// NewSpace builds the Space for dim (2 or 3), using the standard maximum
// refinement level for that dimension.
func NewSpace(dim int) Space {
	switch dim {
	case 2:
		return Space{Dim: 2, MaxLevel: MaxLevel2D}
	case 3:
		return Space{Dim: 3, MaxLevel: MaxLevel3D}
	default:
		panic(fmt.Sprintf("quadrant: unsupported dimension %d", dim))
	}
}

// NumChildren returns 2^Dim: the size of a family.
func (s Space) NumChildren() int {
	return 1 << uint(s.Dim)
}

// Root returns R = 2^MaxLevel, the side length of the unit root in the
// finest-level coordinate system.
func (s Space) Root() int32 {
	return int32(1) << s.MaxLevel
}

// SideLength returns h(level) = R / 2^level.
func (s Space) SideLength(level uint8) int32 {
	if level > s.MaxLevel {
		panic("quadrant: level exceeds MaxLevel")
	}
	return int32(1) << (s.MaxLevel - level)
}

func (s Space) assertSameSpace(o Space) {
	if s != o {
		panic("quadrant: mismatched spaces")
	}
}
