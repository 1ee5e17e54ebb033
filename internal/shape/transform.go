package shape

// Transformation is a single rigid transform applied to a shape before
// normalization.
type Transformation int

const (
	FlipHorizontal Transformation = iota
	FlipVertical
	Rotate90
	Rotate180
	Rotate270
)

// String names a Transformation for debug/log output.
func (t Transformation) String() string {
	switch t {
	case FlipHorizontal:
		return "FlipHorizontal"
	case FlipVertical:
		return "FlipVertical"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	default:
		return "Transformation(?)"
	}
}

// ApplyTransformation permutes the mask's bits per t, then normalizes
// the result.
func (s Shape) ApplyTransformation(t Transformation) Shape {
	return s.applyRawTransformation(t).Normalize()
}

// applyRawTransformation performs the bit permutation only, without
// normalizing afterwards. Kept as a separate package-private method
// for the rotation-cycle and bit-preservation property tests, which
// must observe the raw (possibly off-corner) result.
func (s Shape) applyRawTransformation(t Transformation) Shape {
	switch t {
	case FlipHorizontal:
		return s&middleColumnMask |
			(s&rightColumnMask)>>2 |
			(s&leftColumnMask)<<2

	case FlipVertical:
		return s&middleRowMask |
			(s&bottomRowMask)>>(2*Width) |
			(s&topRowMask)<<(2*Width)

	case Rotate90:
		bit := func(idx uint) Shape {
			return (s & (1 << idx)) >> idx
		}
		return bit(6) |
			bit(3)<<1 |
			bit(0)<<2 |
			bit(7)<<3 |
			bit(4)<<4 |
			bit(1)<<5 |
			bit(8)<<6 |
			bit(5)<<7 |
			bit(2)<<8

	case Rotate180:
		return s.applyRawTransformation(Rotate90).applyRawTransformation(Rotate90)

	case Rotate270:
		return s.applyRawTransformation(Rotate90).
			applyRawTransformation(Rotate90).
			applyRawTransformation(Rotate90)

	default:
		return s
	}
}

// TransformationType selects which family of transformations the
// solver is allowed to try for a material's shape.
type TransformationType int

const (
	// NoTransformation only tries the material's shape as given.
	NoTransformation TransformationType = iota
	TransformFlipHorizontal
	TransformFlipVertical
	TransformRotate
)

// MaxTransformations bounds the result of GenerateTransformations: the
// identity plus, at most, 3 rotations.
const MaxTransformations = 4

// GenerateTransformations enumerates every distinct placement
// transform for shape under transformationType, including the
// identity (nil). Candidates that don't change the shape are skipped,
// so a symmetric shape yields fewer entries.
func GenerateTransformations(s Shape, transformationType TransformationType) []*Transformation {
	result := make([]*Transformation, 0, MaxTransformations)
	result = append(result, nil)

	switch transformationType {
	case NoTransformation:
		// identity only

	case TransformFlipHorizontal:
		if s.ApplyTransformation(FlipHorizontal) != s {
			result = append(result, transformationPtr(FlipHorizontal))
		}

	case TransformFlipVertical:
		if s.ApplyTransformation(FlipVertical) != s {
			result = append(result, transformationPtr(FlipVertical))
		}

	case TransformRotate:
		if s.ApplyTransformation(Rotate90) != s {
			result = append(result, transformationPtr(Rotate90))

			if s.ApplyTransformation(Rotate90) != s.ApplyTransformation(Rotate270) {
				result = append(result, transformationPtr(Rotate270))
			}
		}
		if s.ApplyTransformation(Rotate180) != s {
			result = append(result, transformationPtr(Rotate180))
		}
	}

	return result
}

func transformationPtr(t Transformation) *Transformation {
	return &t
}
