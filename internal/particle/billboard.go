package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp = mgl32.Vec3{0, 1, 0}
	// Used when the view axis is parallel to worldUp (camera straight above or
	// below the particle) or the camera sits on the particle.
	fallbackRef = mgl32.Vec3{0, 0, 1}
)

const basisEpsilon = 1e-6

// Basis is the orthonormal frame of one billboard. Z faces the camera.
type Basis struct {
	X, Y, Z mgl32.Vec3
}

// Vertex is one billboard corner.
type Vertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

// QuadVertexFloats is the float count of one expanded vertex: pos (3), uv (2).
const QuadVertexFloats = 5

// BillboardBasis builds the camera-facing frame at center, rotated by angle
// about Z.
func BillboardBasis(center, camera mgl32.Vec3, angle float32) Basis {
	z := camera.Sub(center)
	if z.Len() < basisEpsilon {
		z = fallbackRef
	} else {
		z = z.Normalize()
	}

	x1 := worldUp.Cross(z)
	if x1.Len() < basisEpsilon {
		x1 = fallbackRef.Cross(z)
	}
	x1 = x1.Normalize()
	y1 := z.Cross(x1).Normalize()

	s, c := math.Sincos(float64(angle))
	sin, cos := float32(s), float32(c)
	return Basis{
		X: x1.Mul(cos).Add(y1.Mul(sin)),
		Y: x1.Mul(-sin).Add(y1.Mul(cos)),
		Z: z,
	}
}

// Billboard returns the four corners of the quad in triangle strip order:
// (-1,-1), (-1,1), (1,-1), (1,1).
func Billboard(center mgl32.Vec3, size, angle float32, camera mgl32.Vec3) [4]Vertex {
	b := BillboardBasis(center, camera, angle)
	sx := b.X.Mul(size)
	sy := b.Y.Mul(size)

	var quad [4]Vertex
	n := 0
	for i := float32(-1); i <= 1; i += 2 {
		for j := float32(-1); j <= 1; j += 2 {
			quad[n] = Vertex{
				Pos: center.Add(sx.Mul(i)).Add(sy.Mul(j)),
				UV:  mgl32.Vec2{(i + 1) / 2, (j + 1) / 2},
			}
			n++
		}
	}
	return quad
}

// AppendQuads expands snapshot records ([x, y, z, size, angle] * N) into
// independent triangles, 6 vertices per particle, for backends without a
// geometry stage. Format: [x, y, z, u, v] * 6N.
func AppendQuads(dst, records []float32, camera mgl32.Vec3) []float32 {
	for r := 0; r+RecordFloats <= len(records); r += RecordFloats {
		center := mgl32.Vec3{records[r], records[r+1], records[r+2]}
		q := Billboard(center, records[r+3], records[r+4], camera)
		// Strip 0,1,2,3 as two triangles with the same winding.
		for _, k := range [6]int{0, 1, 2, 2, 1, 3} {
			v := q[k]
			dst = append(dst, v.Pos[0], v.Pos[1], v.Pos[2], v.UV[0], v.UV[1])
		}
	}
	return dst
}
