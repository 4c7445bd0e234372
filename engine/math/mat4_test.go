package math

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mat4 builds a matrix from 16 values given in column-major order.
func mat4(values ...float32) Mat4 {
	out := Mat4{}
	copy(out.Data[:], values)
	return out
}

var (
	lhsFixture = mat4(2, 50, 10, 2, 1.5, 2, 60, 2, 6, 6, 7, 2, 8, 48, 0.1, 0)
	rhsFixture = mat4(8, 6, 84, 1, 94, 8.5, 12, 54, 1.1, 5, 23, 2, 0, 15, 1, 0.25)
)

func TestMat4Layout(t *testing.T) {
	require.Equal(t, uintptr(64), unsafe.Sizeof(Mat4{}))

	m := NewMat4Identity()
	m.Set(1, 3, 7)
	assert.Equal(t, float32(7), m.Data[13])
	assert.Equal(t, float32(7), m.Index(13))
	assert.Equal(t, float32(7), m.At(1, 3))

	m.SetIndex(2, 4)
	assert.Equal(t, float32(4), m.At(2, 0))

	assert.Equal(t, NewVec4(0, 1, 0, 7), m.Row(1))
	assert.Equal(t, NewVec4(1, 0, 4, 0), m.Col(0))
}

func TestMat4RowsAndCols(t *testing.T) {
	m := NewMat4FromCols(
		NewVec4(1, 2, 3, 4),
		NewVec4(5, 6, 7, 8),
		NewVec4(9, 10, 11, 12),
		NewVec4(13, 14, 15, 16))
	assert.Equal(t, mat4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16), m)
	assert.Equal(t, NewVec4(1, 5, 9, 13), m.Row(0))

	m.SetRow(3, NewVec4(0, 0, 0, 1))
	assert.Equal(t, NewVec4(13, 14, 15, 1), m.Col(3))
	assert.Equal(t, m.Row(2), m.Transposed().Col(2))
}

func TestMat4Rotation(t *testing.T) {
	angle := DegToRad(78.1)
	axis := NewVec3(1, 0.5, 1).Normalized().MulScalar(Sin(angle))
	q := NewQuat(Cos(angle), axis.X, axis.Y, axis.Z)

	expected := mat4(
		-0.0638665, 0.6945768, 0.7165781, 0,
		0.1565164, -0.7021864, 0.6945768, 0,
		0.9856083, 0.1565164, -0.0638665, 0,
		0, 0, 0, 1)

	got := NewMat4Rotation(q)
	assert.True(t, got.Compare(expected, 1e-5), "got\n%v\nwant\n%v", got, expected)
	assert.True(t, q.ToMat4().Equal(got))
}

func TestMat4RotationMatchesQuaternion(t *testing.T) {
	SeedRandom(21)
	for i := 0; i < 50; i++ {
		q := randomUnitQuat()
		v := randomVec3(10)

		m := NewMat4Rotation(q)
		viaMatrix := m.MulVec4(v.ToVec4(0)).ToVec3()
		assert.True(t, viaMatrix.Compare(q.RotateVector(v), 1e-3))

		oracle := toMglQuat(q).Mat4()
		assert.True(t, m.Compare(Mat4{Data: oracle}, 1e-5), "got\n%v\nwant\n%v", m, oracle)
	}
}

func TestMat4Product(t *testing.T) {
	// Goldens recomputed by hand; the older fixture only matched under an OR-combined comparison.
	lr := mat4(537, 964, 1028.1, 196, 704.75, 7381, 1539.4, 229, 163.7, 299, 472.2, 58.2, 30.5, 48, 907.025, 32)
	rl := mat4(4727, 517, 1000, 2722.5, 266, 356, 1532, 230, 619.7, 152, 739, 344.5, 4576.11, 456.5, 1250.3, 2600.2)

	assert.True(t, lhsFixture.Mul(rhsFixture).Compare(lr, 1e-2), "lhs*rhs\n%v", lhsFixture.Mul(rhsFixture))
	assert.True(t, rhsFixture.Mul(lhsFixture).Compare(rl, 1e-2), "rhs*lhs\n%v", rhsFixture.Mul(lhsFixture))
	assert.False(t, lhsFixture.Mul(rhsFixture).Equal(rhsFixture.Mul(lhsFixture)))

	oracle := mgl32.Mat4(lhsFixture.Data).Mul4(mgl32.Mat4(rhsFixture.Data))
	assert.True(t, lhsFixture.Mul(rhsFixture).Compare(Mat4{Data: oracle}, 1e-2))
}

func TestMat4ProductAssociative(t *testing.T) {
	SeedRandom(13)
	for i := 0; i < 20; i++ {
		var a, b, c Mat4
		for j := range a.Data {
			a.Data[j] = RandomInRange(-2, 2)
			b.Data[j] = RandomInRange(-2, 2)
			c.Data[j] = RandomInRange(-2, 2)
		}
		assert.True(t, a.Mul(b).Mul(c).Compare(a.Mul(b.Mul(c)), 1e-3))
		assert.True(t, a.Mul(NewMat4Identity()).Equal(a))
		assert.True(t, NewMat4Identity().Mul(a).Equal(a))
	}
}

func TestMat4VectorProduct(t *testing.T) {
	v := NewVec4(2.5, 8, 0, 4.1)
	assert.True(t, lhsFixture.MulVec4(v).Compare(NewVec4(49.8, 337.8, 505.41, 21), 1e-3))
	assert.True(t, rhsFixture.MulVec4(v).Compare(NewVec4(772, 144.5, 310.1, 435.525), 1e-3))
}

func TestMat4MulScalar(t *testing.T) {
	m := NewMat4Identity().MulScalar(3)
	assert.Equal(t, float32(3), m.At(2, 2))
	assert.Equal(t, float32(0), m.At(0, 1))
}

func TestMat4Equal(t *testing.T) {
	a := NewMat4Identity()
	b := NewMat4Identity()
	assert.True(t, a.Equal(b))

	// A single differing element breaks equality.
	b.Data[7] = 0.5
	assert.False(t, a.Equal(b))
	assert.True(t, a.Compare(b, 0.6))
}

func TestMat4Perspective(t *testing.T) {
	near, far := float32(0.01), float32(100)
	p := NewMat4Perspective(DegToRad(60), 16.0/9.0, near, far)

	project := func(z float32) Vec4 {
		return p.MulVec4(NewVec4(0, 0, z, 1))
	}

	n := project(near)
	assert.InDelta(t, 0, n.Z/n.W, 1e-5)
	f := project(far)
	assert.InDelta(t, 1, f.Z/f.W, 1e-5)
	mid := project(10)
	assert.Greater(t, mid.Z/mid.W, float32(0))
	assert.Less(t, mid.Z/mid.W, float32(1))

	// A point on the top edge of the frustum lands on y = 1.
	top := p.MulVec4(NewVec4(0, Tan(DegToRad(30))*5, 5, 1))
	assert.InDelta(t, 1, top.Y/top.W, 1e-4)

	flipped := p.FlipY()
	assert.Equal(t, -p.Data[5], flipped.Data[5])
	assert.Equal(t, p.Data[0], flipped.Data[0])
}

func TestMat4Orthographic(t *testing.T) {
	o := NewMat4Orthographic(-4, 6, -2, 3, 1, 11)

	lo := NewVec3(-4, -2, 1).TransformPoint(o)
	assert.True(t, lo.Compare(NewVec3(-1, -1, 0), 1e-5), "got %v", lo)
	hi := NewVec3(6, 3, 11).TransformPoint(o)
	assert.True(t, hi.Compare(NewVec3(1, 1, 1), 1e-5), "got %v", hi)
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(4, 4, -5)
	view := NewMat4LookAt(eye, NewVec3Zero())

	assert.True(t, eye.TransformPoint(view).Compare(NewVec3Zero(), 1e-4))
	target := NewVec3Zero().TransformPoint(view)
	assert.True(t, target.Compare(NewVec3(0, 0, eye.Length()), 1e-4), "got %v", target)

	for r := 0; r < 3; r++ {
		axis := view.Row(r).ToVec3()
		assert.InDelta(t, 1, axis.Length(), 1e-5)
		for s := r + 1; s < 3; s++ {
			assert.InDelta(t, 0, axis.Dot(view.Row(s).ToVec3()), 1e-5)
		}
	}

	// Points above the eye stay above in view space.
	up := NewVec3(0, 10, 0).TransformPoint(view)
	assert.Greater(t, up.Y, float32(0))

	assert.True(t, view.Equal(NewMat4LookAtUp(eye, NewVec3Zero(), NewVec3Up())))
}

func TestMat4LookAtParallelUpIsNaN(t *testing.T) {
	if debugAssertions {
		t.Skip("debug builds panic on a degenerate look-at basis")
	}
	view := NewMat4LookAt(NewVec3Zero(), NewVec3(0, 5, 0))
	assert.True(t, IsNaN(view.Data[0]))
}

func TestMat4Inverse(t *testing.T) {
	tr := NewTransformFrom(NewVec3(1, -2, 3), NewQuatFromEuler(0.3, -0.7, 1.1), NewVec3(2, 0.5, 3))
	m := tr.LocalToWorldMatrix()
	assert.True(t, m.Mul(m.Inverse()).Compare(NewMat4Identity(), 1e-4))
	assert.True(t, m.Inverse().Mul(m).Compare(NewMat4Identity(), 1e-4))

	oracle := mgl32.Mat4(m.Data).Inv()
	assert.True(t, m.Inverse().Compare(Mat4{Data: oracle}, 1e-4))
}

func TestMat4TranslationScale(t *testing.T) {
	p := NewVec3(1, 2, 3)
	assert.True(t, p.TransformPoint(NewMat4Scale(NewVec3(2, 3, 4))).Equal(NewVec3(2, 6, 12)))
	assert.True(t, p.TransformPoint(NewMat4Translation(NewVec3(-1, -2, -3))).Equal(NewVec3Zero()))
	// Directions ignore translation.
	d := NewMat4Translation(NewVec3(5, 5, 5)).MulVec4(p.ToVec4(0))
	assert.Equal(t, p.ToVec4(0), d)
}
