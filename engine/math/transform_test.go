package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformDefault(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.LocalToWorldMatrix().Equal(NewMat4Identity()))
	assert.True(t, tr.WorldToLocalMatrix().Equal(NewMat4Identity()))
	assert.True(t, tr.Forward().Equal(NewVec3Forward()))
	assert.True(t, tr.Up().Equal(NewVec3Up()))
	assert.True(t, tr.Right().Equal(NewVec3Right()))
}

func TestTransformLocalToWorldIsTRS(t *testing.T) {
	SeedRandom(17)
	for i := 0; i < 25; i++ {
		tr := NewTransformFrom(
			randomVec3(20),
			randomUnitQuat(),
			NewVec3(RandomInRange(0.2, 4), RandomInRange(0.2, 4), RandomInRange(-4, -0.2)))

		trs := NewMat4Translation(tr.Position).
			Mul(NewMat4Rotation(tr.Rotation)).
			Mul(NewMat4Scale(tr.Scale))
		assert.True(t, tr.LocalToWorldMatrix().Compare(trs, 1e-4))

		p := randomVec3(3)
		manual := tr.Rotation.RotateVector(p.Mul(tr.Scale)).Add(tr.Position)
		assert.True(t, p.TransformPoint(tr.LocalToWorldMatrix()).Compare(manual, 1e-3))
	}
}

func TestTransformWorldToLocalIsInverse(t *testing.T) {
	SeedRandom(19)
	for i := 0; i < 25; i++ {
		tr := NewTransformFrom(
			randomVec3(20),
			randomUnitQuat(),
			NewVec3(RandomInRange(0.2, 4), RandomInRange(-4, -0.2), RandomInRange(0.2, 4)))

		product := tr.LocalToWorldMatrix().Mul(tr.WorldToLocalMatrix())
		assert.True(t, product.Compare(NewMat4Identity(), 1e-3), "\n%v", product)

		product = tr.WorldToLocalMatrix().Mul(tr.LocalToWorldMatrix())
		assert.True(t, product.Compare(NewMat4Identity(), 1e-3), "\n%v", product)

		p := randomVec3(10)
		roundTrip := p.TransformPoint(tr.LocalToWorldMatrix()).TransformPoint(tr.WorldToLocalMatrix())
		assert.True(t, roundTrip.Compare(p, 1e-3))
	}
}

// The model transform used by the demo scene.
func TestTransformSceneModel(t *testing.T) {
	tr := NewTransformFrom(
		NewVec3Zero(),
		NewQuatFromEuler(0, DegToRad(90), DegToRad(-90)),
		NewVec3(1, 1, -1))

	m := tr.LocalToWorldMatrix()
	// The negative z scale mirrors the local forward axis.
	assert.True(t, m.Col(2).ToVec3().Compare(tr.Forward().Negate(), 1e-5))
	assert.InDelta(t, 1, m.Col(0).ToVec3().Length(), 1e-5)
	assert.True(t, m.Col(3).Equal(NewVec4(0, 0, 0, 1)))
	assert.True(t, m.Mul(tr.WorldToLocalMatrix()).Compare(NewMat4Identity(), 1e-4))
}

func TestTransformDirections(t *testing.T) {
	tr := NewTransform()

	tr.SetForward(NewVec3(1, 0, 0))
	assert.True(t, tr.Forward().Compare(NewVec3(1, 0, 0), 1e-5))

	tr.SetForward(NewVec3(0, 0, -3))
	assert.True(t, tr.Forward().Compare(NewVec3(0, 0, -1), 1e-5))

	tr.SetUp(NewVec3(0, -1, 1))
	assert.True(t, tr.Up().Compare(NewVec3(0, -1, 1).Normalized(), 1e-5))

	tr.SetRight(NewVec3(0, 1, 0))
	assert.True(t, tr.Right().Compare(NewVec3(0, 1, 0), 1e-5))

	// The local axes stay orthonormal.
	assert.InDelta(t, 0, tr.Forward().Dot(tr.Up()), 1e-5)
	assert.InDelta(t, 0, tr.Forward().Dot(tr.Right()), 1e-5)
}

func TestTransformTranslateRotate(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(1, 1, 1))
	tr.Translate(NewVec3(0, 2, -1))
	assert.True(t, tr.Position.Equal(NewVec3(1, 3, 0)))

	quarter := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, true)
	tr.Rotate(quarter)
	tr.Rotate(quarter)
	assert.True(t, tr.Forward().Compare(NewVec3Back(), 1e-5))
}

func TestTransformEqual(t *testing.T) {
	a := NewTransformFrom(NewVec3(1, 2, 3), NewQuatFromEuler(0.1, 0.2, 0.3), NewVec3(1, 2, 1))
	b := a
	assert.True(t, a.Equal(b))

	b.Scale.Y += 0.01
	assert.False(t, a.Equal(b))
	// a is untouched by the copy.
	assert.Equal(t, float32(2), a.Scale.Y)
}
