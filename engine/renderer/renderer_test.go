package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Kargisa/newtons/engine/math"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBackend struct {
	ended   []uint64
	failEnd error
}

func (b *recordingBackend) Initialize(metadata.RendererBackendConfig) error { return nil }
func (b *recordingBackend) Shutdown() error                                  { return nil }
func (b *recordingBackend) Resized(uint32, uint32) error                     { return nil }
func (b *recordingBackend) BeginFrame(*metadata.RenderPacket) error          { return nil }

func (b *recordingBackend) EndFrame(p *metadata.RenderPacket) error {
	if b.failEnd != nil {
		return b.failEnd
	}
	b.ended = append(b.ended, p.Frame)
	return nil
}

func TestFrameRingRetiresOldestFirst(t *testing.T) {
	backend := &recordingBackend{}
	ring := NewFrameRing(backend)

	for i := uint64(0); i < 5; i++ {
		require.NoError(t, ring.Submit(&metadata.RenderPacket{Frame: i}))
		assert.LessOrEqual(t, ring.InFlight(), MaxFramesInFlight)
	}
	assert.Equal(t, []uint64{0, 1, 2}, backend.ended)
	assert.Equal(t, MaxFramesInFlight, ring.InFlight())

	require.NoError(t, ring.Flush())
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, backend.ended)
	assert.Equal(t, 0, ring.InFlight())
	assert.EqualValues(t, 5, ring.Retired())
}

func TestFrameRingPropagatesBackendErrors(t *testing.T) {
	boom := errors.New("device lost")
	backend := &recordingBackend{failEnd: boom}
	ring := NewFrameRing(backend)

	require.NoError(t, ring.Submit(&metadata.RenderPacket{Frame: 0}))
	require.NoError(t, ring.Submit(&metadata.RenderPacket{Frame: 1}))
	assert.ErrorIs(t, ring.Submit(&metadata.RenderPacket{Frame: 2}), boom)
}

func TestStreamBackendWritesUniforms(t *testing.T) {
	var out bytes.Buffer
	backend := NewStreamBackend(&out)
	r := New(backend)
	require.NoError(t, r.Initialize(metadata.RendererBackendConfig{ApplicationName: "test", Width: 4, Height: 3}))

	ubo := metadata.UniformBufferObject{
		Model: math.NewMat4Identity(),
		View:  math.NewMat4Translation(math.NewVec3(1, 2, 3)),
		Proj:  math.NewMat4Identity(),
	}
	for i := uint64(0); i < 3; i++ {
		packet := &metadata.RenderPacket{Frame: i, Uniforms: []metadata.UniformBufferObject{ubo, ubo}}
		require.NoError(t, r.DrawFrame(packet))
	}
	// Two frames are still in flight.
	assert.Equal(t, 2*metadata.UniformBufferObjectSize, out.Len())

	require.NoError(t, r.Shutdown())
	assert.Equal(t, 6*metadata.UniformBufferObjectSize, out.Len())
	assert.EqualValues(t, out.Len(), backend.Written())

	expected, err := ubo.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, expected, out.Bytes()[:metadata.UniformBufferObjectSize])
}
