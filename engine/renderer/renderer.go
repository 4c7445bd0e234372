package renderer

import (
	"io"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

// RendererBackend receives finished frames. The headless backend streams the
// packed uniform blocks; a GPU backend would upload them instead.
type RendererBackend interface {
	Initialize(config metadata.RendererBackendConfig) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(packet *metadata.RenderPacket) error
	EndFrame(packet *metadata.RenderPacket) error
}

type Renderer struct {
	backend RendererBackend
	frames  *FrameRing
}

// New creates a renderer that keeps MaxFramesInFlight frames queued before
// handing them to backend.
func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
		frames:  NewFrameRing(backend),
	}
}

func (r *Renderer) Initialize(config metadata.RendererBackendConfig) error {
	return r.backend.Initialize(config)
}

// Shutdown retires the frames still in flight and stops the backend.
func (r *Renderer) Shutdown() error {
	if err := r.frames.Flush(); err != nil {
		core.LogError("failed to flush frames in flight: %s", err)
		return err
	}
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) DrawFrame(renderPacket *metadata.RenderPacket) error {
	if err := r.frames.Submit(renderPacket); err != nil {
		core.LogError("DrawFrame failed for frame %d: %s", renderPacket.Frame, err)
		return err
	}
	return nil
}

// Frames returns the frames in flight ring.
func (r *Renderer) Frames() *FrameRing {
	return r.frames
}

/**
 * @brief A backend that writes every retired uniform block, packed
 * little-endian, to an io.Writer. Nothing is allocated on a GPU.
 */
type StreamBackend struct {
	out     io.Writer
	written int64
	config  metadata.RendererBackendConfig
}

func NewStreamBackend(out io.Writer) *StreamBackend {
	if out == nil {
		out = io.Discard
	}
	return &StreamBackend{out: out}
}

func (b *StreamBackend) Initialize(config metadata.RendererBackendConfig) error {
	b.config = config
	core.LogInfo("headless renderer initialized for %s (%dx%d)", config.ApplicationName, config.Width, config.Height)
	return nil
}

func (b *StreamBackend) Shutdown() error {
	core.LogDebug("headless renderer wrote %d bytes", b.written)
	return nil
}

func (b *StreamBackend) Resized(width, height uint32) error {
	b.config.Width = width
	b.config.Height = height
	return nil
}

func (b *StreamBackend) BeginFrame(packet *metadata.RenderPacket) error {
	return nil
}

func (b *StreamBackend) EndFrame(packet *metadata.RenderPacket) error {
	for i := range packet.Uniforms {
		n, err := packet.Uniforms[i].WriteTo(b.out)
		b.written += n
		if err != nil {
			return err
		}
	}
	return nil
}

// Written returns the number of bytes written so far.
func (b *StreamBackend) Written() int64 {
	return b.written
}
