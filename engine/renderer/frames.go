package renderer

import (
	"github.com/Kargisa/newtons/engine/containers"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

// MaxFramesInFlight is the number of frames recorded ahead of the one being retired.
const MaxFramesInFlight = 2

// FrameRing buffers up to MaxFramesInFlight packets. Submitting into a full
// ring retires the oldest frame to the backend first. Not safe for concurrent use.
type FrameRing struct {
	queue   *containers.RingQueue[*metadata.RenderPacket]
	backend RendererBackend
	retired uint64
}

func NewFrameRing(backend RendererBackend) *FrameRing {
	return &FrameRing{
		queue:   containers.NewRingQueue[*metadata.RenderPacket](MaxFramesInFlight),
		backend: backend,
	}
}

func (f *FrameRing) Submit(packet *metadata.RenderPacket) error {
	if f.queue.IsFull() {
		if err := f.retire(); err != nil {
			return err
		}
	}
	return f.queue.Enqueue(packet)
}

// Flush retires every frame in flight, oldest first.
func (f *FrameRing) Flush() error {
	for !f.queue.IsEmpty() {
		if err := f.retire(); err != nil {
			return err
		}
	}
	return nil
}

func (f *FrameRing) retire() error {
	packet, err := f.queue.Dequeue()
	if err != nil {
		return err
	}
	if err := f.backend.BeginFrame(packet); err != nil {
		return err
	}
	if err := f.backend.EndFrame(packet); err != nil {
		return err
	}
	f.retired++
	return nil
}

// InFlight returns the number of submitted frames not yet retired.
func (f *FrameRing) InFlight() int {
	return f.queue.Len()
}

// Retired returns the number of frames handed to the backend.
func (f *FrameRing) Retired() uint64 {
	return f.retired
}
