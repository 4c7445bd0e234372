/*
Headless frame driver: loads a scene, runs the engine and streams the packed
uniform blocks of every frame to a file.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kargisa/newtons/engine"
	"github.com/Kargisa/newtons/engine/assets/loaders"
	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/renderer"
	"github.com/Kargisa/newtons/testbed"
	"github.com/pkg/errors"
)

type options struct {
	scene    string
	out      string
	frames   int
	bake     bool
	watch    bool
	orbit    float64
	logLevel string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.scene, "scene", "testbed/scene.toml", "scene file (.toml, .yaml or .yml)")
	flag.StringVar(&opts.out, "out", "", "file receiving the packed uniform blocks, discarded when empty")
	flag.IntVar(&opts.frames, "frames", -1, "number of frames, overrides application.frame_count when >= 0")
	flag.BoolVar(&opts.bake, "bake", false, "compute all frames concurrently instead of running the frame loop")
	flag.BoolVar(&opts.watch, "watch", false, "reload the scene file when it changes")
	flag.Float64Var(&opts.orbit, "orbit", 0, "orbit the camera around its target, in degrees per second")
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error, overrides application.log_level")
	flag.Parse()

	if err := run(opts); err != nil {
		core.LogFatal("%s", err)
	}
}

func run(opts options) (err error) {
	loader := &loaders.SceneLoader{}
	scene, err := loader.Load(opts.scene)
	if err != nil {
		return err
	}
	if opts.frames >= 0 {
		scene.Application.FrameCount = opts.frames
	}
	if opts.logLevel != "" {
		scene.Application.LogLevel = opts.logLevel
	}

	e, err := engine.New(testbed.NewTestGame(scene, float32(opts.orbit)))
	if err != nil {
		return err
	}
	defer e.Shutdown()

	var out io.Writer = io.Discard
	if opts.out != "" {
		f, createErr := os.Create(opts.out)
		if createErr != nil {
			return createErr
		}
		stream := newOutputStream(f)
		defer func() {
			// a failed final flush leaves a truncated stream behind
			if cerr := stream.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "writing %s", opts.out)
			}
		}()
		out = stream
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// start shutdown goroutine
	go func() {
		select {
		case s := <-sigCh:
			core.LogInfo("%s received, shutting down.", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	if opts.bake {
		return bake(ctx, e, scene.Application.FrameCount, out)
	}

	if opts.watch {
		if err := e.Watch(opts.scene); err != nil {
			return err
		}
	}
	return e.Run(ctx, renderer.New(renderer.NewStreamBackend(out)))
}

// outputStream buffers the uniform blocks written to the -out file.
type outputStream struct {
	*bufio.Writer
	file io.Closer
}

func newOutputStream(f io.WriteCloser) *outputStream {
	return &outputStream{Writer: bufio.NewWriter(f), file: f}
}

// Close flushes the buffer and closes the file, reporting the first failure.
func (s *outputStream) Close() error {
	flushErr := s.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

func bake(ctx context.Context, e *engine.Engine, frames int, out io.Writer) error {
	if frames <= 0 {
		return fmt.Errorf("baking needs a positive frame count, got %d", frames)
	}
	packets, err := e.Bake(ctx, frames)
	if err != nil {
		return err
	}
	var written int64
	for _, packet := range packets {
		for i := range packet.Uniforms {
			n, err := packet.Uniforms[i].WriteTo(out)
			written += n
			if err != nil {
				return err
			}
		}
	}
	core.LogInfo("baked %d frames, %d bytes", len(packets), written)
	return nil
}
