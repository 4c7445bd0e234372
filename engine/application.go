package engine

import (
	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

type ApplicationConfig struct {
	// Framebuffer width, used for the camera aspect ratio.
	StartWidth uint32
	// Framebuffer height, used for the camera aspect ratio.
	StartHeight uint32
	// The application name used in logs.
	Name     string
	LogLevel core.LogLevel
	// Number of frames Run produces. Zero runs until the context is cancelled.
	FrameCount int
	// Simulated seconds between two frames.
	FrameStep float32
}

// NewApplicationConfig reads the application section of a defaulted scene.
func NewApplicationConfig(settings metadata.ApplicationSettings) *ApplicationConfig {
	return &ApplicationConfig{
		StartWidth:  settings.Width,
		StartHeight: settings.Height,
		Name:        settings.Name,
		LogLevel:    core.ParseLogLevel(settings.LogLevel),
		FrameCount:  settings.FrameCount,
		FrameStep:   settings.FrameStep,
	}
}
