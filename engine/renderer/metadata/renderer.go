package metadata

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief Framebuffer width in pixels. */
	Width uint32
	/** @brief Framebuffer height in pixels. */
	Height uint32
}

/**
 * @brief Everything produced for a single frame: one uniform block per
 * drawn mesh, in scene order.
 */
type RenderPacket struct {
	/** @brief Sequential frame number, starting at zero. */
	Frame uint64
	/** @brief Simulated time of the frame in seconds. */
	Time float32
	/** @brief Seconds since the previous frame. */
	DeltaTime float32
	/** @brief The uniform blocks of the frame. */
	Uniforms []UniformBufferObject
}
