package metadata

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
)

/** @brief The size in bytes of a packed UniformBufferObject. */
const UniformBufferObjectSize = 3 * 16 * 4

/**
 * @brief The per-draw uniform block consumed by the vertex shader:
 *
 * layout(binding = 0) uniform UniformBufferObject {
 *     mat4 model;
 *     mat4 view;
 *     mat4 proj;
 * } ubo;
 *
 * Each matrix is 16 contiguous column-major float32 values, with no
 * padding between members.
 */
type UniformBufferObject struct {
	/** @brief Local to world transform of the drawn mesh. */
	Model math.Mat4
	/** @brief World to camera transform. */
	View math.Mat4
	/** @brief Camera to clip space transform. */
	Proj math.Mat4
}

// WriteTo writes the little-endian block to w.
func (u *UniformBufferObject) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, u); err != nil {
		return 0, err
	}
	return UniformBufferObjectSize, nil
}

func (u *UniformBufferObject) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(UniformBufferObjectSize)
	if _, err := u.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (u *UniformBufferObject) UnmarshalBinary(data []byte) error {
	if len(data) != UniformBufferObjectSize {
		return core.ErrInvalidUniformSize
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, u)
}
