package tlas

import (
	"github.com/rayforge/raygraph/blas"
	"github.com/rayforge/raygraph/vecmath"
)

// Instance flag bits.
const (
	FlagTriangleFacingCullDisable uint32 = 1 << 0
	FlagTriangleFlipFacing        uint32 = 1 << 1
	FlagForceOpaque               uint32 = 1 << 2
	FlagForceNoOpaque             uint32 = 1 << 3
)

// InstanceSource is one instance to be built into a TLAS.
type InstanceSource struct {
	Transform   vecmath.Mat4
	CustomIndex uint32
	SBTOffset   uint32
	Mask        uint32
	Flags       uint32
	BLASHandle  blas.Handle
}

// TlasInstance is the device-layout instance record.
// TransformInv is always the exact inverse of Transform — create_tlas
// rejects singular transforms rather than ever publishing one.
// Flags has FlagTriangleFlipFacing XORed in automatically when
// det(Transform) < 0.
type TlasInstance struct {
	Transform    vecmath.Mat4
	TransformInv vecmath.Mat4
	CustomID     uint32
	SBTOffset    uint32
	Flags        uint32
	BLASHandle   blas.Handle
}

// TlasBounding is the device-layout per-instance bound used by the
// traverser's instance-level culling test.
type TlasBounding struct {
	WorldMin vecmath.Vec3
	WorldMax vecmath.Vec3
	Mask     uint32
	Flags    uint32
}
