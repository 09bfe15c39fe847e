package codec

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/geomgo"
)

// Binary is a fixed-layout little-endian codec for the geomgo value types
// and slices of them.
//
// Layout:
//
//	[0]  magic 0x47 ('G')
//	[1]  format version (currently 1)
//	[2]  scalar width in bits (32 or 64)
//	[3]  kind tag; bit 7 marks a slice, then a uint32 element count follows
//	[..] components little-endian at scalar width, in declaration order
//	     (matrices in column-major order)
//
// The scalar width is pinned to the build that produced the payload:
// decoding bytes written at the other precision fails with
// ErrScalarWidthMismatch instead of silently converting.
type Binary struct{}

const (
	binaryMagic   = 0x47
	binaryVersion = 1

	kindSlice uint8 = 0x80

	scalarSize = geomgo.ScalarBits / 8
)

const (
	kindVec2 uint8 = iota + 1
	kindVec3
	kindVec4
	kindQuat
	kindMat3
	kindMat4
)

// kindComponents returns the component count of a kind, or 0 if unknown.
func kindComponents(kind uint8) int {
	switch kind {
	case kindVec2:
		return 2
	case kindVec3:
		return 3
	case kindVec4, kindQuat:
		return 4
	case kindMat3:
		return 9
	case kindMat4:
		return 16
	default:
		return 0
	}
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }

// Marshal encodes a geomgo value or slice of values.
func (Binary) Marshal(v any) ([]byte, error) {
	switch x := v.(type) {
	case geomgo.Vec2:
		return appendVec2(header(kindVec2, 2, 1), x), nil
	case geomgo.Vec3:
		return appendVec3(header(kindVec3, 3, 1), x), nil
	case geomgo.Vec4:
		return appendVec4(header(kindVec4, 4, 1), x), nil
	case geomgo.Quat:
		return appendQuat(header(kindQuat, 4, 1), x), nil
	case geomgo.Mat3:
		return appendScalars(header(kindMat3, 9, 1), x[:]), nil
	case geomgo.Mat4:
		return appendScalars(header(kindMat4, 16, 1), x[:]), nil
	case []geomgo.Vec2:
		buf := sliceHeader(kindVec2, 2, len(x))
		for _, e := range x {
			buf = appendVec2(buf, e)
		}
		return buf, nil
	case []geomgo.Vec3:
		buf := sliceHeader(kindVec3, 3, len(x))
		for _, e := range x {
			buf = appendVec3(buf, e)
		}
		return buf, nil
	case []geomgo.Vec4:
		buf := sliceHeader(kindVec4, 4, len(x))
		for _, e := range x {
			buf = appendVec4(buf, e)
		}
		return buf, nil
	case []geomgo.Quat:
		buf := sliceHeader(kindQuat, 4, len(x))
		for _, e := range x {
			buf = appendQuat(buf, e)
		}
		return buf, nil
	case []geomgo.Mat3:
		buf := sliceHeader(kindMat3, 9, len(x))
		for _, e := range x {
			buf = appendScalars(buf, e[:])
		}
		return buf, nil
	case []geomgo.Mat4:
		buf := sliceHeader(kindMat4, 16, len(x))
		for _, e := range x {
			buf = appendScalars(buf, e[:])
		}
		return buf, nil
	default:
		return nil, &ErrUnsupportedType{Value: v}
	}
}

// Unmarshal decodes data into v, which must be a pointer to a geomgo
// value type or to a slice of one.
func (Binary) Unmarshal(data []byte, v any) error {
	kind, count, payload, err := parseBinaryHeader(data)
	if err != nil {
		return err
	}

	isSlice := count >= 0
	comps := kindComponents(kind)
	n := count
	if !isSlice {
		n = 1
	}
	if len(payload) < n*comps*scalarSize {
		return ErrTruncated
	}

	switch dst := v.(type) {
	case *geomgo.Vec2:
		if kind != kindVec2 || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		*dst = readVec2(payload)
	case *geomgo.Vec3:
		if kind != kindVec3 || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		*dst = readVec3(payload)
	case *geomgo.Vec4:
		if kind != kindVec4 || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		*dst = readVec4(payload)
	case *geomgo.Quat:
		if kind != kindQuat || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		*dst = readQuat(payload)
	case *geomgo.Mat3:
		if kind != kindMat3 || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		readScalars(payload, dst[:])
	case *geomgo.Mat4:
		if kind != kindMat4 || isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		readScalars(payload, dst[:])
	case *[]geomgo.Vec2:
		if kind != kindVec2 || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Vec2, count)
		for i := range out {
			out[i] = readVec2(payload[i*comps*scalarSize:])
		}
		*dst = out
	case *[]geomgo.Vec3:
		if kind != kindVec3 || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Vec3, count)
		for i := range out {
			out[i] = readVec3(payload[i*comps*scalarSize:])
		}
		*dst = out
	case *[]geomgo.Vec4:
		if kind != kindVec4 || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Vec4, count)
		for i := range out {
			out[i] = readVec4(payload[i*comps*scalarSize:])
		}
		*dst = out
	case *[]geomgo.Quat:
		if kind != kindQuat || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Quat, count)
		for i := range out {
			out[i] = readQuat(payload[i*comps*scalarSize:])
		}
		*dst = out
	case *[]geomgo.Mat3:
		if kind != kindMat3 || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Mat3, count)
		for i := range out {
			readScalars(payload[i*comps*scalarSize:], out[i][:])
		}
		*dst = out
	case *[]geomgo.Mat4:
		if kind != kindMat4 || !isSlice {
			return &ErrKindMismatch{Kind: kind, Target: v}
		}
		out := make([]geomgo.Mat4, count)
		for i := range out {
			readScalars(payload[i*comps*scalarSize:], out[i][:])
		}
		*dst = out
	default:
		return &ErrUnsupportedType{Value: v}
	}
	return nil
}

// header allocates a buffer sized for n values of comps components and
// writes the single-value header.
func header(kind uint8, comps, n int) []byte {
	buf := make([]byte, 4, 4+n*comps*scalarSize)
	buf[0] = binaryMagic
	buf[1] = binaryVersion
	buf[2] = geomgo.ScalarBits
	buf[3] = kind
	return buf
}

// sliceHeader is header plus the uint32 element count and the slice bit.
func sliceHeader(kind uint8, comps, n int) []byte {
	buf := make([]byte, 8, 8+n*comps*scalarSize)
	buf[0] = binaryMagic
	buf[1] = binaryVersion
	buf[2] = geomgo.ScalarBits
	buf[3] = kind | kindSlice
	binary.LittleEndian.PutUint32(buf[4:], uint32(n))
	return buf
}

// parseBinaryHeader validates the header and returns the kind (slice bit
// stripped), the element count (-1 for a single value) and the component
// payload.
func parseBinaryHeader(data []byte) (kind uint8, count int, payload []byte, err error) {
	if len(data) < 4 {
		return 0, 0, nil, ErrHeader
	}
	if data[0] != binaryMagic || data[1] != binaryVersion {
		return 0, 0, nil, ErrHeader
	}
	if data[2] != geomgo.ScalarBits {
		return 0, 0, nil, &ErrScalarWidthMismatch{Payload: int(data[2]), Build: geomgo.ScalarBits}
	}
	kind = data[3] &^ kindSlice
	if kindComponents(kind) == 0 {
		return 0, 0, nil, ErrUnknownKind
	}
	if data[3]&kindSlice == 0 {
		return kind, -1, data[4:], nil
	}
	if len(data) < 8 {
		return 0, 0, nil, ErrTruncated
	}
	return kind, int(binary.LittleEndian.Uint32(data[4:])), data[8:], nil
}

func appendScalar(dst []byte, s geomgo.Scalar) []byte {
	if geomgo.ScalarBits == 32 {
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s)))
	}
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(s)))
}

func readScalar(b []byte) geomgo.Scalar {
	if geomgo.ScalarBits == 32 {
		return geomgo.Scalar(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
	return geomgo.Scalar(math.Float64frombits(binary.LittleEndian.Uint64(b)))
}

func appendScalars(dst []byte, s []geomgo.Scalar) []byte {
	for _, x := range s {
		dst = appendScalar(dst, x)
	}
	return dst
}

func readScalars(b []byte, dst []geomgo.Scalar) {
	for i := range dst {
		dst[i] = readScalar(b[i*scalarSize:])
	}
}

func appendVec2(dst []byte, v geomgo.Vec2) []byte {
	return appendScalars(dst, []geomgo.Scalar{v.X, v.Y})
}

func appendVec3(dst []byte, v geomgo.Vec3) []byte {
	return appendScalars(dst, []geomgo.Scalar{v.X, v.Y, v.Z})
}

func appendVec4(dst []byte, v geomgo.Vec4) []byte {
	return appendScalars(dst, []geomgo.Scalar{v.X, v.Y, v.Z, v.W})
}

func appendQuat(dst []byte, q geomgo.Quat) []byte {
	return appendScalars(dst, []geomgo.Scalar{q.X, q.Y, q.Z, q.W})
}

func readVec2(b []byte) geomgo.Vec2 {
	return geomgo.Vec2{X: readScalar(b), Y: readScalar(b[scalarSize:])}
}

func readVec3(b []byte) geomgo.Vec3 {
	return geomgo.Vec3{X: readScalar(b), Y: readScalar(b[scalarSize:]), Z: readScalar(b[2*scalarSize:])}
}

func readVec4(b []byte) geomgo.Vec4 {
	return geomgo.Vec4{X: readScalar(b), Y: readScalar(b[scalarSize:]), Z: readScalar(b[2*scalarSize:]), W: readScalar(b[3*scalarSize:])}
}

func readQuat(b []byte) geomgo.Quat {
	return geomgo.Quat{X: readScalar(b), Y: readScalar(b[scalarSize:]), Z: readScalar(b[2*scalarSize:]), W: readScalar(b[3*scalarSize:])}
}
