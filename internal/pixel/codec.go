package pixel

import (
	"encoding/binary"
	"math"
)

// Normalized-integer range constants per component width.
const (
	maxUint8  = 1<<8 - 1
	maxUint16 = 1<<16 - 1
	maxUint32 = 1<<32 - 1
	maxInt8   = 1<<7 - 1
	minInt8   = -1 << 7
	maxInt16  = 1<<15 - 1
	minInt16  = -1 << 15
	maxInt32  = 1<<31 - 1
	minInt32  = -1 << 31
)

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundHalfUp rounds to the nearest integer with ties rounded up (toward
// +Inf): away from zero for positive values, toward zero for negative
// ones such as signed-normalized inputs below zero.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func encodeUnorm(v float32, maxVal float64) uint32 {
	v = clamp(v, 0, 1)
	return uint32(roundHalfUp(float64(v) * maxVal))
}

func decodeUnorm(q uint32, maxVal float64) float32 {
	return float32(float64(q) / maxVal)
}

func encodeSnorm(v float32, maxVal, minVal float64) int32 {
	v = clamp(v, -1, 1)
	if v == -1 {
		return int32(minVal)
	}
	return int32(roundHalfUp(float64(v) * maxVal))
}

func decodeSnorm(q int32, maxVal float64) float32 {
	v := float32(float64(q) / maxVal)
	if v < -1 {
		return -1
	}
	return v
}

func encodeFloat16(v float32) uint16 {
	bits := math.Float32bits(v)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff
	switch {
	case (bits & 0x7fffffff) == 0:
		return sign
	case exp >= 0x1f:
		if (bits & 0x7fffffff) > 0x7f800000 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		if mant&(1<<(shift-1)) != 0 {
			half++
		}
		return sign | half
	default:
		half := sign | uint16(exp)<<10 | uint16(mant>>13)
		if mant&0x1000 != 0 {
			half++
		}
		return half
	}
}

func decodeFloat16(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)
	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &= 0x3ff
	case exp == 0x1f:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7f800000 | (mant << 13))
	}
	bits := sign | ((exp + (127 - 15)) << 23) | (mant << 13)
	return math.Float32frombits(bits)
}

// EncodeChannel writes a single linear-float channel value into dst using
// component type t, returning the byte width consumed.
func EncodeChannel(dst []byte, v float32, t ComponentType) int {
	switch t {
	case U8:
		dst[0] = byte(encodeUnorm(v, maxUint8))
		return 1
	case S8:
		dst[0] = byte(int8(encodeSnorm(v, maxInt8, minInt8)))
		return 1
	case U16:
		binary.LittleEndian.PutUint16(dst, uint16(encodeUnorm(v, maxUint16)))
		return 2
	case S16:
		binary.LittleEndian.PutUint16(dst, uint16(int16(encodeSnorm(v, maxInt16, minInt16))))
		return 2
	case U32:
		binary.LittleEndian.PutUint32(dst, encodeUnorm(v, maxUint32))
		return 4
	case S32:
		binary.LittleEndian.PutUint32(dst, uint32(encodeSnorm(v, maxInt32, minInt32)))
		return 4
	case F16:
		binary.LittleEndian.PutUint16(dst, encodeFloat16(v))
		return 2
	case F32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
		return 4
	default:
		return 0
	}
}

// DecodeChannel reads a single linear-float channel value from src using
// component type t, returning the value and the byte width consumed.
func DecodeChannel(src []byte, t ComponentType) (float32, int) {
	switch t {
	case U8:
		return decodeUnorm(uint32(src[0]), maxUint8), 1
	case S8:
		return decodeSnorm(int32(int8(src[0])), maxInt8), 1
	case U16:
		return decodeUnorm(uint32(binary.LittleEndian.Uint16(src)), maxUint16), 2
	case S16:
		return decodeSnorm(int32(int16(binary.LittleEndian.Uint16(src))), maxInt16), 2
	case U32:
		return decodeUnorm(binary.LittleEndian.Uint32(src), maxUint32), 4
	case S32:
		return decodeSnorm(int32(binary.LittleEndian.Uint32(src)), maxInt32), 4
	case F16:
		return decodeFloat16(binary.LittleEndian.Uint16(src)), 2
	case F32:
		return math.Float32frombits(binary.LittleEndian.Uint32(src)), 4
	default:
		return 0, 0
	}
}

// channelIndex maps storage channel c of format f to its RGBA position;
// BGR/BGRA store blue first and red third.
func channelIndex(f Format, c int) int {
	if (f == BGR || f == BGRA) && c < 3 {
		return 2 - c
	}
	return c
}

// EncodeColor packs a linear RGBA color into dst per format f / type t.
// Missing channels are not written; callers reading back a format with
// fewer than 4 channels get (0,0,0,1) defaults from DecodeColor.
func EncodeColor(dst []byte, rgba [4]float32, f Format, t ComponentType) {
	n := Channels(f)
	sz := TypeSize(t)
	for c := 0; c < n; c++ {
		EncodeChannel(dst[c*sz:], rgba[channelIndex(f, c)], t)
	}
}

// DecodeColor unpacks a pixel into linear RGBA, defaulting missing
// channels to (0,0,0,1).
func DecodeColor(src []byte, f Format, t ComponentType) [4]float32 {
	out := [4]float32{0, 0, 0, 1}
	n := Channels(f)
	sz := TypeSize(t)
	for c := 0; c < n; c++ {
		out[channelIndex(f, c)], _ = DecodeChannel(src[c*sz:], t)
	}
	return out
}

// EncodeDepthStencil packs stencil (byte 0) and a 24-bit unsigned
// normalized depth (bytes 1..3, little-endian) into a 4-byte pixel.
func EncodeDepthStencil(dst []byte, depth float32, stencil uint8) {
	depth = clamp(depth, 0, 1)
	qd := uint32(roundHalfUp(float64(depth) * 16777215.0))
	dst[0] = stencil
	dst[1] = byte(qd)
	dst[2] = byte(qd >> 8)
	dst[3] = byte(qd >> 16)
}

// DecodeDepthStencil unpacks a 4-byte pixel into (depth, stencil).
func DecodeDepthStencil(src []byte) (depth float32, stencil uint8) {
	stencil = src[0]
	qd := uint32(src[1]) | uint32(src[2])<<8 | uint32(src[3])<<16
	depth = float32(float64(qd) / 16777215.0)
	return depth, stencil
}

// EncodeDepth stores a clamped depth value as a single channel of
// component type t, the layout DEPTH_COMPONENT attachments use.
func EncodeDepth(dst []byte, depth float32, t ComponentType) {
	EncodeChannel(dst, clamp(depth, 0, 1), t)
}

// DecodeDepth reads back a DEPTH_COMPONENT pixel's depth value.
func DecodeDepth(src []byte, t ComponentType) float32 {
	d, _ := DecodeChannel(src, t)
	return d
}
