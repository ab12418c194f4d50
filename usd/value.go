// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usd implements the subset of the OpenUSD-like scene composition
// language needed to enumerate meshes and their world transforms: a
// tokenizer-fed parser producing an in-memory Stage tree of Prims, typed
// attribute Values, and composition arcs (references, payloads,
// sub-layers, variant sets).
package usd

import "github.com/g3n/sceneindex/math32"

// ValueKind tags the variant held by a Value.
type ValueKind int

// Recognized value kinds. Each scalar kind has an Array counterpart that
// holds a homogeneous list of the same underlying Go type.
const (
	KindInvalid ValueKind = iota
	KindBool
	KindI32
	KindF32
	KindF64
	KindString
	KindToken
	KindAsset
	KindVec2
	KindVec3
	KindVec4
	KindMatrix4
	KindBoolArray
	KindI32Array
	KindF32Array
	KindF64Array
	KindStringArray
	KindTokenArray
	KindAssetArray
	KindVec2Array
	KindVec3Array
	KindVec4Array
	KindMatrix4Array
)

// Value is a tagged variant over the scalar and array types of §3. Only
// the field matching Kind is meaningful; accessors enforce that and
// report "attribute absent" (false) on any mismatch.
type Value struct {
	Kind ValueKind

	Bool   bool
	I32    int32
	F32    float32
	F64    float64
	Str    string // also backs KindToken and KindAsset
	Vec2   math32.Vector2
	Vec3   math32.Vector3
	Vec4   math32.Vector4
	Matrix math32.Matrix4

	BoolArray    []bool
	I32Array     []int32
	F32Array     []float32
	F64Array     []float64
	StringArray  []string
	TokenArray   []string
	AssetArray   []string
	Vec2Array    []math32.Vector2
	Vec3Array    []math32.Vector3
	Vec4Array    []math32.Vector4
	Matrix4Array []math32.Matrix4
}

// AsBool returns the held bool and true, or false, false if v is not a
// KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// AsI32 returns the held int32 and true, or the zero value and false.
func (v Value) AsI32() (int32, bool) {
	if v.Kind != KindI32 {
		return 0, false
	}
	return v.I32, true
}

// AsF32 returns the held float32 and true, or the zero value and false.
func (v Value) AsF32() (float32, bool) {
	if v.Kind != KindF32 {
		return 0, false
	}
	return v.F32, true
}

// AsF64 returns the held float64 and true, or the zero value and false.
func (v Value) AsF64() (float64, bool) {
	if v.Kind != KindF64 {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the held string and true, or "" and false.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// AsToken returns the held token text and true, or "" and false.
func (v Value) AsToken() (string, bool) {
	if v.Kind != KindToken {
		return "", false
	}
	return v.Str, true
}

// AsAssetPath returns the held asset-path text and true, or "" and false.
func (v Value) AsAssetPath() (string, bool) {
	if v.Kind != KindAsset {
		return "", false
	}
	return v.Str, true
}

// AsVec2 returns the held Vector2 and true, or the zero value and false.
func (v Value) AsVec2() (math32.Vector2, bool) {
	if v.Kind != KindVec2 {
		return math32.Vector2{}, false
	}
	return v.Vec2, true
}

// AsVec3 returns the held Vector3 and true, or the zero value and false.
func (v Value) AsVec3() (math32.Vector3, bool) {
	if v.Kind != KindVec3 {
		return math32.Vector3{}, false
	}
	return v.Vec3, true
}

// AsVec4 returns the held Vector4 and true, or the zero value and false.
func (v Value) AsVec4() (math32.Vector4, bool) {
	if v.Kind != KindVec4 {
		return math32.Vector4{}, false
	}
	return v.Vec4, true
}

// AsMatrix4 returns the held Matrix4 and true, or the zero value and false.
func (v Value) AsMatrix4() (math32.Matrix4, bool) {
	if v.Kind != KindMatrix4 {
		return math32.Matrix4{}, false
	}
	return v.Matrix, true
}

// AsF32Array returns the held []float32 and true, or nil and false.
func (v Value) AsF32Array() ([]float32, bool) {
	if v.Kind != KindF32Array {
		return nil, false
	}
	return v.F32Array, true
}

// AsI32Array returns the held []int32 and true, or nil and false.
func (v Value) AsI32Array() ([]int32, bool) {
	if v.Kind != KindI32Array {
		return nil, false
	}
	return v.I32Array, true
}

// AsVec3Array returns the held []Vector3 and true, or nil and false.
func (v Value) AsVec3Array() ([]math32.Vector3, bool) {
	if v.Kind != KindVec3Array {
		return nil, false
	}
	return v.Vec3Array, true
}

// AsVec2Array returns the held []Vector2 and true, or nil and false.
func (v Value) AsVec2Array() ([]math32.Vector2, bool) {
	if v.Kind != KindVec2Array {
		return nil, false
	}
	return v.Vec2Array, true
}

// AsStringArray returns the held []string (from a string, token, or asset
// array) and true, or nil and false.
func (v Value) AsStringArray() ([]string, bool) {
	switch v.Kind {
	case KindStringArray:
		return v.StringArray, true
	case KindTokenArray:
		return v.TokenArray, true
	case KindAssetArray:
		return v.AssetArray, true
	default:
		return nil, false
	}
}
