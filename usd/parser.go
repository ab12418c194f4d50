// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usd

import (
	"strconv"

	"github.com/g3n/sceneindex/math32"
	"github.com/g3n/sceneindex/token"
	"github.com/sirupsen/logrus"
)

// parser turns a flat token slice into a Stage. It never aborts on
// malformed input: unknown constructs and values that fail to parse are
// skipped to the next balanced boundary (see skipValue), matching §7's
// leniency policy.
type parser struct {
	toks  []token.Token
	pos   int
	stage *Stage
	log   *logrus.Entry
}

// Parse tokenizes and parses src, a scene-language source file
// originating from path, into a Stage. It never returns an error: malformed
// content is dropped locally per §7, not surfaced.
func Parse(src []byte, path string) *Stage {
	toks := token.New(src).All()
	p := &parser{toks: toks, stage: NewStage(path), log: logrus.WithField("stage", path)}
	p.parseStage()
	return p.stage
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool { return p.peek().Kind == token.EOF }

// skipValue discards one "balanced value": a bracketed/parenthesized
// group if one opens here, otherwise a single token. It implements the
// skip_balanced helper of §9 for unknown metadata keys and types.
func (p *parser) skipValue() {
	t := p.peek()
	if t.Kind == token.Punct && (t.Text == "(" || t.Text == "[" || t.Text == "{") {
		p.skipBalanced()
		return
	}
	p.next()
}

var closerFor = map[string]string{"(": ")", "[": "]", "{": "}"}

// skipBalanced consumes tokens from an opening punctuator up to and
// including its matching closer, honoring nesting.
func (p *parser) skipBalanced() {
	open := p.next().Text
	want := closerFor[open]
	depth := 1
	for depth > 0 && !p.atEOF() {
		t := p.next()
		if t.Kind != token.Punct {
			continue
		}
		switch t.Text {
		case open:
			depth++
		case want:
			depth--
		}
	}
}

// parseStage consumes an optional leading stage-metadata block followed
// by zero or more root prim definitions.
func (p *parser) parseStage() {
	if p.peek().Is('(') {
		p.parseStageMetadata()
	}
	for !p.atEOF() {
		t := p.peek()
		if t.Kind == token.Ident && isSpecifierKeyword(t.Text) {
			prim := p.parsePrimDef("")
			p.stage.Roots = append(p.stage.Roots, prim)
			continue
		}
		// Anything else at stage scope is unrecognized; skip forward one
		// token so a stray character can never spin the parser in place.
		p.next()
	}
}

func isSpecifierKeyword(s string) bool {
	return s == "def" || s == "over" || s == "class"
}

func (p *parser) parseStageMetadata() {
	p.next() // '('
	for !p.atEOF() && !p.peek().Is(')') {
		t := p.peek()
		if t.Kind == token.String {
			p.stage.Doc = p.next().Text
			continue
		}
		if t.Kind != token.Ident {
			p.skipValue()
			continue
		}
		key := p.next().Text
		if !p.peek().Is('=') {
			p.skipValue()
			continue
		}
		p.next() // '='
		switch key {
		case "defaultPrim":
			if v, ok := p.parseBareLiteral().AsString(); ok {
				p.stage.DefaultPrim = v
			}
		case "upAxis":
			v := p.parseBareLiteral()
			if s, ok := v.AsToken(); ok && s == "Z" {
				p.stage.UpAxis = UpAxisZ
			} else if s, ok := v.AsString(); ok && s == "Z" {
				p.stage.UpAxis = UpAxisZ
			}
		case "metersPerUnit":
			p.stage.MetersPerUnit = p.parseBareNumber()
		case "timeCodesPerSecond":
			p.stage.TimeCodesPerSecond = p.parseBareNumber()
		case "framesPerSecond":
			p.stage.FramesPerSecond = p.parseBareNumber()
		case "startTimeCode":
			p.stage.StartTimeCode = p.parseBareNumber()
		case "endTimeCode":
			p.stage.EndTimeCode = p.parseBareNumber()
		case "subLayers":
			p.stage.SubLayers = p.parseBareStringList()
		default:
			p.skipValue()
		}
	}
	if !p.atEOF() {
		p.next() // ')'
	}
}

// parseBareNumber reads a single Int or Float token as a float64,
// returning 0 if the next token isn't numeric.
func (p *parser) parseBareNumber() float64 {
	t := p.peek()
	if t.Kind != token.Int && t.Kind != token.Float {
		return 0
	}
	p.next()
	f, _ := strconv.ParseFloat(t.Text, 64)
	return f
}

// parseBareStringList reads either a single string/asset/token literal or
// a bracketed comma list of them, returning their text values.
func (p *parser) parseBareStringList() []string {
	if p.peek().Is('[') {
		p.next()
		var out []string
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			v := p.parseBareLiteral()
			if s, ok := v.AsString(); ok {
				out = append(out, s)
			} else if s, ok := v.AsAssetPath(); ok {
				out = append(out, s)
			} else if s, ok := v.AsToken(); ok {
				out = append(out, s)
			}
		}
		if !p.atEOF() {
			p.next() // ']'
		}
		return out
	}
	v := p.parseBareLiteral()
	if s, ok := v.AsString(); ok {
		return []string{s}
	}
	if s, ok := v.AsAssetPath(); ok {
		return []string{s}
	}
	if s, ok := v.AsToken(); ok {
		return []string{s}
	}
	return nil
}

// parseBareLiteral parses one untyped metadata-style literal: a string,
// asset path, prim path, number, boolean/token identifier, or a bracketed
// list of such literals.
func (p *parser) parseBareLiteral() Value {
	t := p.peek()
	switch t.Kind {
	case token.String:
		p.next()
		return Value{Kind: KindString, Str: t.Text}
	case token.AssetPath:
		p.next()
		return Value{Kind: KindAsset, Str: t.Text}
	case token.PrimPath:
		p.next()
		return Value{Kind: KindString, Str: t.Text}
	case token.Int:
		p.next()
		n, _ := strconv.ParseInt(t.Text, 10, 32)
		return Value{Kind: KindI32, I32: int32(n)}
	case token.Float:
		p.next()
		f, _ := strconv.ParseFloat(t.Text, 64)
		return Value{Kind: KindF64, F64: f}
	case token.Ident:
		p.next()
		if t.Text == "true" {
			return Value{Kind: KindBool, Bool: true}
		}
		if t.Text == "false" {
			return Value{Kind: KindBool, Bool: false}
		}
		return Value{Kind: KindToken, Str: t.Text}
	case token.Punct:
		if t.Text == "[" {
			return p.parseBareLiteralList()
		}
	}
	p.skipValue()
	return Value{}
}

func (p *parser) parseBareLiteralList() Value {
	p.next() // '['
	var items []Value
	for !p.atEOF() && !p.peek().Is(']') {
		if p.peek().Is(',') {
			p.next()
			continue
		}
		items = append(items, p.parseBareLiteral())
	}
	if !p.atEOF() {
		p.next() // ']'
	}
	if len(items) == 0 {
		return Value{Kind: KindStringArray}
	}
	switch items[0].Kind {
	case KindBool:
		out := make([]bool, 0, len(items))
		for _, it := range items {
			out = append(out, it.Bool)
		}
		return Value{Kind: KindBoolArray, BoolArray: out}
	case KindAsset:
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Str)
		}
		return Value{Kind: KindAssetArray, AssetArray: out}
	case KindToken:
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Str)
		}
		return Value{Kind: KindTokenArray, TokenArray: out}
	case KindI32:
		out := make([]int32, 0, len(items))
		for _, it := range items {
			out = append(out, it.I32)
		}
		return Value{Kind: KindI32Array, I32Array: out}
	case KindF64:
		out := make([]float64, 0, len(items))
		for _, it := range items {
			out = append(out, it.F64)
		}
		return Value{Kind: KindF64Array, F64Array: out}
	default:
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Str)
		}
		return Value{Kind: KindStringArray, StringArray: out}
	}
}

// parsePrimDef parses one "specifier [typeName] \"name\" (metadata) { body }"
// definition and returns it, having registered it and every descendant it
// owns in the stage's path map.
func (p *parser) parsePrimDef(parentPath string) *Prim {
	specTok := p.next() // def/over/class
	var spec Specifier
	switch specTok.Text {
	case "over":
		spec = SpecifierOverride
	case "class":
		spec = SpecifierClass
	default:
		spec = SpecifierDefine
	}

	typeName := ""
	if p.peek().Kind == token.Ident {
		typeName = p.next().Text
	}
	name := ""
	if p.peek().Kind == token.String {
		name = p.next().Text
	}

	path := parentPath + "/" + name
	prim := NewPrim(name, path)
	prim.Specifier = spec
	prim.TypeName = typeName
	p.stage.Register(prim)

	if p.peek().Is('(') {
		p.parsePrimMetadata(prim)
	}
	if p.peek().Is('{') {
		p.parsePrimBody(prim)
	}
	return prim
}

func (p *parser) parsePrimMetadata(prim *Prim) {
	p.next() // '('
	for !p.atEOF() && !p.peek().Is(')') {
		if p.peek().Kind == token.String {
			// Bare documentation string inside a prim metadata block.
			p.next()
			continue
		}
		if p.peek().Kind != token.Ident {
			p.skipValue()
			continue
		}
		key := p.next().Text
		if key == "prepend" || key == "append" {
			if p.peek().Kind == token.Ident {
				key = p.next().Text
			} else {
				continue
			}
		}
		if !p.peek().Is('=') {
			p.skipValue()
			continue
		}
		p.next() // '='
		switch key {
		case "references":
			p.parseArcList(prim, ArcReference)
		case "payload", "payloads":
			p.parseArcList(prim, ArcPayload)
		case "inherits":
			p.parseInheritsList(prim)
		case "apiSchemas":
			for _, s := range p.parseBareStringList() {
				prim.AppliedAPISchemas = append(prim.AppliedAPISchemas, s)
			}
		case "variants":
			p.parseVariantSelections(prim)
		case "variantSets":
			p.skipValue() // name list only; the variantSet bodies carry the real data
		case "kind":
			prim.Metadata["kind"] = p.parseBareLiteral()
		case "instanceable":
			prim.Metadata["instanceable"] = p.parseBareLiteral()
		default:
			p.skipValue()
		}
	}
	if !p.atEOF() {
		p.next() // ')'
	}
}

func (p *parser) parseArcList(prim *Prim, kind ArcKind) {
	if p.peek().Is('[') {
		p.next()
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			p.parseOneArc(prim, kind)
		}
		if !p.atEOF() {
			p.next() // ']'
		}
		return
	}
	p.parseOneArc(prim, kind)
}

func (p *parser) parseOneArc(prim *Prim, kind ArcKind) {
	if p.peek().Kind != token.AssetPath {
		p.skipValue()
		return
	}
	assetPath := p.next().Text
	primPath := ""
	if p.peek().Kind == token.PrimPath {
		primPath = p.next().Text
	}
	prim.Arcs = append(prim.Arcs, Arc{Kind: kind, AssetPath: assetPath, PrimPath: primPath})
}

func (p *parser) parseInheritsList(prim *Prim) {
	addOne := func() {
		if p.peek().Kind == token.PrimPath {
			prim.Arcs = append(prim.Arcs, Arc{Kind: ArcInherit, PrimPath: p.next().Text})
		} else {
			p.skipValue()
		}
	}
	if p.peek().Is('[') {
		p.next()
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			addOne()
		}
		if !p.atEOF() {
			p.next()
		}
		return
	}
	addOne()
}

// parseVariantSelections parses "{ type name = "value" ... }", recording
// each name -> value selection on prim.
func (p *parser) parseVariantSelections(prim *Prim) {
	if !p.peek().Is('{') {
		p.skipValue()
		return
	}
	p.next() // '{'
	for !p.atEOF() && !p.peek().Is('}') {
		if p.peek().Kind != token.Ident {
			p.skipValue()
			continue
		}
		p.next() // type token, discarded
		if p.peek().Kind != token.Ident {
			p.skipValue()
			continue
		}
		setName := p.next().Text
		if !p.peek().Is('=') {
			p.skipValue()
			continue
		}
		p.next() // '='
		if p.peek().Kind == token.String {
			prim.VariantSelections[setName] = p.next().Text
		} else {
			p.skipValue()
		}
	}
	if !p.atEOF() {
		p.next() // '}'
	}
}

func (p *parser) parsePrimBody(prim *Prim) {
	p.next() // '{'
	for !p.atEOF() && !p.peek().Is('}') {
		t := p.peek()
		if t.Kind == token.Ident && isSpecifierKeyword(t.Text) {
			child := p.parsePrimDef(prim.Path)
			prim.AddChild(child)
			continue
		}
		if t.Kind == token.Ident && t.Text == "variantSet" {
			p.parseVariantSetDecl(prim)
			continue
		}
		if t.Kind == token.Ident && (t.Text == "prepend" || t.Text == "append") && p.peekAt(1).Text == "rel" {
			p.next()
		}
		if p.peek().Kind == token.Ident && p.peek().Text == "rel" {
			p.parseRelationship(prim)
			continue
		}
		if t.Kind == token.Ident {
			p.parseAttribute(prim)
			continue
		}
		p.next()
	}
	if !p.atEOF() {
		p.next() // '}'
	}
}

func (p *parser) parseVariantSetDecl(prim *Prim) {
	p.next() // 'variantSet'
	if p.peek().Kind != token.String {
		p.skipValue()
		return
	}
	setName := p.next().Text
	if !p.peek().Is('=') {
		return
	}
	p.next() // '='
	if !p.peek().Is('{') {
		return
	}
	p.next() // '{'
	vs := prim.addVariantSet(setName)
	for !p.atEOF() && !p.peek().Is('}') {
		if p.peek().Kind != token.String {
			p.next()
			continue
		}
		variantName := p.next().Text
		nested := NewPrim(prim.Name, prim.Path)
		if p.peek().Is('(') {
			p.parsePrimMetadata(nested)
		}
		if p.peek().Is('{') {
			p.parsePrimBody(nested)
		}
		if _, exists := vs.Variants[variantName]; !exists {
			vs.Order = append(vs.Order, variantName)
		}
		vs.Variants[variantName] = nested
	}
	if !p.atEOF() {
		p.next() // '}'
	}
}

func (p *parser) parseRelationship(prim *Prim) {
	p.next() // 'rel'
	name := p.parseNamespacedName()
	if !p.peek().Is('=') {
		p.skipValue()
		return
	}
	p.next() // '='
	var targets []string
	addOne := func() {
		if p.peek().Kind == token.PrimPath {
			targets = append(targets, p.next().Text)
		} else {
			p.skipValue()
		}
	}
	if p.peek().Is('[') {
		p.next()
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			addOne()
		}
		if !p.atEOF() {
			p.next()
		}
	} else {
		addOne()
	}
	prim.Relationships = append(prim.Relationships, Relationship{Name: name, Targets: targets})
}

// parseNamespacedName reads an identifier and any ":"- or "."-joined
// continuations, e.g. "primvars:normals:indices" or "xformOp:translate".
func (p *parser) parseNamespacedName() string {
	name := p.next().Text
	for (p.peek().Is(':') || p.peek().Is('.')) && p.peekAt(1).Kind == token.Ident {
		sep := p.next().Text
		name += sep + p.next().Text
	}
	return name
}

var scalarKindByType = map[string]ValueKind{
	"bool":      KindBool,
	"int":       KindI32,
	"float":     KindF32,
	"half":      KindF32,
	"double":    KindF64,
	"string":    KindString,
	"token":     KindToken,
	"asset":     KindAsset,
	"float2":    KindVec2,
	"double2":   KindVec2,
	"texCoord2f": KindVec2,
	"float3":    KindVec3,
	"double3":   KindVec3,
	"point3f":   KindVec3,
	"normal3f":  KindVec3,
	"vector3f":  KindVec3,
	"color3f":   KindVec3,
	"float4":    KindVec4,
	"double4":   KindVec4,
	"quath":     KindVec4,
	"quatf":     KindVec4,
	"quatd":     KindVec4,
	"matrix4d":  KindMatrix4,
}

func (p *parser) parseAttribute(prim *Prim) {
	if p.peek().Text == "uniform" {
		p.next()
	}
	typeName := p.next().Text
	isArray := false
	if p.peek().Is('[') && p.peekAt(1).Is(']') {
		p.next()
		p.next()
		isArray = true
	}
	if p.peek().Kind != token.Ident {
		p.skipValue()
		return
	}
	name := p.parseNamespacedName()
	if !p.peek().Is('=') {
		p.skipValue()
		return
	}
	p.next() // '='

	baseKind, known := scalarKindByType[typeName]
	if !known {
		p.skipValue()
		return
	}
	if v, ok := p.parseTypedLiteral(baseKind, isArray); ok {
		prim.Attributes[name] = v
	}
}

func (p *parser) parseTypedLiteral(kind ValueKind, isArray bool) (Value, bool) {
	if isArray {
		return p.parseLiteralArray(kind)
	}
	return p.parseScalarLiteral(kind)
}

func (p *parser) parseScalarLiteral(kind ValueKind) (Value, bool) {
	switch kind {
	case KindBool:
		t := p.peek()
		if t.Kind == token.Ident && (t.Text == "true" || t.Text == "false") {
			p.next()
			return Value{Kind: KindBool, Bool: t.Text == "true"}, true
		}
	case KindI32:
		if p.peek().Kind == token.Int {
			t := p.next()
			n, err := strconv.ParseInt(t.Text, 10, 32)
			if err == nil {
				return Value{Kind: KindI32, I32: int32(n)}, true
			}
		}
	case KindF32:
		if n, ok := p.parseNumberToken(); ok {
			return Value{Kind: KindF32, F32: float32(n)}, true
		}
	case KindF64:
		if n, ok := p.parseNumberToken(); ok {
			return Value{Kind: KindF64, F64: n}, true
		}
	case KindString:
		if p.peek().Kind == token.String {
			return Value{Kind: KindString, Str: p.next().Text}, true
		}
	case KindToken:
		if p.peek().Kind == token.String {
			return Value{Kind: KindToken, Str: p.next().Text}, true
		}
		if p.peek().Kind == token.Ident {
			return Value{Kind: KindToken, Str: p.next().Text}, true
		}
	case KindAsset:
		if p.peek().Kind == token.AssetPath {
			return Value{Kind: KindAsset, Str: p.next().Text}, true
		}
	case KindVec2:
		if v, ok := p.parseVecN(2); ok {
			return Value{Kind: KindVec2, Vec2: math32.Vector2{X: v[0], Y: v[1]}}, true
		}
	case KindVec3:
		if v, ok := p.parseVecN(3); ok {
			return Value{Kind: KindVec3, Vec3: math32.Vector3{X: v[0], Y: v[1], Z: v[2]}}, true
		}
	case KindVec4:
		if v, ok := p.parseVecN(4); ok {
			return Value{Kind: KindVec4, Vec4: math32.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}}, true
		}
	case KindMatrix4:
		if m, ok := p.parseMatrix4(); ok {
			return Value{Kind: KindMatrix4, Matrix: m}, true
		}
	}
	p.skipValue()
	return Value{}, false
}

func (p *parser) parseNumberToken() (float64, bool) {
	t := p.peek()
	if t.Kind != token.Int && t.Kind != token.Float {
		return 0, false
	}
	p.next()
	f, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseVecN parses "(n1, n2, ..., nN)" and returns the components.
func (p *parser) parseVecN(n int) ([]float32, bool) {
	if !p.peek().Is('(') {
		return nil, false
	}
	p.next()
	out := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		f, ok := p.parseNumberToken()
		if !ok {
			p.skipBalancedFrom("(")
			return nil, false
		}
		out = append(out, float32(f))
		if i < n-1 {
			if p.peek().Is(',') {
				p.next()
			}
		}
	}
	if p.peek().Is(')') {
		p.next()
	}
	return out, true
}

// skipBalancedFrom skips the remainder of a group whose opener has
// already been consumed.
func (p *parser) skipBalancedFrom(open string) {
	depth := 1
	want := closerFor[open]
	for depth > 0 && !p.atEOF() {
		t := p.next()
		if t.Kind != token.Punct {
			continue
		}
		switch t.Text {
		case open:
			depth++
		case want:
			depth--
		}
	}
}

// parseMatrix4 parses a row-major "( (r0), (r1), (r2), (r3) )" literal.
func (p *parser) parseMatrix4() (math32.Matrix4, bool) {
	if !p.peek().Is('(') {
		return math32.Matrix4{}, false
	}
	p.next()
	var rows [4][4]float32
	for r := 0; r < 4; r++ {
		row, ok := p.parseVecN(4)
		if !ok {
			p.skipBalancedFrom("(")
			return math32.Matrix4{}, false
		}
		copy(rows[r][:], row)
		if r < 3 && p.peek().Is(',') {
			p.next()
		}
	}
	if p.peek().Is(')') {
		p.next()
	}
	m := math32.NewMatrix4()
	// Matrix4.Set takes elements row by row (n11..n14, n21..n24, ...),
	// which is exactly how the row-major literal was just parsed.
	m.Set(
		rows[0][0], rows[0][1], rows[0][2], rows[0][3],
		rows[1][0], rows[1][1], rows[1][2], rows[1][3],
		rows[2][0], rows[2][1], rows[2][2], rows[2][3],
		rows[3][0], rows[3][1], rows[3][2], rows[3][3],
	)
	return *m, true
}

func (p *parser) parseLiteralArray(kind ValueKind) (Value, bool) {
	if !p.peek().Is('[') {
		p.skipValue()
		return Value{}, false
	}
	p.next()
	defer func() {
		if p.peek().Is(']') {
			p.next()
		}
	}()

	switch kind {
	case KindBool:
		var out []bool
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindBool); ok {
				out = append(out, v.Bool)
			}
		}
		return Value{Kind: KindBoolArray, BoolArray: out}, true
	case KindI32:
		var out []int32
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindI32); ok {
				out = append(out, v.I32)
			}
		}
		return Value{Kind: KindI32Array, I32Array: out}, true
	case KindF32:
		var out []float32
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindF32); ok {
				out = append(out, v.F32)
			}
		}
		return Value{Kind: KindF32Array, F32Array: out}, true
	case KindF64:
		var out []float64
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindF64); ok {
				out = append(out, v.F64)
			}
		}
		return Value{Kind: KindF64Array, F64Array: out}, true
	case KindString:
		var out []string
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindString); ok {
				out = append(out, v.Str)
			}
		}
		return Value{Kind: KindStringArray, StringArray: out}, true
	case KindToken:
		var out []string
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindToken); ok {
				out = append(out, v.Str)
			}
		}
		return Value{Kind: KindTokenArray, TokenArray: out}, true
	case KindAsset:
		var out []string
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindAsset); ok {
				out = append(out, v.Str)
			}
		}
		return Value{Kind: KindAssetArray, AssetArray: out}, true
	case KindVec2:
		var out []math32.Vector2
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindVec2); ok {
				out = append(out, v.Vec2)
			}
		}
		return Value{Kind: KindVec2Array, Vec2Array: out}, true
	case KindVec3:
		var out []math32.Vector3
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindVec3); ok {
				out = append(out, v.Vec3)
			}
		}
		return Value{Kind: KindVec3Array, Vec3Array: out}, true
	case KindVec4:
		var out []math32.Vector4
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindVec4); ok {
				out = append(out, v.Vec4)
			}
		}
		return Value{Kind: KindVec4Array, Vec4Array: out}, true
	case KindMatrix4:
		var out []math32.Matrix4
		for !p.atEOF() && !p.peek().Is(']') {
			if p.peek().Is(',') {
				p.next()
				continue
			}
			if v, ok := p.parseScalarLiteral(KindMatrix4); ok {
				out = append(out, v.Matrix)
			}
		}
		return Value{Kind: KindMatrix4Array, Matrix4Array: out}, true
	}
	return Value{}, false
}
