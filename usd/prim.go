// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usd

// Specifier is the prim declaration keyword: def, over, or class.
type Specifier int

// Recognized specifiers.
const (
	SpecifierDefine Specifier = iota
	SpecifierOverride
	SpecifierClass
)

// ArcKind distinguishes the three composition arc forms this reader
// understands.
type ArcKind int

// Recognized composition arc kinds.
const (
	ArcReference ArcKind = iota
	ArcPayload
	ArcInherit
)

// Arc is a directed composition arc from a prim to either the default
// prim of another stage or a named prim within it, written in source as
// "@file@</prim/path>".
type Arc struct {
	Kind      ArcKind
	AssetPath string // raw text between '@' delimiters, e.g. "child.usda"
	PrimPath  string // optional "</a/b>" suffix, "" if absent
}

// Relationship is a named, ordered list of target prim-path strings. USD
// relationships are never dereferenced at parse time; targets are stored
// verbatim.
type Relationship struct {
	Name    string
	Targets []string
}

// VariantSet is a named choice point: an ordered list of variant names
// (so fallback can pick "the first inserted one") plus the nested Prim
// carrying each variant's own composition arcs and children.
type VariantSet struct {
	Order    []string
	Variants map[string]*Prim
}

// Prim is one node of a Stage's scene graph.
type Prim struct {
	Name      string
	Path      string
	TypeName  string
	Specifier Specifier

	Parent   *Prim
	Children []*Prim

	Attributes map[string]Value
	Metadata   map[string]Value

	Arcs []Arc

	VariantSets        map[string]*VariantSet
	VariantSelections  map[string]string
	variantSetOrder    []string // insertion order, mirrors VariantSets keys
	Relationships      []Relationship
	AppliedAPISchemas  []string
}

// NewPrim creates an empty Prim with its maps initialized.
func NewPrim(name, path string) *Prim {
	return &Prim{
		Name:              name,
		Path:              path,
		Attributes:        make(map[string]Value),
		Metadata:          make(map[string]Value),
		VariantSets:       make(map[string]*VariantSet),
		VariantSelections: make(map[string]string),
	}
}

// AddChild appends child to p's ordered children and sets its parent.
func (p *Prim) AddChild(child *Prim) {
	child.Parent = p
	p.Children = append(p.Children, child)
}

// VariantSetNames returns the names of p's variant sets in the order they
// were declared.
func (p *Prim) VariantSetNames() []string {
	return p.variantSetOrder
}

// addVariantSet registers a new, empty variant set under name if one
// doesn't already exist, preserving declaration order.
func (p *Prim) addVariantSet(name string) *VariantSet {
	if vs, ok := p.VariantSets[name]; ok {
		return vs
	}
	vs := &VariantSet{Variants: make(map[string]*Prim)}
	p.VariantSets[name] = vs
	p.variantSetOrder = append(p.variantSetOrder, name)
	return vs
}

// Attr looks up a typed attribute by name. A name that exists but whose
// stored Kind the caller doesn't expect should be checked with the
// Value's own As* accessor; Attr itself never filters by expected type,
// it only reports presence.
func (p *Prim) Attr(name string) (Value, bool) {
	v, ok := p.Attributes[name]
	return v, ok
}

// Relationship returns the named relationship and true, or a zero
// Relationship and false if p declares no relationship with that name.
func (p *Prim) Relationship(name string) (Relationship, bool) {
	for _, r := range p.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

// IsMesh reports whether p's type_name is "Mesh".
func (p *Prim) IsMesh() bool { return p.TypeName == "Mesh" }

// IsSkeleton reports whether p's type_name is "Skeleton".
func (p *Prim) IsSkeleton() bool { return p.TypeName == "Skeleton" }
