// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerIdentAndPunct(t *testing.T) {
	toks := New([]byte(`def Mesh "m" {`)).All()
	kinds := make([]Kind, 0, len(toks))
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{Ident, Ident, String, Punct, EOF}, kinds)
	assert.Equal(t, "m", toks[2].Text)
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"42", Int},
		{"-42", Int},
		{"3.14", Float},
		{"-3.14", Float},
		{"1e3", Float},
		{"1.5e-3", Float},
		{"1.", Float},
	}
	for _, tt := range tests {
		tok := New([]byte(tt.src)).Next()
		assert.Equal(t, tt.kind, tok.Kind, "src=%q", tt.src)
		assert.Equal(t, tt.src, tok.Text, "src=%q", tt.src)
	}
}

func TestLexerString(t *testing.T) {
	tok := New([]byte(`"hello\nworld"`)).Next()
	assert.Equal(t, String, tok.Kind)
	assert.Equal(t, "hello\nworld", tok.Text)
}

func TestLexerAssetAndPrimPath(t *testing.T) {
	toks := New([]byte(`@child.usda@</a/b>`)).All()
	assert.Equal(t, AssetPath, toks[0].Kind)
	assert.Equal(t, "child.usda", toks[0].Text)
	assert.Equal(t, PrimPath, toks[1].Kind)
	assert.Equal(t, "/a/b", toks[1].Text)
}

func TestLexerCommentsAndWhitespaceDropped(t *testing.T) {
	toks := New([]byte("# a comment\n  def  ")).All()
	assert.Len(t, toks, 2)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "def", toks[0].Text)
	assert.Equal(t, EOF, toks[1].Kind)
}

func TestLexerUnknownCharSkipped(t *testing.T) {
	toks := New([]byte("a ` b")).All()
	assert.Equal(t, []Kind{Ident, Ident, EOF}, []Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind})
}

func TestLexerTerminatesWithSingleEOF(t *testing.T) {
	l := New([]byte("x"))
	toks := l.All()
	assert.Equal(t, EOF, toks[len(toks)-1].Kind)
	// Calling Next again after EOF keeps returning EOF, never panics.
	assert.Equal(t, EOF, l.Next().Kind)
}

func TestLexerLineTracking(t *testing.T) {
	toks := New([]byte("a\nb")).All()
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}
