// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical tokens produced when scanning a
// scene-language source file.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

// Token kinds recognized by the Lexer.
const (
	EOF Kind = iota
	Ident
	Int
	Float
	String
	AssetPath
	PrimPath
	Punct
)

var kindNames = [...]string{
	EOF:       "EOF",
	Ident:     "Ident",
	Int:       "Int",
	Float:     "Float",
	String:    "String",
	AssetPath: "AssetPath",
	PrimPath:  "PrimPath",
	Punct:     "Punct",
}

// String returns the human readable name of k.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexical unit with its source position. Text carries the
// literal value: the identifier name, the digits of a number, the
// unescaped contents of a quoted string, the bytes between "@...@" for an
// AssetPath, the bytes between "<...>" for a PrimPath, or the single
// punctuation character for Punct.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// Is reports whether t is a Punct token with the given character.
func (t Token) Is(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// Position formats the token's line:col for error messages.
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Col)
}
