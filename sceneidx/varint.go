// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneidx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// writeUvarint writes a 7-bit-encoded unsigned varint (unsigned LEB128,
// §6). encoding/binary.PutUvarint already implements exactly this
// encoding, so no third-party varint library is pulled in for it.
func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

func readUvarint(r io.ByteReader) (uint64, error) {
	return binary.ReadUvarint(r)
}

// writeString7 writes a varint length prefix followed by the string's
// UTF-8 bytes (the string_7 wire type of §6).
func writeString7(w io.Writer, s string) error {
	if err := writeUvarint(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString7(r *bufio.Reader) (string, error) {
	n, err := readUvarint(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("sceneidx: reading string7 of length %d: %w", n, err)
	}
	return string(buf), nil
}

func writeF32(w io.Writer, v float32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readF32(r io.Reader) (float32, error) {
	var v float32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
