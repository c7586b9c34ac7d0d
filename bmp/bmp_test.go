package bmp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bodgit/n64rawgfx/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBitmap() *Bitmap {
	return &Bitmap{
		Width:  3,
		Height: 2,
		Pix: []texture.Pixel{
			0xff000001, 0xff000002, 0xff000003,
			0x80000004, 0x80000005, 0x00000006,
		},
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(3, 2)
	assert.Equal(t, uint16(0x4d42), h.Magic)
	assert.Equal(t, uint32(0x36), h.Offset)
	assert.Equal(t, uint32(0x28), h.HeaderSize)
	assert.Equal(t, uint16(1), h.Planes)
	assert.Equal(t, uint16(32), h.BitsPerPixel)
	assert.Equal(t, uint32(0), h.Compression)
	assert.Equal(t, uint32(24), h.ImageSize)
	assert.Equal(t, uint32(0x36+24), h.FileSize)
	assert.NoError(t, h.Validate())
	assert.Equal(t, HeaderSize, binary.Size(h))
}

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testBitmap()))
	require.Equal(t, HeaderSize+24, b.Len())

	raw := b.Bytes()
	assert.Equal(t, []byte{'B', 'M'}, raw[0:2])

	// Bottom row first, each pixel stored as B, G, R, A
	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x80}, raw[HeaderSize:HeaderSize+4])
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0xff}, raw[HeaderSize+12:HeaderSize+16])
}

func TestEncodeWrongSize(t *testing.T) {
	b := testBitmap()
	b.Width = 4
	assert.Error(t, Encode(new(bytes.Buffer), b))
	assert.Error(t, Encode(new(bytes.Buffer), &Bitmap{}))
	assert.Error(t, Encode(new(bytes.Buffer), &Bitmap{Width: MaxPixels, Height: 2}))
}

func TestMaxPixels(t *testing.T) {
	h := NewHeader(1<<12, 1<<12)
	assert.NoError(t, h.Validate())

	h = NewHeader(1<<12+1, 1<<12)
	assert.True(t, IsUnsupported(h.Validate()))
}

func TestRoundTrip(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testBitmap()))

	h, err := DecodeConfig(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int32(3), h.Width)
	assert.Equal(t, int32(2), h.Height)

	m, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, testBitmap(), m)
}

func TestDecodeLargerInfoHeader(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testBitmap()))
	raw := b.Bytes()

	// Grow the info header by 16 bytes, as a BITMAPV2INFOHEADER would
	var out []byte
	out = append(out, raw[:HeaderSize]...)
	out = append(out, make([]byte, 16)...)
	out = append(out, raw[HeaderSize:]...)
	binary.LittleEndian.PutUint32(out[10:], HeaderSize+16)
	binary.LittleEndian.PutUint32(out[14:], infoHeaderSize+16)

	m, err := Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, testBitmap(), m)
}

func TestDecodeErrors(t *testing.T) {
	valid := new(bytes.Buffer)
	require.NoError(t, Encode(valid, testBitmap()))

	tests := []struct {
		name        string
		modify      func([]byte) []byte
		unsupported bool
	}{
		{"magic", func(b []byte) []byte { b[0] = 'X'; return b }, true},
		{"planes", func(b []byte) []byte { b[26] = 2; return b }, true},
		{"bpp", func(b []byte) []byte { b[28] = 24; return b }, true},
		{"compression", func(b []byte) []byte { b[30] = 3; return b }, true},
		{"width", func(b []byte) []byte { binary.LittleEndian.PutUint32(b[18:], 0); return b }, true},
		{"height", func(b []byte) []byte { binary.LittleEndian.PutUint32(b[22:], 0xfffffffe); return b }, true},
		{"header size", func(b []byte) []byte { b[14] = 0x0c; return b }, true},
		{"offset", func(b []byte) []byte { b[10] = 0x20; return b }, true},
		{"huge dimensions", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[18:], 0x7fffffff)
			binary.LittleEndian.PutUint32(b[22:], 0x7fffffff)
			return b[:HeaderSize]
		}, true},
		{"too many pixels", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[18:], 60000)
			binary.LittleEndian.PutUint32(b[22:], 60000)
			return b[:HeaderSize]
		}, true},
		{"other format", func(b []byte) []byte { return []byte("GIF89a") }, true},
		{"empty", func(b []byte) []byte { return nil }, true},
		{"one byte", func(b []byte) []byte { return b[:1] }, true},
		{"short header", func(b []byte) []byte { return b[:20] }, false},
		{"short pixels", func(b []byte) []byte { return b[:len(b)-1] }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.modify(append([]byte(nil), valid.Bytes()...))
			_, err := Decode(bytes.NewReader(raw))
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, IsUnsupported(err))
			if !tt.unsupported {
				assert.Equal(t, errNotEnough, err)
			}
		})
	}
}
