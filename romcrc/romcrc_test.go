package romcrc

import (
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROM() []byte {
	rom := make([]byte, MinSize)
	binary.BigEndian.PutUint32(rom, Magic)
	for i := HeaderSize; i < bootCodeEnd; i++ {
		rom[i] = byte(i * 13)
	}
	for i := checksumStart; i < len(rom); i++ {
		rom[i] = byte(i*31 + 7)
	}
	return rom
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		cic    CIC
		c1, c2 uint32
	}{
		{CIC6101, 0xf6c453de, 0xd7a09970},
		{CIC6102, 0xf6c453de, 0xd7a09970},
		{CIC6103, 0xa592715b, 0x7381a67c},
		{CIC6105, 0xdd10fa38, 0xc7e79060},
		{CIC6106, 0x5141ae92, 0xbbd0ebbc},
	}

	rom := testROM()
	for _, tt := range tests {
		t.Run(tt.cic.String(), func(t *testing.T) {
			c1, c2, err := Calculate(rom, tt.cic)
			require.NoError(t, err)
			assert.Equal(t, tt.c1, c1)
			assert.Equal(t, tt.c2, c2)
		})
	}

	_, _, err := Calculate(rom, CIC(6104))
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	rom := testROM()

	ok, err := Verify(rom, CIC6102)
	require.NoError(t, err)
	assert.False(t, ok)

	changed, err := Update(rom, CIC6102)
	require.NoError(t, err)
	assert.True(t, changed)

	c1, c2, err := Stored(rom)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf6c453de), c1)
	assert.Equal(t, uint32(0xd7a09970), c2)

	ok, err = Verify(rom, CIC6102)
	require.NoError(t, err)
	assert.True(t, ok)

	changed, err = Update(rom, CIC6102)
	require.NoError(t, err)
	assert.False(t, changed)

	// Data past the first megabyte is not covered
	rom = append(rom, 0xff)
	ok, err = Verify(rom, CIC6102)
	require.NoError(t, err)
	assert.True(t, ok)

	rom[checksumStart+0x100] ^= 0x01
	ok, err = Verify(rom, CIC6102)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetect(t *testing.T) {
	rom := testROM()

	_, err := Detect(rom)
	assert.ErrorIs(t, err, errUnknownCIC)

	// Pretend the test boot code belongs to a 6103
	bootCodes[crc32.ChecksumIEEE(rom[HeaderSize:bootCodeEnd])] = CIC6103
	defer delete(bootCodes, crc32.ChecksumIEEE(rom[HeaderSize:bootCodeEnd]))

	cic, err := Detect(rom)
	require.NoError(t, err)
	assert.Equal(t, CIC6103, cic)
}

func TestInvalidImage(t *testing.T) {
	_, _, err := Calculate(make([]byte, 0x1000), CIC6102)
	assert.Equal(t, errTooSmall, err)

	rom := testROM()
	binary.LittleEndian.PutUint32(rom, Magic)
	_, err = Detect(rom)
	assert.Equal(t, errByteOrder, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "CIC-NUS-6102", CIC6102.String())
}

func TestValid(t *testing.T) {
	for _, c := range []CIC{CIC6101, CIC6102, CIC6103, CIC6105, CIC6106} {
		assert.True(t, c.Valid())
	}
	assert.False(t, CIC(0).Valid())
	assert.False(t, CIC(6104).Valid())
}
