package naklo

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// createMinimalFLAC builds a FLAC stream with only a STREAMINFO block
// followed by stand-in frame bytes. This duplicates internal/flac test
// logic but keeps the public API tests independent.
func createMinimalFLAC() []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")

	buf.WriteByte(0x80) // last block, STREAMINFO
	buf.Write([]byte{0x00, 0x00, 0x22})
	binary.Write(buf, binary.BigEndian, uint16(4096))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	buf.Write(make([]byte, 6))
	packed := (uint64(44100) << 44) | (uint64(1) << 41) | (uint64(15) << 36) | uint64(44100)
	binary.Write(buf, binary.BigEndian, packed)
	buf.Write(make([]byte, 16))

	buf.Write([]byte{0xFF, 0xF8, 0x69, 0x08, 0x00, 0x01, 0x02, 0x03})
	return buf.Bytes()
}

// createMinimalMP3 returns an untagged MPEG frame header and silence.
func createMinimalMP3() []byte {
	return append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 413)...)
}

func writeFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
