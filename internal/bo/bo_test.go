package bo

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestNativeReturnsValidByteOrder(t *testing.T) {
	b := Native()
	if b != binary.BigEndian && b != binary.LittleEndian {
		t.Fatalf("unexpected byte order: %T", b)
	}
}

func TestSwappedIsOppositeOfNative(t *testing.T) {
	if Native() == Swapped() {
		t.Fatalf("Swapped() must differ from Native()")
	}
	s := Swapped()
	if s != binary.BigEndian && s != binary.LittleEndian {
		t.Fatalf("unexpected byte order: %T", s)
	}
}

func TestNativeMatchesMemoryLayout(t *testing.T) {
	var x uint16 = 0x0102
	b := *(*[2]byte)(unsafe.Pointer(&x))
	want := binary.ByteOrder(binary.LittleEndian)
	if b[0] == 0x01 {
		want = binary.BigEndian
	}
	if Native() != want {
		t.Fatalf("Native() = %v, memory probe says %v", Native(), want)
	}
}
