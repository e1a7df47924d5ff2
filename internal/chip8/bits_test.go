package chip8

import "testing"

func TestFieldExtraction(t *testing.T) {
	ins := instruction(0xD123)

	if got := highByte(ins); got != 0xD1 {
		t.Errorf("highByte = %#02x, want %#02x", got, 0xD1)
	}
	if got := lowByte(ins); got != 0x23 {
		t.Errorf("lowByte = %#02x, want %#02x", got, 0x23)
	}
	if got := addr(ins); got != 0x123 {
		t.Errorf("addr = %#03x, want %#03x", got, 0x123)
	}

	x, y := xy(ins)
	if x != 0x1 || y != 0x2 {
		t.Errorf("xy = (%x, %x), want (1, 2)", x, y)
	}

	x, y, n := xyn(ins)
	if x != 0x1 || y != 0x2 || n != 0x3 {
		t.Errorf("xyn = (%x, %x, %x), want (1, 2, 3)", x, y, n)
	}

	x2, nn := xnn(ins)
	if x2 != 0x1 || nn != 0x23 {
		t.Errorf("xnn = (%x, %#02x), want (1, 0x23)", x2, nn)
	}
}

func TestRotate8(t *testing.T) {
	if got := rotr[uint8](0b10000001, 1, 8); got != 0b11000000 {
		t.Errorf("rotr(0x81, 1) = %08b, want %08b", got, 0b11000000)
	}
	if got := rotl[uint8](0b10000001, 1, 8); got != 0b00000011 {
		t.Errorf("rotl(0x81, 1) = %08b, want %08b", got, 0b00000011)
	}
	// rotate amount is taken modulo the width
	if got := rotr[uint8](0x01, 9, 8); got != rotr[uint8](0x01, 1, 8) {
		t.Errorf("rotr by 9 should equal rotr by 1 mod 8")
	}
}

func TestRotate64SpriteAlignment(t *testing.T) {
	// spec §8: DRW at Vx=60 with sprite row 0b11111111 sets bits at
	// columns 60,61,62,63,0,1,2,3 -- i.e. frame bits {0,1,2,3,60,61,62,63}.
	projection := rotr(uint64(0xFF)<<56, 60, 64)
	want := uint64(0) |
		1<<0 | 1<<1 | 1<<2 | 1<<3 |
		1<<60 | 1<<61 | 1<<62 | 1<<63
	if projection != want {
		t.Errorf("projection = %064b, want %064b", projection, want)
	}
}
