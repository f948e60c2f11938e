package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func w(v uint64) Word { var z Word; z.SetUint64(v); return z }

func TestAddWraps(t *testing.T) {
	var max, one, got Word
	max.SetAllOne()
	one.SetUint64(1)
	Add(&got, &max, &one)
	if !got.IsZero() {
		t.Fatalf("max+1 = %s, want 0", got.Hex())
	}
}

func TestDivByZero(t *testing.T) {
	x, y, got := w(10), w(0), Word{}
	Div(&got, &x, &y)
	if !got.IsZero() {
		t.Fatalf("10/0 = %s, want 0", got.Hex())
	}
}

func TestSDivMinIntByMinusOne(t *testing.T) {
	var minInt, minusOne, got Word
	var b [32]byte
	b[0] = 0x80
	minInt.SetBytes32(b[:])
	minusOne.SetAllOne()
	SDiv(&got, &minInt, &minusOne)
	if !got.Eq(&minInt) {
		t.Fatalf("MinInt256 / -1 = %s, want MinInt256", got.Hex())
	}
}

func TestSignExtendNoop(t *testing.T) {
	b, x, got := w(32), w(0x7f), Word{}
	SignExtend(&got, &b, &x)
	if !got.Eq(&x) {
		t.Fatalf("signextend(32, x) = %s, want x unchanged", got.Hex())
	}
}

func TestSignExtendNegative(t *testing.T) {
	b := w(0)
	var x, got Word
	x.SetUint64(0xff)
	SignExtend(&got, &b, &x)
	var want Word
	want.SetAllOne()
	if !got.Eq(&want) {
		t.Fatalf("signextend(0, 0xff) = %s, want all-ones", got.Hex())
	}
}

func TestShiftsSaturateAt256(t *testing.T) {
	shift, value, got := w(256), w(1), Word{}
	Shl(&got, &shift, &value)
	if !got.IsZero() {
		t.Fatalf("1 << 256 = %s, want 0", got.Hex())
	}
	Shr(&got, &shift, &value)
	if !got.IsZero() {
		t.Fatalf("1 >> 256 = %s, want 0", got.Hex())
	}
}

func TestSarNegativeSaturates(t *testing.T) {
	shift := w(256)
	var negOne, got Word
	negOne.SetAllOne()
	Sar(&got, &shift, &negOne)
	if !got.Eq(&negOne) {
		t.Fatalf("-1 >> 256 (arith) = %s, want all-ones", got.Hex())
	}
}

func TestByteOutOfRange(t *testing.T) {
	i, x, got := w(32), w(0xff), Word{}
	Byte(&got, &i, &x)
	if !got.IsZero() {
		t.Fatalf("byte(32, x) = %s, want 0", got.Hex())
	}
}

func TestComparisons(t *testing.T) {
	a, b := w(1), w(2)
	if !Lt(&a, &b) || Gt(&a, &b) || Eq(&a, &b) {
		t.Fatal("unsigned comparisons disagree with expectation")
	}
	var negOne uint256.Int
	negOne.SetAllOne()
	zero := w(0)
	if !Slt(&negOne, &zero) {
		t.Fatal("-1 should be Slt 0")
	}
}
