package vm

import "github.com/holiman/uint256"

// Word is a 256-bit value: the type of every stack slot and arithmetic
// operand. Two's-complement reinterpretation is used by the signed
// operations (SDiv, SRem, Slt, Sgt, Sar, SignExtend).
type Word = uint256.Int

// Add sets z = x + y, wrapping mod 2^256.
func Add(z, x, y *Word) *Word { return z.Add(x, y) }

// Sub sets z = x - y, wrapping mod 2^256.
func Sub(z, x, y *Word) *Word { return z.Sub(x, y) }

// Mul sets z = x * y, wrapping mod 2^256.
func Mul(z, x, y *Word) *Word { return z.Mul(x, y) }

// Div sets z = x / y (unsigned), or 0 if y == 0.
func Div(z, x, y *Word) *Word { return z.Div(x, y) }

// Rem sets z = x % y (unsigned), or 0 if y == 0.
func Rem(z, x, y *Word) *Word { return z.Mod(x, y) }

// SDiv sets z = x / y interpreted as two's-complement signed values, or 0
// if y == 0. MinInt256 / -1 yields MinInt256 (no trap, matches the wrap
// semantics of every other operation here).
func SDiv(z, x, y *Word) *Word { return z.SDiv(x, y) }

// SRem sets z = x % y interpreted as two's-complement signed values, or 0
// if y == 0. The sign of the result follows the sign of the dividend.
func SRem(z, x, y *Word) *Word { return z.SMod(x, y) }

// AddMod sets z = (x + y) mod n, computed without intermediate overflow,
// or 0 if n == 0.
func AddMod(z, x, y, n *Word) *Word { return z.AddMod(x, y, n) }

// MulMod sets z = (x * y) mod n, computed without intermediate overflow,
// or 0 if n == 0.
func MulMod(z, x, y, n *Word) *Word { return z.MulMod(x, y, n) }

// Exp sets z = base^exponent mod 2^256 via square-and-multiply.
func Exp(z, base, exponent *Word) *Word { return z.Exp(base, exponent) }

// SignExtend sign-extends x from bit 8*b+7 outward, treating x as if it
// were only b+1 bytes wide. Returns x unchanged when b >= 32.
func SignExtend(z, b, x *Word) *Word {
	if b.GtUint64(31) {
		return z.Set(x)
	}
	byteNum := int(b.Uint64())  // 0..31, 0 = least-significant byte
	signIdx := 31 - byteNum     // index into the big-endian byte array
	bytes := x.Bytes32()
	if bytes[signIdx]&0x80 != 0 {
		for i := 0; i < signIdx; i++ {
			bytes[i] = 0xff
		}
	} else {
		for i := 0; i < signIdx; i++ {
			bytes[i] = 0x00
		}
	}
	return z.SetBytes32(bytes[:])
}

// And sets z = x & y.
func And(z, x, y *Word) *Word { return z.And(x, y) }

// Or sets z = x | y.
func Or(z, x, y *Word) *Word { return z.Or(x, y) }

// Xor sets z = x ^ y.
func Xor(z, x, y *Word) *Word { return z.Xor(x, y) }

// Not sets z = ^x.
func Not(z, x *Word) *Word { return z.Not(x) }

// Byte sets z to the i-th most-significant byte of x (0 when i >= 32).
func Byte(z, i, x *Word) *Word {
	if i.GtUint64(31) {
		return z.Clear()
	}
	bytes := x.Bytes32()
	return z.SetUint64(uint64(bytes[i.Uint64()]))
}

// Shl sets z = value << shift, or 0 when shift >= 256.
func Shl(z, shift, value *Word) *Word {
	if shift.LtUint64(256) {
		return z.Lsh(value, uint(shift.Uint64()))
	}
	return z.Clear()
}

// Shr sets z = value >> shift (logical), or 0 when shift >= 256.
func Shr(z, shift, value *Word) *Word {
	if shift.LtUint64(256) {
		return z.Rsh(value, uint(shift.Uint64()))
	}
	return z.Clear()
}

// Sar sets z = value >> shift (arithmetic). When shift >= 256 the result
// saturates to all-ones if value is negative, else 0.
func Sar(z, shift, value *Word) *Word {
	if shift.LtUint64(256) {
		return z.SRsh(value, uint(shift.Uint64()))
	}
	bytes := value.Bytes32()
	if bytes[0]&0x80 != 0 {
		return z.SetAllOne()
	}
	return z.Clear()
}

// Lt reports whether x < y (unsigned).
func Lt(x, y *Word) bool { return x.Lt(y) }

// Gt reports whether x > y (unsigned).
func Gt(x, y *Word) bool { return x.Gt(y) }

// Eq reports whether x == y.
func Eq(x, y *Word) bool { return x.Eq(y) }

// IsZero reports whether x == 0.
func IsZero(x *Word) bool { return x.IsZero() }

// Slt reports whether x < y interpreted as two's-complement signed values.
func Slt(x, y *Word) bool { return x.Slt(y) }

// Sgt reports whether x > y interpreted as two's-complement signed values.
func Sgt(x, y *Word) bool { return x.Sgt(y) }

// boolWord sets z to 1 if cond, else 0, and returns z.
func boolWord(z *Word, cond bool) *Word {
	if cond {
		return z.SetOne()
	}
	return z.Clear()
}
