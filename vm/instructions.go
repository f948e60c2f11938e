package vm

// instrFn is the shape of every opcode handler: given the machine and the
// instruction's position in code, it mutates the machine's stack/memory
// and returns the Control decision for what the driver does next.
type instrFn func(m *Machine, pos uint64) Control

func opStop(m *Machine, pos uint64) Control {
	return exitWith(succeedReason(Stopped))
}

func popBinary(m *Machine) (x, y *Word, err error) {
	a, err := m.stack.Peek(0)
	if err != nil {
		return nil, nil, err
	}
	b, err := m.stack.Peek(1)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// binOp pops two operands, applies f, overwrites the new top with the
// result, and continues. f receives (dst, x, y) in the operand order the
// opcode defines (x was pushed second, i.e. it is the current top).
func binOp(f func(z, x, y *Word) *Word) instrFn {
	return func(m *Machine, pos uint64) Control {
		x, y, err := popBinary(m)
		if err != nil {
			return exitWith(errorReason(StackUnderflow))
		}
		f(y, x, y)
		if _, err := m.stack.Pop(); err != nil {
			return exitWith(errorReason(StackUnderflow))
		}
		return continueBy(1)
	}
}

// boolBinOp is binOp for comparison/predicate opcodes that push 0 or 1.
func boolBinOp(f func(x, y *Word) bool) instrFn {
	return func(m *Machine, pos uint64) Control {
		x, y, err := popBinary(m)
		if err != nil {
			return exitWith(errorReason(StackUnderflow))
		}
		result := f(x, y)
		if _, err := m.stack.Pop(); err != nil {
			return exitWith(errorReason(StackUnderflow))
		}
		boolWord(y, result)
		return continueBy(1)
	}
}

func opAdd(m *Machine, pos uint64) Control { return binOp(Add)(m, pos) }
func opMul(m *Machine, pos uint64) Control { return binOp(Mul)(m, pos) }
func opSub(m *Machine, pos uint64) Control { return binOp(Sub)(m, pos) }
func opDiv(m *Machine, pos uint64) Control { return binOp(Div)(m, pos) }
func opSdiv(m *Machine, pos uint64) Control { return binOp(SDiv)(m, pos) }
func opMod(m *Machine, pos uint64) Control { return binOp(Rem)(m, pos) }
func opSmod(m *Machine, pos uint64) Control { return binOp(SRem)(m, pos) }
func opAnd(m *Machine, pos uint64) Control { return binOp(And)(m, pos) }
func opOr(m *Machine, pos uint64) Control  { return binOp(Or)(m, pos) }
func opXor(m *Machine, pos uint64) Control { return binOp(Xor)(m, pos) }
func opShl(m *Machine, pos uint64) Control { return binOp(func(z, x, y *Word) *Word { return Shl(z, x, y) })(m, pos) }
func opShr(m *Machine, pos uint64) Control { return binOp(func(z, x, y *Word) *Word { return Shr(z, x, y) })(m, pos) }
func opSar(m *Machine, pos uint64) Control { return binOp(func(z, x, y *Word) *Word { return Sar(z, x, y) })(m, pos) }
func opByte(m *Machine, pos uint64) Control { return binOp(func(z, x, y *Word) *Word { return Byte(z, x, y) })(m, pos) }

func opLt(m *Machine, pos uint64) Control  { return boolBinOp(Lt)(m, pos) }
func opGt(m *Machine, pos uint64) Control  { return boolBinOp(Gt)(m, pos) }
func opSlt(m *Machine, pos uint64) Control { return boolBinOp(Slt)(m, pos) }
func opSgt(m *Machine, pos uint64) Control { return boolBinOp(Sgt)(m, pos) }
func opEq(m *Machine, pos uint64) Control  { return boolBinOp(Eq)(m, pos) }

func opIszero(m *Machine, pos uint64) Control {
	top, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	boolWord(top, IsZero(top))
	return continueBy(1)
}

func opNot(m *Machine, pos uint64) Control {
	top, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	Not(top, top)
	return continueBy(1)
}

func opAddmod(m *Machine, pos uint64) Control {
	x, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	y, err := m.stack.Peek(1)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	n, err := m.stack.Peek(2)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	AddMod(n, x, y, n)
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

func opMulmod(m *Machine, pos uint64) Control {
	x, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	y, err := m.stack.Peek(1)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	n, err := m.stack.Peek(2)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	MulMod(n, x, y, n)
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

func opExp(m *Machine, pos uint64) Control { return binOp(Exp)(m, pos) }

func opSignextend(m *Machine, pos uint64) Control {
	return binOp(func(z, b, x *Word) *Word { return SignExtend(z, b, x) })(m, pos)
}

func opPop(m *Machine, pos uint64) Control {
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

func opMload(m *Machine, pos uint64) Control {
	offsetW, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !offsetW.IsUint64() {
		return exitWith(errorReason(OutOfOffset))
	}
	val, err := m.memory.MLoad(offsetW.Uint64())
	if err != nil {
		return exitWith(errorReason(InvalidMemoryRange))
	}
	offsetW.Set(&val)
	return continueBy(1)
}

func opMstore(m *Machine, pos uint64) Control {
	offsetW, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	val, err := m.stack.Peek(1)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !offsetW.IsUint64() {
		return exitWith(errorReason(OutOfOffset))
	}
	if err := m.memory.MStore(offsetW.Uint64(), val); err != nil {
		return exitWith(errorReason(InvalidMemoryRange))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

func opMstore8(m *Machine, pos uint64) Control {
	offsetW, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	val, err := m.stack.Peek(1)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !offsetW.IsUint64() {
		return exitWith(errorReason(OutOfOffset))
	}
	if err := m.memory.MStore8(offsetW.Uint64(), val); err != nil {
		return exitWith(errorReason(InvalidMemoryRange))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

func opMsize(m *Machine, pos uint64) Control {
	var z Word
	z.SetUint64(m.memory.MSize())
	if err := m.stack.Push(&z); err != nil {
		return exitWith(errorReason(StackOverflow))
	}
	return continueBy(1)
}

func opPc(m *Machine, pos uint64) Control {
	var z Word
	z.SetUint64(pos)
	if err := m.stack.Push(&z); err != nil {
		return exitWith(errorReason(StackOverflow))
	}
	return continueBy(1)
}

func opJumpdest(m *Machine, pos uint64) Control {
	return continueBy(1)
}

func opJump(m *Machine, pos uint64) Control {
	dest, err := m.stack.Pop()
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !dest.IsUint64() || !m.IsValidJump(dest.Uint64()) {
		return exitWith(errorReason(InvalidJumpDest))
	}
	return jumpTo(dest.Uint64())
}

func opJumpi(m *Machine, pos uint64) Control {
	dest, err := m.stack.Pop()
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	cond, err := m.stack.Pop()
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if IsZero(&cond) {
		return continueBy(1)
	}
	if !dest.IsUint64() || !m.IsValidJump(dest.Uint64()) {
		return exitWith(errorReason(InvalidJumpDest))
	}
	return jumpTo(dest.Uint64())
}

func opCodesize(m *Machine, pos uint64) Control {
	var z Word
	z.SetUint64(uint64(m.code.Len()))
	if err := m.stack.Push(&z); err != nil {
		return exitWith(errorReason(StackOverflow))
	}
	return continueBy(1)
}

func opCodecopy(m *Machine, pos uint64) Control {
	return copyToMemory(m, m.code.Bytes())
}

func opCalldatasize(m *Machine, pos uint64) Control {
	var z Word
	z.SetUint64(uint64(len(m.callData)))
	if err := m.stack.Push(&z); err != nil {
		return exitWith(errorReason(StackOverflow))
	}
	return continueBy(1)
}

func opCalldataload(m *Machine, pos uint64) Control {
	offsetW, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	var offset uint64
	if offsetW.IsUint64() {
		offset = offsetW.Uint64()
	} else {
		offset = uint64(len(m.callData))
	}
	b := readSliceZeroPadded(m.callData, offset, 32)
	offsetW.SetBytes32(b)
	return continueBy(1)
}

func opCalldatacopy(m *Machine, pos uint64) Control {
	return copyToMemory(m, m.callData)
}

// copyToMemory implements the common MSTORE-destination / source-offset /
// length stack shape shared by CODECOPY and CALLDATACOPY.
func copyToMemory(m *Machine, source []byte) Control {
	destW, err := m.stack.Peek(0)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	offsetW, err := m.stack.Peek(1)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	lengthW, err := m.stack.Peek(2)
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !destW.IsUint64() || !lengthW.IsUint64() {
		return exitWith(errorReason(OutOfOffset))
	}
	var offset uint64
	if offsetW.IsUint64() {
		offset = offsetW.Uint64()
	} else {
		offset = uint64(len(source))
	}
	if err := m.memory.Copy(destW.Uint64(), source, offset, lengthW.Uint64()); err != nil {
		return exitWith(errorReason(InvalidMemoryRange))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if _, err := m.stack.Pop(); err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	return continueBy(1)
}

// makePush returns a handler for PUSH1..PUSH32 that reads size bytes of
// immediate data following the opcode, zero-padded past code end.
func makePush(size int) instrFn {
	return func(m *Machine, pos uint64) Control {
		data := m.code.Slice(pos+1, uint64(size))
		var z Word
		var b [32]byte
		copy(b[32-size:], data)
		z.SetBytes32(b[:])
		if err := m.stack.Push(&z); err != nil {
			return exitWith(errorReason(StackOverflow))
		}
		return continueBy(uint64(size) + 1)
	}
}

// makeDup returns a handler for DUP1..DUP16.
func makeDup(n int) instrFn {
	return func(m *Machine, pos uint64) Control {
		if err := m.stack.Dup(n); err != nil {
			if err == ErrStackOverflow {
				return exitWith(errorReason(StackOverflow))
			}
			return exitWith(errorReason(StackUnderflow))
		}
		return continueBy(1)
	}
}

// makeSwap returns a handler for SWAP1..SWAP16.
func makeSwap(n int) instrFn {
	return func(m *Machine, pos uint64) Control {
		if err := m.stack.Swap(n); err != nil {
			return exitWith(errorReason(StackUnderflow))
		}
		return continueBy(1)
	}
}

func opReturn(m *Machine, pos uint64) Control {
	return haltWithOutput(m, Returned)
}

func opRevert(m *Machine, pos uint64) Control {
	return haltWithOutput(m, Reverted)
}

// haltWithOutput implements the shared RETURN/REVERT stack shape: pop
// offset and size, capture memory[offset:offset+size] as return data, and
// exit with code. Both RETURN and REVERT are Succeed-category exits, see
// ExitReason's note on IsRevert.
func haltWithOutput(m *Machine, code ExitCode) Control {
	offsetW, err := m.stack.Pop()
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	sizeW, err := m.stack.Pop()
	if err != nil {
		return exitWith(errorReason(StackUnderflow))
	}
	if !offsetW.IsUint64() || !sizeW.IsUint64() {
		return exitWith(errorReason(OutOfOffset))
	}
	data, err := m.memory.Get(offsetW.Uint64(), sizeW.Uint64())
	if err != nil {
		return exitWith(errorReason(InvalidMemoryRange))
	}
	m.setReturnData(data)
	return exitWith(succeedReason(code))
}

func opInvalid(m *Machine, pos uint64) Control {
	return exitWith(errorReason(DesignatedInvalid))
}

// opExternal is the fallback for every host-dependent or undefined opcode:
// storage, calls, logs, environment queries, account/balance queries,
// hashing, creation, and self-destruct. The core has no way to execute
// these itself, so it traps back to the driver.
func opExternal(m *Machine, pos uint64) Control {
	return trapOn(m.code.At(pos))
}
