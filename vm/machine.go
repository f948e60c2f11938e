package vm

// DefaultMemoryLimit is the memory addressing limit used by NewMachine.
const DefaultMemoryLimit = maxMemorySize

// Machine holds the transient execution state of one bytecode program
// run: the operand stack, linear memory, immutable code and call-data,
// and the return-data buffer produced by RETURN/REVERT. A Machine is
// mutated exclusively by Step calls from a single driver and is not
// safe for concurrent use.
type Machine struct {
	stack       *Stack
	memory      *Memory
	code        *Code
	callData    []byte
	returnData  []byte
	memoryLimit uint64
}

// NewMachine constructs a Machine with the default stack limit (1024)
// and memory limit.
func NewMachine(code, callData []byte) *Machine {
	return NewMachineWithLimits(code, callData, MaxStackLimit, DefaultMemoryLimit)
}

// NewMachineWithLimits constructs a Machine with explicit stack and
// memory limits, for tests that want to exercise overflow/InvalidRange
// paths without reconstructing a stack-limit's worth of code.
func NewMachineWithLimits(code, callData []byte, stackLimit int, memoryLimit uint64) *Machine {
	if memoryLimit == 0 || memoryLimit > maxMemorySize {
		memoryLimit = maxMemorySize
	}
	return &Machine{
		stack:       NewStack(stackLimit),
		memory:      NewMemoryWithLimit(memoryLimit),
		code:        NewCode(code),
		callData:    append([]byte(nil), callData...),
		memoryLimit: memoryLimit,
	}
}

// Stack returns the operand stack.
func (m *Machine) Stack() *Stack { return m.stack }

// Memory returns the linear memory.
func (m *Machine) Memory() *Memory { return m.memory }

// Code returns the program code.
func (m *Machine) Code() *Code { return m.code }

// CallData returns the immutable call-data buffer supplied at construction.
func (m *Machine) CallData() []byte { return m.callData }

// ReturnData returns the bytes captured by the last RETURN or REVERT, or
// nil if the machine has not exited via one of those.
func (m *Machine) ReturnData() []byte { return m.returnData }

// IsValidJump reports whether pos is a valid JUMP/JUMPI destination.
func (m *Machine) IsValidJump(pos uint64) bool { return m.code.IsValidJump(pos) }

// setReturnData stores a copy of data as the machine's return-data buffer.
func (m *Machine) setReturnData(data []byte) {
	if len(data) == 0 {
		m.returnData = nil
		return
	}
	m.returnData = append([]byte(nil), data...)
}
