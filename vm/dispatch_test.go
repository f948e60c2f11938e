package vm

import "testing"

func TestStepPastEndOfCodeBehavesAsStop(t *testing.T) {
	m := NewMachine([]byte{byte(ADD)}, nil)
	one, two := w(1), w(2)
	m.Stack().Push(&one)
	m.Stack().Push(&two)
	ctrl := Step(m, 5) // past end
	if ctrl.Kind != ControlExit || ctrl.Reason != succeedReason(Stopped) {
		t.Fatalf("ctrl = %+v, want Exit(Stopped)", ctrl)
	}
}

func TestStepUnmappedOpcodeTraps(t *testing.T) {
	m := NewMachine([]byte{0x0c}, nil) // 0x0c is unassigned
	ctrl := Step(m, 0)
	if ctrl.Kind != ControlTrap {
		t.Fatalf("ctrl = %+v, want Trap", ctrl)
	}
}

func TestProfileHooksAreCalled(t *testing.T) {
	var begins, ends int
	oldBegin, oldEnd := ProfileBegin, ProfileEnd
	defer func() { ProfileBegin, ProfileEnd = oldBegin, oldEnd }()
	ProfileBegin = func() { begins++ }
	ProfileEnd = func(op byte) { ends++ }

	m := NewMachine([]byte{byte(STOP)}, nil)
	Step(m, 0)

	if begins != 1 || ends != 1 {
		t.Fatalf("begins=%d ends=%d, want 1 and 1", begins, ends)
	}
}

func TestDupAllMappedSlots(t *testing.T) {
	for n := 1; n <= 16; n++ {
		m := NewMachine([]byte{byte(int(DUP1) + n - 1)}, nil)
		for i := 0; i < n; i++ {
			v := w(uint64(i))
			if err := m.Stack().Push(&v); err != nil {
				t.Fatal(err)
			}
		}
		ctrl := Step(m, 0)
		if ctrl.Kind != ControlContinue {
			t.Fatalf("DUP%d: ctrl = %+v, want Continue", n, ctrl)
		}
		if m.Stack().Len() != n+1 {
			t.Fatalf("DUP%d: len = %d, want %d", n, m.Stack().Len(), n+1)
		}
	}
}

func TestPushAllSizesAdvancePastImmediateData(t *testing.T) {
	for n := 1; n <= 32; n++ {
		code := make([]byte, n+2)
		code[0] = byte(int(PUSH1) + n - 1)
		for i := 1; i <= n; i++ {
			code[i] = 0x11
		}
		code[n+1] = byte(STOP)
		m := NewMachine(code, nil)
		ctrl := Step(m, 0)
		if ctrl.Kind != ControlContinue || ctrl.N != uint64(n+1) {
			t.Fatalf("PUSH%d: ctrl = %+v, want Continue(%d)", n, ctrl, n+1)
		}
	}
}
