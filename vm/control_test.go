package vm

import "testing"

func TestExitReasonRevertIsSucceedButDistinguishable(t *testing.T) {
	r := succeedReason(Reverted)
	if !r.IsSucceed() {
		t.Fatal("Reverted must be classified under Succeed")
	}
	if r.IsError() {
		t.Fatal("Reverted must not be classified under Error")
	}
	if !r.IsRevert() {
		t.Fatal("IsRevert() must report true for a Reverted exit")
	}
}

func TestExitReasonStoppedIsNotRevert(t *testing.T) {
	r := succeedReason(Stopped)
	if r.IsRevert() {
		t.Fatal("Stopped must not be classified as a revert")
	}
}

func TestExitReasonErrorCategory(t *testing.T) {
	r := errorReason(StackUnderflow)
	if !r.IsError() || r.IsSucceed() {
		t.Fatal("StackUnderflow must be classified under Error")
	}
}
