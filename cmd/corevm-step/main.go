// Command corevm-step runs a single bytecode program through the core
// interpreter and prints the terminal Control decision.
//
// Usage:
//
//	corevm-step -code 6001600201 [-calldata 0x...] [-v]
//
// The driver loop here is intentionally minimal: it has no gas model and
// no host environment, so any Trap is reported and the run stops. A real
// driver would resolve the trapped opcode against a host and resume.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/corevm/corevm/vm"
)

const (
	MaxStackLimitDefault = uint64(vm.MaxStackLimit)
	MemoryLimitDefault   = uint64(vm.DefaultMemoryLimit)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	codeBytes, err := decodeHex(cfg.CodeHex)
	if err != nil {
		log.Printf("invalid -code: %v", err)
		return 1
	}
	callData, err := decodeHex(cfg.CallDataHex)
	if err != nil {
		log.Printf("invalid -calldata: %v", err)
		return 1
	}

	m := vm.NewMachineWithLimits(codeBytes, callData, int(cfg.StackLimit), cfg.MemoryLimit)

	log.Printf("corevm-step starting")
	log.Printf("  code size:    %d bytes", m.Code().Len())
	log.Printf("  calldata:     %d bytes", len(m.CallData()))
	log.Printf("  stack limit:  %d", cfg.StackLimit)
	log.Printf("  memory limit: %d bytes", cfg.MemoryLimit)

	position := uint64(0)
	for step := uint64(0); step < cfg.MaxSteps; step++ {
		ctrl := vm.Step(m, position)
		if cfg.Verbose {
			log.Printf("  step %d: position=%d opcode=%s -> %s", step, position, m.Code().At(position), describe(ctrl))
		}
		switch ctrl.Kind {
		case vm.ControlContinue:
			position += ctrl.N
		case vm.ControlJump:
			position = ctrl.Dest
		case vm.ControlExit:
			fmt.Printf("exit: %s\n", ctrl.Reason)
			if n := len(m.ReturnData()); n > 0 {
				fmt.Printf("return-data: 0x%x\n", m.ReturnData())
			}
			if ctrl.Reason.IsError() {
				return 1
			}
			return 0
		case vm.ControlTrap:
			fmt.Printf("trap: %s at position %d (host-dependent, no driver attached)\n", ctrl.Op, position)
			return 1
		}
	}
	log.Printf("exceeded max-steps (%d) without terminating", cfg.MaxSteps)
	return 1
}

func describe(ctrl vm.Control) string {
	switch ctrl.Kind {
	case vm.ControlContinue:
		return fmt.Sprintf("Continue(%d)", ctrl.N)
	case vm.ControlJump:
		return fmt.Sprintf("Jump(%d)", ctrl.Dest)
	case vm.ControlExit:
		return fmt.Sprintf("Exit(%s)", ctrl.Reason)
	case vm.ControlTrap:
		return fmt.Sprintf("Trap(%s)", ctrl.Op)
	default:
		return "?"
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
