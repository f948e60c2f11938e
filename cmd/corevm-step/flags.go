package main

import (
	"flag"
)

// config holds the resolved command-line configuration.
type config struct {
	CodeHex     string
	CallDataHex string
	StackLimit  uint64
	MemoryLimit uint64
	MaxSteps    uint64
	Verbose     bool
}

// parseFlags parses args and returns the resolved config. exit reports
// whether the caller should stop (e.g. -h was given or parsing failed),
// in which case code is the process exit code to use.
func parseFlags(args []string) (cfg config, exit bool, code int) {
	fs := flag.NewFlagSet("corevm-step", flag.ContinueOnError)
	fs.StringVar(&cfg.CodeHex, "code", "", "program bytecode, hex encoded (0x prefix optional)")
	fs.StringVar(&cfg.CallDataHex, "calldata", "", "call-data, hex encoded (0x prefix optional)")
	fs.Uint64Var(&cfg.StackLimit, "stack-limit", MaxStackLimitDefault, "operand stack depth limit")
	fs.Uint64Var(&cfg.MemoryLimit, "memory-limit", MemoryLimitDefault, "memory addressing limit in bytes")
	fs.Uint64Var(&cfg.MaxSteps, "max-steps", 100000, "abort after this many steps without terminating")
	fs.BoolVar(&cfg.Verbose, "v", false, "print every step, not just the final result")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}
	return cfg, false, 0
}
