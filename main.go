package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ushitora-anqou/aqcore/cpu"
	"github.com/ushitora-anqou/aqcore/util"
	"github.com/ushitora-anqou/aqcore/window"
)

type interruptModeValue struct {
	mode *cpu.InterruptMode
}

func (v interruptModeValue) String() string {
	return v.mode.String()
}

func (v interruptModeValue) Set(s string) error {
	mode, err := cpu.ParseInterruptMode(s)
	if err != nil {
		return err
	}
	*v.mode = mode
	return nil
}

func (v interruptModeValue) Type() string {
	return "mode"
}

type reporterValue struct {
	kind *window.Kind
}

func (v reporterValue) String() string {
	return v.kind.String()
}

func (v reporterValue) Set(s string) error {
	kind, err := window.ParseKind(s)
	if err != nil {
		return err
	}
	*v.kind = kind
	return nil
}

func (v reporterValue) Type() string {
	return "kind"
}

var (
	_ pflag.Value = interruptModeValue{}
	_ pflag.Value = reporterValue{}
)

type options struct {
	trace      bool
	maxSteps   uint64
	config     cpu.Config
	reporter   window.Kind
	cpuProfile string
	dumpState  string
}

func run(opts *options, romPath string) error {
	if opts.trace {
		util.EnableTrace()
	}
	if opts.cpuProfile != "" {
		file, err := os.Create(opts.cpuProfile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	aqcore := NewAQCore(opts.config)
	if err := aqcore.LoadGame(romPath); err != nil {
		return err
	}

	err := aqcore.Run(opts.maxSteps)
	if opts.dumpState != "" {
		if dumpErr := dumpState(opts.dumpState, aqcore.Snapshot()); dumpErr != nil {
			log.Printf("Failed to dump state: %v", dumpErr)
		}
	}
	return err
}

func dumpState(path string, snapshot cpu.Snapshot) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	memviz.Map(file, &snapshot)
	return nil
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aqcore PATH",
		Short:         "Game Boy CPU interpreter",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(opts, args[0])
		},
	}
	flags := rootCmd.Flags()
	flags.BoolVar(&opts.trace, "trace", false, "Log every executed instruction")
	flags.Uint64Var(&opts.maxSteps, "max-steps", 0, "Stop after this many instructions (0 = run forever)")
	flags.Var(interruptModeValue{&opts.config.InterruptMode}, "interrupts", "Interrupt delivery: jump or vectored")
	flags.Var(reporterValue{&opts.reporter}, "reporter", "Fatal error reporter: auto, terminal or sdl")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	flags.StringVar(&opts.dumpState, "dump-state", "", "Write a graphviz dump of the final CPU state to this file")
	return rootCmd
}

func main() {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var opErr *cpu.OpcodeError
	if errors.As(err, &opErr) {
		reporter, repErr := window.NewReporter(opts.reporter)
		if repErr != nil {
			reporter = window.NewTerminalReporter(os.Stderr)
		}
		if repErr := reporter.Report("Fatal error", opErr.Error()); repErr != nil {
			fmt.Fprintln(os.Stderr, opErr.Error())
		}
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
