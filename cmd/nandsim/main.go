// Command nandsim runs the gate-level computer and ALU built with nandsim.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/cpu"
	"github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
	"github.com/db47h/nandsim/internal/asm"
	"github.com/db47h/nandsim/internal/config"
	"github.com/db47h/nandsim/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nandsim",
		Short: "NAND gate level circuit simulator",
		Long: `nandsim simulates digital circuits built only from NAND gates and latches.

It can run a minimal 8 bits stored-program computer whose instructions are
ALU opcodes, or evaluate a single ALU operation at gate level.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newDumpCmd(),
		newALUCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nandsim version %s\n", version)
		},
	}
}

// loadConfig loads the configuration file and environment, then applies the
// command line flags that have been set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("tics"); f != nil && f.Changed {
		cfg.Tics, _ = flags.GetInt("tics")
	}
	if f := flags.Lookup("dump-every"); f != nil && f.Changed {
		cfg.DumpEvery, _ = flags.GetInt("dump-every")
	}
	if f := flags.Lookup("program"); f != nil && f.Changed {
		cfg.Program, _ = flags.GetString("program")
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("tics", 0, "Number of clock cycles to run (default from config: 16)")
	cmd.Flags().String("program", "", "Inline program source")
}

// runMachine builds the computer, loads the configured program and runs it.
// If every is not nil, it is called every cfg.DumpEvery tics.
func runMachine(cfg *config.Config, log *slog.Logger, every func(m *cpu.Machine) error) (*cpu.Machine, error) {
	src, err := cfg.Source()
	if err != nil {
		return nil, err
	}
	img, err := asm.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parse program")
	}
	m, err := cpu.New(cpu.WithLogger(log))
	if err != nil {
		return nil, err
	}
	signals, blocks := m.Circuit().Size()
	log.Info("machine ready", "signals", signals, "blocks", blocks, "program_bytes", img.Len, "tics", cfg.Tics)
	if err = m.LoadProgram(img.Bytes()); err != nil {
		return nil, errors.Wrap(err, "load program")
	}
	for i := 1; i <= cfg.Tics; i++ {
		if err = m.Tic(); err != nil {
			return nil, errors.Wrapf(err, "tic %d", i)
		}
		if every != nil && cfg.DumpEvery > 0 && i%cfg.DumpEvery == 0 && i != cfg.Tics {
			if err = every(m); err != nil {
				return nil, err
			}
		}
	}
	r := m.Registers()
	log.Info("run complete", "clock", r.Clock, "x", r.X, "y", r.Y, "pc", r.PC, "op", hwlib.Opcode(r.OP).String())
	return m, nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a program on the gate level computer",
		Long: `Build the computer, load the program into memory and run it for the
configured number of tics. The machine state is dumped at the end of the run
and optionally every --dump-every tics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			log := logging.NewLogger(cfg.Log.Level, cmd.ErrOrStderr())
			dump := func(m *cpu.Machine) error {
				if err := m.HexDump(out); err != nil {
					return err
				}
				_, err := io.WriteString(out, "\n")
				return err
			}
			m, err := runMachine(cfg, log, dump)
			if err != nil {
				return err
			}
			return m.HexDump(out)
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Int("dump-every", 0, "Dump the machine state every n tics")
	return cmd
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Run a program and print the final registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := runMachine(cfg, logging.NewLogger(cfg.Log.Level, cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			r := m.Registers()
			out := cmd.OutOrStdout()
			if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
				data, err := yaml.Marshal(r)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			_, err = fmt.Fprintf(out, "CLOCK: %02x\nX: %02x  Y: %02x  PC: %02x  OP: %02x\n", r.Clock, r.X, r.Y, r.PC, r.OP)
			return err
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("yaml", false, "Output as YAML")
	return cmd
}

func parseByte(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, errors.Errorf("invalid operand %q: expected a value in [0, 255]", s)
	}
	return n, nil
}

func newALUCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alu OP A B",
		Short: "Evaluate one ALU operation at gate level",
		Long: `Evaluate one ALU operation at gate level. OP is an opcode name (ADD, SUB,
INCA, ...) or an opcode value. A and B are 8 bits operands.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := hwlib.OpcodeByName(args[0])
			if !ok {
				n, err := parseByte(args[0])
				if err != nil {
					return errors.Errorf("unknown opcode %q", args[0])
				}
				op = hwlib.Opcode(n)
			}
			a, err := parseByte(args[1])
			if err != nil {
				return err
			}
			b, err := parseByte(args[2])
			if err != nil {
				return err
			}
			var cin uint64
			if set, _ := cmd.Flags().GetBool("cin"); set {
				cin = 1
			}

			c := nandsim.New()
			wa, wb, wop, wcin := c.NewWord(8), c.NewWord(8), c.NewWord(8), c.NewSignal()
			alu, err := hwlib.NewALU(c, wa, wb, wop, wcin, nil)
			if err != nil {
				return err
			}
			res, err := hwtest.Eval(c,
				[]nandsim.Word{wa, wb, wop, {wcin}}, []uint64{a, b, uint64(op), cin},
				[]nandsim.Word{alu.Out, {alu.Cout}})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v(%d, %d, cin=%d): out = %d (0x%02x), cout = %d\n", op, a, b, cin, res[0], res[0], res[1])
			return err
		},
	}
	cmd.Flags().Bool("cin", false, "Set the carry in")
	return cmd
}
