// Command swtimer-demo is an interactive playground for the software timer
// library. It binds a millisecond tick source and lets you arm and poll
// named timers from a prompt.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/rici4kubicek/software-timer/pkg/config"
	"github.com/rici4kubicek/software-timer/pkg/swtimer"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	eventLogger, closeFn, err := cfg.BuildLogger(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeFn()

	swtimer.SetViolationHandler(cfg.ViolationHandler(logger))

	// Millisecond tick source, truncated to the 32-bit counter the library
	// operates on. Wraps after ~49.7 days like a classic HAL_GetTick.
	started := time.Now()
	millis := func() uint32 {
		return uint32(time.Since(started).Milliseconds())
	}

	var opts []swtimer.Option
	if eventLogger != nil {
		opts = append(opts, swtimer.WithLogger(eventLogger))
	}
	clk, err := swtimer.NewClock(millis, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	d, err := newDemo(clk, cfg.TickUnit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer d.Close()

	d.Run()
}

// demo holds the REPL state: one clock and a set of named timers.
type demo struct {
	clk    *swtimer.Clock
	unit   string
	timers map[string]*swtimer.Timer
	rl     *readline.Instance
}

func newDemo(clk *swtimer.Clock, unit string) (*demo, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "swtimer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &demo{
		clk:    clk,
		unit:   unit,
		timers: make(map[string]*swtimer.Timer),
		rl:     rl,
	}, nil
}

// Close releases the readline instance.
func (d *demo) Close() error {
	return d.rl.Close()
}

// Run starts the interactive command loop.
func (d *demo) Run() {
	out := d.rl.Stdout()
	d.printHelp(out)

	for {
		line, err := d.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help", "?":
			d.printHelp(out)

		case "now":
			fmt.Fprintf(out, "tick: %d %s\n", d.clk.Now(), d.unit)

		case "set":
			d.cmdSet(out, args)

		case "expired":
			d.cmdExpired(out, args)

		case "remaining":
			d.cmdRemaining(out, args)

		case "once":
			d.cmdOnce(out, args)

		case "wait":
			d.cmdWait(out, args)

		case "list", "ls":
			d.cmdList(out)

		case "quit", "exit", "q":
			fmt.Fprintln(out, "Exiting...")
			return

		default:
			fmt.Fprintf(out, "Unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (d *demo) printHelp(out io.Writer) {
	fmt.Fprintf(out, `Commands:
  set <name> <ticks>   arm (or re-arm) a named timer
  expired <name>       level-triggered expiry check
  remaining <name>     ticks until expiry (%s)
  once <name>          edge-triggered one-shot expiry check
  wait <name>          poll until the timer expires
  list                 show all timers
  now                  show the current tick
  help                 show this help
  quit                 exit
`, d.unit)
}

func (d *demo) cmdSet(out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: set <name> <ticks>")
		return
	}
	interval, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		fmt.Fprintf(out, "Invalid interval %q: %v\n", args[1], err)
		return
	}
	t, ok := d.timers[args[0]]
	if !ok {
		t = &swtimer.Timer{}
		d.timers[args[0]] = t
	}
	d.clk.Set(t, uint32(interval))
	fmt.Fprintf(out, "Timer %q armed for %d %s (start tick %d)\n",
		args[0], interval, d.unit, t.Start())
}

// lookup resolves a timer by name, printing a hint when it does not exist.
func (d *demo) lookup(out io.Writer, args []string, usage string) *swtimer.Timer {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage:", usage)
		return nil
	}
	t, ok := d.timers[args[0]]
	if !ok {
		fmt.Fprintf(out, "No timer %q, arm it with 'set %s <ticks>'\n", args[0], args[0])
		return nil
	}
	return t
}

func (d *demo) cmdExpired(out io.Writer, args []string) {
	if t := d.lookup(out, args, "expired <name>"); t != nil {
		fmt.Fprintf(out, "%v\n", d.clk.IsExpired(t))
	}
}

func (d *demo) cmdRemaining(out io.Writer, args []string) {
	if t := d.lookup(out, args, "remaining <name>"); t != nil {
		fmt.Fprintf(out, "%d %s\n", d.clk.Remaining(t), d.unit)
	}
}

func (d *demo) cmdOnce(out io.Writer, args []string) {
	if t := d.lookup(out, args, "once <name>"); t != nil {
		fmt.Fprintf(out, "%v\n", d.clk.IsExpiredEvaluatedOnce(t))
	}
}

func (d *demo) cmdWait(out io.Writer, args []string) {
	t := d.lookup(out, args, "wait <name>")
	if t == nil {
		return
	}
	// Poll loop as an embedded main loop would, with a sleep to stay polite
	// on a hosted OS.
	for !d.clk.IsExpired(t) {
		time.Sleep(time.Millisecond)
	}
	fmt.Fprintf(out, "Timer %q expired at tick %d\n", args[0], d.clk.Now())
}

func (d *demo) cmdList(out io.Writer) {
	if len(d.timers) == 0 {
		fmt.Fprintln(out, "No timers")
		return
	}
	names := make([]string, 0, len(d.timers))
	for name := range d.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := d.timers[name]
		fmt.Fprintf(out, "  %-12s interval=%d start=%d remaining=%d expired=%v\n",
			name, t.Interval(), t.Start(), d.clk.Remaining(t), d.clk.IsExpired(t))
	}
}
