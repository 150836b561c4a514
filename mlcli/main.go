/*
Command mlcli is an interactive tool for assembling math lists and inspecting
the hlists they are converted to.

Commands are entered as a sequence of steps, separated by blanks. Each step
has the form "op:arg:format", e.g.

	ord:x sup:2 bin:+ ord:y show

appends the atoms for x², + and y to the current list, converts it and
prints the resulting hlist. Use "help" for a list of operations.

	mlcli repl [--font file.ttf] [--params params.toml] [--trace Debug]
	mlcli eval "ord:x sup:2 bin:+ ord:y show"

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'tyse.math'
func tracer() tracing.Trace {
	return tracing.Select("tyse.math")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.tyse.math": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if err := rootCommand().Execute(); err != nil {
		os.Exit(2)
	}
}

type settings struct {
	tlevel   string
	fontfile string
	params   string
}

func rootCommand() *cobra.Command {
	var s settings
	root := &cobra.Command{
		Use:          "mlcli",
		Short:        "mlcli converts math lists to hlists",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(&s)
		},
	}
	root.PersistentFlags().StringVar(&s.tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().StringVar(&s.fontfile, "font", "", "OpenType font to use as text font (families 0 and 1)")
	root.PersistentFlags().StringVar(&s.params, "params", "", "TOML file with math parameters")
	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(&s)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "eval [steps...]",
		Short: "Execute a single command line and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intp, err := setup(&s)
			if err != nil {
				return err
			}
			return intp.Eval(strings.Join(args, " "))
		},
	})
	return root
}

// setup configures tracing and creates an interpreter, without line editing.
func setup(s *settings) (*Intp, error) {
	switch s.tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", s.tlevel)
		return nil, fmt.Errorf("invalid trace level %q", s.tlevel)
	}
	intp := NewIntp()
	if s.params != "" {
		if err := intp.loadParams(s.params); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	if s.fontfile != "" {
		if err := intp.loadFont(s.fontfile); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	return intp, nil
}

func runREPL(s *settings) error {
	pterm.Info.Println("Welcome to the math list CLI") // colored welcome message
	intp, err := setup(s)
	if err != nil {
		return err
	}
	repl, err := readline.New("ml > ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
