package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/font/memfont"
	"github.com/npillmayer/mathlist/mlist"
	"github.com/npillmayer/mathlist/noad"
	"github.com/npillmayer/mathlist/node"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	fonts  *font.Table
	conf   testconfig.Conf // math parameters, as strings
	params mlist.Params
	list   noad.List
	style  noad.Style
	count  int       // items in the current list
	hlist  node.Node // result of the last conversion
	diags  []mlist.Diagnostic
}

// NewIntp creates an interpreter using the demo fonts.
func NewIntp() *Intp {
	return &Intp{
		fonts:  memfont.Demo(),
		conf:   testconfig.Conf{},
		params: mlist.DefaultParams(),
		style:  noad.Text,
	}
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( %s, %d items )", intp.style, intp.count)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Eval parses and executes a single command line.
func (intp *Intp) Eval(line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		return err
	}
	_, err = intp.execute(cmd)
	return err
}

// Op is a single step of a command: "op:arg:format".
type Op struct {
	code   int
	arg    string
	format string
}

// Command is a line of input.
type Command struct {
	op []Op
}

const (
	// op-codes QUIT, SHOW and CLEAR will not have arguments
	QUIT int = iota
	SHOW
	CLEAR
	// op-codes below may have arguments
	HELP
	ATOM
	SUP
	SUB
	LEFT
	RIGHT
	RADICAL
	OVER
	STYLE
	PARAMS
	SET
	PNG
)

var opMap = map[string]int{
	"quit":    QUIT,
	"show":    SHOW,
	"clear":   CLEAR,
	"help":    HELP,
	"ord":     ATOM,
	"op":      ATOM,
	"bin":     ATOM,
	"rel":     ATOM,
	"open":    ATOM,
	"close":   ATOM,
	"punct":   ATOM,
	"inner":   ATOM,
	"sup":     SUP,
	"sub":     SUB,
	"left":    LEFT,
	"right":   RIGHT,
	"radical": RADICAL,
	"over":    OVER,
	"style":   STYLE,
	"params":  PARAMS,
	"set":     SET,
	"png":     PNG,
}

var atomKinds = map[string]noad.Kind{
	"ord":   noad.Ord,
	"op":    noad.Op,
	"bin":   noad.Bin,
	"rel":   noad.Rel,
	"open":  noad.Open,
	"close": noad.Close,
	"punct": noad.Punct,
	"inner": noad.Inner,
}

// ErrUnknownOp is returned for steps which do not start with a known operation.
var ErrUnknownOp = errors.New("unknown operation")

// ErrNoNoad is returned if a script is attached to something other than an atom.
var ErrNoNoad = errors.New("scripts need a preceding atom")

func parseCommand(line string) (*Command, error) {
	steps := strings.Fields(line)
	cmd := &Command{op: make([]Op, 0, len(steps))}
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "ord:x", "op:0x50:3" or "style:script"
		name := strings.ToLower(c[0])
		code, ok := opMap[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, c[0])
		}
		op := Op{code: code, arg: getOptArg(c, 1), format: getOptArg(c, 2)}
		if code == ATOM {
			// keep the atom kind as format prefix
			op.format = name + ":" + op.format
		}
		tracer().Debugf("parsed step: %v", c)
		cmd.op = append(cmd.op, op)
		if code == QUIT {
			break
		}
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:    quitOp,
	SHOW:    showOp,
	CLEAR:   clearOp,
	HELP:    helpOp,
	ATOM:    atomOp,
	SUP:     scriptOp,
	SUB:     scriptOp,
	LEFT:    delimOp,
	RIGHT:   delimOp,
	RADICAL: radicalOp,
	OVER:    overOp,
	STYLE:   styleOp,
	PARAMS:  paramsOp,
	SET:     setOp,
	PNG:     pngOp,
}

func (intp *Intp) execute(cmd *Command) (stop bool, err error) {
	tracer().Debugf("cmd = %v", cmd.op)
	for i := range cmd.op {
		c := &cmd.op[i]
		f, ok := commandFn[c.code]
		if !ok {
			return false, fmt.Errorf("unknown command code: %d", c.code)
		}
		if stop, err = f(intp, c); err != nil || stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	pterm.Println("Goodbye!")
	return true, nil
}

func clearOp(intp *Intp, op *Op) (bool, error) {
	intp.list.Flush()
	intp.count = 0
	return false, nil
}

// --- Building the mlist -----------------------------------------------

func atomOp(intp *Intp, op *Op) (bool, error) {
	name, fam, _ := strings.Cut(op.format, ":")
	k := atomKinds[name]
	c, err := parseChar(op.arg)
	if err != nil {
		return false, err
	}
	f, err := parseFamily(fam, c, k)
	if err != nil {
		return false, err
	}
	intp.append(noad.NewChar(k, f, c))
	return false, nil
}

func scriptOp(intp *Intp, op *Op) (bool, error) {
	n, ok := intp.list.Tail().(*noad.Noad)
	if !ok {
		return false, ErrNoNoad
	}
	c, err := parseChar(op.arg)
	if err != nil {
		return false, err
	}
	f, err := parseFamily(op.format, c, noad.Ord)
	if err != nil {
		return false, err
	}
	if op.code == SUP {
		n.Sup = noad.CharField(f, c)
	} else {
		n.Sub = noad.CharField(f, c)
	}
	return false, nil
}

// delimiters maps characters to delimiter codes of plain TeX.
var delimiters = map[string]int{
	"(": 0x028300,
	")": 0x029301,
	"{": 0x266308,
	"}": 0x267309,
	"|": 0x26A30C,
	".": 0,
}

func parseDelimiter(s string) (noad.Delimiter, error) {
	if code, ok := delimiters[s]; ok {
		return noad.DelimiterFromCode(code), nil
	}
	code, err := strconv.ParseInt(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return noad.NullDelimiter, fmt.Errorf("not a delimiter: %q", s)
	}
	return noad.DelimiterFromCode(int(code)), nil
}

func delimOp(intp *Intp, op *Op) (bool, error) {
	d, err := parseDelimiter(op.arg)
	if err != nil {
		return false, err
	}
	k := noad.Left
	if op.code == RIGHT {
		k = noad.Right
	}
	intp.append(noad.NewDelim(k, d))
	return false, nil
}

// radicalOp appends the square root of a character.
func radicalOp(intp *Intp, op *Op) (bool, error) {
	c, err := parseChar(op.arg)
	if err != nil {
		return false, err
	}
	f, err := parseFamily(op.format, c, noad.Ord)
	if err != nil {
		return false, err
	}
	n := noad.NewDelim(noad.Radical, noad.DelimiterFromCode(0x270370))
	n.Nucleus = noad.CharField(f, c)
	intp.append(n)
	return false, nil
}

func overOp(intp *Intp, op *Op) (bool, error) {
	t := noad.DefaultThickness
	if op.arg != "" {
		var err error
		if t, err = dimen.Parse(op.arg); err != nil {
			return false, err
		}
	}
	left, right := noad.NullDelimiter, noad.NullDelimiter
	if op.format != "" { // "over:0pt:()" for a binomial
		if len(op.format) != 2 {
			return false, fmt.Errorf("expected two delimiters, have %q", op.format)
		}
		var err error
		if left, err = parseDelimiter(op.format[:1]); err != nil {
			return false, err
		}
		if right, err = parseDelimiter(op.format[1:]); err != nil {
			return false, err
		}
	}
	if err := intp.list.Over(t, left, right); err != nil {
		return false, err
	}
	intp.count++
	return false, nil
}

func (intp *Intp) append(n node.Node) {
	intp.list.Append(n)
	intp.count++
}

func styleOp(intp *Intp, op *Op) (bool, error) {
	var s noad.Style
	switch strings.ToLower(op.arg) {
	case "display", "d":
		s = noad.Display
	case "text", "t", "":
		s = noad.Text
	case "script", "s":
		s = noad.Script
	case "scriptscript", "ss":
		s = noad.ScriptScript
	default:
		return false, fmt.Errorf("unknown style %q", op.arg)
	}
	if op.format == "cramped" {
		s = s.Cramped()
	}
	intp.style = s
	return false, nil
}

// --- Conversion -------------------------------------------------------

// showOp converts the current list, prints the resulting hlist and starts
// a new list.
func showOp(intp *Intp, op *Op) (bool, error) {
	ml := intp.list.Finish()
	intp.count = 0
	conv := mlist.NewConverter(intp.fonts, intp.params)
	hlist, err := conv.Convert(context.Background(), ml, intp.style, intp.style >= noad.Text)
	intp.hlist, intp.diags = hlist, conv.Diagnostics()
	if err != nil {
		return false, err
	}
	printDiagnostics(intp.diags)
	b := node.HPack(hlist, node.Natural, node.Additional)
	pterm.Printf("hlist of width %s, height %s, depth %s\n", b.Width, b.Height, b.Depth)
	printHList(hlist)
	return false, nil
}

// --- Arguments --------------------------------------------------------

// parseChar reads a character, given literally or in hex notation ("0x50").
func parseChar(s string) (font.Code, error) {
	if s == "" {
		return 0, errors.New("missing character")
	}
	if strings.HasPrefix(s, "0x") && len(s) > 2 {
		c, err := strconv.ParseInt(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("illegal character code %q", s)
		}
		return font.Code(c), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("expected a single character, have %q", s)
	}
	return font.Code(r), nil
}

// parseFamily reads a family number. Without one, letters are taken from the
// math italic family, large operators from the extension family and
// everything else from the roman family.
func parseFamily(s string, c font.Code, k noad.Kind) (int, error) {
	if s == "" {
		switch {
		case k == noad.Op:
			return 3, nil
		case unicode.IsLetter(rune(c)):
			return 1, nil
		}
		return 0, nil
	}
	f, err := strconv.Atoi(s)
	if err != nil || f < 0 || f >= font.FamilyCount {
		return 0, fmt.Errorf("illegal family %q", s)
	}
	return f, nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
