package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
	"github.com/npillmayer/mathlist/font/sfntfont"
	"github.com/npillmayer/mathlist/internal/fontload"
	"github.com/npillmayer/mathlist/mlist"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/pterm/pterm"
)

// --- Parameters -------------------------------------------------------

// loadParams reads math parameters from a TOML file of the form
//
//	[math]
//	binoppenalty = 700
//	medmuskip = "4mu plus 2mu minus 4mu"
func (intp *Intp) loadParams(filename string) error {
	var doc map[string]interface{}
	if _, err := toml.DecodeFile(filename, &doc); err != nil {
		return fmt.Errorf("cannot read parameters: %w", err)
	}
	conf := testconfig.Conf{}
	flatten(conf, "", doc)
	if err := intp.configure(conf); err != nil {
		return err
	}
	tracer().Infof("loaded math parameters from %s", filename)
	return nil
}

// flatten enters the values of nested TOML tables with dotted keys. Values
// are stored as strings, as configuration getters expect.
func flatten(conf testconfig.Conf, prefix string, m map[string]interface{}) {
	for k, v := range m {
		key := strings.ToLower(prefix + k)
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(conf, key+".", sub)
			continue
		}
		conf[key] = fmt.Sprintf("%v", v)
	}
}

// configure merges conf into the interpreter's configuration. The
// configuration is left unchanged if the result is not valid.
func (intp *Intp) configure(conf testconfig.Conf) error {
	merged := testconfig.Conf{}
	for k, v := range intp.conf {
		merged[k] = v
	}
	for k, v := range conf {
		merged[k] = v
	}
	p, err := mlist.ParamsFromConfig(merged)
	if err != nil {
		return err
	}
	intp.conf, intp.params = merged, p
	return nil
}

func paramsOp(intp *Intp, op *Op) (bool, error) {
	printParams(intp.params)
	return false, nil
}

// setOp sets a single parameter, e.g. "set:binoppenalty:10000". Glue
// specifications cannot be entered this way, as they contain blanks; use
// underscores instead: "set:medmuskip:4mu_plus_2mu".
func setOp(intp *Intp, op *Op) (bool, error) {
	if op.arg == "" || op.format == "" {
		return false, fmt.Errorf("usage: set:parameter:value")
	}
	key := strings.ToLower(op.arg)
	if !strings.HasPrefix(key, "math.") {
		key = "math." + key
	}
	value := strings.ReplaceAll(op.format, "_", " ")
	if err := intp.configure(testconfig.Conf{key: value}); err != nil {
		return false, err
	}
	tracer().Infof("%s = %s", key, value)
	return false, nil
}

// --- Font Loading -----------------------------------------------------

// textSizes are the font sizes of families 0 and 1, per size class.
var textSizes = [font.SizeCount]dimen.Dimen{10 * dimen.PT, 7 * dimen.PT, 5 * dimen.PT}

// loadFont replaces the text families 0 and 1 with an OpenType font.
// Families 2 and 3 keep the demo math fonts.
func (intp *Intp) loadFont(fontfile string) error {
	f, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		return err
	}
	intp.setTextFont(f)
	return nil
}

func (intp *Intp) setTextFont(f *fontload.ScalableFont) {
	for s := font.TextSize; s <= font.ScriptScriptSize; s++ {
		m, err := sfntfont.New(f.SFNT, textSizes[s])
		if err != nil {
			pterm.Error.Printf("cannot use font %s at %s: %v\n", f.Fontname, textSizes[s], err)
			continue
		}
		id := intp.fonts.Register(m)
		intp.fonts.SetFamily(0, s, id)
		intp.fonts.SetFamily(1, s, id)
	}
	pterm.Info.Printf("using %s for families 0 and 1\n", f.Fontname)
}
