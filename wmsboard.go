// This file is part of wmsboard.
//
// wmsboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wmsboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wmsboard.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/wmsboard/capture"
	"github.com/jetsetilly/wmsboard/digest"
	"github.com/jetsetilly/wmsboard/hardware"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/logger"
	"github.com/jetsetilly/wmsboard/modalflag"
	"github.com/jetsetilly/wmsboard/paths"
	"github.com/jetsetilly/wmsboard/playback"
	"github.com/jetsetilly/wmsboard/prefs"
	"github.com/jetsetilly/wmsboard/regression"
	"github.com/jetsetilly/wmsboard/runner"
	"github.com/jetsetilly/wmsboard/statsview"
	"github.com/jetsetilly/wmsboard/version"
	"github.com/jetsetilly/wmsboard/wavwriter"
	"golang.org/x/term"
)

// exit values
const (
	exitOkay       = 0
	exitInterrupt  = 1
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc a long capture can be interrupted at any time. there is nothing
	// to tidy up so the program can exit immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:])
	}()

	var exitVal int
	select {
	case <-intChan:
		fmt.Println("\r")
		exitVal = exitInterrupt
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. the return value is the exit
// value of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CAPTURE", "PLAY", "RUN", "TRACE", "MEMVIZ", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOkay

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "CAPTURE":
		err = captureMode(md)

	case "PLAY":
		err = play(md)

	case "RUN":
		err = run(md)

	case "TRACE":
		err = trace(md)

	case "MEMVIZ":
		err = memvizMode(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOkay
}

// setEcho sends the log to stdout. the colorizer is only used if stdout is a
// terminal.
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(os.Stdout, false)
	}
}

// boardFlags are the flags shared by every mode that creates a machine.
type boardFlags struct {
	rom     *string
	pia     *string
	prefs   *string
	log     *bool
	verbose *bool
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		rom:     md.AddString("rom", "", "sound ROM file (may also be given as an argument)"),
		pia:     md.AddString("pia", "", "PIA read model: ECHO, FIXEDZERO (default from preferences)"),
		prefs:   md.AddString("prefs", "", "preferences for this session only (eg. \"capture.warmup::200\")"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		verbose: md.AddBool("verbose", false, "log every CPU step"),
	}
}

// romFile returns the ROM filename from the -rom flag or the first remaining
// argument.
func (bf boardFlags) romFile(md *modalflag.Modes) (string, error) {
	args := md.RemainingArgs()
	switch len(args) {
	case 0:
		if *bf.rom == "" {
			return "", fmt.Errorf("sound ROM required for %s mode", md)
		}
		return *bf.rom, nil
	case 1:
		if *bf.rom != "" {
			return "", fmt.Errorf("sound ROM specified twice for %s mode", md)
		}
		return args[0], nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// preferences loads the capture preferences with any session preferences
// from the command line pushed on top.
func (bf boardFlags) preferences() (*capture.Preferences, error) {
	if *bf.prefs != "" {
		prefs.PushCommandLineStack(*bf.prefs)
		defer prefs.PopCommandLineStack()
	}
	return capture.NewPreferences()
}

// model returns the PIA model from the -pia flag or the preferences.
func (bf boardFlags) model(pref *capture.Preferences) (pia.Model, error) {
	if *bf.pia == "" {
		return pref.Model(), nil
	}
	return pia.ParseModel(*bf.pia)
}

// newMachine creates a machine with the ROM loaded and with per-step logging
// set according to the -verbose flag.
func (bf boardFlags) newMachine(romFile string, model pia.Model) (*hardware.Machine, error) {
	data, err := os.ReadFile(romFile)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(model)
	if err != nil {
		return nil, err
	}
	m.Verbose = logger.Verbosity(*bf.verbose)

	err = m.LoadROM(data)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// captureFlags are the flags that change the capture configuration. the
// defaults come from the preferences.
type captureFlags struct {
	warmup  *int
	sound   *uint8
	samples *int
}

func addCaptureFlags(md *modalflag.Modes, pref *capture.Preferences) captureFlags {
	cfg := pref.Config()
	return captureFlags{
		warmup:  md.AddInt("warmup", cfg.WarmupSteps, "number of steps before the sound is requested"),
		sound:   md.AddByte("sound", cfg.SoundCode, "sound code"),
		samples: md.AddInt("samples", cfg.SampleCount, "number of samples to capture"),
	}
}

func (cf captureFlags) config() capture.Config {
	return capture.Config{
		WarmupSteps: *cf.warmup,
		SoundCode:   *cf.sound,
		SampleCount: *cf.samples,
	}
}

// outputFilename returns the filename for a capture. an empty out argument
// means a unique filename is generated from the ROM filename and sound code.
func outputFilename(out string, romFile string, code uint8, wav bool) string {
	if out != "" {
		return out
	}

	ext := ".raw"
	if wav {
		ext = ".wav"
	}
	return paths.UniqueFilename("capture", romFile, code) + ext
}

// writeCapture writes the samples as raw PCM or as a WAV file.
func writeCapture(filename string, samples []uint8, sampleRate int, wav bool) error {
	if !wav {
		return os.WriteFile(filename, samples, 0644)
	}

	aw, err := wavwriter.New(filename, sampleRate)
	if err != nil {
		return err
	}
	_, err = aw.Write(samples)
	if err != nil {
		return err
	}
	return aw.Close()
}

// parseCaptureArgs creates a new mode with the board and capture flags,
// parses the command line and loads the preferences. a nil preferences value
// with a nil error indicates that help was printed.
func parseCaptureArgs(md *modalflag.Modes, extra func(*capture.Preferences)) (boardFlags, captureFlags, *capture.Preferences, error) {
	// the preferences file provides the default values of the capture flags.
	// session preferences given with -prefs can only be applied after parsing
	pref, err := capture.NewPreferences()
	if err != nil {
		return boardFlags{}, captureFlags{}, nil, err
	}

	md.NewMode()
	bf := addBoardFlags(md)
	cf := addCaptureFlags(md, pref)
	if extra != nil {
		extra(pref)
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return bf, cf, nil, err
	}

	setEcho(*bf.log)

	if *bf.prefs != "" {
		pref, err = bf.preferences()
		if err != nil {
			return bf, cf, nil, err
		}

		// values from the session preferences are used unless the flag
		// has been set explicitly
		cfg := pref.Config()
		set := make(map[string]bool)
		md.Visit(func(flg string) {
			set[flg] = true
		})
		if !set["warmup"] {
			*cf.warmup = cfg.WarmupSteps
		}
		if !set["sound"] {
			*cf.sound = cfg.SoundCode
		}
		if !set["samples"] {
			*cf.samples = cfg.SampleCount
		}
	}

	return bf, cf, pref, nil
}

func captureMode(md *modalflag.Modes) error {
	var out *string
	var wav *bool
	var stats *bool
	var save *bool

	bf, cf, pref, err := parseCaptureArgs(md, func(pref *capture.Preferences) {
		out = md.AddString("out", "", "output file (default is a unique filename)")
		wav = md.AddBool("wav", pref.WAV.Get().(bool), "write capture as a WAV file")
		stats = md.AddBool("statsview", false, "run the runtime statistics server")
		save = md.AddBool("save", false, "save capture settings to the preferences file")
	})
	if err != nil || pref == nil {
		return err
	}

	romFile, err := bf.romFile(md)
	if err != nil {
		return err
	}

	model, err := bf.model(pref)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	m, err := bf.newMachine(romFile, model)
	if err != nil {
		return err
	}

	cfg := cf.config()
	drv := capture.NewDriver(m, cfg)
	drv.Verbose = logger.Verbosity(*bf.verbose)

	samples, err := drv.Capture()
	if err != nil {
		return err
	}

	sampleRate := pref.SampleRate.Get().(int)
	filename := outputFilename(*out, romFile, cfg.SoundCode, *wav)
	err = writeCapture(filename, samples, sampleRate, *wav)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %d samples (%d steps) sha1=%s\n", filename, len(samples),
		drv.Steps(), digest.AudioHash(samples))

	if *save {
		err = pref.Warmup.Set(cfg.WarmupSteps)
		if err != nil {
			return err
		}
		err = pref.Sound.Set(int(cfg.SoundCode))
		if err != nil {
			return err
		}
		err = pref.Samples.Set(cfg.SampleCount)
		if err != nil {
			return err
		}
		err = pref.PIA.Set(model.String())
		if err != nil {
			return err
		}
		err = pref.WAV.Set(*wav)
		if err != nil {
			return err
		}
		return pref.Save()
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", capture.DefaultSampleRate, "sample rate of raw capture files")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("capture file required for %s mode", md)
	case 1:
		samples, sampleRate, err := wavwriter.Load(md.GetArg(0), *rate)
		if err != nil {
			return err
		}

		plyr, err := playback.NewPlayer(sampleRate)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "playing %s (%v)\n", filepath.Base(md.GetArg(0)), plyr.Duration(samples))

		return plyr.Play(samples)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	bf := addBoardFlags(md)
	script := md.AddString("script", "", "command script (default is stdin)")
	traceFile := md.AddString("trace", "", "write the trace to a file")

	md.AdditionalHelp(
		`Commands are read one per line. Valid commands are:

  RESET, POWER, RUN n, RUNTO addr, POKE addr value, IRQ, SFX code, TRACE ON|OFF, IDLE

Addresses, values and sound codes are hexadecimal. Lines beginning with -- are ignored.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*bf.log)

	romFile, err := bf.romFile(md)
	if err != nil {
		return err
	}

	pref, err := bf.preferences()
	if err != nil {
		return err
	}

	model, err := bf.model(pref)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	cmds, err := runner.ParseScript(r)
	if err != nil {
		return err
	}

	m, err := bf.newMachine(romFile, model)
	if err != nil {
		return err
	}

	rnr := runner.NewRunner(m)
	rnr.Verbose = logger.Verbosity(*bf.verbose)

	err = rnr.Run(cmds)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d steps: %s\n", rnr.Steps, m)

	if rnr.Trace.Len() > 0 {
		fmt.Fprintf(md.Output, "trace: %d snapshots sha1=%s\n", rnr.Trace.Len(), rnr.Trace.Hash())

		if *traceFile != "" {
			f, err := os.Create(*traceFile)
			if err != nil {
				return err
			}
			err = rnr.Trace.Write(f)
			if err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}
	}

	return nil
}

func trace(md *modalflag.Modes) error {
	var out *string
	var snapshots *bool

	bf, cf, pref, err := parseCaptureArgs(md, func(_ *capture.Preferences) {
		out = md.AddString("out", "", "trace output file (default is stdout)")
		snapshots = md.AddBool("snapshots", false, "output machine snapshots rather than instructions")
	})
	if err != nil || pref == nil {
		return err
	}

	romFile, err := bf.romFile(md)
	if err != nil {
		return err
	}

	model, err := bf.model(pref)
	if err != nil {
		return err
	}

	m, err := bf.newMachine(romFile, model)
	if err != nil {
		return err
	}

	w := md.Output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	var tr digest.Trace

	drv := capture.NewDriver(m, cf.config())
	drv.Verbose = logger.Verbosity(*bf.verbose)
	drv.OnStep = func(res execution.Result) {
		tr.Add(m)
		if !*snapshots {
			fmt.Fprintf(w, "%-30s %s\n", res, m.Registers())
		}
	}

	samples, err := drv.Capture()
	if err != nil {
		return err
	}

	if *snapshots {
		err = tr.Write(w)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%d steps, %d samples sha1=%s trace=%s\n", drv.Steps(), len(samples),
		digest.AudioHash(samples), tr.Hash())

	return nil
}

func memvizMode(md *modalflag.Modes) error {
	var out *string
	var steps *int

	md.NewMode()
	bf := addBoardFlags(md)
	out = md.AddString("out", "", "graphviz output file (default is stdout)")
	steps = md.AddInt("steps", capture.DefaultWarmupSteps, "number of steps to run before the dump")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*bf.log)

	romFile, err := bf.romFile(md)
	if err != nil {
		return err
	}

	pref, err := bf.preferences()
	if err != nil {
		return err
	}

	model, err := bf.model(pref)
	if err != nil {
		return err
	}

	m, err := bf.newMachine(romFile, model)
	if err != nil {
		return err
	}

	_, err = m.Reset()
	if err != nil {
		return err
	}
	for i := 0; i < *steps; i++ {
		_, err = m.Step()
		if err != nil {
			return err
		}
	}

	w := md.Output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, m)

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "fail on error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRun(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	var mode *string
	var notes *string

	bf, cf, pref, err := parseCaptureArgs(md, func(_ *capture.Preferences) {
		mode = md.AddString("digest", "BOTH", "digest to compare: AUDIO, STATE, BOTH")
		notes = md.AddString("notes", "", "additional annotation for the database")
	})
	if err != nil || pref == nil {
		return err
	}

	romFile, err := bf.romFile(md)
	if err != nil {
		return err
	}

	model, err := bf.model(pref)
	if err != nil {
		return err
	}

	dm, err := regression.ParseDigestMode(*mode)
	if err != nil {
		return err
	}

	cfg := cf.config()
	reg := &regression.CaptureRegression{
		ROMFile:     romFile,
		SoundCode:   cfg.SoundCode,
		WarmupSteps: cfg.WarmupSteps,
		SampleCount: cfg.SampleCount,
		Model:       model,
		Mode:        dm,
		Notes:       strings.TrimSpace(*notes),
	}

	err = regression.RegressAdd(md.Output, reg)
	if err != nil {
		// using carriage return (without newline) at beginning of error
		// message because we want to overwrite the last output from
		// RegressAdd()
		return fmt.Errorf("\rerror adding regression test: %v", err)
	}

	return nil
}
