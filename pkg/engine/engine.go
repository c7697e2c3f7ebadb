package engine

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/wildfunctions/function_families/pkg/function"
	"github.com/wildfunctions/function_families/pkg/recognize"
	"github.com/wildfunctions/function_families/pkg/sample"
)

// Engine recognizes each configured expression and samples the result.
type Engine struct {
	cfg        Config
	recognizer recognize.Recognizer // nil means dispatch per expression
	logger     *log.Logger
}

// New creates a new engine from the given config. Progress goes to stderr
// when cfg.Verbose is set.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var r recognize.Recognizer
	if cfg.Family != FamilyAuto {
		var err error
		if r, err = recognize.Get(cfg.Family); err != nil {
			return nil, err
		}
	}

	out := io.Discard
	if cfg.Verbose {
		out = os.Stderr
	}
	return &Engine{
		cfg:        cfg,
		recognizer: r,
		logger:     log.New(out, "families: ", log.Lmsgprefix),
	}, nil
}

// Run processes every expression in order. Curves that fail to parse are
// reported with their error and left out of sampling; the returned error
// joins all such failures.
func (e *Engine) Run() (FinalReport, error) {
	report := FinalReport{Config: e.cfg}
	var errs []error

	for i, text := range e.cfg.Expressions {
		curve, err := e.curve(text)
		if err != nil {
			e.logger.Printf("curve %d %q rejected: %v", i, text, err)
			errs = append(errs, err)
		}
		report.Curves = append(report.Curves, curve)
	}
	return report, errors.Join(errs...)
}

func (e *Engine) recognize(text string) (function.Function, error) {
	r := e.recognizer
	if r == nil {
		r = recognize.Dispatch(text)
		e.logger.Printf("dispatched %q to %s", text, r.Family())
	}
	return r.Recognize(text)
}

func (e *Engine) curve(text string) (CurveReport, error) {
	rep := CurveReport{Expression: text}

	fn, err := e.recognize(text)
	if err != nil {
		rep.Error = err.Error()
		return rep, err
	}

	rep.Family = fn.Family().String()
	rep.Name = fn.Name()
	rep.Coefficients = fn.Coefficients()
	rep.Canonical = fn.String()
	rep.LaTeX = fn.LaTeX()

	for _, x := range e.cfg.At {
		rep.Values = append(rep.Values, sample.At(fn, x))
	}

	r := e.cfg.Range()
	points := sample.Sample(fn, r, e.cfg.Points)
	if e.cfg.Clip {
		points = sample.Clip(points, r)
	}
	rep.Samples = points
	e.logger.Printf("%s: %s, %d samples over [%v, %v]",
		rep.Name, rep.Canonical, len(points), r.XMin, r.XMax)

	return rep, nil
}
