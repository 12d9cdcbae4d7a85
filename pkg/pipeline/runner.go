package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dipart/pkg/dip"
	errs "github.com/matzehuels/dipart/pkg/errors"
	"github.com/matzehuels/dipart/pkg/observability"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → parse → render pipeline.
func (r *Runner) Execute(ctx context.Context, path string, opts dip.RenderOptions) (*Result, error) {
	loadStart := time.Now()
	data, err := r.read(ctx, path)
	if err != nil {
		return nil, err
	}
	chip, err := r.Parse(ctx, data)
	if err != nil {
		return nil, err
	}

	result := &Result{Chip: chip, Options: opts}
	result.Stats.Bytes = len(data)
	result.Stats.LoadTime = time.Since(loadStart)

	renderStart := time.Now()
	result.Lines = r.Render(ctx, chip, opts)
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Load reads and validates the specification at path.
func (r *Runner) Load(ctx context.Context, path string) (*dip.Chip, error) {
	data, err := r.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return r.Parse(ctx, data)
}

// Parse validates specification text that has already been read.
func (r *Runner) Parse(ctx context.Context, data []byte) (*dip.Chip, error) {
	start := time.Now()
	chip, err := dip.Parse(string(data))
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, "", 0, time.Since(start), err)
		r.Logger.Debug("specification rejected", "err", errs.UserMessage(err))
		return nil, err
	}
	observability.Pipeline().OnParseComplete(ctx, chip.Name(), chip.PinCount(), time.Since(start), nil)

	r.Logger.Debug("parsed chip",
		"name", chip.Name(),
		"package", chip.PinCount(),
		"width", chip.Width())
	return chip, nil
}

// Render draws chip for opts.
func (r *Runner) Render(ctx context.Context, chip *dip.Chip, opts dip.RenderOptions) []string {
	start := time.Now()
	lines := chip.Render(opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.String(), len(lines), time.Since(start))

	r.Logger.Debug("rendered diagram", "view", opts, "lines", len(lines))
	return lines
}

func (r *Runner) read(ctx context.Context, path string) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.Logger.Debug("reading specification", "path", path)

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	defer func() {
		hooks.OnLoadComplete(ctx, path, len(data), time.Since(start), err)
	}()

	data, err = os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "cannot open %s: no such file", path)
	case errors.Is(err, fs.ErrPermission):
		return nil, errs.Wrap(errs.ErrCodeIO, err, "cannot open %s: permission denied", path)
	case err != nil:
		return nil, errs.Wrap(errs.ErrCodeIO, err, "cannot read %s", path)
	}
	return data, nil
}
