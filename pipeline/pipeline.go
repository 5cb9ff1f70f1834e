// Package pipeline runs batches of images through load, blur and save.
//
// The three stages are strictly sequential across the whole batch: nothing
// is blurred until every input has loaded, and nothing is saved until every
// buffer has been blurred. The first failure aborts the batch. Every buffer
// allocated during a run is released exactly once before Run returns,
// whether the run succeeds or not.
package pipeline

import (
	"log/slog"

	"github.com/gogpu/boxblur"
)

// Pair is one input file and the path its blurred result is written to.
type Pair struct {
	Input  string
	Output string
}

// Summary describes a successful run.
type Summary struct {
	// Images is the number of images written.
	Images int

	// Pixels is the total number of pixels blurred.
	Pixels int64
}

// Pipeline blurs batches of images. A Pipeline holds no per-run state and
// may be reused; a single Run is not safe for concurrent use with itself.
type Pipeline struct {
	codec  Codec
	filter Filter
}

// New creates a pipeline with the given options.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		codec:  o.codec,
		filter: o.filter,
	}
}

// Run loads every pair, blurs every image and saves every result, in that
// order. On failure it returns a *StageError naming the stage and the index
// of the first pair that failed.
func (p *Pipeline) Run(pairs []Pair) (Summary, error) {
	if len(pairs) == 0 {
		return Summary{}, ErrNoPairs
	}

	log := boxblur.Logger().With(slog.Int("images", len(pairs)))

	images := boxblur.NewBatch(len(pairs))
	defer images.ReleaseAll()

	log.Debug("pipeline: load stage")
	if err := p.load(images, pairs); err != nil {
		log.Warn("pipeline: aborted", slog.Any("err", err))
		return Summary{}, err
	}

	log.Debug("pipeline: blur stage")
	if err := p.blur(images, pairs); err != nil {
		log.Warn("pipeline: aborted", slog.Any("err", err))
		return Summary{}, err
	}

	var sum Summary
	for i := range images.Len() {
		sum.Pixels += int64(images.At(i).Len())
	}

	log.Debug("pipeline: save stage")
	if err := p.save(images, pairs); err != nil {
		log.Warn("pipeline: aborted", slog.Any("err", err))
		return Summary{}, err
	}

	sum.Images = len(pairs)
	log.Debug("pipeline: done", slog.Int64("pixels", sum.Pixels))
	return sum, nil
}

// load decodes every input into images, in order.
func (p *Pipeline) load(images *boxblur.Batch, pairs []Pair) error {
	for i, pair := range pairs {
		b, err := p.codec.Load(pair.Input, pair.Output)
		if err != nil {
			return &StageError{Stage: StageLoad, Index: i, Path: pair.Input, Err: err}
		}
		images.Append(b)

		boxblur.Logger().Debug("pipeline: loaded",
			slog.Int("index", i),
			slog.String("path", pair.Input),
			slog.Int("width", b.Width()),
			slog.Int("height", b.Height()))
	}
	return nil
}

// blur replaces every buffer with its filtered version, releasing the
// original as soon as the replacement exists.
func (p *Pipeline) blur(images *boxblur.Batch, pairs []Pair) error {
	for i := range images.Len() {
		out, err := p.filter.Apply(images.At(i))
		if err != nil {
			return &StageError{Stage: StageBlur, Index: i, Path: pairs[i].Input, Err: err}
		}
		images.Replace(i, out)
	}
	return nil
}

// save writes every buffer to its destination and releases it right after
// a successful write.
func (p *Pipeline) save(images *boxblur.Batch, pairs []Pair) error {
	for i := range images.Len() {
		if err := p.codec.Save(images.At(i)); err != nil {
			return &StageError{Stage: StageSave, Index: i, Path: pairs[i].Output, Err: err}
		}
		images.Release(i)

		boxblur.Logger().Debug("pipeline: saved",
			slog.Int("index", i),
			slog.String("path", pairs[i].Output))
	}
	return nil
}

// ParsePairs groups command line arguments into input/output pairs.
// At least two arguments are required. A trailing argument without an
// output is ignored.
func ParsePairs(args []string) ([]Pair, error) {
	if len(args) < 2 {
		return nil, ErrUsage
	}
	if len(args)%2 != 0 {
		boxblur.Logger().Warn("pipeline: ignoring unpaired argument",
			slog.String("arg", args[len(args)-1]))
	}

	pairs := make([]Pair, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, Pair{Input: args[i], Output: args[i+1]})
	}
	return pairs, nil
}

// Run blurs pairs with a default pipeline.
func Run(pairs []Pair) (Summary, error) {
	return New().Run(pairs)
}
