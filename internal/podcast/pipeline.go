package podcast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wandercast/wandercast/internal/observe"
	"github.com/wandercast/wandercast/internal/store"
	"github.com/wandercast/wandercast/pkg/provider/script"
	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// Request describes one podcast generation.
type Request struct {
	// Location is the free-form place the episode is about. Must be non-empty
	// after trimming; the generator does not validate against any fixed list.
	Location string

	// Language is an ISO 639-1 code selecting the dialogue language and the
	// synthesis model. Empty means English.
	Language string

	// Voice is the host gender preference ("female" or "male"). Anything else
	// degrades to the female pair.
	Voice GenderPreference
}

// Result is a completed generation.
type Result struct {
	// Location echoes the requested location.
	Location string

	// Script is the full generated transcript, before segmentation.
	Script string

	// FileName is the unique episode file name inside the store directory.
	FileName string

	// AudioPath is the full filesystem path of the written file.
	AudioPath string

	// Segments is how many dialogue turns were synthesised.
	Segments int
}

// Generator runs the script-to-audio pipeline. Construct with [NewGenerator];
// the zero value is not usable.
type Generator struct {
	script  script.Provider
	speech  speech.Provider
	store   *store.FileStore
	voices  map[string]speech.VoiceProfile
	metrics *observe.Metrics

	// maxConcurrent bounds parallel synthesis calls. 1 (the default) keeps
	// synthesis strictly sequential; higher values fan out per segment while
	// still assembling audio in segment order.
	maxConcurrent int
}

// GeneratorOption configures a [Generator].
type GeneratorOption func(*Generator)

// WithVoices overrides the role-to-voice catalogue. Missing roles degrade to
// the alex entry at synthesis time.
func WithVoices(voices map[string]speech.VoiceProfile) GeneratorOption {
	return func(g *Generator) { g.voices = voices }
}

// WithMaxConcurrentSynthesis allows up to n segment synthesis calls in
// flight at once. Values below 2 keep the sequential behaviour. Segment order
// in the assembled audio is preserved either way.
func WithMaxConcurrentSynthesis(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 1 {
			g.maxConcurrent = n
		}
	}
}

// WithMetrics overrides the metrics instance, mainly for tests.
func WithMetrics(m *observe.Metrics) GeneratorOption {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator wires a script provider, a speech provider, and a file store
// into a pipeline. Either provider may be nil; Generate then fails with
// [ErrNotConfigured] before any network call.
func NewGenerator(scriptProv script.Provider, speechProv speech.Provider, st *store.FileStore, opts ...GeneratorOption) *Generator {
	g := &Generator{
		script:        scriptProv,
		speech:        speechProv,
		store:         st,
		voices:        DefaultVoices(),
		maxConcurrent: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.metrics == nil {
		g.metrics = observe.DefaultMetrics()
	}
	return g
}

// Generate runs the full pipeline for one request: generate the script,
// segment it, synthesise every segment, concatenate the audio, and persist it
// under a unique name. Any failure aborts the whole generation; no file is
// written and no partial result is returned.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if g.script == nil || g.speech == nil {
		return nil, fmt.Errorf("%w: script and speech providers are required", ErrNotConfigured)
	}

	ctx, span := observe.StartSpan(ctx, "podcast.Generate")
	defer span.End()
	log := observe.Logger(ctx).With(
		"location", req.Location,
		"language", req.Language,
		"voice", string(req.Voice),
	)

	g.metrics.ActiveGenerations.Add(ctx, 1)
	defer g.metrics.ActiveGenerations.Add(ctx, -1)
	genStart := time.Now()

	// 1. Script.
	scriptStart := time.Now()
	transcript, err := g.script.GenerateScript(ctx, req.Location, req.Language)
	g.metrics.ScriptDuration.Record(ctx, time.Since(scriptStart).Seconds())
	if err != nil {
		g.metrics.RecordProviderError(ctx, "script", "script")
		return nil, fmt.Errorf("%w: %w", ErrScriptGeneration, err)
	}
	g.metrics.RecordProviderRequest(ctx, "script", "script", "ok")

	// 2. Segmentation.
	segments := SegmentScript(transcript, req.Voice)
	log.Info("script generated", "segments", len(segments), "chars", len(transcript))

	// 3. Per-segment synthesis, order preserved by index.
	buffers, err := g.synthesize(ctx, segments, req.Language, log)
	if err != nil {
		return nil, err
	}

	// 4. Concatenate and persist.
	audio := Assemble(buffers)
	name := store.EpisodeFileName(req.Location, req.Language, string(req.Voice))
	path, err := g.store.Save(name, audio)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	g.metrics.GenerationDuration.Record(ctx, time.Since(genStart).Seconds())
	g.metrics.RecordPodcastGenerated(ctx, req.Language, string(req.Voice))
	log.Info("podcast generated", "file", name, "bytes", len(audio))

	return &Result{
		Location:  req.Location,
		Script:    transcript,
		FileName:  name,
		AudioPath: path,
		Segments:  len(segments),
	}, nil
}

// synthesize produces one audio buffer per segment, in segment order. With
// maxConcurrent > 1 it fans out over an errgroup and slots each buffer back
// by index, so the assembled audio is identical to the sequential path.
func (g *Generator) synthesize(ctx context.Context, segments []Segment, language string, log *slog.Logger) ([][]byte, error) {
	buffers := make([][]byte, len(segments))

	synthOne := func(ctx context.Context, i int) error {
		seg := segments[i]
		voice, ok := g.voices[seg.Speaker]
		if !ok {
			// Unknown speaker role: degrade to the alex voice rather than
			// failing the whole generation.
			voice = g.voices[RoleAlex]
			log.Warn("unknown speaker, using fallback voice", "speaker", seg.Speaker)
		}

		start := time.Now()
		audio, err := g.speech.Synthesize(ctx, speech.Request{
			Text:     seg.Text,
			Voice:    voice,
			Language: language,
		})
		g.metrics.SynthesisDuration.Record(ctx, time.Since(start).Seconds())
		if err != nil {
			g.metrics.RecordProviderError(ctx, voice.Provider, "speech")
			return fmt.Errorf("%w: segment %d/%d: %w", ErrSynthesis, i+1, len(segments), err)
		}
		g.metrics.RecordProviderRequest(ctx, voice.Provider, "speech", "ok")
		g.metrics.RecordSegmentSynthesized(ctx, seg.Speaker)
		buffers[i] = audio
		return nil
	}

	if g.maxConcurrent <= 1 {
		for i := range segments {
			if err := synthOne(ctx, i); err != nil {
				return nil, err
			}
		}
		return buffers, nil
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(g.maxConcurrent)
	for i := range segments {
		grp.Go(func() error { return synthOne(grpCtx, i) })
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return buffers, nil
}
