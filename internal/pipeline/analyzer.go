package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/duilens/internal/cache"
	"github.com/ppiankov/duilens/internal/classify"
	"github.com/ppiankov/duilens/internal/corpus"
	"github.com/ppiankov/duilens/internal/extract"
	"github.com/ppiankov/duilens/internal/lexicon"
	"github.com/ppiankov/duilens/internal/llm"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/segment"
	"github.com/ppiankov/duilens/internal/util"
	"github.com/ppiankov/duilens/internal/worker"
)

// ErrNoDui reports a sentence without the preposition 对.
var ErrNoDui = errors.New("sentence contains no 对")

// similarLimit caps the corpus neighbours attached to a report.
const similarLimit = 8

// Analyzer orchestrates the complete analysis pipeline: segmentation,
// part extraction, corpus lookup, classification, and the optional tutor
// note. One Analyzer serves any number of sentences and scans.
type Analyzer struct {
	lex        *lexicon.Lexicon
	seg        segment.Segmenter
	extractor  *extract.Extractor
	sentences  *extract.SentenceExtractor
	table      *corpus.Table
	classifier *classify.Classifier
	fetcher    *Fetcher
	renderer   *Renderer
	store      cache.Cache
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	tutor      *llm.Tutor // Optional LLM tutor (nil if disabled)
	config     *model.Config
}

// NewAnalyzer creates an analyzer with the given configuration
func NewAnalyzer(cfg *model.Config) (*Analyzer, error) {
	lex := lexicon.New()

	seg, err := segment.New(cfg.Segmenter, lex)
	if err != nil {
		return nil, fmt.Errorf("segmenter: %w", err)
	}

	table, err := loadCorpus(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}

	// Create LLM tutor if configured
	var tutor *llm.Tutor
	if cfg.LLM.Provider != "" {
		t, err := llm.NewTutor(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			tutor = t
		}
	}

	store := cache.New(cfg.Cache)

	var robots *util.RobotsChecker
	if cfg.RateLimiting.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Analyzer{
		lex:        lex,
		seg:        seg,
		extractor:  extract.NewExtractor(lex, seg),
		sentences:  extract.NewSentenceExtractor(),
		table:      table,
		classifier: classify.NewClassifier(table),
		fetcher:    NewFetcher(cfg.HTTP, store),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		store:      store,
		robots:     robots,
		limiter:    worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		tutor:      tutor,
		config:     cfg,
	}, nil
}

// loadCorpus resolves and loads the predicate table. A missing file
// degrades to an empty table (every lookup misses, classification falls
// back to override rules); a file that exists but fails to parse is fatal.
func loadCorpus(configured string) (*corpus.Table, error) {
	path := corpus.Resolve(configured)
	if path == "" {
		fmt.Fprintf(os.Stderr, "Warning: no corpus file found; running without corpus statistics\n")
		return corpus.New(), nil
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: corpus file %s not found; running without corpus statistics\n", path)
		return corpus.New(), nil
	}

	table, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return table, nil
}

// Analyze runs the full pipeline on one sentence: extract parts, classify,
// attach corpus context, and generate the optional tutor note.
func (a *Analyzer) Analyze(ctx context.Context, sentence string) (*model.SentenceReport, error) {
	sentence = norm.NFC.String(strings.TrimSpace(sentence))
	if sentence == "" {
		return nil, fmt.Errorf("empty sentence")
	}

	// Cached result? The key carries the segmenter strategy because token
	// boundaries change which parts get extracted.
	var key string
	if a.store != nil {
		key = cache.ResultKey(a.seg.Name(), sentence)
		if data, ok := a.store.Get(key); ok {
			var report model.SentenceReport
			if err := json.Unmarshal(data, &report); err == nil {
				return &report, nil
			}
		}
	}

	parts := a.extractor.Extract(sentence)
	if parts.IsEmpty() {
		return nil, ErrNoDui
	}

	result := a.classifier.Classify(parts.Predicate, parts.AfterPredicate, parts.YPhrase, sentence)

	report := &model.SentenceReport{
		Sentence:   sentence,
		AnalyzedAt: time.Now().UTC(),
		Segmenter:  a.seg.Name(),
		Parts:      parts,
		Result:     result,
		Animacy:    a.lex.GuessAnimacy(parts.YPhrase),
	}

	if parts.HasPredicate() {
		report.Similar = a.table.Similar(parts.Predicate, similarLimit)
		report.DistributionMD = a.table.DistributionText(parts.Predicate)
	}

	// Generate tutor note if enabled (AFTER classification, never affects it)
	if a.tutor != nil && a.tutor.IsEnabled() {
		note, err := a.tutor.GenerateNote(ctx, *report)
		if err != nil {
			// Don't fail the analysis, just warn
			fmt.Printf("Warning: tutor note generation failed: %v\n", err)
		} else if note != nil {
			report.Tutor = note
		}
	}

	if a.store != nil && key != "" {
		if data, err := json.Marshal(report); err == nil {
			a.store.Set(key, data, 0)
		}
	}

	return report, nil
}

// Scan fetches a page and analyzes every 对-sentence on it.
func (a *Analyzer) Scan(ctx context.Context, rawURL string) (*model.ScanReport, error) {
	// 1. Politeness: robots.txt, then the per-domain limiter
	var crawlDelay time.Duration
	if a.robots != nil {
		allowed, delay, err := a.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := a.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	// 2. Fetch HTML (cached, with retry)
	fetchResult, err := a.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 3. Harvest 对-sentences
	sentences, err := a.sentences.FromHTML(fetchResult.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract sentences: %w", err)
	}

	report := &model.ScanReport{
		SourceURL:      fetchResult.FinalURL,
		FetchedAt:      time.Now().UTC(),
		FetchMeta:      fetchResult.Meta,
		SentencesFound: len(sentences),
		Tally:          make(map[model.Category]int),
	}

	// 4. Analyze each sentence
	for _, sentence := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr, err := a.Analyze(ctx, sentence)
		if err != nil {
			// A fragment the splitter kept but the extractor rejects is
			// skipped, not fatal
			continue
		}

		report.Reports = append(report.Reports, *sr)
		if sr.Result.Unresolved {
			report.Unresolved++
		} else {
			report.Tally[sr.Result.Category]++
		}
	}

	return report, nil
}

// RenderAnalysis renders a sentence report to the specified outputs
func (a *Analyzer) RenderAnalysis(report *model.SentenceReport, jsonPath string, mdPath string, verbose bool) error {
	// Render JSON
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render Markdown
	if mdPath != "" {
		if err := a.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Render tutor note to separate file if present
	if report.Tutor != nil && report.Tutor.Enabled && mdPath != "" {
		tutorPath := strings.TrimSuffix(mdPath, ".md") + ".tutor.md"
		markdown := llm.RenderNoteMarkdown(report.Tutor)
		if err := a.renderer.RenderTutorMarkdown(markdown, tutorPath); err != nil {
			fmt.Printf("Warning: Failed to write tutor note: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote Tutor Note: %s\n", tutorPath)
		}
	}

	// Print summary to stdout
	a.renderer.RenderSummary(report)

	return nil
}

// RenderScan renders a scan report to the specified outputs
func (a *Analyzer) RenderScan(report *model.ScanReport, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := a.renderer.RenderScanMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	a.renderer.RenderScanSummary(report)

	return nil
}

// Table exposes the loaded corpus for lookup mode and the HTTP API.
func (a *Analyzer) Table() *corpus.Table {
	return a.table
}

// SegmenterName names the active tokenization strategy.
func (a *Analyzer) SegmenterName() string {
	return a.seg.Name()
}
