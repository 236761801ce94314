// Package engine wires the dataset, co-occurrence index, similarity model,
// text extractor and disease aggregator into the single read-only object
// that request handlers query.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kuandriy/symptom-gate/internal/config"
	"github.com/kuandriy/symptom-gate/internal/cooccur"
	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/diagnose"
	"github.com/kuandriy/symptom-gate/internal/extract"
	"github.com/kuandriy/symptom-gate/internal/similarity"
	"github.com/kuandriy/symptom-gate/internal/text"
	"github.com/kuandriy/symptom-gate/internal/tfidf"
)

// Engine answers symptom and disease queries. Every structure is built in New
// and never mutated afterwards, so an Engine is safe for concurrent use
// without locking.
type Engine struct {
	cfg    config.Config
	logger *slog.Logger

	ds           *dataset.Dataset
	descriptions *dataset.Descriptions
	matrix       *cooccur.Matrix
	model        *similarity.Model
	extractor    *extract.Extractor
	aggregator   *diagnose.Aggregator
}

// DiseaseResult is a ranked disease with its optional description.
type DiseaseResult struct {
	Disease     string  `json:"disease"`
	Score       float64 `json:"score"`
	Description string  `json:"description,omitempty"`
}

// Analysis is the outcome of analyzing free text.
type Analysis struct {
	Findings []extract.Finding `json:"extracted_symptoms"`
	Diseases []DiseaseResult   `json:"possible_diseases"`
}

// Relations groups the two kinds of related symptoms for an input set.
type Relations struct {
	Symptoms     []string           `json:"symptoms"`
	Cooccurrence []string           `json:"cooccurrence_related"`
	Semantic     []similarity.Match `json:"semantic_related"`
}

// Stats summarizes the built model.
type Stats struct {
	Symptoms     int `json:"symptoms"`
	Diseases     int `json:"diseases"`
	Rows         int `json:"rows"`
	Terms        int `json:"terms"`
	Descriptions int `json:"descriptions"`
}

// New builds an engine from a parsed dataset. descriptions may be nil. A nil
// logger discards output.
func New(ds *dataset.Dataset, descriptions *dataset.Descriptions, cfg config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	model := similarity.New(ds.Vocabulary)
	e := &Engine{
		cfg:          cfg,
		logger:       logger,
		ds:           ds,
		descriptions: descriptions,
		matrix:       cooccur.Build(ds),
		model:        model,
		extractor:    extract.New(model, ds.Vocabulary, cfg.Extraction()),
		aggregator:   diagnose.New(ds, cfg.Limits.Diseases),
	}
	st := e.Stats()
	logger.Info("symptom engine ready",
		"symptoms", st.Symptoms,
		"diseases", st.Diseases,
		"rows", st.Rows,
		"terms", st.Terms,
		"descriptions", st.Descriptions,
	)
	return e
}

// Load reads the configured dataset files and builds the engine. A missing
// symptom dataset is fatal and reported as dataset.ErrNotFound. The
// description file is optional: failures are logged and ignored.
func Load(cfg config.Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("loading dataset", "path", cfg.Dataset.Symptoms)
	ds, err := dataset.Load(cfg.Dataset.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}

	var desc *dataset.Descriptions
	if cfg.Dataset.Descriptions != "" {
		desc, err = dataset.LoadDescriptions(cfg.Dataset.Descriptions)
		if err != nil {
			logger.Warn("disease descriptions unavailable", "path", cfg.Dataset.Descriptions, "error", err)
			desc = nil
		}
	}
	return New(ds, desc, cfg, logger), nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }

// Stats returns model sizes.
func (e *Engine) Stats() Stats {
	return Stats{
		Symptoms:     e.ds.Vocabulary.Len(),
		Diseases:     len(e.ds.Diseases()),
		Rows:         e.ds.Rows(),
		Terms:        e.model.Terms(),
		Descriptions: e.descriptions.Len(),
	}
}

// TermSpace returns the TF-IDF space symptom names are embedded in.
func (e *Engine) TermSpace() *tfidf.Engine { return e.model.Space() }

// ListSymptoms returns the full vocabulary in canonical order.
func (e *Engine) ListSymptoms() []string {
	return e.ds.Vocabulary.List()
}

// SymptomsWithPrefix returns the symptoms starting with prefix, which is
// matched in canonical form.
func (e *Engine) SymptomsWithPrefix(prefix string) []string {
	return e.ds.Vocabulary.WithPrefix(text.Canonical(prefix))
}

// Diseases returns the disease names in dataset order.
func (e *Engine) Diseases() []string {
	return e.ds.Diseases()
}

// DiseaseSymptoms returns the symptoms recorded for a disease.
func (e *Engine) DiseaseSymptoms(disease string) []string {
	return e.ds.Symptoms(disease)
}

// RelatedSymptoms returns up to topN symptoms that co-occur with the input
// set. topN <= 0 uses the configured limit. Unknown symptoms are ignored.
func (e *Engine) RelatedSymptoms(symptoms []string, topN int) []string {
	if topN <= 0 {
		topN = e.cfg.Limits.Related
	}
	return cooccur.Names(e.matrix.Related(canonical(symptoms), topN))
}

// SimilarSymptoms returns up to topN symptoms whose names are close to the
// input set. topN <= 0 uses the configured limit.
func (e *Engine) SimilarSymptoms(symptoms []string, topN int) []similarity.Match {
	if topN <= 0 {
		topN = e.cfg.Limits.Similar
	}
	return e.model.Similar(canonical(symptoms), topN)
}

// ExtractSymptoms infers up to topN symptoms from free text. topN <= 0 uses
// the configured limit.
func (e *Engine) ExtractSymptoms(s string, topN int) []similarity.Match {
	if topN <= 0 {
		topN = e.cfg.Limits.Extract
	}
	return e.extractor.Extract(s, topN)
}

// DirectMatches returns the symptoms that occur literally in the text.
func (e *Engine) DirectMatches(s string) []string {
	return e.extractor.DirectMatches(s)
}

// PossibleDiseases ranks diseases for a resolved symptom set.
func (e *Engine) PossibleDiseases(symptoms []string) []diagnose.Score {
	return e.aggregator.PossibleDiseases(canonical(symptoms))
}

// Describe returns the description of a disease.
func (e *Engine) Describe(disease string) (string, bool) {
	return e.descriptions.Lookup(disease)
}

// Analyze extracts symptoms from text, merges them with direct matches and
// ranks the diseases they point to.
func (e *Engine) Analyze(s string) Analysis {
	s = text.CleanInput(s)
	findings := extract.Merge(e.ExtractSymptoms(s, 0), e.DirectMatches(s))
	scores := e.aggregator.PossibleDiseases(extract.Symptoms(findings))

	diseases := make([]DiseaseResult, len(scores))
	for i, sc := range scores {
		desc, _ := e.Describe(sc.Disease)
		diseases[i] = DiseaseResult{Disease: sc.Disease, Score: sc.Score, Description: desc}
	}
	e.logger.Debug("analyzed text",
		"findings", len(findings),
		"diseases", len(diseases),
	)
	return Analysis{Findings: findings, Diseases: diseases}
}

// Related returns both co-occurring and semantically similar symptoms for the
// input set, using the configured limits.
func (e *Engine) Related(symptoms []string) Relations {
	in := canonical(symptoms)
	r := Relations{
		Symptoms:     in,
		Cooccurrence: e.RelatedSymptoms(in, 0),
		Semantic:     e.SimilarSymptoms(in, 0),
	}
	if r.Cooccurrence == nil {
		r.Cooccurrence = []string{}
	}
	if r.Semantic == nil {
		r.Semantic = []similarity.Match{}
	}
	return r
}

// canonical maps raw input symptoms to canonical form, dropping empty ones.
func canonical(symptoms []string) []string {
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if c := text.Canonical(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// IsBlank reports whether text has nothing to analyze.
func IsBlank(s string) bool {
	return strings.TrimSpace(text.CleanInput(s)) == ""
}
