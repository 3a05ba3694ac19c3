package blueprint

import (
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// Outcome identifies which stage of the normalization pipeline produced the
// returned blueprint.
type Outcome string

const (
	OutcomeStrict   Outcome = "strict"
	OutcomeRepaired Outcome = "repaired"
	OutcomeFallback Outcome = "fallback"
)

// Normalizer turns arbitrary text claiming to be a blueprint into a valid
// Blueprint. It never fails: when the text cannot be parsed or repaired it
// returns the built-in default document.
type Normalizer struct {
	log       *zap.Logger
	onOutcome func(Outcome)
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLogger attaches a logger to the normalizer.
func WithLogger(log *zap.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if log != nil {
			n.log = log
		}
	}
}

// WithOutcomeHook registers a callback invoked with the pipeline outcome of
// every Normalize call. Used for metrics.
func WithOutcomeHook(fn func(Outcome)) NormalizerOption {
	return func(n *Normalizer) { n.onOutcome = fn }
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{log: zap.NewNop()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize coerces raw generator output into a Blueprint. The pipeline is
// clean, strict parse, structural repair, fallback; each stage runs only if
// the previous one failed. The result is never nil.
func (n *Normalizer) Normalize(raw string) *Blueprint {
	cleaned := Clean(raw)

	if bp, ok := parseStrict(cleaned); ok {
		n.finish(OutcomeStrict, bp)
		return bp
	}

	if repaired, err := repairDocument(cleaned); err == nil {
		if bp, ok := parseStrict(repaired); ok {
			n.finish(OutcomeRepaired, bp)
			return bp
		}
	} else {
		n.log.Debug("blueprint repair failed", zap.Error(err))
	}

	bp := Default()
	n.finish(OutcomeFallback, bp)
	return bp
}

func (n *Normalizer) finish(outcome Outcome, bp *Blueprint) {
	n.log.Info("blueprint normalized",
		zap.String("outcome", string(outcome)),
		zap.String("project", bp.Name()),
	)
	if n.onOutcome != nil {
		n.onOutcome(outcome)
	}
}

// Normalize coerces raw text into a Blueprint with a default Normalizer.
func Normalize(raw string) *Blueprint {
	return NewNormalizer().Normalize(raw)
}

// parseStrict attempts a direct structural parse. Unknown fields are
// ignored; wrong container kinds fail. A document that parses but carries
// no data is rejected so the pipeline can fall through to repair.
func parseStrict(doc string) (*Blueprint, bool) {
	var bp Blueprint
	if err := sonic.UnmarshalString(doc, &bp); err != nil {
		return nil, false
	}
	if bp.Empty() {
		return nil, false
	}
	return &bp, true
}

// Clean strips generator artifacts from raw output: Markdown code fences,
// stray backticks, and any prose surrounding the outermost JSON object.
// When no object can be located it returns an empty object literal.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "{}"
	}

	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.Trim(s, "`")

	// Best-effort boundary detection: first '{' to last '}'.
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "{}"
	}
	return s
}

// ExtractObject cleans raw LLM output and decodes it into a generic object.
// Agents use it to turn generated payloads into structured data; callers
// fall back to the raw text when decoding fails.
func ExtractObject(raw string) (map[string]any, bool) {
	cleaned := Clean(raw)
	var obj map[string]any
	if err := sonic.UnmarshalString(cleaned, &obj); err != nil {
		return nil, false
	}
	if len(obj) == 0 {
		return nil, false
	}
	return obj, true
}

// Marshal encodes a blueprint to JSON, returning "{}" when encoding fails
// so prompt construction never aborts a generation run.
func Marshal(b *Blueprint) string {
	out, err := sonic.MarshalString(b)
	if err != nil {
		return "{}"
	}
	return out
}
