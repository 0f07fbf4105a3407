package domain

import "time"

// Core Data Models

// TestRecord represents one diagnostic test applied to one condition.
// The pair (Test, Condition) is the natural key joining a record to its
// study notes; it is unique within the catalog.
type TestRecord struct {
	Test         string  `json:"test"`
	Condition    string  `json:"condition"`
	Sensitivity  float64 `json:"sensitivity"`
	Specificity  float64 `json:"specificity"`
	LRPlus       float64 `json:"lrPlus"`
	LRMinus      float64 `json:"lrMinus"`
	Reference    string  `json:"reference"`
	ReferenceURL string  `json:"referenceUrl,omitempty"`
}

// Key returns the natural key of the record.
func (r TestRecord) Key() RecordKey {
	return RecordKey{Test: r.Test, Condition: r.Condition}
}

// LR returns the likelihood ratio applied for the given result polarity.
func (r TestRecord) LR(p Polarity) float64 {
	if p == NEGATIVE {
		return r.LRMinus
	}
	return r.LRPlus
}

// RecordKey is the (test, condition) natural key of a TestRecord.
type RecordKey struct {
	Test      string `json:"test"`
	Condition string `json:"condition"`
}

// StudyNote is an optional annotation describing the study a record's
// performance figures were drawn from. Absence of a note is a normal state,
// not an error.
type StudyNote struct {
	Test       string   `json:"test"`
	Condition  string   `json:"condition"`
	Overview   string   `json:"overview"`
	SampleSize string   `json:"sampleSize"`
	Population string   `json:"population"`
	Setting    string   `json:"setting"`
	Design     string   `json:"design"`
	Year       int      `json:"year"`
	Caveats    []string `json:"caveats,omitempty"`
	Extra      string   `json:"extra,omitempty"`
}

// Interaction State Models

// QueryState is the single source of truth driving every derived quantity in
// an explorer session. It is mutated only by explicit user actions and is
// recomputed to derived values synchronously.
type QueryState struct {
	Query         string        `json:"query"`
	Condition     string        `json:"condition"`
	SortKey       SortKey       `json:"sortKey"`
	SortDir       SortDirection `json:"sortDir"`
	Selected      *TestRecord   `json:"selected,omitempty"`
	PrevalencePct float64       `json:"prevalencePct"`
	Polarity      Polarity      `json:"polarity"`
}

// Derived Models

// OutcomePair is a partition of a fixed cohort into two outcome classes.
// The two counts always sum exactly to the cohort total.
type OutcomePair struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Total     int `json:"total"`
}

// DerivedState carries every quantity recomputed from the interaction state.
// No field is ever NaN or infinite; probabilities are clamped to [0,1].
type DerivedState struct {
	ActiveRecord    *TestRecord `json:"activeRecord,omitempty"`
	ActiveLR        float64     `json:"activeLR"`
	PreTestProb     float64     `json:"preTestProbability"`
	PostTestProb    float64     `json:"postTestProbability"`
	DiseaseGrid     OutcomePair `json:"diseaseGrid"`
	NonDiseaseGrid  OutcomePair `json:"nonDiseaseGrid"`
	PostTestGrid    OutcomePair `json:"postTestGrid"`
}

// SessionView is the full session snapshot exposed to the presentation layer.
type SessionView struct {
	ID         string       `json:"id"`
	State      QueryState   `json:"state"`
	Records    []TestRecord `json:"records"`
	Conditions []string     `json:"conditions"`
	Derived    DerivedState `json:"derived"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// CatalogSummary carries descriptive statistics over the compiled-in catalog.
type CatalogSummary struct {
	RecordCount    int          `json:"recordCount"`
	ConditionCount int          `json:"conditionCount"`
	Sensitivity    FieldSummary `json:"sensitivity"`
	Specificity    FieldSummary `json:"specificity"`
	LRPlus         FieldSummary `json:"lrPlus"`
	LRMinus        FieldSummary `json:"lrMinus"`
}

// FieldSummary is a five-number descriptive summary of one numeric field.
type FieldSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stdDev"`
}

// Configuration Models

// Config represents the main application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Explorer ExplorerConfig `mapstructure:"explorer"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	RateLimit    float64       `mapstructure:"rate_limit"`
	RateBurst    int           `mapstructure:"rate_burst"`
}

// ExplorerConfig represents the probability-explorer defaults and bounds
type ExplorerConfig struct {
	CohortSize           int           `mapstructure:"cohort_size"`
	DefaultPrevalencePct float64       `mapstructure:"default_prevalence_pct"`
	MinPrevalencePct     float64       `mapstructure:"min_prevalence_pct"`
	MaxPrevalencePct     float64       `mapstructure:"max_prevalence_pct"`
	SessionTTL           time.Duration `mapstructure:"session_ttl"`
}

// CacheConfig represents the in-memory view cache configuration
type CacheConfig struct {
	ViewCacheSize int `mapstructure:"view_cache_size"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
