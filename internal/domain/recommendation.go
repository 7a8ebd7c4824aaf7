package domain

type ScoredProgram struct {
	Program
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

type Recommendations struct {
	Recommended    []ScoredProgram `json:"recommended"`
	NotRecommended []ScoredProgram `json:"not_recommended"`
}

// AnswerIssue is a non-fatal mismatch between an answer and the question list.
type AnswerIssue struct {
	QuestionID string `json:"question_id"`
	Message    string `json:"message"`
}

type RecommendationResult struct {
	Recommendations
	Issues         []AnswerIssue
	CacheHit       bool
	CatalogVersion string
}

type RecommendationMeta struct {
	CacheHit         bool          `json:"cache_hit"`
	CatalogVersion   string        `json:"catalog_version"`
	GeneratedAt      string        `json:"generated_at"`
	TotalCount       int           `json:"total_count"`
	RecommendedCount int           `json:"recommended_count"`
	Message          string        `json:"message,omitempty"`
	Issues           []AnswerIssue `json:"issues,omitempty"`
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchItemResult struct {
	Index           int              `json:"index"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	CacheHit        bool             `json:"cache_hit"`
	Status          BatchStatus      `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	CatalogVersion string `json:"catalog_version"`
	GeneratedAt    string `json:"generated_at"`
}

type BatchResponse struct {
	Results  []BatchItemResult `json:"results"`
	Summary  BatchSummary      `json:"summary"`
	Metadata BatchMeta         `json:"metadata"`
}
