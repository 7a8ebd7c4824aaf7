package handler

import (
	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/internal/validation"
)

type RecommendRequest struct {
	Answers domain.AnswerSet `json:"answers" validate:"required"`
}

type BatchRequest struct {
	Requests []RecommendRequest `json:"requests" validate:"required,min=1,max=100,dive"`
}

type RecommendationResponse struct {
	Recommended    []domain.ScoredProgram    `json:"recommended"`
	NotRecommended []domain.ScoredProgram    `json:"not_recommended"`
	Metadata       domain.RecommendationMeta `json:"metadata"`
}

type QuestionsResponse struct {
	Questions      []domain.Question `json:"questions"`
	CatalogVersion string            `json:"catalog_version"`
}

type ProgramsResponse struct {
	Programs       []domain.Program `json:"programs"`
	TotalCount     int              `json:"total_count"`
	CatalogVersion string           `json:"catalog_version"`
}

type ReloadResponse struct {
	CatalogVersion string `json:"catalog_version"`
	Questions      int    `json:"questions"`
	Programs       int    `json:"programs"`
}

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}
