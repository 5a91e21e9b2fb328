package award

import "strings"

// minResponseLength is the minimum character length of a non-empty
// criterion response after trimming.
const minResponseLength = 10

// FileRef identifies an uploaded attachment on a criterion response.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// CriterionResponse is the applicant's answer to one criterion.
type CriterionResponse struct {
	Text   string    `json:"text"`
	Files  []FileRef `json:"files,omitempty"`
	Rating int       `json:"rating,omitempty"`
}

// ErrorCode identifies a validation failure on a criterion response.
type ErrorCode string

const (
	ErrResponseRequired  ErrorCode = "response_required"
	ErrResponseTooShort  ErrorCode = "response_too_short"
	ErrWordLimitExceeded ErrorCode = "word_limit_exceeded"
	ErrFileLimitExceeded ErrorCode = "file_limit_exceeded"
)

// ResponseError is one validation failure. Current and Max carry the word
// or file counts for limit errors and are zero otherwise.
type ResponseError struct {
	Code    ErrorCode `json:"code"`
	Current int       `json:"current,omitempty"`
	Max     int       `json:"max,omitempty"`
}

// CriterionErrors groups the failures of a single criterion.
type CriterionErrors struct {
	CriterionID string          `json:"criterionId"`
	Errors      []ResponseError `json:"errors"`
}

// WordCount counts whitespace-separated words in text. Blank or
// whitespace-only text counts as zero words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ValidateResponses checks every criterion's response against the
// category limits and returns a sparse list: only criteria with at least
// one failure appear, in criteria order. maxWords and maxFiles of zero
// disable the respective limit.
func ValidateResponses(criteria []Criterion, responses map[string]CriterionResponse, maxWords, maxFiles int) []CriterionErrors {
	var all []CriterionErrors
	for _, c := range criteria {
		resp, ok := responses[c.ID]
		var errs []ResponseError

		trimmed := strings.TrimSpace(resp.Text)
		if !ok || trimmed == "" {
			errs = append(errs, ResponseError{Code: ErrResponseRequired})
		} else {
			if len([]rune(trimmed)) < minResponseLength {
				errs = append(errs, ResponseError{Code: ErrResponseTooShort})
			}
			if maxWords > 0 {
				if words := WordCount(trimmed); words > maxWords {
					errs = append(errs, ResponseError{Code: ErrWordLimitExceeded, Current: words, Max: maxWords})
				}
			}
		}
		if ok && maxFiles > 0 && len(resp.Files) > maxFiles {
			errs = append(errs, ResponseError{Code: ErrFileLimitExceeded, Current: len(resp.Files), Max: maxFiles})
		}

		if len(errs) > 0 {
			all = append(all, CriterionErrors{CriterionID: c.ID, Errors: errs})
		}
	}
	return all
}
