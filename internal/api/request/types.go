package request

import "github.com/mcoot/timestamper/internal/model"

// CompareRequest is the request body for comparing two times
type CompareRequest struct {
	A    model.TimeItem `json:"a"`
	B    model.TimeItem `json:"b"`
	Unit string         `json:"unit"`
}
