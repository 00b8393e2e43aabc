package response

import "github.com/mcoot/timestamper/internal/model"

// TimeItem represents a point in time in API responses
type TimeItem = model.TimeItem

// TimeRecord represents a saved time
type TimeRecord struct {
	Identifier string   `json:"identifier"`
	Player     string   `json:"player,omitempty"`
	Time       TimeItem `json:"time"`
}

// TimeRecordFromModel converts a model.TimeRecord to a response TimeRecord
func TimeRecordFromModel(r model.TimeRecord) TimeRecord {
	return TimeRecord{
		Identifier: r.Identifier,
		Player:     r.Player,
		Time:       r.Item(),
	}
}

// TimeListResponse is the response for listing saved times
type TimeListResponse struct {
	Objective string       `json:"objective"`
	Times     []TimeRecord `json:"times"`
}

// CompareResponse is the response for comparing two times
type CompareResponse struct {
	Unit       string  `json:"unit"`
	Difference float64 `json:"difference"`
}
