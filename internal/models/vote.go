package models

import "encoding/json"

// Vote choices. A feature accumulates one bucket per choice.
const (
	ChoiceNo   = "no"
	ChoiceNice = "nice"
	ChoiceMust = "must"
)

// ValidChoice reports whether s names one of the three counter buckets.
func ValidChoice(s string) bool {
	return s == ChoiceNo || s == ChoiceNice || s == ChoiceMust
}

type Counts struct {
	No   int `json:"votes_no"`
	Nice int `json:"votes_nice"`
	Must int `json:"votes_must"`
}

func (c Counts) Total() int {
	return c.No + c.Nice + c.Must
}

// VoteEvent is one vote from the frontend. PrevChoice is set when the user is
// changing an earlier vote; Summary refreshes the feature's display text.
type VoteEvent struct {
	ID         string `json:"id"`
	Choice     string `json:"choice"`
	PrevChoice string `json:"prev_choice,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// VotePayload accepts both wire shapes: {"votes":[...]} and a bare single
// vote object.
type VotePayload struct {
	Votes []VoteEvent `json:"votes"`
}

func (p *VotePayload) UnmarshalJSON(data []byte) error {
	type alias VotePayload
	var batch alias
	if err := json.Unmarshal(data, &batch); err == nil && batch.Votes != nil {
		p.Votes = batch.Votes
		return nil
	}
	var single VoteEvent
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	p.Votes = []VoteEvent{single}
	return nil
}

// VoteRecord is the aggregate row for one feature id.
type VoteRecord struct {
	FeatureID   string `json:"featureId"`
	Summary     string `json:"summary"`
	Counts      Counts `json:"counts"`
	LastUpdated string `json:"lastUpdated"`
}
