package types

// RubricBucket is the score earned in one rubric category, with a
// human-readable detail string explaining what was credited.
type RubricBucket struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Detail string `json:"detail"`
}

// RubricScore is the fixed-weight checklist score (the export-ready score
// card), computed from the structured record alone.
type RubricScore struct {
	Score       int            `json:"score"` // percentage, 0-100
	Rating      Rating         `json:"rating"`
	Buckets     []RubricBucket `json:"buckets"`
	Suggestions []string       `json:"suggestions"`
}
