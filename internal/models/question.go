package models

// Option is one selectable answer of a multiple-choice question. Code is the
// short identifier the client submits back ("a", "b", ...).
type Option struct {
	Code      string `bson:"code" json:"id"`
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"is_correct" json:"correct,omitempty"`
}

// Question is immutable after seeding. A nil ModuleID and CategoryID marks a
// placement (onboarding) question.
type Question struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Text        string   `bson:"text" json:"question"`
	ModuleID    *string  `bson:"module_id,omitempty" json:"module_id,omitempty"`
	CategoryID  *string  `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Level       int      `bson:"level" json:"level"`
	Explanation string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Options     []Option `bson:"options" json:"options"`
}

// Sanitized returns a copy with the is_correct flags stripped, for endpoints
// that serve questions to a user who has not answered them yet.
func (q Question) Sanitized() Question {
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = Option{Code: o.Code, Text: o.Text}
	}
	q.Options = opts
	return q
}

// CorrectOption reports whether the given option code marks a correct answer.
func (q Question) CorrectOption(code string) bool {
	for _, o := range q.Options {
		if o.Code == code && o.IsCorrect {
			return true
		}
	}
	return false
}
