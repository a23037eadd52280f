package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AnswerMap stores the question-id -> selected-label mapping of a submission
// as a JSON column.
type AnswerMap map[uint]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnswerMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into AnswerMap", value)
	}
}

// QuizSubmission is the immutable record of one completed attempt. It is
// written exactly once; there is no update path.
type QuizSubmission struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	QuizID           uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz             Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID           uint           `json:"user_id" gorm:"not null;index"`
	User             User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Score            int            `json:"score" gorm:"not null"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	TimeTakenSeconds int            `json:"time_taken_seconds" gorm:"not null"`
	Answers          AnswerMap      `json:"answers" gorm:"type:jsonb"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
