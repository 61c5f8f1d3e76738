package debate

import "time"

const (
	WinnerSideA = "Side A"
	WinnerSideB = "Side B"
	WinnerDraw  = "Draw"
)

type SideFeedback struct {
	Justification string `gorm:"not null" json:"justification"`
	Improvements  string `gorm:"not null" json:"improvements"`
}

type Feedback struct {
	SideA SideFeedback `gorm:"embedded;embeddedPrefix:side_a_" json:"sideA_feedback"`
	SideB SideFeedback `gorm:"embedded;embeddedPrefix:side_b_" json:"sideB_feedback"`
}

type Debate struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Topic     string    `json:"topic"`
	SideA     string    `gorm:"not null" json:"sideA"`
	SideB     string    `gorm:"not null" json:"sideB"`
	ScoreA    float64   `json:"scoreA"`
	ScoreB    float64   `json:"scoreB"`
	Winner    string    `gorm:"not null" json:"winner"`
	Feedback  Feedback  `gorm:"embedded" json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}

type JudgeRequest struct {
	Topic string `json:"topic"`
	SideA string `json:"sideA"`
	SideB string `json:"sideB"`
}
