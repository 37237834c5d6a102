package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityDateLayout は UserDailyActivity.ActivityDate の書式です
const ActivityDateLayout = "2006-01-02"

// UserDailyActivity はユーザーの日別アクティビティ
type UserDailyActivity struct {
	ActivityID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index:idx_user_date,unique"`
	ActivityDate         string    `gorm:"type:varchar(10);not null;index:idx_user_date,unique"` // UTC日付 (YYYY-MM-DD)
	IsActive             bool      `gorm:"not null"`
	TriviaGamesCount     int       `gorm:"not null"`
	WordsInteractedCount int       `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserDailyActivity) TableName() string {
	return "user_daily_activity"
}
