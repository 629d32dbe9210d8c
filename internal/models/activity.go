package models

import "fmt"

const MaxActivityNameLength = 30

type Activity struct {
	ID             uint           `gorm:"column:activity_id;primaryKey;autoIncrement"`
	Name           string         `gorm:"column:activity_name;size:30"`
	Description    string         `gorm:"column:description;type:text"`
	Video          string         `gorm:"column:activity_video;type:text"`
	FlowActivities []FlowActivity `gorm:"foreignKey:ActivityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Activity) TableName() string {
	return "activities"
}

func (activity Activity) String() string {
	return fmt.Sprintf("<Activity id=%d, description=%s, video=%s>", activity.ID, activity.Description, activity.Video)
}
