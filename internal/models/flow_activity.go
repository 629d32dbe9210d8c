package models

import "fmt"

// FlowActivity fixes one activity at one position of a flow. A position is
// unique within its flow.
type FlowActivity struct {
	ID         uint      `gorm:"column:flow_act_id;primaryKey;autoIncrement"`
	SeqStep    int       `gorm:"column:seq_step;not null;uniqueIndex:uidx_flow_acts_flow_step,priority:2"`
	FlowID     uint      `gorm:"column:flow_id;not null;uniqueIndex:uidx_flow_acts_flow_step,priority:1"`
	ActivityID uint      `gorm:"column:activity_id;not null;index"`
	Flow       *Flow     `gorm:"foreignKey:FlowID;references:ID"`
	Activity   *Activity `gorm:"foreignKey:ActivityID;references:ID"`
}

func (FlowActivity) TableName() string {
	return "flow_acts"
}

func (step FlowActivity) String() string {
	return fmt.Sprintf("<Flow_Activity flow_act_id=%d, step in sequence=%d>", step.ID, step.SeqStep)
}
