package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/showerbuddy/internal/db"
	"github.com/terraincognita07/showerbuddy/internal/models"
)

var (
	ErrFlowTitleTooLong  = errors.New("flow title too long")
	ErrInvalidSeqStep    = errors.New("sequence step must be positive")
	ErrDuplicateFlowStep = errors.New("flow already has an activity at this step")
)

type FlowRepository interface {
	Create(flow *models.Flow) error
	FindByID(flowID uint) (models.Flow, error)
}

type FlowStepRepository interface {
	Create(step *models.FlowActivity) error
	ListOrdered(flowID uint) ([]models.FlowActivity, error)
	MaxSeqStep(flowID uint) (int, error)
}

// FlowStep is one activity at its position in a flow.
type FlowStep struct {
	SeqStep  int
	Activity models.Activity
}

type FlowService struct {
	flows FlowRepository
	steps FlowStepRepository
}

func NewFlowService(flows FlowRepository, steps FlowStepRepository) *FlowService {
	return &FlowService{flows: flows, steps: steps}
}

func (service *FlowService) CreateFlow(clientID uint, title string) (models.Flow, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) > models.MaxFlowTitleLength {
		return models.Flow{}, ErrFlowTitleTooLong
	}

	flow := models.Flow{Title: title}
	if clientID != 0 {
		flow.ClientID = &clientID
	}
	if err := service.flows.Create(&flow); err != nil {
		return models.Flow{}, fmt.Errorf("create flow: %w", err)
	}
	return flow, nil
}

func (service *FlowService) AddStep(flowID uint, activityID uint, seqStep int) (models.FlowActivity, error) {
	if seqStep < 1 {
		return models.FlowActivity{}, ErrInvalidSeqStep
	}

	step := models.FlowActivity{FlowID: flowID, ActivityID: activityID, SeqStep: seqStep}
	if err := service.steps.Create(&step); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.FlowActivity{}, fmt.Errorf("%w: %w", ErrDuplicateFlowStep, err)
		}
		return models.FlowActivity{}, fmt.Errorf("create flow step: %w", err)
	}
	return step, nil
}

// AppendStep places the activity after the last step of the flow.
func (service *FlowService) AppendStep(flowID uint, activityID uint) (models.FlowActivity, error) {
	last, err := service.steps.MaxSeqStep(flowID)
	if err != nil {
		return models.FlowActivity{}, fmt.Errorf("load last step: %w", err)
	}
	return service.AddStep(flowID, activityID, last+1)
}

// Activities returns the flow's activities in execution order.
func (service *FlowService) Activities(flowID uint) ([]FlowStep, error) {
	if _, err := service.flows.FindByID(flowID); err != nil {
		return nil, fmt.Errorf("load flow: %w", err)
	}

	rows, err := service.steps.ListOrdered(flowID)
	if err != nil {
		return nil, fmt.Errorf("list flow steps: %w", err)
	}

	steps := make([]FlowStep, 0, len(rows))
	for _, row := range rows {
		step := FlowStep{SeqStep: row.SeqStep}
		if row.Activity != nil {
			step.Activity = *row.Activity
		}
		steps = append(steps, step)
	}
	return steps, nil
}
