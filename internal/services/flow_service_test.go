package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/terraincognita07/showerbuddy/internal/db"
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type stubFlowRepo struct {
	flows  map[uint]models.Flow
	nextID uint
}

func (stub *stubFlowRepo) Create(flow *models.Flow) error {
	if stub.flows == nil {
		stub.flows = make(map[uint]models.Flow)
	}
	if flow.Title == "" {
		flow.Title = models.DefaultFlowTitle
	}
	stub.nextID++
	flow.ID = stub.nextID
	stub.flows[flow.ID] = *flow
	return nil
}

func (stub *stubFlowRepo) FindByID(flowID uint) (models.Flow, error) {
	flow, ok := stub.flows[flowID]
	if !ok {
		return models.Flow{}, gorm.ErrRecordNotFound
	}
	return flow, nil
}

type stubFlowStepRepo struct {
	steps      []models.FlowActivity
	activities map[uint]models.Activity
	listErr    error
}

func (stub *stubFlowStepRepo) Create(step *models.FlowActivity) error {
	for _, existing := range stub.steps {
		if existing.FlowID == step.FlowID && existing.SeqStep == step.SeqStep {
			return fmt.Errorf("%w: flow %d step %d", db.ErrUniqueViolation, step.FlowID, step.SeqStep)
		}
	}
	step.ID = uint(len(stub.steps) + 1)
	stub.steps = append(stub.steps, *step)
	return nil
}

func (stub *stubFlowStepRepo) ListOrdered(flowID uint) ([]models.FlowActivity, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	rows := make([]models.FlowActivity, 0)
	for _, step := range stub.steps {
		if step.FlowID != flowID {
			continue
		}
		activity := stub.activities[step.ActivityID]
		step.Activity = &activity
		rows = append(rows, step)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SeqStep < rows[j].SeqStep })
	return rows, nil
}

func (stub *stubFlowStepRepo) MaxSeqStep(flowID uint) (int, error) {
	maxStep := 0
	for _, step := range stub.steps {
		if step.FlowID == flowID && step.SeqStep > maxStep {
			maxStep = step.SeqStep
		}
	}
	return maxStep, nil
}

func newTestFlowService() (*FlowService, *stubFlowStepRepo) {
	steps := &stubFlowStepRepo{activities: map[uint]models.Activity{
		1: {ID: 1, Name: "Wet hair"},
		2: {ID: 2, Name: "Shampoo"},
		3: {ID: 3, Name: "Rinse"},
	}}
	return NewFlowService(&stubFlowRepo{}, steps), steps
}

func TestCreateFlow(t *testing.T) {
	service, _ := newTestFlowService()

	flow, err := service.CreateFlow(7, "  ")
	if err != nil {
		t.Fatalf("CreateFlow() unexpected error: %v", err)
	}
	if flow.Title != models.DefaultFlowTitle {
		t.Fatalf("expected default title, got %q", flow.Title)
	}
	if flow.ClientID == nil || *flow.ClientID != 7 {
		t.Fatalf("expected client 7, got %v", flow.ClientID)
	}

	unowned, err := service.CreateFlow(0, "spare")
	if err != nil {
		t.Fatalf("CreateFlow() unexpected error: %v", err)
	}
	if unowned.ClientID != nil {
		t.Fatalf("expected no client, got %d", *unowned.ClientID)
	}

	if _, err := service.CreateFlow(7, strings.Repeat("t", models.MaxFlowTitleLength+1)); !errors.Is(err, ErrFlowTitleTooLong) {
		t.Fatalf("expected ErrFlowTitleTooLong, got %v", err)
	}
}

func TestAddStepValidatesPosition(t *testing.T) {
	service, _ := newTestFlowService()
	flow, err := service.CreateFlow(1, "daily")
	if err != nil {
		t.Fatalf("CreateFlow() unexpected error: %v", err)
	}

	for _, seqStep := range []int{0, -3} {
		if _, err := service.AddStep(flow.ID, 1, seqStep); !errors.Is(err, ErrInvalidSeqStep) {
			t.Fatalf("AddStep(seq=%d) expected ErrInvalidSeqStep, got %v", seqStep, err)
		}
	}

	if _, err := service.AddStep(flow.ID, 2, 1); err != nil {
		t.Fatalf("AddStep() unexpected error: %v", err)
	}
	_, err = service.AddStep(flow.ID, 3, 1)
	if !errors.Is(err, ErrDuplicateFlowStep) {
		t.Fatalf("expected ErrDuplicateFlowStep, got %v", err)
	}
	if !errors.Is(err, db.ErrUniqueViolation) {
		t.Fatalf("expected store error in chain, got %v", err)
	}
}

func TestActivitiesReturnsStepsInOrder(t *testing.T) {
	service, _ := newTestFlowService()
	flow, err := service.CreateFlow(1, "daily")
	if err != nil {
		t.Fatalf("CreateFlow() unexpected error: %v", err)
	}

	if _, err := service.AddStep(flow.ID, 3, 3); err != nil {
		t.Fatalf("AddStep() unexpected error: %v", err)
	}
	if _, err := service.AddStep(flow.ID, 1, 1); err != nil {
		t.Fatalf("AddStep() unexpected error: %v", err)
	}
	if _, err := service.AddStep(flow.ID, 2, 2); err != nil {
		t.Fatalf("AddStep() unexpected error: %v", err)
	}
	appended, err := service.AppendStep(flow.ID, 3)
	if err != nil {
		t.Fatalf("AppendStep() unexpected error: %v", err)
	}
	if appended.SeqStep != 4 {
		t.Fatalf("expected appended step at 4, got %d", appended.SeqStep)
	}

	steps, err := service.Activities(flow.ID)
	if err != nil {
		t.Fatalf("Activities() unexpected error: %v", err)
	}
	want := []string{"Wet hair", "Shampoo", "Rinse", "Rinse"}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for index, step := range steps {
		if step.SeqStep != index+1 || step.Activity.Name != want[index] {
			t.Fatalf("step %d = (%d, %s), want (%d, %s)", index, step.SeqStep, step.Activity.Name, index+1, want[index])
		}
	}
}

func TestActivitiesUnknownFlow(t *testing.T) {
	service, _ := newTestFlowService()

	if _, err := service.Activities(42); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestActivitiesPropagatesListError(t *testing.T) {
	service, steps := newTestFlowService()
	flow, err := service.CreateFlow(1, "daily")
	if err != nil {
		t.Fatalf("CreateFlow() unexpected error: %v", err)
	}
	steps.listErr = errors.New("store offline")

	if _, err := service.Activities(flow.ID); err == nil || !strings.Contains(err.Error(), "store offline") {
		t.Fatalf("expected list error, got %v", err)
	}
}
