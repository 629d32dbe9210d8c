package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := Open(Options{URI: filepath.Join(t.TempDir(), "showerbuddy-test.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(database)
	})
	return database
}

func mustCreateUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "hash"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func mustCreateClient(t *testing.T, repos *Repositories, name string, caregiver *models.User) models.Client {
	t.Helper()

	client := models.Client{Name: name}
	if caregiver != nil {
		caregiverID := caregiver.GetID()
		client.CaregiverID = &caregiverID
	}
	if err := repos.Clients.Create(&client); err != nil {
		t.Fatalf("create client %s: %v", name, err)
	}
	return client
}

func mustCreateFlow(t *testing.T, repos *Repositories, title string, client models.Client) models.Flow {
	t.Helper()

	clientID := client.ID
	flow := models.Flow{Title: title, ClientID: &clientID}
	if err := repos.Flows.Create(&flow); err != nil {
		t.Fatalf("create flow %q: %v", title, err)
	}
	return flow
}

func mustCreateActivity(t *testing.T, repos *Repositories, name string) models.Activity {
	t.Helper()

	activity := models.Activity{Name: name}
	if err := repos.Activities.Create(&activity); err != nil {
		t.Fatalf("create activity %s: %v", name, err)
	}
	return activity
}

func mustAddStep(t *testing.T, repos *Repositories, flow models.Flow, activity models.Activity, seqStep int) models.FlowActivity {
	t.Helper()

	step := models.FlowActivity{FlowID: flow.ID, ActivityID: activity.ID, SeqStep: seqStep}
	if err := repos.FlowActivities.Create(&step); err != nil {
		t.Fatalf("add step %d: %v", seqStep, err)
	}
	return step
}
