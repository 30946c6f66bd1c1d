package db

import (
	"testing"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

func createTestLead(t *testing.T, repo LeadRepository, tenantID, name string) *models.Lead {
	t.Helper()

	lead := models.NewLead(tenantID, &models.CreateLeadRequest{Name: name})
	if err := repo.Create(lead); err != nil {
		t.Fatalf("failed to create test lead: %v", err)
	}
	return lead
}

func TestLeadRepositoryCreateAndGet(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))

	lead := models.NewLead("tenant-1", &models.CreateLeadRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-0100",
		ExtraData: models.LeadExtraData{
			Source: "phone",
			VoiceCalls: []models.VoiceCall{
				{CallID: "c1", CallDate: "2024-01-10 14:30", CallerName: "Jane Doe"},
			},
		},
	})

	if err := repo.Create(lead); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(lead.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetByID() returned nil for existing lead")
	}
	if got.Name != "Jane Doe" || got.Status != models.LeadStatusNew {
		t.Errorf("GetByID() = {%s %s}, want {Jane Doe new}", got.Name, got.Status)
	}
	if len(got.ExtraData.VoiceCalls) != 1 || got.ExtraData.VoiceCalls[0].CallID != "c1" {
		t.Errorf("extra data did not round-trip: %+v", got.ExtraData)
	}
}

func TestLeadRepositoryGetByIDMissing(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))

	got, err := repo.GetByID("nope")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != nil {
		t.Error("GetByID() should return nil for missing lead")
	}
}

func TestLeadRepositoryList(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))

	createTestLead(t, repo, "tenant-1", "A")
	createTestLead(t, repo, "tenant-1", "B")
	createTestLead(t, repo, "tenant-2", "C")

	leads, err := repo.List("tenant-1", 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("List() returned %d leads, want 2 (tenant scoped)", len(leads))
	}
}

func TestLeadRepositoryMove(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))
	lead := createTestLead(t, repo, "tenant-1", "Jane")

	if err := repo.Move(lead.ID, models.LeadStatusQualified, 2.5); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	got, err := repo.GetByID(lead.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != models.LeadStatusQualified || got.Position != 2.5 {
		t.Errorf("Move() left lead at {%s %v}, want {qualified 2.5}", got.Status, got.Position)
	}
	if got.Name != "Jane" {
		t.Error("Move() must not touch fields other than status and position")
	}
}

func TestLeadRepositoryMoveMissing(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))

	if err := repo.Move("nope", models.LeadStatusLost, 0); err == nil {
		t.Error("Move() should fail for missing lead")
	}
}

func TestLeadRepositoryUpdate(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))
	lead := createTestLead(t, repo, "tenant-1", "Jane")

	lead.Name = "Jane Smith"
	lead.Notes = "called back"
	if err := repo.Update(lead); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(lead.ID)
	if got.Name != "Jane Smith" || got.Notes != "called back" {
		t.Errorf("Update() did not persist changes: %+v", got)
	}
}

func TestLeadRepositoryDelete(t *testing.T) {
	repo := NewLeadRepository(setupTestDB(t))
	lead := createTestLead(t, repo, "tenant-1", "Jane")

	if err := repo.Delete(lead.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, _ := repo.GetByID(lead.ID)
	if got != nil {
		t.Error("Delete() should remove the lead")
	}

	if err := repo.Delete(lead.ID); err == nil {
		t.Error("Delete() should fail for missing lead")
	}
}
