package database

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// createTestDB creates a temporary SQLite database for testing
func createTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// setupTest swaps the package-level DB for a fresh test database.
func setupTest(t *testing.T) {
	t.Helper()

	old := DB
	DB = createTestDB(t)
	t.Cleanup(func() { DB = old })
}

func testResume(t *testing.T, name, email string, updatedAt time.Time) *models.ResumeData {
	t.Helper()

	resume := models.NewResume(updatedAt)
	resume.ContactInfo.Name = name
	resume.ContactInfo.Email = email
	resume.UpdatedAt = updatedAt.UTC().Format(time.RFC3339Nano)
	return resume
}

func TestSaveAndGetResume(t *testing.T) {
	setupTest(t)

	resume := testResume(t, "Ada Lovelace", "ada@example.com", time.Now())
	resume.Skills = append(resume.Skills, models.Skill{
		ID: "s1", Name: "Go", Level: 90, Category: models.SkillCategoryTechnical,
	})

	if err := SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() error = %v", err)
	}

	got, err := GetResume(resume.ID)
	if err != nil {
		t.Fatalf("GetResume() error = %v", err)
	}
	if got.ContactInfo.Name != "Ada Lovelace" {
		t.Errorf("loaded name = %q, want %q", got.ContactInfo.Name, "Ada Lovelace")
	}
	if len(got.Skills) != 1 || got.Skills[0].Name != "Go" {
		t.Errorf("loaded skills = %+v, want the saved skill", got.Skills)
	}
	if got.UpdatedAt != resume.UpdatedAt {
		t.Errorf("loaded UpdatedAt = %q, want %q", got.UpdatedAt, resume.UpdatedAt)
	}
}

func TestSaveResumeReplacesExisting(t *testing.T) {
	setupTest(t)

	resume := testResume(t, "Before", "before@example.com", time.Now())
	if err := SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() error = %v", err)
	}

	resume.ContactInfo.Name = "After"
	if err := SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() second write error = %v", err)
	}

	all, err := GetAllResumes()
	if err != nil {
		t.Fatalf("GetAllResumes() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d resumes after replace, want 1", len(all))
	}
	if all[0].ContactInfo.Name != "After" {
		t.Errorf("name = %q, want %q", all[0].ContactInfo.Name, "After")
	}
}

func TestGetResumeNotFound(t *testing.T) {
	setupTest(t)

	_, err := GetResume("missing")
	if !errors.Is(err, app.ErrNotFound) {
		t.Errorf("GetResume() error = %v, want app.ErrNotFound", err)
	}
}

func TestGetAllResumesOrderedByUpdatedAt(t *testing.T) {
	setupTest(t)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	oldest := testResume(t, "Oldest", "a@example.com", base)
	middle := testResume(t, "Middle", "b@example.com", base.Add(time.Hour))
	newest := testResume(t, "Newest", "c@example.com", base.Add(2*time.Hour))

	for _, r := range []*models.ResumeData{middle, newest, oldest} {
		if err := SaveResume(r); err != nil {
			t.Fatalf("SaveResume() error = %v", err)
		}
	}

	all, err := GetAllResumes()
	if err != nil {
		t.Fatalf("GetAllResumes() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d resumes, want 3", len(all))
	}
	wantOrder := []string{"Newest", "Middle", "Oldest"}
	for i, want := range wantOrder {
		if all[i].ContactInfo.Name != want {
			t.Errorf("position %d = %q, want %q", i, all[i].ContactInfo.Name, want)
		}
	}
}

func TestDeleteResume(t *testing.T) {
	setupTest(t)

	resume := testResume(t, "Ephemeral", "e@example.com", time.Now())
	if err := SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() error = %v", err)
	}

	if err := DeleteResume(resume.ID); err != nil {
		t.Fatalf("DeleteResume() error = %v", err)
	}
	if _, err := GetResume(resume.ID); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("GetResume() after delete error = %v, want app.ErrNotFound", err)
	}

	// Deleting an id that is already gone is not an error.
	if err := DeleteResume(resume.ID); err != nil {
		t.Errorf("DeleteResume() repeated error = %v", err)
	}
}

func TestSearchResumes(t *testing.T) {
	setupTest(t)

	now := time.Now()
	ada := testResume(t, "Ada Lovelace", "ada@analytical.org", now)
	grace := testResume(t, "Grace Hopper", "grace@navy.mil", now.Add(time.Minute))
	for _, r := range []*models.ResumeData{ada, grace} {
		if err := SaveResume(r); err != nil {
			t.Fatalf("SaveResume() error = %v", err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"match name case-insensitively", "LOVELACE", []string{"Ada Lovelace"}},
		{"match email", "navy", []string{"Grace Hopper"}},
		{"match all", "a", []string{"Grace Hopper", "Ada Lovelace"}},
		{"no match", "babbage", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchResumes(tt.query)
			if err != nil {
				t.Fatalf("SearchResumes(%q) error = %v", tt.query, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SearchResumes(%q) returned %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].ContactInfo.Name != want {
					t.Errorf("result %d = %q, want %q", i, got[i].ContactInfo.Name, want)
				}
			}
		})
	}
}

func TestCloseWithoutInitialize(t *testing.T) {
	old := DB
	DB = nil
	t.Cleanup(func() { DB = old })

	// Close runs unconditionally on CLI exit, including before the
	// database was ever opened.
	if err := Close(); err != nil {
		t.Errorf("Close() with no database error = %v", err)
	}
}

func TestInitializeCreatesDatabase(t *testing.T) {
	old := DB
	t.Cleanup(func() { DB = old })

	dataDir := filepath.Join(t.TempDir(), "data")
	if err := Initialize(dataDir); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	resume := testResume(t, "Init", "init@example.com", time.Now())
	if err := SaveResume(resume); err != nil {
		t.Errorf("SaveResume() against initialized database error = %v", err)
	}
}
