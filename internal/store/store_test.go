package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/sumanthj/resumeforge/pkg/models"
)

// testClock hands out strictly increasing times so timestamp bumps are
// observable.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore() (*Store, *testClock) {
	clock := &testClock{t: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(clock.now), clock
}

func TestCreateNewResume(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()

	r := st.Snapshot()
	if r == nil {
		t.Fatal("no resume after CreateNewResume")
	}
	if r.ID == "" || r.ContactInfo.ID == "" {
		t.Error("ids not assigned")
	}
	if r.ContactInfo.Name != "" {
		t.Errorf("contact name = %q, want empty", r.ContactInfo.Name)
	}
	if len(r.Experiences) != 0 || len(r.Projects) != 0 || len(r.Skills) != 0 ||
		len(r.Education) != 0 || len(r.Awards) != 0 {
		t.Error("collections not empty on new resume")
	}
	if r.CreatedAt != r.UpdatedAt {
		t.Errorf("createdAt %q != updatedAt %q on new resume", r.CreatedAt, r.UpdatedAt)
	}
}

func TestMutationsAreNoOpsWithoutResume(t *testing.T) {
	st, _ := newTestStore()

	// None of these may panic or create a resume.
	st.UpdateContactInfo(models.ContactInfoPatch{})
	st.UpdateSettings(models.SettingsPatch{})
	st.AddExperience(models.Experience{Company: "Acme"})
	st.UpdateExperience(models.Experience{ID: "missing"})
	st.DeleteExperience("missing")
	st.ReorderExperience("missing", DirectionUp)
	st.AddSkill(models.Skill{Name: "Go"})

	if st.HasResume() {
		t.Error("mutations created a resume")
	}
}

func TestUpdatedAtBumpsOnEveryContentMutation(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()

	expID := st.AddExperience(models.Experience{Company: "Acme", Position: "Eng"})
	projID := st.AddProject(models.Project{Title: "Tool"})
	skillID := st.AddSkill(models.Skill{Name: "Go", Level: 90, Category: models.SkillCategoryTechnical})
	eduID := st.AddEducation(models.Education{Institution: "MIT"})
	awardID := st.AddAward(models.Award{Title: "Prize"})
	st.AddExperience(models.Experience{Company: "Beta"})

	mutations := []struct {
		name string
		op   func()
	}{
		{"updateContactInfo", func() {
			name := "Ada"
			st.UpdateContactInfo(models.ContactInfoPatch{Name: &name})
		}},
		{"updateSettings", func() {
			tmpl := models.TemplateClassic
			st.UpdateSettings(models.SettingsPatch{Template: &tmpl})
		}},
		{"updateExperience", func() {
			st.UpdateExperience(models.Experience{ID: expID, Company: "Acme", Position: "Sr Eng"})
		}},
		{"reorderExperience", func() { st.ReorderExperience(expID, DirectionDown) }},
		{"updateProject", func() { st.UpdateProject(models.Project{ID: projID, Title: "Tool v2"}) }},
		{"updateSkill", func() { st.UpdateSkill(models.Skill{ID: skillID, Name: "Go", Level: 95}) }},
		{"updateEducation", func() { st.UpdateEducation(models.Education{ID: eduID, Institution: "MIT", Degree: "BSc"}) }},
		{"updateAward", func() { st.UpdateAward(models.Award{ID: awardID, Title: "Prize", Issuer: "ACM"}) }},
		{"deleteAward", func() { st.DeleteAward(awardID) }},
		{"deleteSkill", func() { st.DeleteSkill(skillID) }},
		{"deleteProject", func() { st.DeleteProject(projID) }},
		{"deleteExperience", func() { st.DeleteExperience(expID) }},
	}

	for _, m := range mutations {
		before := st.Snapshot().UpdatedAt
		m.op()
		after := st.Snapshot().UpdatedAt
		if after <= before {
			t.Errorf("%s: updatedAt %q did not advance past %q", m.name, after, before)
		}
	}
}

func TestUpdateUnknownIDIsStrictNoOp(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	st.AddSkill(models.Skill{Name: "Go", Level: 90, Category: models.SkillCategoryTechnical})

	before := st.Snapshot()
	st.UpdateSkill(models.Skill{ID: "no-such-id", Name: "Rust", Level: 10})
	after := st.Snapshot()

	if !reflect.DeepEqual(before.Skills, after.Skills) {
		t.Errorf("skills changed on unknown-id update: %+v -> %+v", before.Skills, after.Skills)
	}
	if before.UpdatedAt != after.UpdatedAt {
		t.Errorf("updatedAt bumped on no-op update: %q -> %q", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestUpdateUnknownIDDoesNotAppend(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()

	st.UpdateExperience(models.Experience{ID: "ghost", Company: "Nowhere"})
	if n := len(st.Snapshot().Experiences); n != 0 {
		t.Errorf("unknown-id update appended, len = %d", n)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	id := st.AddExperience(models.Experience{Company: "Acme"})
	st.AddExperience(models.Experience{Company: "Beta"})

	st.DeleteExperience(id)
	first := st.Snapshot()
	if len(first.Experiences) != 1 {
		t.Fatalf("len = %d after delete, want 1", len(first.Experiences))
	}

	st.DeleteExperience(id)
	second := st.Snapshot()
	if !reflect.DeepEqual(first.Experiences, second.Experiences) {
		t.Error("second delete changed the collection")
	}
	if first.UpdatedAt != second.UpdatedAt {
		t.Error("second delete bumped updatedAt")
	}
}

func TestReorderExperience(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	a := st.AddExperience(models.Experience{Company: "A"})
	b := st.AddExperience(models.Experience{Company: "B"})
	c := st.AddExperience(models.Experience{Company: "C"})

	st.ReorderExperience(b, DirectionUp)
	got := companies(st)
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after move up: %v, want %v", got, want)
	}

	st.ReorderExperience(a, DirectionDown)
	got = companies(st)
	want = []string{"B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after move down: %v, want %v", got, want)
	}

	_ = c
}

func TestReorderAtBoundsIsNoOp(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	first := st.AddExperience(models.Experience{Company: "First"})
	last := st.AddExperience(models.Experience{Company: "Last"})

	tests := []struct {
		name      string
		id        string
		direction string
	}{
		{"first up", first, DirectionUp},
		{"last down", last, DirectionDown},
		{"unknown id", "ghost", DirectionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := st.Snapshot()
			st.ReorderExperience(tt.id, tt.direction)
			after := st.Snapshot()
			if !reflect.DeepEqual(before.Experiences, after.Experiences) {
				t.Error("order changed")
			}
			if before.UpdatedAt != after.UpdatedAt {
				t.Error("updatedAt bumped on no-op reorder")
			}
		})
	}
}

func TestReorderSingleElement(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	id := st.AddExperience(models.Experience{
		Company:          "Acme",
		Position:         "Eng",
		StartDate:        "Jan 2020",
		Current:          true,
		Responsibilities: []string{},
	})

	before := st.Snapshot()
	st.ReorderExperience(id, DirectionUp)
	after := st.Snapshot()

	if !reflect.DeepEqual(before.Experiences, after.Experiences) {
		t.Error("single-element reorder changed the list")
	}
}

func TestUpdateContactInfoPartialMerge(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()

	name := "Ada Lovelace"
	email := "ada@example.com"
	st.UpdateContactInfo(models.ContactInfoPatch{Name: &name, Email: &email})

	phone := "+44123"
	st.UpdateContactInfo(models.ContactInfoPatch{Phone: &phone})

	ci := st.Snapshot().ContactInfo
	if ci.Name != name || ci.Email != email || ci.Phone != phone {
		t.Errorf("merge lost fields: %+v", ci)
	}
}

func TestUpdateSettingsCreatesDefaultsThenMerges(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()

	if st.Snapshot().Settings != nil {
		t.Fatal("new resume should have no settings")
	}

	hide := false
	st.UpdateSettings(models.SettingsPatch{
		SectionVisibility: &models.SectionVisibilityPatch{Awards: &hide},
	})

	settings := st.Snapshot().Settings
	if settings == nil {
		t.Fatal("settings not created")
	}
	if settings.Template != models.TemplateModern {
		t.Errorf("template = %q, want default modern", settings.Template)
	}
	if settings.SectionVisibility.Awards {
		t.Error("awards still visible after patch")
	}
	if !settings.SectionVisibility.Experience {
		t.Error("nested merge clobbered untouched section")
	}
}

func TestSetResumeTrustsTimestamps(t *testing.T) {
	st, _ := newTestStore()
	loaded := models.NewResume(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	st.SetResume(loaded)
	if got := st.Snapshot().UpdatedAt; got != loaded.UpdatedAt {
		t.Errorf("updatedAt = %q, want loaded %q", got, loaded.UpdatedAt)
	}
}

func TestSetEditingDoesNotTouchUpdatedAt(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	before := st.Snapshot().UpdatedAt

	st.SetEditing(EditState{IsEditing: true, EditingSection: "contact", EditingItemID: "x"})
	if got := st.Snapshot().UpdatedAt; got != before {
		t.Errorf("updatedAt changed on SetEditing: %q -> %q", before, got)
	}

	edit := st.Editing()
	if !edit.IsEditing || edit.EditingSection != "contact" || edit.EditingItemID != "x" {
		t.Errorf("edit state = %+v", edit)
	}

	st.SetEditing(EditState{})
	if edit := st.Editing(); edit.IsEditing || edit.EditingSection != "" || edit.EditingItemID != "" {
		t.Errorf("edit state not reset: %+v", edit)
	}
}

func TestSnapshotIsIsolatedFromLiveResume(t *testing.T) {
	st, _ := newTestStore()
	st.CreateNewResume()
	st.AddExperience(models.Experience{Company: "Acme", Responsibilities: []string{"ship"}})

	snap := st.Snapshot()
	snap.Experiences[0].Company = "Mutated"
	snap.Experiences[0].Responsibilities[0] = "mutated"

	live := st.Snapshot()
	if live.Experiences[0].Company != "Acme" || live.Experiences[0].Responsibilities[0] != "ship" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func companies(st *Store) []string {
	out := []string{}
	for _, exp := range st.Snapshot().Experiences {
		out = append(out, exp.Company)
	}
	return out
}
