// Package store owns the single resume being edited in a session. Every
// content mutation goes through one of its operations; nothing else holds a
// mutable reference to the resume or its entities.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// Direction of a reorder operation.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// EditState is the transient UI-edit mode. It is session state, not resume
// content, and never touches the resume's timestamps.
type EditState struct {
	IsEditing      bool
	EditingSection string
	EditingItemID  string
}

// Store holds the current resume plus transient edit state. All operations
// are no-ops when no resume is loaded; update and delete operations on an
// unknown id are no-ops and deliberately leave UpdatedAt alone.
type Store struct {
	mu      sync.Mutex
	current *models.ResumeData
	edit    EditState

	now func() time.Time
}

// New returns an empty store with no resume loaded.
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock returns a store using the given clock, for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// touch refreshes UpdatedAt. Callers hold the mutex and have already
// verified that a content change actually happened.
func (s *Store) touch() {
	s.current.UpdatedAt = s.now().UTC().Format(time.RFC3339Nano)
}

// SetResume replaces the current resume wholesale, trusting its timestamps.
// Used after a load from the gateway.
func (s *Store) SetResume(r *models.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = r
}

// CreateNewResume allocates a fresh empty resume and makes it current.
func (s *Store) CreateNewResume() *models.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.NewResume(s.now())
	return s.current.Clone()
}

// Snapshot returns a deep copy of the current resume, or nil when none is
// loaded. Exporters and autosave consume snapshots, never the live resume.
func (s *Store) Snapshot() *models.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// HasResume reports whether a resume is loaded.
func (s *Store) HasResume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// UpdateContactInfo merges the patch into the current contact info.
func (s *Store) UpdateContactInfo(patch models.ContactInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	models.MergeContactInfo(&s.current.ContactInfo, patch)
	s.touch()
}

// UpdateSettings merges the patch into the settings, creating defaults first
// when the resume has none.
func (s *Store) UpdateSettings(patch models.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	if s.current.Settings == nil {
		defaults := models.DefaultSettings()
		s.current.Settings = &defaults
	}
	models.MergeSettings(s.current.Settings, patch)
	s.touch()
}

// AddExperience assigns a fresh id and appends. Returns the assigned id, or
// empty when no resume is loaded.
func (s *Store) AddExperience(exp models.Experience) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	exp.ID = uuid.NewString()
	s.current.Experiences = append(s.current.Experiences, exp)
	s.touch()
	return exp.ID
}

// UpdateExperience replaces the entry with the same id in place. Unknown
// ids are silent no-ops.
func (s *Store) UpdateExperience(exp models.Experience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Experiences {
		if s.current.Experiences[i].ID == exp.ID {
			s.current.Experiences[i] = exp
			s.touch()
			return
		}
	}
}

// DeleteExperience removes the entry with the given id, if present.
func (s *Store) DeleteExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Experiences {
		if s.current.Experiences[i].ID == id {
			s.current.Experiences = append(s.current.Experiences[:i], s.current.Experiences[i+1:]...)
			s.touch()
			return
		}
	}
}

// ReorderExperience swaps the experience with its neighbor in the given
// direction. Unknown ids and out-of-bounds moves are silent no-ops.
func (s *Store) ReorderExperience(id, direction string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	arr := s.current.Experiences
	idx := -1
	for i := range arr {
		if arr[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	target := idx + 1
	if direction == DirectionUp {
		target = idx - 1
	}
	if target < 0 || target >= len(arr) {
		return
	}
	arr[idx], arr[target] = arr[target], arr[idx]
	s.touch()
}

// AddProject assigns a fresh id and appends.
func (s *Store) AddProject(proj models.Project) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	proj.ID = uuid.NewString()
	s.current.Projects = append(s.current.Projects, proj)
	s.touch()
	return proj.ID
}

// UpdateProject replaces the entry with the same id in place.
func (s *Store) UpdateProject(proj models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Projects {
		if s.current.Projects[i].ID == proj.ID {
			s.current.Projects[i] = proj
			s.touch()
			return
		}
	}
}

// DeleteProject removes the entry with the given id, if present.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Projects {
		if s.current.Projects[i].ID == id {
			s.current.Projects = append(s.current.Projects[:i], s.current.Projects[i+1:]...)
			s.touch()
			return
		}
	}
}

// AddSkill assigns a fresh id and appends.
func (s *Store) AddSkill(skill models.Skill) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	skill.ID = uuid.NewString()
	s.current.Skills = append(s.current.Skills, skill)
	s.touch()
	return skill.ID
}

// UpdateSkill replaces the entry with the same id in place.
func (s *Store) UpdateSkill(skill models.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Skills {
		if s.current.Skills[i].ID == skill.ID {
			s.current.Skills[i] = skill
			s.touch()
			return
		}
	}
}

// DeleteSkill removes the entry with the given id, if present.
func (s *Store) DeleteSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Skills {
		if s.current.Skills[i].ID == id {
			s.current.Skills = append(s.current.Skills[:i], s.current.Skills[i+1:]...)
			s.touch()
			return
		}
	}
}

// AddEducation assigns a fresh id and appends.
func (s *Store) AddEducation(edu models.Education) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	edu.ID = uuid.NewString()
	s.current.Education = append(s.current.Education, edu)
	s.touch()
	return edu.ID
}

// UpdateEducation replaces the entry with the same id in place.
func (s *Store) UpdateEducation(edu models.Education) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Education {
		if s.current.Education[i].ID == edu.ID {
			s.current.Education[i] = edu
			s.touch()
			return
		}
	}
}

// DeleteEducation removes the entry with the given id, if present.
func (s *Store) DeleteEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Education {
		if s.current.Education[i].ID == id {
			s.current.Education = append(s.current.Education[:i], s.current.Education[i+1:]...)
			s.touch()
			return
		}
	}
}

// AddAward assigns a fresh id and appends.
func (s *Store) AddAward(award models.Award) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	award.ID = uuid.NewString()
	s.current.Awards = append(s.current.Awards, award)
	s.touch()
	return award.ID
}

// UpdateAward replaces the entry with the same id in place.
func (s *Store) UpdateAward(award models.Award) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Awards {
		if s.current.Awards[i].ID == award.ID {
			s.current.Awards[i] = award
			s.touch()
			return
		}
	}
}

// DeleteAward removes the entry with the given id, if present.
func (s *Store) DeleteAward(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	for i := range s.current.Awards {
		if s.current.Awards[i].ID == id {
			s.current.Awards = append(s.current.Awards[:i], s.current.Awards[i+1:]...)
			s.touch()
			return
		}
	}
}

// SetEditing sets the transient edit-mode fields atomically. Omitted section
// and item id reset to empty.
func (s *Store) SetEditing(state EditState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = state
}

// Editing returns the transient edit-mode state.
func (s *Store) Editing() EditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit
}
