package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/display"
	"github.com/sumanthj/resumeforge/internal/store"
	"github.com/sumanthj/resumeforge/pkg/models"
)

var editCmd = &cobra.Command{
	Use:   "edit <resume-id>",
	Short: "Edit a resume interactively",
	Long:  "Open an interactive editing session with periodic background autosave",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := database.GetResume(args[0])
		if errors.Is(err, app.ErrNotFound) {
			fmt.Println("Resume not found. See 'resumeforge list' for available resumes.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load resume: %w", err)
		}

		st := store.New()
		st.SetResume(resume)

		interval := 30 * time.Second
		if application := app.GetAppFromContext(cmd.Context()); application != nil &&
			application.Config != nil && application.Config.AutosaveInterval > 0 {
			interval = application.Config.AutosaveInterval
		}

		session := &editSession{
			store:  st,
			reader: bufio.NewReader(os.Stdin),
		}
		stop := session.startAutosave(interval)
		defer stop()

		session.run()

		// Final save so quitting never loses work.
		if snap := st.Snapshot(); snap != nil {
			if err := database.SaveResume(snap); err != nil {
				return fmt.Errorf("save resume: %w", err)
			}
		}
		fmt.Println("✓ Resume saved")
		return nil
	},
}

type editSession struct {
	store  *store.Store
	reader *bufio.Reader

	// inPreview suppresses autosave while the preview is on screen.
	inPreview atomic.Bool
}

// startAutosave runs the save path on a timer, reading the live store at
// fire time. Notifications are suppressed; failures surface on the next
// manual save. The returned func stops the timer.
func (s *editSession) startAutosave(interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if s.inPreview.Load() {
					continue
				}
				if snap := s.store.Snapshot(); snap != nil {
					_ = database.SaveResume(snap)
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func (s *editSession) run() {
	for {
		snap := s.store.Snapshot()
		name := snap.ContactInfo.Name
		if name == "" {
			name = "(unnamed resume)"
		}
		fmt.Println(titleStyle.Render("Editing: " + name))
		fmt.Println("  [c] contact info   [e] experiences  [p] projects")
		fmt.Println("  [k] skills         [d] education    [a] awards")
		fmt.Println("  [t] settings       [v] preview      [s] save")
		fmt.Println("  [q] save and quit")

		switch s.prompt("> ") {
		case "c":
			s.editContact()
		case "e":
			s.editExperiences()
		case "p":
			s.editProjects()
		case "k":
			s.editSkills()
		case "d":
			s.editEducation()
		case "a":
			s.editAwards()
		case "t":
			s.editSettings()
		case "v":
			s.preview()
		case "s":
			if snap := s.store.Snapshot(); snap != nil {
				if err := database.SaveResume(snap); err != nil {
					fmt.Println(errorStyle.Render("Save failed: " + err.Error()))
				} else {
					fmt.Println("✓ Saved")
				}
			}
		case "q":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) preview() {
	s.inPreview.Store(true)
	defer s.inPreview.Store(false)

	fmt.Print(display.RenderTerminal(s.store.Snapshot()))
	s.prompt("\n[enter] back ")
}

func (s *editSession) editContact() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "contact"})
	defer s.store.SetEditing(store.EditState{})

	snap := s.store.Snapshot()
	fmt.Println(titleStyle.Render("Contact Info"))
	fmt.Println("Press enter to keep the current value.")

	patch := models.ContactInfoPatch{
		Name:     s.promptPatch("Name", snap.ContactInfo.Name),
		Phone:    s.promptPatch("Phone", snap.ContactInfo.Phone),
		Email:    s.promptPatch("Email", snap.ContactInfo.Email),
		LinkedIn: s.promptPatch("LinkedIn", snap.ContactInfo.LinkedIn),
		Tagline:  s.promptPatch("Tagline", snap.ContactInfo.Tagline),
	}
	s.store.UpdateContactInfo(patch)
}

func (s *editSession) editExperiences() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "experience"})
	defer s.store.SetEditing(store.EditState{})

	for {
		snap := s.store.Snapshot()
		fmt.Println(titleStyle.Render("Experiences"))
		for i, exp := range snap.Experiences {
			fmt.Println(experienceLine(i, exp))
		}
		fmt.Println("  [a] add  [u N] update  [d N] delete  [m N up|down] move  [b] back")

		cmd, idx, arg := s.promptEntityAction(len(snap.Experiences))
		switch cmd {
		case "a":
			exp := s.promptExperience(models.Experience{})
			s.store.AddExperience(exp)
		case "u":
			exp := s.promptExperience(snap.Experiences[idx])
			exp.ID = snap.Experiences[idx].ID
			s.store.UpdateExperience(exp)
		case "d":
			s.store.DeleteExperience(snap.Experiences[idx].ID)
		case "m":
			s.store.ReorderExperience(snap.Experiences[idx].ID, arg)
		case "b":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) promptExperience(cur models.Experience) models.Experience {
	exp := models.Experience{
		Company:     s.promptDefault("Company", cur.Company),
		Location:    s.promptDefault("Location (optional)", cur.Location),
		Position:    s.promptDefault("Position", cur.Position),
		StartDate:   s.promptDefault("Start date", cur.StartDate),
		Current:     s.promptBool("Current role?", cur.Current),
		Description: s.promptDefault("Description", cur.Description),
	}
	if !exp.Current {
		exp.EndDate = s.promptDefault("End date", cur.EndDate)
	}
	exp.Responsibilities = s.promptList("Responsibilities", cur.Responsibilities)
	return exp
}

func (s *editSession) editProjects() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "projects"})
	defer s.store.SetEditing(store.EditState{})

	for {
		snap := s.store.Snapshot()
		fmt.Println(titleStyle.Render("Projects"))
		for i, proj := range snap.Projects {
			fmt.Printf("%d. %s\n", i+1, proj.Title)
		}
		fmt.Println("  [a] add  [u N] update  [d N] delete  [b] back")

		cmd, idx, _ := s.promptEntityAction(len(snap.Projects))
		switch cmd {
		case "a":
			s.store.AddProject(s.promptProject(models.Project{}))
		case "u":
			proj := s.promptProject(snap.Projects[idx])
			proj.ID = snap.Projects[idx].ID
			s.store.UpdateProject(proj)
		case "d":
			s.store.DeleteProject(snap.Projects[idx].ID)
		case "b":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) promptProject(cur models.Project) models.Project {
	return models.Project{
		Title:       s.promptDefault("Title", cur.Title),
		Subtitle:    s.promptDefault("Subtitle", cur.Subtitle),
		Description: s.promptDefault("Description", cur.Description),
		// Company is a free-form tag; it is not checked against experiences.
		Company:          s.promptDefault("Company tag (optional)", cur.Company),
		Responsibilities: s.promptList("Responsibilities", cur.Responsibilities),
		Technologies:     s.promptList("Technologies", cur.Technologies),
	}
}

func (s *editSession) editSkills() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "skills"})
	defer s.store.SetEditing(store.EditState{})

	for {
		snap := s.store.Snapshot()
		fmt.Println(titleStyle.Render("Skills"))
		for i, skill := range snap.Skills {
			fmt.Printf("%d. %s (%s, %d%%)\n", i+1, skill.Name, skill.Category, skill.Level)
		}
		fmt.Println("  [a] add  [u N] update  [d N] delete  [b] back")

		cmd, idx, _ := s.promptEntityAction(len(snap.Skills))
		switch cmd {
		case "a":
			s.store.AddSkill(s.promptSkill(models.Skill{Category: models.SkillCategoryTechnical}))
		case "u":
			skill := s.promptSkill(snap.Skills[idx])
			skill.ID = snap.Skills[idx].ID
			s.store.UpdateSkill(skill)
		case "d":
			s.store.DeleteSkill(snap.Skills[idx].ID)
		case "b":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) promptSkill(cur models.Skill) models.Skill {
	skill := models.Skill{
		Name:  s.promptDefault("Name", cur.Name),
		Level: s.promptInt("Level (0-100)", cur.Level),
	}
	category := s.promptDefault("Category (technical/additional)", cur.Category)
	if category != models.SkillCategoryAdditional {
		category = models.SkillCategoryTechnical
	}
	skill.Category = category
	if skill.Level < 0 {
		skill.Level = 0
	}
	if skill.Level > 100 {
		skill.Level = 100
	}
	return skill
}

func (s *editSession) editEducation() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "education"})
	defer s.store.SetEditing(store.EditState{})

	for {
		snap := s.store.Snapshot()
		fmt.Println(titleStyle.Render("Education"))
		for i, edu := range snap.Education {
			fmt.Println(educationLine(i, edu))
		}
		fmt.Println("  [a] add  [u N] update  [d N] delete  [b] back")

		cmd, idx, _ := s.promptEntityAction(len(snap.Education))
		switch cmd {
		case "a":
			s.store.AddEducation(s.promptEducation(models.Education{}))
		case "u":
			edu := s.promptEducation(snap.Education[idx])
			edu.ID = snap.Education[idx].ID
			s.store.UpdateEducation(edu)
		case "d":
			s.store.DeleteEducation(snap.Education[idx].ID)
		case "b":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) promptEducation(cur models.Education) models.Education {
	return models.Education{
		Institution: s.promptDefault("Institution", cur.Institution),
		Degree:      s.promptDefault("Degree", cur.Degree),
		Location:    s.promptDefault("Location", cur.Location),
		StartDate:   s.promptDefault("Start date", cur.StartDate),
		EndDate:     s.promptDefault("End date", cur.EndDate),
		Description: s.promptDefault("Description", cur.Description),
	}
}

func (s *editSession) editAwards() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "awards"})
	defer s.store.SetEditing(store.EditState{})

	for {
		snap := s.store.Snapshot()
		fmt.Println(titleStyle.Render("Awards & Certifications"))
		for i, award := range snap.Awards {
			fmt.Println(awardLine(i, award))
		}
		fmt.Println("  [a] add  [u N] update  [d N] delete  [b] back")

		cmd, idx, _ := s.promptEntityAction(len(snap.Awards))
		switch cmd {
		case "a":
			s.store.AddAward(s.promptAward(models.Award{}))
		case "u":
			award := s.promptAward(snap.Awards[idx])
			award.ID = snap.Awards[idx].ID
			s.store.UpdateAward(award)
		case "d":
			s.store.DeleteAward(snap.Awards[idx].ID)
		case "b":
			return
		default:
			fmt.Println("Invalid selection")
		}
	}
}

func (s *editSession) promptAward(cur models.Award) models.Award {
	return models.Award{
		Title:       s.promptDefault("Title", cur.Title),
		Issuer:      s.promptDefault("Issuer", cur.Issuer),
		Date:        s.promptDefault("Date", cur.Date),
		Description: s.promptDefault("Description", cur.Description),
	}
}

func (s *editSession) editSettings() {
	s.store.SetEditing(store.EditState{IsEditing: true, EditingSection: "settings"})
	defer s.store.SetEditing(store.EditState{})

	snap := s.store.Snapshot()
	settings := snap.EffectiveSettings()
	fmt.Println(titleStyle.Render("Settings"))
	fmt.Println("Press enter to keep the current value.")

	patch := models.SettingsPatch{
		Template:      s.promptPatch("Template (modern/classic/executive)", settings.Template),
		ThemeColor:    s.promptPatch("Theme color", settings.ThemeColor),
		FontFamily:    s.promptPatch("Font family", settings.FontFamily),
		TextAlignment: s.promptPatch("Text alignment (left/justify)", settings.TextAlignment),
		SectionVisibility: &models.SectionVisibilityPatch{
			Experience: s.promptBoolPatch("Show experience?", settings.SectionVisibility.Experience),
			Projects:   s.promptBoolPatch("Show projects?", settings.SectionVisibility.Projects),
			Skills:     s.promptBoolPatch("Show skills?", settings.SectionVisibility.Skills),
			Education:  s.promptBoolPatch("Show education?", settings.SectionVisibility.Education),
			Awards:     s.promptBoolPatch("Show awards?", settings.SectionVisibility.Awards),
		},
	}
	s.store.UpdateSettings(patch)
}

// listing lines, plain ASCII

func experienceLine(i int, exp models.Experience) string {
	end := exp.EndDate
	if exp.Current {
		end = "Present"
	}
	return fmt.Sprintf("%d. %s - %s (%s - %s)", i+1, exp.Position, exp.Company, exp.StartDate, end)
}

func educationLine(i int, edu models.Education) string {
	return fmt.Sprintf("%d. %s - %s", i+1, edu.Degree, edu.Institution)
}

func awardLine(i int, award models.Award) string {
	return fmt.Sprintf("%d. %s - %s", i+1, award.Title, award.Issuer)
}

// prompt helpers

func (s *editSession) prompt(label string) string {
	fmt.Print(labelStyle.Render(label))
	line, _ := s.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptDefault returns the entered value, or the current one on blank input.
func (s *editSession) promptDefault(label, current string) string {
	suffix := ": "
	if current != "" {
		suffix = fmt.Sprintf(" [%s]: ", current)
	}
	if in := s.prompt(label + suffix); in != "" {
		return in
	}
	return current
}

// promptPatch returns nil on blank input so the field stays untouched.
func (s *editSession) promptPatch(label, current string) *string {
	suffix := ": "
	if current != "" {
		suffix = fmt.Sprintf(" [%s]: ", current)
	}
	if in := s.prompt(label + suffix); in != "" {
		return &in
	}
	return nil
}

func (s *editSession) promptBool(label string, current bool) bool {
	cur := "y"
	if !current {
		cur = "n"
	}
	switch strings.ToLower(s.prompt(fmt.Sprintf("%s (y/n) [%s]: ", label, cur))) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

func (s *editSession) promptBoolPatch(label string, current bool) *bool {
	cur := "y"
	if !current {
		cur = "n"
	}
	switch strings.ToLower(s.prompt(fmt.Sprintf("%s (y/n) [%s]: ", label, cur))) {
	case "y", "yes":
		v := true
		return &v
	case "n", "no":
		v := false
		return &v
	default:
		return nil
	}
}

func (s *editSession) promptInt(label string, current int) int {
	in := s.prompt(fmt.Sprintf("%s [%d]: ", label, current))
	if in == "" {
		return current
	}
	n, err := strconv.Atoi(in)
	if err != nil {
		fmt.Println("Not a number, keeping current value")
		return current
	}
	return n
}

// promptList collects one entry per line until a blank line. Blank and
// whitespace-only entries never reach the store.
func (s *editSession) promptList(label string, current []string) []string {
	fmt.Printf("%s (one per line, blank line to finish", label)
	if len(current) > 0 {
		fmt.Printf("; blank immediately to keep %d current entries", len(current))
	}
	fmt.Println("):")

	entries := []string{}
	for {
		line, _ := s.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		entries = append(entries, line)
	}
	if len(entries) == 0 {
		return cleanList(current)
	}
	return entries
}

// cleanList drops blank and whitespace-only entries.
func cleanList(entries []string) []string {
	out := []string{}
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, strings.TrimSpace(e))
		}
	}
	return out
}

// promptEntityAction parses "a", "b", "u N", "d N" or "m N up|down",
// returning the action, a zero-based index and the optional direction.
func (s *editSession) promptEntityAction(n int) (string, int, string) {
	fields := strings.Fields(s.prompt("> "))
	if len(fields) == 0 {
		return "", 0, ""
	}
	cmd := strings.ToLower(fields[0])
	if cmd == "a" || cmd == "b" {
		return cmd, 0, ""
	}
	if len(fields) < 2 {
		return "", 0, ""
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil || idx < 1 || idx > n {
		return "", 0, ""
	}
	dir := ""
	if len(fields) > 2 {
		dir = strings.ToLower(fields[2])
		if dir != store.DirectionUp && dir != store.DirectionDown {
			return "", 0, ""
		}
	}
	if cmd == "m" && dir == "" {
		return "", 0, ""
	}
	return cmd, idx - 1, dir
}

func init() {
	rootCmd.AddCommand(editCmd)
}
