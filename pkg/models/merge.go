package models

// ContactInfoPatch is a partial contact-info update. Nil fields are left
// untouched by the merge; the id is never patched.
type ContactInfoPatch struct {
	Name     *string
	Phone    *string
	Email    *string
	LinkedIn *string
	Tagline  *string
}

// SettingsPatch is a partial settings update. Nil fields are left untouched;
// SectionVisibility merges per section.
type SettingsPatch struct {
	Template          *string
	ThemeColor        *string
	FontFamily        *string
	TextAlignment     *string
	SectionVisibility *SectionVisibilityPatch
}

// SectionVisibilityPatch toggles individual sections. Nil fields keep the
// current value.
type SectionVisibilityPatch struct {
	Experience *bool
	Projects   *bool
	Skills     *bool
	Education  *bool
	Awards     *bool
}

// MergeContactInfo applies the patch field by field onto dst.
func MergeContactInfo(dst *ContactInfo, patch ContactInfoPatch) {
	if patch.Name != nil {
		dst.Name = *patch.Name
	}
	if patch.Phone != nil {
		dst.Phone = *patch.Phone
	}
	if patch.Email != nil {
		dst.Email = *patch.Email
	}
	if patch.LinkedIn != nil {
		dst.LinkedIn = *patch.LinkedIn
	}
	if patch.Tagline != nil {
		dst.Tagline = *patch.Tagline
	}
}

// MergeSettings applies the patch field by field onto dst, including the
// nested section-visibility merge.
func MergeSettings(dst *ResumeSettings, patch SettingsPatch) {
	if patch.Template != nil {
		dst.Template = *patch.Template
	}
	if patch.ThemeColor != nil {
		dst.ThemeColor = *patch.ThemeColor
	}
	if patch.FontFamily != nil {
		dst.FontFamily = *patch.FontFamily
	}
	if patch.TextAlignment != nil {
		dst.TextAlignment = *patch.TextAlignment
	}
	if sv := patch.SectionVisibility; sv != nil {
		if dst.SectionVisibility == nil {
			visibility := AllSectionsVisible()
			dst.SectionVisibility = &visibility
		}
		if sv.Experience != nil {
			dst.SectionVisibility.Experience = *sv.Experience
		}
		if sv.Projects != nil {
			dst.SectionVisibility.Projects = *sv.Projects
		}
		if sv.Skills != nil {
			dst.SectionVisibility.Skills = *sv.Skills
		}
		if sv.Education != nil {
			dst.SectionVisibility.Education = *sv.Education
		}
		if sv.Awards != nil {
			dst.SectionVisibility.Awards = *sv.Awards
		}
	}
}

// Clone returns a deep copy of the resume. Exporters and autosave work
// against clones so in-flight edits never tear a snapshot.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}
	out := *r

	out.Experiences = make([]Experience, len(r.Experiences))
	for i, exp := range r.Experiences {
		exp.Responsibilities = append([]string(nil), exp.Responsibilities...)
		out.Experiences[i] = exp
	}

	out.Projects = make([]Project, len(r.Projects))
	for i, proj := range r.Projects {
		proj.Responsibilities = append([]string(nil), proj.Responsibilities...)
		proj.Technologies = append([]string(nil), proj.Technologies...)
		out.Projects[i] = proj
	}

	out.Skills = append([]Skill{}, r.Skills...)
	out.Education = append([]Education{}, r.Education...)
	out.Awards = append([]Award{}, r.Awards...)

	if r.Settings != nil {
		settings := *r.Settings
		if settings.SectionVisibility != nil {
			visibility := *settings.SectionVisibility
			settings.SectionVisibility = &visibility
		}
		out.Settings = &settings
	}
	return &out
}
