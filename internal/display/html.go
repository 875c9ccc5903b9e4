// Package display projects a resume snapshot into its two read-only views:
// an HTML page used for PDF capture and a styled terminal rendering.
package display

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/sumanthj/resumeforge/pkg/models"
)

// contentWidthPx is the fixed logical width of the rendered page, so PDF
// pagination does not depend on the environment the capture runs in.
const contentWidthPx = 800

// HTMLOptions control the HTML projection.
type HTMLOptions struct {
	// Title becomes the document title (the filename stem during PDF capture).
	Title string
	// PrintMode strips the preview banner and other editing affordances.
	PrintMode bool
}

type htmlContext struct {
	Resume     *models.ResumeData
	Settings   models.ResumeSettings
	Title      string
	PrintMode  bool
	Width      int
	Technical  []models.Skill
	Additional []models.Skill
}

// RenderHTML renders the resume into a standalone HTML page honoring the
// resume's presentation settings.
func RenderHTML(resume *models.ResumeData, opts HTMLOptions) (string, error) {
	settings := resume.EffectiveSettings()

	ctx := htmlContext{
		Resume:    resume,
		Settings:  settings,
		Title:     opts.Title,
		PrintMode: opts.PrintMode,
		Width:     contentWidthPx,
	}
	if ctx.Title == "" {
		ctx.Title = "Resume"
	}
	for _, s := range resume.Skills {
		if s.Category == models.SkillCategoryAdditional {
			ctx.Additional = append(ctx.Additional, s)
		} else {
			ctx.Technical = append(ctx.Technical, s)
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"endDate": func(exp models.Experience) string {
		if exp.Current {
			return "Present"
		}
		return exp.EndDate
	},
	"join": func(parts []string, sep string) string {
		return strings.Join(parts, sep)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; background: #fff; color: #16191f; font-family: {{.Settings.FontFamily}}; }
  .page { width: {{.Width}}px; margin: 0 auto; padding: 32px 40px; text-align: {{.Settings.TextAlignment}}; }
  .page.classic h1, .page.classic h2 { font-variant: small-caps; }
  .page.executive { letter-spacing: 0.02em; }
  h1 { margin: 0; font-size: 28px; color: {{.Settings.ThemeColor}}; }
  h2 { font-size: 16px; border-bottom: 2px solid {{.Settings.ThemeColor}}; padding-bottom: 2px; margin: 18px 0 8px; }
  h3 { font-size: 14px; margin: 10px 0 2px; }
  .tagline { font-style: italic; margin: 4px 0; }
  .contact { font-size: 12px; color: #545b64; margin-bottom: 8px; }
  .dates { font-style: italic; font-size: 12px; color: #545b64; }
  ul { margin: 4px 0; padding-left: 20px; }
  .bar { background: #eaeded; border-radius: 3px; height: 8px; width: 220px; display: inline-block; vertical-align: middle; }
  .bar span { background: {{.Settings.ThemeColor}}; border-radius: 3px; height: 8px; display: block; }
  .skill-name { display: inline-block; width: 160px; font-size: 12px; }
  .preview-banner { background: #fff7e0; border: 1px solid #e0b40a; padding: 6px 10px; font-size: 12px; margin-bottom: 12px; }
  @page { size: A4; margin: 12mm; }
</style>
</head>
<body>
<div id="resume-display" class="page {{.Settings.Template}}">
{{- if not .PrintMode}}
  <div class="preview-banner">Preview — editing affordances hidden on export</div>
{{- end}}
  <h1>{{if .Resume.ContactInfo.Name}}{{.Resume.ContactInfo.Name}}{{else}}Your Name{{end}}</h1>
{{- with .Resume.ContactInfo.Tagline}}
  <div class="tagline">{{.}}</div>
{{- end}}
  <div class="contact">
    {{- with .Resume.ContactInfo.Email}}{{.}}{{end}}
    {{- with .Resume.ContactInfo.Phone}} | {{.}}{{end}}
    {{- with .Resume.ContactInfo.LinkedIn}} | {{.}}{{end}}
  </div>

{{- if and .Settings.SectionVisibility.Experience .Resume.Experiences}}
  <h2>Experience</h2>
  {{- range .Resume.Experiences}}
  <h3>{{.Company}}{{with .Location}} | {{.}}{{end}}</h3>
  <div><strong>{{.Position}}</strong> <span class="dates">{{.StartDate}} – {{endDate .}}</span></div>
  {{- with .Description}}<p>{{.}}</p>{{end}}
  {{- if .Responsibilities}}
  <ul>
    {{- range .Responsibilities}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
  {{- end}}
  {{- end}}
{{- end}}

{{- if and .Settings.SectionVisibility.Projects .Resume.Projects}}
  <h2>Projects</h2>
  {{- range .Resume.Projects}}
  <h3>{{.Title}}{{with .Company}} (@ {{.}}){{end}}</h3>
  {{- with .Subtitle}}<div class="tagline">{{.}}</div>{{end}}
  {{- with .Description}}<p>{{.}}</p>{{end}}
  {{- if .Responsibilities}}
  <ul>
    {{- range .Responsibilities}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
  {{- end}}
  {{- with .Technologies}}<div class="dates">Technologies: {{join . ", "}}</div>{{end}}
  {{- end}}
{{- end}}

{{- if and .Settings.SectionVisibility.Skills .Resume.Skills}}
  <h2>Skills</h2>
  {{- range .Technical}}
  <div><span class="skill-name">{{.Name}}</span><span class="bar"><span style="width: {{.Level}}%"></span></span></div>
  {{- end}}
  {{- if .Additional}}
  <ul>
    {{- range .Additional}}
    <li>{{.Name}}</li>
    {{- end}}
  </ul>
  {{- end}}
{{- end}}

{{- if and .Settings.SectionVisibility.Education .Resume.Education}}
  <h2>Education</h2>
  {{- range .Resume.Education}}
  <h3>{{.Institution}}{{with .Location}} | {{.}}{{end}}</h3>
  <div><strong>{{.Degree}}</strong> <span class="dates">{{.StartDate}} – {{.EndDate}}</span></div>
  {{- with .Description}}<p>{{.}}</p>{{end}}
  {{- end}}
{{- end}}

{{- if and .Settings.SectionVisibility.Awards .Resume.Awards}}
  <h2>Awards &amp; Certifications</h2>
  {{- range .Resume.Awards}}
  <h3>{{.Title}}</h3>
  <div><strong>{{.Issuer}}</strong> <span class="dates">{{.Date}}</span></div>
  {{- with .Description}}<p>{{.}}</p>{{end}}
  {{- end}}
{{- end}}
</div>
</body>
</html>
`))
