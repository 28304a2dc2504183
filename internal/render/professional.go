package render

// Professional is a conservative serif layout with a centered header,
// suited to corporate applications.
type Professional struct{}

func (Professional) ID() string { return "professional" }

func (Professional) Style() Style {
	return Style{
		FontFamily:      "'Georgia', 'Times New Roman', serif",
		BaseFontSizePt:  11,
		AccentColor:     "#111827",
		TextColor:       "#111827",
		Background:      "#ffffff",
		HeaderAlign:     "center",
		SectionDivider:  "double-rule",
		UppercaseTitles: true,
		SkillColumns:    3,
	}
}

func (Professional) CSS() string {
	return `
.resume { padding: 48px 56px; }
.header { text-align: center; border-bottom: 1px solid #111827; padding-bottom: 14px; margin-bottom: 18px; }
.header .name { font-size: 24pt; font-variant: small-caps; letter-spacing: 1px; }
.header .contact { margin-top: 4px; }
.header .links a { color: #111827; text-decoration: underline; margin: 0 6px; }
.section-title { text-transform: uppercase; letter-spacing: 2px; font-size: 11pt; border-bottom: 1px solid #d1d5db; padding-bottom: 2px; margin: 16px 0 8px; }
.entry { margin-bottom: 10px; }
.entry .heading { font-weight: 700; }
.entry .subheading { font-style: italic; }
.entry .daterange, .entry .meta { font-size: 9pt; }
.skill .level { font-style: italic; }
.project .tech { font-size: 9pt; }
`
}
