package render

// Modern is the default layout: a left-aligned sans-serif design with a
// blue accent bar under the name.
type Modern struct{}

func (Modern) ID() string { return "modern" }

func (Modern) Style() Style {
	return Style{
		FontFamily:      "'Inter', 'Helvetica Neue', Arial, sans-serif",
		BaseFontSizePt:  10,
		AccentColor:     "#2563eb",
		TextColor:       "#1f2937",
		Background:      "#ffffff",
		HeaderAlign:     "left",
		SectionDivider:  "rule",
		UppercaseTitles: false,
		SkillColumns:    2,
	}
}

func (Modern) CSS() string {
	return `
.resume { padding: 40px 48px; }
.header { border-bottom: 3px solid #2563eb; padding-bottom: 16px; margin-bottom: 20px; }
.header .name { font-size: 26pt; font-weight: 700; letter-spacing: -0.5px; }
.header .contact { color: #6b7280; margin-top: 6px; }
.header .links a { color: #2563eb; text-decoration: none; margin-right: 12px; }
.section-title { color: #2563eb; font-size: 12pt; font-weight: 600; margin: 18px 0 8px; }
.entry { margin-bottom: 12px; }
.entry .heading { font-weight: 600; }
.entry .subheading { color: #374151; }
.entry .daterange, .entry .meta { color: #6b7280; font-size: 9pt; }
.skill .level { color: #2563eb; }
.project .tech { color: #6b7280; font-size: 9pt; }
`
}
