package render

// Creative is a colorful layout with a tinted header band and rounded
// section cards.
type Creative struct{}

func (Creative) ID() string { return "creative" }

func (Creative) Style() Style {
	return Style{
		FontFamily:      "'Poppins', 'Segoe UI', sans-serif",
		HeadingFont:     "'Poppins', sans-serif",
		BaseFontSizePt:  10,
		AccentColor:     "#7c3aed",
		TextColor:       "#312e81",
		Background:      "#faf5ff",
		HeaderAlign:     "left",
		SectionDivider:  "none",
		UppercaseTitles: false,
		SkillColumns:    2,
	}
}

func (Creative) CSS() string {
	return `
.resume { padding: 0 0 32px; background: #faf5ff; }
.header { background: linear-gradient(120deg, #7c3aed, #c026d3); color: #ffffff; padding: 36px 44px; border-radius: 0 0 24px 24px; }
.header .name { font-size: 25pt; font-weight: 700; }
.header .contact { opacity: 0.9; margin-top: 6px; }
.header .links a { color: #f5d0fe; text-decoration: none; margin-right: 12px; }
.section { background: #ffffff; border-radius: 12px; margin: 14px 36px 0; padding: 14px 18px; box-shadow: 0 1px 3px rgba(124, 58, 237, 0.15); }
.section-title { color: #7c3aed; font-weight: 600; margin-bottom: 8px; }
.entry { margin-bottom: 10px; }
.entry .heading { font-weight: 600; color: #4c1d95; }
.entry .daterange, .entry .meta { color: #8b5cf6; font-size: 9pt; }
.skill .level { color: #c026d3; }
.project .tech { color: #8b5cf6; font-size: 9pt; }
`
}
