package render

// Executive is a formal dark-banner layout aimed at senior roles.
type Executive struct{}

func (Executive) ID() string { return "executive" }

func (Executive) Style() Style {
	return Style{
		FontFamily:      "'Cambria', Georgia, serif",
		HeadingFont:     "'Cambria', serif",
		BaseFontSizePt:  11,
		AccentColor:     "#b45309",
		TextColor:       "#1c1917",
		Background:      "#ffffff",
		HeaderAlign:     "center",
		SectionDivider:  "rule",
		UppercaseTitles: true,
		SkillColumns:    2,
	}
}

func (Executive) CSS() string {
	return `
.resume { padding: 0 0 40px; }
.header { background: #1c1917; color: #fafaf9; text-align: center; padding: 32px 40px; }
.header .name { font-size: 24pt; letter-spacing: 2px; }
.header .contact { color: #d6d3d1; margin-top: 6px; }
.header .links a { color: #fbbf24; text-decoration: none; margin: 0 8px; }
.section { margin: 0 48px; }
.section-title { color: #b45309; text-transform: uppercase; letter-spacing: 2px; font-size: 11pt; border-bottom: 2px solid #b45309; padding-bottom: 3px; margin: 20px 0 10px; }
.entry { margin-bottom: 12px; }
.entry .heading { font-weight: 700; }
.entry .subheading { font-variant: small-caps; }
.entry .daterange, .entry .meta { color: #78716c; font-size: 9pt; }
.skill .level { color: #b45309; }
.project .tech { color: #78716c; font-size: 9pt; }
`
}
