package render

// Minimalist strips everything back to monochrome type and whitespace.
type Minimalist struct{}

func (Minimalist) ID() string { return "minimalist" }

func (Minimalist) Style() Style {
	return Style{
		FontFamily:      "'Helvetica Neue', Helvetica, Arial, sans-serif",
		BaseFontSizePt:  10,
		AccentColor:     "#000000",
		TextColor:       "#262626",
		Background:      "#ffffff",
		HeaderAlign:     "left",
		SectionDivider:  "space",
		UppercaseTitles: true,
		SkillColumns:    1,
	}
}

func (Minimalist) CSS() string {
	return `
.resume { padding: 56px 64px; max-width: 680px; }
.header { margin-bottom: 28px; }
.header .name { font-size: 20pt; font-weight: 300; letter-spacing: 3px; text-transform: uppercase; }
.header .contact { color: #737373; margin-top: 8px; font-size: 9pt; }
.header .links a { color: #262626; text-decoration: none; margin-right: 10px; font-size: 9pt; }
.section-title { font-size: 9pt; letter-spacing: 3px; text-transform: uppercase; color: #737373; margin: 22px 0 10px; }
.entry { margin-bottom: 14px; }
.entry .heading { font-weight: 500; }
.entry .subheading { color: #525252; }
.entry .daterange, .entry .meta { color: #a3a3a3; font-size: 8pt; }
.skill .level { color: #737373; }
.project .tech { color: #a3a3a3; font-size: 8pt; }
`
}
