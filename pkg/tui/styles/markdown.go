package styles

import (
	"strings"

	"charm.land/glamour/v2/ansi"
	"github.com/alecthomas/chroma/v2"
)

const (
	defaultListIndent = 2
	defaultMargin     = 2
)

func toChroma(style ansi.StylePrimitive) string {
	var s []string

	if style.Color != nil {
		s = append(s, *style.Color)
	}
	if style.BackgroundColor != nil {
		s = append(s, "bg:"+*style.BackgroundColor)
	}
	if style.Italic != nil && *style.Italic {
		s = append(s, "italic")
	}
	if style.Bold != nil && *style.Bold {
		s = append(s, "bold")
	}
	if style.Underline != nil && *style.Underline {
		s = append(s, "underline")
	}

	return strings.Join(s, " ")
}

func getChromaTheme() chroma.StyleEntries {
	md := MarkdownStyle().CodeBlock
	return chroma.StyleEntries{
		chroma.Text:                toChroma(md.Chroma.Text),
		chroma.Error:               toChroma(md.Chroma.Error),
		chroma.Comment:             toChroma(md.Chroma.Comment),
		chroma.CommentPreproc:      toChroma(md.Chroma.CommentPreproc),
		chroma.Keyword:             toChroma(md.Chroma.Keyword),
		chroma.KeywordReserved:     toChroma(md.Chroma.KeywordReserved),
		chroma.KeywordNamespace:    toChroma(md.Chroma.KeywordNamespace),
		chroma.KeywordType:         toChroma(md.Chroma.KeywordType),
		chroma.Operator:            toChroma(md.Chroma.Operator),
		chroma.Punctuation:         toChroma(md.Chroma.Punctuation),
		chroma.Name:                toChroma(md.Chroma.Name),
		chroma.NameBuiltin:         toChroma(md.Chroma.NameBuiltin),
		chroma.NameTag:             toChroma(md.Chroma.NameTag),
		chroma.NameAttribute:       toChroma(md.Chroma.NameAttribute),
		chroma.NameClass:           toChroma(md.Chroma.NameClass),
		chroma.NameDecorator:       toChroma(md.Chroma.NameDecorator),
		chroma.NameFunction:        toChroma(md.Chroma.NameFunction),
		chroma.LiteralNumber:       toChroma(md.Chroma.LiteralNumber),
		chroma.LiteralString:       toChroma(md.Chroma.LiteralString),
		chroma.LiteralStringEscape: toChroma(md.Chroma.LiteralStringEscape),
		chroma.GenericDeleted:      toChroma(md.Chroma.GenericDeleted),
		chroma.GenericEmph:         toChroma(md.Chroma.GenericEmph),
		chroma.GenericInserted:     toChroma(md.Chroma.GenericInserted),
		chroma.GenericStrong:       toChroma(md.Chroma.GenericStrong),
		chroma.GenericSubheading:   toChroma(md.Chroma.GenericSubheading),
		chroma.Background:          toChroma(md.Chroma.Background),
	}
}

// ChromaStyle builds a chroma style from the active theme, for highlighting
// code outside of markdown.
func ChromaStyle() *chroma.Style {
	style, err := chroma.NewStyle("pigment", getChromaTheme())
	if err != nil {
		panic(err)
	}
	return style
}

// MarkdownStyle builds a glamour style config from the active theme, so
// rendered markdown follows the palette instead of a fixed dark scheme.
func MarkdownStyle() ansi.StyleConfig {
	c := Current().Colors

	h1Fg := bestForegroundHex(c.Primary, c.Foreground, c.Background, "#000000", "#FFFFFF")
	errFg := bestForegroundHex(c.Error, c.Background, "#FFFFFF", "#000000")

	style := ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "",
				BlockSuffix: "",
				Color:       stringPtr(c.Foreground),
			},
			Margin: uintPtr(0),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(c.Secondary),
			},
			Indent:      uintPtr(1),
			IndentToken: nil,
		},
		List: ansi.StyleList{
			LevelIndent: defaultListIndent,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(c.Primary),
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           &h1Fg,
				BackgroundColor: stringPtr(c.Primary),
				Bold:            boolPtr(true),
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
				Color:  stringPtr(c.Accent),
			},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "### ",
				Color:  stringPtr(c.Secondary),
			},
		},
		H4: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "#### ",
				Color:  stringPtr(c.Secondary),
			},
		},
		H5: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "##### ",
				Color:  stringPtr(c.Secondary),
			},
		},
		H6: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "###### ",
				Color:  stringPtr(c.Muted),
				Bold:   boolPtr(false),
			},
		},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Color: stringPtr(c.Foreground),
			Bold:  boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(c.Border),
			Format: "\n--------\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Task: ansi.StyleTask{
			StylePrimitive: ansi.StylePrimitive{},
			Ticked:         "[✓] ",
			Unticked:       "[ ] ",
		},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(c.Accent),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(c.Info),
			Bold:  boolPtr(true),
		},
		Image: ansi.StylePrimitive{
			Color:     stringPtr(c.Accent),
			Underline: boolPtr(true),
		},
		ImageText: ansi.StylePrimitive{
			Color:  stringPtr(c.Muted),
			Format: "Image: {{.text}} →",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           stringPtr(c.Foreground),
				BackgroundColor: stringPtr(c.Surface),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: stringPtr(c.Muted),
				},
				Margin: uintPtr(defaultMargin),
			},
			Chroma: &ansi.Chroma{
				Text: ansi.StylePrimitive{
					Color: stringPtr(c.Foreground),
				},
				Error: ansi.StylePrimitive{
					Color:           &errFg,
					BackgroundColor: stringPtr(c.Error),
				},
				Comment: ansi.StylePrimitive{
					Color:  stringPtr(c.Muted),
					Italic: boolPtr(true),
				},
				CommentPreproc: ansi.StylePrimitive{
					Color: stringPtr(c.Warning),
				},
				Keyword: ansi.StylePrimitive{
					Color: stringPtr(c.Primary),
				},
				KeywordReserved: ansi.StylePrimitive{
					Color: stringPtr(c.Accent),
				},
				KeywordNamespace: ansi.StylePrimitive{
					Color: stringPtr(c.Accent),
				},
				KeywordType: ansi.StylePrimitive{
					Color: stringPtr(c.Info),
				},
				Operator: ansi.StylePrimitive{
					Color: stringPtr(c.Secondary),
				},
				Punctuation: ansi.StylePrimitive{
					Color: stringPtr(c.Muted),
				},
				Name: ansi.StylePrimitive{
					Color: stringPtr(c.Foreground),
				},
				NameBuiltin: ansi.StylePrimitive{
					Color: stringPtr(c.Accent),
				},
				NameTag: ansi.StylePrimitive{
					Color: stringPtr(c.Primary),
				},
				NameAttribute: ansi.StylePrimitive{
					Color: stringPtr(c.Info),
				},
				NameClass: ansi.StylePrimitive{
					Color:     stringPtr(c.Foreground),
					Underline: boolPtr(true),
					Bold:      boolPtr(true),
				},
				NameDecorator: ansi.StylePrimitive{
					Color: stringPtr(c.Warning),
				},
				NameFunction: ansi.StylePrimitive{
					Color: stringPtr(c.Success),
				},
				LiteralNumber: ansi.StylePrimitive{
					Color: stringPtr(c.Info),
				},
				LiteralString: ansi.StylePrimitive{
					Color: stringPtr(c.Warning),
				},
				LiteralStringEscape: ansi.StylePrimitive{
					Color: stringPtr(c.Accent),
				},
				GenericDeleted: ansi.StylePrimitive{
					Color: stringPtr(c.Error),
				},
				GenericEmph: ansi.StylePrimitive{
					Italic: boolPtr(true),
				},
				GenericInserted: ansi.StylePrimitive{
					Color: stringPtr(c.Success),
				},
				GenericStrong: ansi.StylePrimitive{
					Bold: boolPtr(true),
				},
				GenericSubheading: ansi.StylePrimitive{
					Color: stringPtr(c.Secondary),
				},
				Background: ansi.StylePrimitive{
					BackgroundColor: stringPtr(c.Surface),
				},
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{},
			},
		},
	}

	return style
}

func uintPtr(u uint) *uint {
	return &u
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}
