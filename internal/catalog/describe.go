package catalog

import (
	"fmt"
	"strings"
)

// Section is a titled group of catalog entries.
type Section struct {
	Title   string
	Entries []Entry
}

// Sections returns every catalog group in display order.
func Sections() []Section {
	return []Section{
		{Title: "Platforms", Entries: Platforms()},
		{Title: "Languages", Entries: append([]Entry{{ID: Java, Name: "Java", Description: "Always enabled."}}, Languages()...)},
		{Title: "Official extensions", Entries: Extensions()},
		{Title: "Third-party extensions", Entries: ThirdPartyExtensions()},
		{Title: "Templates", Entries: Templates()},
	}
}

// DescribeMarkdown renders sections as markdown tables.
func DescribeMarkdown(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		b.WriteString("| ID | Name | Version | Description |\n")
		b.WriteString("|----|------|---------|-------------|\n")
		for _, e := range s.Entries {
			version := e.Version
			if version == "" {
				version = "-"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", e.ID, e.Name, version, e.Description)
		}
	}
	return b.String()
}

// Describe renders the whole catalog as markdown.
func Describe() string {
	return DescribeMarkdown(Sections())
}
