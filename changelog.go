// Package release computes version bumps and changelogs from commit history.
// This file contains changelog grouping and rendering.
package release

import (
	"sort"
	"strings"
)

// ChangelogEntry is a single rendered line of the changelog.
type ChangelogEntry struct {
	// Section is the heading the entry is grouped under.
	Section string

	// Type is the conventional commit type token.
	Type string

	// Scope is the optional commit scope.
	Scope string

	// Description is the commit subject text.
	Description string

	// SHA is the commit hash the entry was derived from, when known.
	SHA string
}

// ChangelogSection is an ordered group of entries under one heading.
type ChangelogSection struct {
	// Title is the section heading, e.g. "Features".
	Title string

	// Entries are ordered by commit timestamp ascending, ties broken by
	// SHA lexical order so output is deterministic.
	Entries []ChangelogEntry
}

// buildSections groups changelog-visible records into sections.
//
// Sections follow the configured precedence order; sections the order does
// not mention come after, sorted lexically. Within a section, entries keep
// commit timestamp order with SHA as tie-break. Records that are not
// conventional, have no configured rule, or whose rule has no section label
// are omitted.
func buildSections(records []CommitRecord, cfg *Config) []ChangelogSection {
	visible := make([]CommitRecord, 0, len(records))
	for _, r := range records {
		if !r.Conventional {
			continue
		}
		rule, ok := cfg.Types[r.Type]
		if !ok || rule.Section == "" {
			continue
		}
		visible = append(visible, r)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if !visible[i].When.Equal(visible[j].When) {
			return visible[i].When.Before(visible[j].When)
		}
		return visible[i].SHA < visible[j].SHA
	})

	grouped := make(map[string][]ChangelogEntry)
	for _, r := range visible {
		section := cfg.Types[r.Type].Section
		grouped[section] = append(grouped[section], ChangelogEntry{
			Section:     section,
			Type:        r.Type,
			Scope:       r.Scope,
			Description: r.Description,
			SHA:         r.SHA,
		})
	}

	ordered := make([]string, 0, len(grouped))
	listed := make(map[string]bool, len(cfg.SectionOrder))
	for _, section := range cfg.SectionOrder {
		listed[section] = true
		if _, ok := grouped[section]; ok {
			ordered = append(ordered, section)
		}
	}

	var rest []string
	for section := range grouped {
		if !listed[section] {
			rest = append(rest, section)
		}
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	sections := make([]ChangelogSection, 0, len(ordered))
	for _, section := range ordered {
		sections = append(sections, ChangelogSection{
			Title:   section,
			Entries: grouped[section],
		})
	}
	return sections
}

// renderChangelog renders sections as a markdown document.
func renderChangelog(version string, sections []ChangelogSection) string {
	if len(sections) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(version)
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n### ")
		b.WriteString(section.Title)
		b.WriteString("\n\n")

		for _, entry := range section.Entries {
			b.WriteString("- ")
			b.WriteString(entry.Type)
			if entry.Scope != "" {
				b.WriteString("(")
				b.WriteString(entry.Scope)
				b.WriteString(")")
			}
			b.WriteString(": ")
			b.WriteString(entry.Description)
			b.WriteString("\n")
		}
	}

	return b.String()
}
