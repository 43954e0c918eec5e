// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"strings"

	"github.com/pdiddy/docdigest/pkg/types"
)

// AssembleSections pairs each heading of one document with the body text that
// follows it, up to the next heading or the end of the document. The section's
// page is the page of its heading block. Body text before the first heading is
// dropped. Sections never span documents.
//
// Fallback: a document that produced no heading candidates (uniform font size,
// nothing bold) still contributes one Section, titled by its first non-empty
// block, so that every decodable document is represented in the pool.
func AssembleSections(docID string, blocks []types.TextBlock, cfg types.LayoutConfig) []types.Section {
	if len(blocks) == 0 {
		return nil
	}

	candidates := ClassifyHeadings(blocks, cfg)
	if len(candidates) == 0 {
		return fallbackSection(docID, blocks)
	}

	levelByBlock := make(map[int]int, len(candidates))
	for _, c := range candidates {
		levelByBlock[c.Block] = c.Level
	}

	var sections []types.Section
	var cur *types.Section
	var body []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.BodyText = strings.Join(body, " ")
		sections = append(sections, *cur)
		cur = nil
		body = nil
	}

	for i, b := range blocks {
		if level, ok := levelByBlock[i]; ok {
			flush()
			cur = &types.Section{
				DocumentID:   docID,
				Title:        b.Text,
				PageNumber:   b.PageNumber,
				HeadingLevel: level,
			}
			continue
		}
		if cur != nil {
			body = append(body, b.Text)
		}
	}
	flush()

	return sections
}

// fallbackSection builds the single synthetic section for a document with no
// detectable headings: the first non-empty block is the title, everything
// after it is the body.
func fallbackSection(docID string, blocks []types.TextBlock) []types.Section {
	first := -1
	for i, b := range blocks {
		if strings.TrimSpace(b.Text) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}

	var body []string
	for _, b := range blocks[first+1:] {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		body = append(body, b.Text)
	}

	return []types.Section{{
		DocumentID:   docID,
		Title:        blocks[first].Text,
		PageNumber:   blocks[first].PageNumber,
		BodyText:     strings.Join(body, " "),
		HeadingLevel: 1,
	}}
}
