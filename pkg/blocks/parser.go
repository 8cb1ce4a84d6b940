package blocks

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Parser converts block-tree JSON to plain text.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// ParseContent normalizes a note's stored content to plain text. Block-tree
// JSON is walked; HTML-ish markup has its tags stripped; anything else passes
// through unchanged.
func ParseContent(content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "[") {
		p := NewParser()
		text, err := p.Parse(trimmed)
		if err == nil {
			return text
		}
		// Fall through to markup handling on parse failure.
	}
	if strings.Contains(trimmed, "<") && tagPattern.MatchString(trimmed) {
		stripped := tagPattern.ReplaceAllString(trimmed, "")
		return strings.TrimSpace(stripped)
	}
	return content
}

// Parse converts a block-tree JSON array to plain text.
func (p *Parser) Parse(jsonContent string) (string, error) {
	var doc []Block
	if err := json.Unmarshal([]byte(jsonContent), &doc); err != nil {
		return "", fmt.Errorf("failed to parse block json: %w", err)
	}

	var sb strings.Builder
	for _, block := range doc {
		p.walkBlock(block, &sb, 0)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (p *Parser) walkBlock(block Block, sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	line := p.inlineText(block.Content)

	switch block.Type {
	case "heading":
		level := block.Props.Level
		if level < 1 {
			level = 1
		}
		sb.WriteString(indent + strings.Repeat("#", level) + " " + line + "\n")
	case "bulletListItem":
		sb.WriteString(indent + "- " + line + "\n")
	case "numberedListItem":
		sb.WriteString(indent + "1. " + line + "\n")
	case "checkListItem":
		box := "[ ]"
		if block.Props.Checked {
			box = "[x]"
		}
		sb.WriteString(indent + "- " + box + " " + line + "\n")
	case "codeBlock":
		sb.WriteString(indent + line + "\n")
	default:
		// paragraph and unknown block kinds degrade to their text
		if line != "" {
			sb.WriteString(indent + line + "\n")
		}
	}

	for _, child := range block.Children {
		p.walkBlock(child, sb, depth+1)
	}
}

func (p *Parser) inlineText(nodes []InlineNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		if n.Text != "" {
			sb.WriteString(n.Text)
		}
		if len(n.Content) > 0 {
			sb.WriteString(p.inlineText(n.Content))
		}
	}
	return sb.String()
}
