package blocks

// Block is one node of the editor's block-tree document. The editor stores
// content either as a JSON array of these or as a flat markup string; the
// parser accepts both.
type Block struct {
	Id       string       `json:"id,omitempty"`
	Type     string       `json:"type"`
	Props    BlockProps   `json:"props,omitempty"`
	Content  []InlineNode `json:"content,omitempty"`
	Children []Block      `json:"children,omitempty"`
}

type BlockProps struct {
	Level     int    `json:"level,omitempty"`   // heading level
	Checked   bool   `json:"checked,omitempty"` // check list items
	TextColor string `json:"textColor,omitempty"`
}

type InlineNode struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Href string `json:"href,omitempty"`

	// Nested content for links and similar wrappers.
	Content []InlineNode `json:"content,omitempty"`
}
