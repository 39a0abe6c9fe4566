package domain

// Block types carried in rich-text content arrays.
const (
	BlockTypeText  = "block"
	BlockTypeImage = "image"
)

// Block is one entry of a rich-text (Portable Text) content array. Text
// blocks carry Style, optional list membership, Spans and MarkDefs; image
// blocks carry Image.
type Block struct {
	Key      string
	Type     string
	Style    string
	ListItem string
	Level    int
	Spans    []Span
	MarkDefs []MarkDef
	Image    *Image
}

// Span is a run of text sharing the same marks. Marks are either decorator
// names (strong, em, code, underline, strike-through) or keys into the
// block's MarkDefs.
type Span struct {
	Key   string
	Text  string
	Marks []string
}

// MarkDef is an annotation referenced by span marks, such as a link.
type MarkDef struct {
	Key   string
	Type  string
	Href  string
	Blank bool
}

// IsList reports whether the block belongs to a bullet or numbered list.
func (b *Block) IsList() bool {
	return b.Type == BlockTypeText && b.ListItem != ""
}

// PlainText concatenates the text of every span in the blocks, separating
// blocks with a blank line. Used for excerpts and meta descriptions.
func PlainText(blocks []Block) string {
	var out []byte
	for i := range blocks {
		if blocks[i].Type != BlockTypeText {
			continue
		}
		if len(out) > 0 {
			out = append(out, '\n', '\n')
		}
		for _, s := range blocks[i].Spans {
			out = append(out, s.Text...)
		}
	}
	return string(out)
}
