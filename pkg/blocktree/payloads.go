package blocktree

// Payload is the per-type content of a block. One concrete struct per
// BlockType; the tag on the wire and the struct are bound by the factory
// table in codec.go.
type Payload interface {
	BlockType() BlockType
	Clone() Payload
}

type TextPayload struct {
	Text   string `json:"text"`
	Format int    `json:"format,omitempty"` // bold/italic/etc bitmask
	Align  string `json:"align,omitempty"`
}

func (p *TextPayload) BlockType() BlockType { return TypeText }
func (p *TextPayload) Clone() Payload       { c := *p; return &c }

type HeadingPayload struct {
	Text  string `json:"text"`
	Level int    `json:"level"` // 1..6
}

func (p *HeadingPayload) BlockType() BlockType { return TypeHeading }
func (p *HeadingPayload) Clone() Payload       { c := *p; return &c }

type CodePayload struct {
	Language string `json:"language,omitempty"`
	Source   string `json:"source"`
}

func (p *CodePayload) BlockType() BlockType { return TypeCode }
func (p *CodePayload) Clone() Payload       { c := *p; return &c }

type MathPayload struct {
	Latex   string `json:"latex"`
	Display bool   `json:"display,omitempty"` // block vs inline rendering
}

func (p *MathPayload) BlockType() BlockType { return TypeMath }
func (p *MathPayload) Clone() Payload       { c := *p; return &c }

type QuotePayload struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
}

func (p *QuotePayload) BlockType() BlockType { return TypeQuote }
func (p *QuotePayload) Clone() Payload       { c := *p; return &c }

type ListItem struct {
	Text    string `json:"text"`
	Indent  int    `json:"indent,omitempty"`
	Checked bool   `json:"checked,omitempty"` // only meaningful for check lists
}

type ListPayload struct {
	ListType string     `json:"listType"` // bullet, number, check
	Start    int        `json:"start,omitempty"`
	Items    []ListItem `json:"items"`
}

func (p *ListPayload) BlockType() BlockType { return TypeList }

func (p *ListPayload) Clone() Payload {
	c := *p
	c.Items = append([]ListItem(nil), p.Items...)
	return &c
}

type HorizontalRulePayload struct{}

func (p *HorizontalRulePayload) BlockType() BlockType { return TypeHorizontalRule }
func (p *HorizontalRulePayload) Clone() Payload       { c := *p; return &c }

type ImagePayload struct {
	Source    string `json:"source"`
	Caption   string `json:"caption,omitempty"`
	FullWidth bool   `json:"fullWidth,omitempty"`
}

func (p *ImagePayload) BlockType() BlockType { return TypeImage }
func (p *ImagePayload) Clone() Payload       { c := *p; return &c }

type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// TablePayload keeps the whole grid as structured data of one block; rows
// are never split into independent block rows.
type TablePayload struct {
	Columns []TableColumn       `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

func (p *TablePayload) BlockType() BlockType { return TypeTable }

func (p *TablePayload) Clone() Payload {
	c := &TablePayload{
		Columns: append([]TableColumn(nil), p.Columns...),
		Rows:    make([]map[string]string, len(p.Rows)),
	}
	for i, row := range p.Rows {
		dup := make(map[string]string, len(row))
		for k, v := range row {
			dup[k] = v
		}
		c.Rows[i] = dup
	}
	return c
}

type EmbedPayload struct {
	Provider string `json:"provider,omitempty"` // youtube, codepen, generic
	URL      string `json:"url"`
}

func (p *EmbedPayload) BlockType() BlockType { return TypeEmbed }
func (p *EmbedPayload) Clone() Payload       { c := *p; return &c }

type CitationPayload struct {
	ReferenceKey string `json:"referenceKey"`
	Prefix       string `json:"prefix,omitempty"`
	Locator      string `json:"locator,omitempty"` // e.g. "p. 42"
}

func (p *CitationPayload) BlockType() BlockType { return TypeCitation }
func (p *CitationPayload) Clone() Payload       { c := *p; return &c }

type BibliographyPayload struct {
	Style string `json:"style,omitempty"` // apa, ieee, ...
}

func (p *BibliographyPayload) BlockType() BlockType { return TypeBibliography }
func (p *BibliographyPayload) Clone() Payload       { c := *p; return &c }

// AIGenerationPayload is updated incrementally by the assistant collaborator
// through the single-block save path while Loading is true.
type AIGenerationPayload struct {
	Prompt  string `json:"prompt"`
	Result  string `json:"result,omitempty"`
	Loading bool   `json:"loading,omitempty"`
	Model   string `json:"model,omitempty"`
}

func (p *AIGenerationPayload) BlockType() BlockType { return TypeAIGeneration }
func (p *AIGenerationPayload) Clone() Payload       { c := *p; return &c }

type ExecutableCodePayload struct {
	Language string `json:"language"`
	Source   string `json:"source"`
	Output   string `json:"output,omitempty"`
}

func (p *ExecutableCodePayload) BlockType() BlockType { return TypeExecutableCode }
func (p *ExecutableCodePayload) Clone() Payload       { c := *p; return &c }

type SubfigureImage struct {
	Source  string `json:"source"`
	Caption string `json:"caption,omitempty"`
}

type SubfigurePayload struct {
	Images  []SubfigureImage `json:"images"`
	Caption string           `json:"caption,omitempty"`
	Layout  string           `json:"layout,omitempty"` // row, grid
}

func (p *SubfigurePayload) BlockType() BlockType { return TypeSubfigure }

func (p *SubfigurePayload) Clone() Payload {
	c := *p
	c.Images = append([]SubfigureImage(nil), p.Images...)
	return &c
}

type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScatterPlotPayload struct {
	XLabel string         `json:"xLabel,omitempty"`
	YLabel string         `json:"yLabel,omitempty"`
	Points []ScatterPoint `json:"points"`
}

func (p *ScatterPlotPayload) BlockType() BlockType { return TypeScatterPlot }

func (p *ScatterPlotPayload) Clone() Payload {
	c := *p
	c.Points = append([]ScatterPoint(nil), p.Points...)
	return &c
}
