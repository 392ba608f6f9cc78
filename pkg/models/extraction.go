package models

// Extraction is the text pulled out of a PDF by one of the text backends.
type Extraction struct {
	Source    string
	Method    string
	PageCount int
	Text      string
}

func (e Extraction) CharCount() int {
	return len([]rune(e.Text))
}
