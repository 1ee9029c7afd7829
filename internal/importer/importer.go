package importer

import (
	"io"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
)

// Format selects the field separator of an article import file.
type Format string

const (
	FormatCSV Format = "csv"
	FormatTSV Format = "tsv"
)

type Importer interface {
	Parse(r io.Reader) ([]article.CreateParams, error)
}
