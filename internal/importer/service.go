package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
)

type Service struct {
	importers map[Format]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatCSV: NewParser(';'),
			FormatTSV: NewParser('\t'),
		},
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]article.CreateParams, error) {
	importer, ok := s.importers[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
