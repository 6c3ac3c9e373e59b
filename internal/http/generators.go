package http

import "github.com/adiprasetyo/simpbb/internal/model"

// ExcelGenerator renders the registration export workbook.
type ExcelGenerator interface {
	Generate(registrations []model.RegistrationDetail) ([]byte, error)
}

// PDFGenerator renders the printable e-SPPT.
type PDFGenerator interface {
	Generate(sppt *model.SpptLegacy, object *model.SpopDetail) ([]byte, error)
}
