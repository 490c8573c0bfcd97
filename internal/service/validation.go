package service

import (
	"bytes"
	"fmt"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var pdfMagic = []byte("%PDF-")

func validateDocument(document *model.UploadedDocument, maxBytes int64) error {
	if document == nil || len(document.Data) == 0 {
		return ErrEmptyDocument
	}
	if maxBytes > 0 && int64(len(document.Data)) > maxBytes {
		return ErrDocumentTooLarge
	}
	if !bytes.HasPrefix(document.Data, pdfMagic) {
		return fmt.Errorf("%w: missing %%PDF- header", ErrInvalidDocument)
	}
	return nil
}

// validateFields checks the field list shape. Page bounds are checked
// separately once the page count is known.
func validateFields(fields []model.Field) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	if !model.FieldList(fields).HasSignature() {
		return ErrNoSignatureField
	}

	seen := make(map[string]struct{}, len(fields))
	for i := range fields {
		f := fields[i]
		err := validation.ValidateStruct(&f,
			validation.Field(&f.ID, validation.Required, validation.Length(1, 64)),
			validation.Field(&f.Type, validation.Required, validation.In(model.FieldSignature, model.FieldDate, model.FieldText)),
			validation.Field(&f.Page, validation.Required, validation.Min(1)),
			validation.Field(&f.XRatio, validation.Min(0.0), validation.Max(1.0)),
			validation.Field(&f.YRatio, validation.Min(0.0), validation.Max(1.0)),
			validation.Field(&f.Width, validation.Required, validation.Min(0.0).Exclusive()),
			validation.Field(&f.Height, validation.Required, validation.Min(0.0).Exclusive()),
		)
		if err != nil {
			return fmt.Errorf("%w: field %d: %v", ErrInvalidFields, i, err)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidFields, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

func validatePages(fields []model.Field, pageCount int) error {
	for _, f := range fields {
		if f.Page > pageCount {
			return fmt.Errorf("%w: field %s is on page %d of a %d-page document", ErrInvalidFields, f.ID, f.Page, pageCount)
		}
	}
	return nil
}

func validateSaveToFiles(input ports.SaveToFilesInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Token, validation.Required, validation.Length(1, 128)),
		validation.Field(&input.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&input.RecipientType, validation.Required, validation.In(model.RecipientStaff, model.RecipientClient)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	switch input.RecipientType {
	case model.RecipientStaff:
		if input.StaffID <= 0 {
			return fmt.Errorf("%w: staff recipient requires a numeric id", ErrInvalidRequest)
		}
	case model.RecipientClient:
		if input.ClientID == "" {
			return fmt.Errorf("%w: client recipient requires a string id", ErrInvalidRequest)
		}
	}
	return nil
}
