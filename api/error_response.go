package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{
		Error:  err.Error(),
		Fields: fields,
	}
}

// getBindingErrorMessage maps a validator tag to a user-facing message.
func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "max":
		return "This field exceeds the allowed maximum"
	default:
		return "This field is invalid"
	}
}

// ExtractErrorFields converts validator binding errors into response fields.
// Field names come from json tags, registered on the binding engine at startup.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}

	return fields
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
