package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
//
//	var req QualityRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Quality simulation"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	return validateOrRespond(w, req, ErrMsgInvalidRequestSummary)
}

// validateOrRespond writes a field-level 400 when req fails validation
func validateOrRespond(w http.ResponseWriter, req any, summary string) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  summary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBoolQueryParam parses a boolean query parameter. Absent or unparsable
// values are false.
func GetBoolQueryParam(r *http.Request, paramName string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(paramName))
	return err == nil && v
}
