package wrapper

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/shared"
)

// Fields extra top level key in response body, ex: {"message": "...", "uniqueNumber": "123456"}
type Fields map[string]interface{}

// HTTPResponse format
type HTTPResponse struct {
	Code    int         `json:"-"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
	Fields  Fields      `json:"-"`
}

// NewHTTPResponse for create common response
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	commonResponse := new(HTTPResponse)

	for _, param := range params {
		switch e := param.(type) {
		case helper.MultiError:
		case Fields:
		case error:
			param = helper.NewMultiError().Append("detail", e)
		}

		if param == nil {
			continue
		}

		switch val := param.(type) {
		case helper.MultiError:
			if val.HasError() {
				commonResponse.Errors = val.ToMap()
			}
		case Fields:
			if commonResponse.Fields == nil {
				commonResponse.Fields = Fields{}
			}
			for k, v := range val {
				commonResponse.Fields[k] = v
			}
		}
	}

	commonResponse.Code = code
	commonResponse.Message = message
	return commonResponse
}

// NewHTTPErrorResponse build response from domain error, internal error text is replaced with fallback message
func NewHTTPErrorResponse(err error, fallbackMessage string) *HTTPResponse {
	code := HTTPStatus(err)
	message := fallbackMessage
	if code != http.StatusInternalServerError && err != nil && err.Error() != "" {
		message = err.Error()
	}
	return NewHTTPResponse(code, message)
}

// HTTPStatus map domain error kind to http status code
func HTTPStatus(err error) int {
	switch shared.KindOf(err) {
	case shared.KindBadRequest, shared.KindConflict, shared.KindInvalidCredential:
		return http.StatusBadRequest
	case shared.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// MarshalJSON merge message, errors and extra fields into one object
func (resp *HTTPResponse) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, len(resp.Fields)+2)
	for k, v := range resp.Fields {
		body[k] = v
	}
	body["message"] = resp.Message
	if resp.Errors != nil {
		body["errors"] = resp.Errors
	}
	return json.Marshal(body)
}

// JSON for set http JSON response (Content-Type: application/json) with parameter is http response writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	return WriteJSON(w, resp.Code, resp)
}

// WriteJSON write any payload as json body, nil slice is written as empty array
func WriteJSON(w http.ResponseWriter, code int, payload interface{}) error {
	if v := reflect.ValueOf(payload); v.Kind() == reflect.Slice && v.IsNil() {
		payload = reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	w.Header().Set(helper.HeaderContentType, helper.HeaderMIMEApplicationJSON)
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}
