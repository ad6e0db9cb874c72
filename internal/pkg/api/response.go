package api

import (
	"encoding/json"
	"net/http"

	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
)

type ResponseError struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type ResponseMessage struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	json.NewEncoder(w).Encode(data)
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

func MessageJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ResponseMessage{Message: msg})
}

// ErrorJSON writes msg as the error text. Field details are only exposed for
// client errors, 5xx responses never carry the underlying cause.
func ErrorJSON(w http.ResponseWriter, status int, err error, msg string) {
	res := ResponseError{Error: msg}
	if status < http.StatusInternalServerError {
		if ae, ok := er.As(err); ok && len(ae.Details) > 0 {
			res.Details = ae.Details
		}
	}
	writeJSON(w, status, res)
}

// ErrorFromErr maps any service error onto a response.
func ErrorFromErr(w http.ResponseWriter, err error) {
	if ae, ok := er.As(err); ok {
		msg := ae.Message
		if ae.Code >= er.InternalErrorCode {
			msg = er.ErrStrMap[er.InternalErrorCode]
		}
		ErrorJSON(w, int(ae.Code), ae, msg)
		return
	}
	ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
}
