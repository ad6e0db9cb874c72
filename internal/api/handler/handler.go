package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/RoyceAzure/lab/megano/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var validate = newValidator()

// 錯誤訊息的欄位名稱使用 json tag
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

// validateDTO 回傳帶欄位訊息的 400 錯誤
func validateDTO(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return er.Wrap(er.BadRequestCode, "", err)
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return er.New(er.BadRequestCode, "").WithDetails(details)
}

// decodeJSON 空 body 視為空物件
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return er.Wrap(er.BadRequestCode, "", err)
	}
	return nil
}

func badRequest(w http.ResponseWriter, details map[string]string) {
	e := er.New(er.BadRequestCode, "").WithDetails(details)
	api.ErrorJSON(w, int(e.Code), e, e.Message)
}

// writeError 5xx 額外記錄原始錯誤, 回應本身不帶細節
func writeError(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger, err error) {
	if ae, ok := er.As(err); !ok || ae.Code >= er.InternalErrorCode {
		logger.Error().
			Err(err).
			Str("request_id", util.GetRequestIDFromContext(r.Context())).
			Str("url", r.URL.Path).
			Msg("request failed")
	}
	api.ErrorFromErr(w, err)
}

// notFoundMessage 找不到資源時回 {"message": ...}
func notFoundMessage(w http.ResponseWriter, err error, target *er.AnaError) bool {
	if errors.Is(err, target) {
		api.MessageJSON(w, http.StatusNotFound, target.Message)
		return true
	}
	return false
}

func pathID(r *http.Request, key string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(w http.ResponseWriter, key string) {
	badRequest(w, map[string]string{key: "must be a positive integer"})
}

func currentSession(r *http.Request) *model.Session {
	return util.GetSessionFromContext(r.Context())
}

func nopIfNil(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return logger
}
