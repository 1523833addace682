package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, message string) {
	env := envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}}
	if err := writeJSON(w, status, env, nil); err != nil {
		log.Error("write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// WriteServerError logs err and answers with a generic 500.
func WriteServerError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	log.Error("server error", zap.Error(err), zap.String("method", r.Method), zap.String("path", r.URL.Path))
	errorJSON(w, r, log, http.StatusInternalServerError, util.MessageInternalServerError)
}

type baseAPI struct {
	log *zap.Logger
}

func (api *baseAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	return writeJSON(w, status, data, headers)
}

func (api *baseAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteServerError(w, r, api.log, err)
}

func (api *baseAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorJSON(w, r, api.log, http.StatusBadRequest, err.Error())
}

func (api *baseAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorJSON(w, r, api.log, http.StatusNotFound, err.Error())
}

// getStatusCode maps an error code carried by util.Error to a response.
func (api *baseAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, search.ErrNoSuchMotionPlanner) {
		api.BadRequestResponse(w, r, err)
		return
	}
	switch util.ErrorCode(err) {
	case util.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case util.ErrConflict:
		errorJSON(w, r, api.log, http.StatusConflict, err.Error())
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
