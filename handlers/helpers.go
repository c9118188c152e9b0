package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cueclub/tournament-system/brackets"
	"github.com/cueclub/tournament-system/services"
	"github.com/go-chi/chi/v5"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	js, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, jsonResponse{"error": message})
}

func badRequestResponse(w http.ResponseWriter, err error) {
	errorResponse(w, http.StatusBadRequest, err.Error())
}

func serverErrorResponse(w http.ResponseWriter, err error) {
	slog.Error("internal server error", slog.Any("error", err))
	errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// serviceErrorResponse maps domain errors onto HTTP statuses. Unknown errors
// are treated as internal.
func serviceErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTournamentNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		errorResponse(w, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrDuplicateSignup),
		errors.Is(err, brackets.ErrAlreadyCompleted):
		errorResponse(w, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrTournamentNotOpen),
		errors.Is(err, services.ErrTournamentNotActive),
		errors.Is(err, services.ErrInsufficientParticipants),
		errors.Is(err, services.ErrUnknownFormat),
		errors.Is(err, services.ErrInvalidSelfRating),
		errors.Is(err, services.ErrPlayerArchived),
		errors.Is(err, services.ErrSamePlayer),
		errors.Is(err, services.ErrDuplicatePlayers),
		errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, brackets.ErrMatchNotReady),
		errors.Is(err, brackets.ErrInvalidWinner):
		errorResponse(w, http.StatusUnprocessableEntity, err.Error())

	default:
		serverErrorResponse(w, err)
	}
}

func urlParamInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return value, nil
}
