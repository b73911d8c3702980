package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	apperrors "github.com/babydepdev/otp-network-setting-go/src/internal/errors"
	"github.com/babydepdev/otp-network-setting-go/src/internal/netplan"
	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

const appName = "otp-netsetting"

// decodeSelectionSet decodes the request body into a selection set. Enum
// fields decode strictly, so unknown kinds or modes fail here with a 400.
func decodeSelectionSet(w http.ResponseWriter, r *http.Request) (*selection.SelectionSet, bool) {
	var set selection.SelectionSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		WriteInvalidRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return nil, false
	}
	return &set, true
}

// writeValidationFailure maps aggregated field errors onto the validation
// failure envelope; anything else is an internal error.
func writeValidationFailure(w http.ResponseWriter, err error) {
	verrs, ok := err.(apperrors.ValidationErrors)
	if !ok {
		WriteInternalError(w, err.Error())
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, verr := range verrs {
		fields = append(fields, FieldError{
			Interface: verr.ItemName,
			Field:     verr.FieldPath,
			Code:      string(verr.Code),
			Message:   verr.Message,
		})
	}

	WriteValidationError(w, "selection validation failed", map[string]interface{}{
		"fields": fields,
	})
}

// HandleDocumentGenerate assembles and serializes the configuration document
// and serves it as a downloadable artifact.
func HandleDocumentGenerate(cfg *config.Config, info VersionInfo) http.HandlerFunc {
	banner := ""
	if cfg.General != nil {
		banner = cfg.General.Banner
	}

	serializer := netplan.NewSerializer(netplan.SerializerOptions{
		Filename:       cfg.OutputFilename(),
		BannerTemplate: banner,
		AppName:        appName,
		AppVersion:     info.Version,
	})
	assembler := netplan.NewAssembler(cfg.Devices)

	return func(w http.ResponseWriter, r *http.Request) {
		set, ok := decodeSelectionSet(w, r)
		if !ok {
			return
		}

		doc, err := assembler.Assemble(set)
		if err != nil {
			writeValidationFailure(w, err)
			return
		}

		artifact, err := serializer.Artifact(doc)
		if err != nil {
			WriteInternalError(w, err.Error())
			return
		}

		w.Header().Set("Content-Type", artifact.ContentType+"; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
		w.Header().Set("ETag", fmt.Sprintf("%q", artifact.Checksum))
		w.WriteHeader(http.StatusOK)
		w.Write(artifact.Bytes)
	}
}

// HandleDocumentValidate runs semantic validation only, for the form-level
// "check before download" flow.
func HandleDocumentValidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, ok := decodeSelectionSet(w, r)
		if !ok {
			return
		}

		if err := set.Validate(); err != nil {
			writeValidationFailure(w, err)
			return
		}

		WriteData(w, http.StatusOK, ValidateResponse{Valid: true})
	}
}
