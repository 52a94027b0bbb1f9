package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/bundle"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
	"github.com/clinsynth/fhirgen/models/fhir"
)

const maxServeCount = 100

var servableTypes = []string{"Bundle", "Patient"}

// SyntheticRouter serves freshly generated synthetic data over HTTP.
// Each request runs its own generation, so a seed query parameter
// reproduces the exact same payload.
type SyntheticRouter struct {
	datasetSvc *dataset.DatasetService
	bundleSvc  *bundle.BundleService
	log        zerolog.Logger
}

// NewSyntheticRouter wires the serve-mode services.
func NewSyntheticRouter(log zerolog.Logger) *SyntheticRouter {
	return &SyntheticRouter{
		datasetSvc: dataset.NewDatasetService(log),
		bundleSvc:  bundle.NewBundleService(log),
		log:        log,
	}
}

// SetupRoutes builds the HTTP handler.
func (sr *SyntheticRouter) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/synthetic/{resourceType}", sr.handleGenerate).Methods(http.MethodGet)
	return r
}

func (sr *SyntheticRouter) handleGenerate(w http.ResponseWriter, r *http.Request) {
	resourceType := mux.Vars(r)["resourceType"]
	if !slices.Contains(servableTypes, resourceType) {
		respondWithError(w, http.StatusNotFound, "resource type "+resourceType+" is not served")
		return
	}

	opts := dataset.Options{}
	if seedParam := r.URL.Query().Get("seed"); seedParam != "" {
		seed, err := strconv.ParseInt(seedParam, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		opts.Seed = &seed
	}

	count := 1
	if countParam := r.URL.Query().Get("count"); countParam != "" {
		parsed, err := strconv.Atoi(countParam)
		if err != nil || parsed < 1 || parsed > maxServeCount {
			respondWithError(w, http.StatusBadRequest, "count must be between 1 and 100")
			return
		}
		count = parsed
	}

	ds, err := sr.datasetSvc.GenerateDataset(count, opts)
	if err != nil {
		sr.log.Error().Err(err).Msg("Failed to generate dataset")
		respondWithError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	switch resourceType {
	case "Patient":
		for _, record := range ds.Stories[0].Records {
			if patient, ok := record.(fhir.Patient); ok {
				respondWithJSON(w, http.StatusOK, patient)
				return
			}
		}
		respondWithError(w, http.StatusInternalServerError, "no patient survived validation")
	case "Bundle":
		assembled, err := sr.bundleSvc.Assemble(ds.AllRecords(), bundle.DefaultType)
		if err != nil {
			sr.log.Error().Err(err).Msg("Failed to assemble bundle")
			respondWithError(w, http.StatusInternalServerError, "assembly failed")
			return
		}
		respondWithJSON(w, http.StatusOK, assembled)
	}
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/fhir+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
