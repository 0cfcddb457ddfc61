package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/royberris/GuitarTabToPiano/constants"
	"github.com/royberris/GuitarTabToPiano/library"
	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/pitch"
	"github.com/royberris/GuitarTabToPiano/tab"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var store *library.Store

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parse/encode API and the tab library",
	Long:  `Serves the parse/encode API and the tab library over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// OpenLibrary loads the tab library the handlers operate on. Exported for
// the e2e test harness.
func OpenLibrary() error {
	s, err := library.New(constants.GetLibraryPath())
	if err != nil {
		return err
	}
	store = s
	return nil
}

// NewRouter builds the HTTP API. Exported for the e2e test harness.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/encode", HandleEncode).Methods("POST")
	router.HandleFunc("/tabs", HandleListTabs).Methods("GET")
	router.HandleFunc("/tabs", HandleCreateTab).Methods("POST")
	router.HandleFunc("/tabs/import", HandleImportTabs).Methods("POST")
	router.HandleFunc("/tabs/{id}", HandleGetTab).Methods("GET")
	router.HandleFunc("/tabs/{id}", HandleUpdateTab).Methods("PUT")
	router.HandleFunc("/tabs/{id}", HandleDeleteTab).Methods("DELETE")
	return router
}

func serve() {
	if err := OpenLibrary(); err != nil {
		panic("Could not open library: " + err.Error())
	}

	// the consumer is a browser frontend on another origin
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("Listening on %v\n", constants.GetListenAddr())
	log.Fatal(http.ListenAndServe(constants.GetListenAddr(), handler))
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.ParseRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	res, err := tab.Parse(input.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleEncode validates placements before they reach the encoder; the
// encoder itself has no failure modes.
func HandleEncode(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.EncodeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	if input.TotalSteps < 0 {
		writeError(w, http.StatusBadRequest, "total_steps must not be negative")
		return
	}
	for _, p := range input.Placements {
		if p.String < 0 || p.String >= len(pitch.StringNames) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("string index %v out of range", p.String))
			return
		}
		if p.Step < 0 || p.Step >= input.TotalSteps {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("step %v out of range", p.Step))
			return
		}
		if p.Fret < 0 || p.Fret > pitch.MaxFret {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("fret %v out of range", p.Fret))
			return
		}
	}

	text := tab.Encode(input.Placements, input.TotalSteps)
	writeJSON(w, http.StatusOK, model.EncodeResponse{Text: text})
}

func HandleListTabs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.List())
}

func HandleCreateTab(w http.ResponseWriter, r *http.Request) {
	var input model.TabRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	t, err := store.Create(input.Name, input.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func HandleGetTab(w http.ResponseWriter, r *http.Request) {
	t, err := store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func HandleUpdateTab(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input model.TabRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	t, err := store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if input.Name != "" {
		if t, err = store.Rename(id, input.Name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if input.Text != "" {
		if t, err = store.SetText(id, input.Text); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, t)
}

func HandleDeleteTab(w http.ResponseWriter, r *http.Request) {
	if err := store.Delete(mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, library.ErrTabNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleImportTabs is the drag-and-drop import path: the raw body is the
// dropped JSON export (one tab or an array).
func HandleImportTabs(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	tabs, err := store.ImportJSON(reqBody)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, tabs)
}
