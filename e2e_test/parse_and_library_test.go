//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/royberris/GuitarTabToPiano/cmd"
	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/stretchr/testify/assert"
)

const testTab = `e|----------------|
B|----------------|
G|----------------|
D|----------------|
A|--0---2---3---5-|
E|----------------|`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "guitartab-e2e")
	if err != nil {
		panic(err.Error())
	}

	os.Setenv("TAB_LIBRARY_PATH", filepath.Join(dir, "tabs.json"))
	if err := cmd.OpenLibrary(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()
	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func doJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func decodeBody[A any](t *testing.T, resp *http.Response) A {
	t.Helper()

	data, _ := io.ReadAll(resp.Body)
	var out A
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("could not unmarshal response %q: %v", data, err)
	}
	return out
}

func TestParseEndpoint(t *testing.T) {
	resp := doJSON(t, http.MethodPost, "/parse", model.ParseRequestBody{Text: testTab})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	res := decodeBody[model.ParseResult](t, resp)
	assert.Equal(8, res.Steps)
	assert.Len(res.Events, 8)
	assert.Equal([]model.ParsedNote{{
		String: "A", Fret: 0, Midi: 45, PianoKey: 25, NoteName: "A2",
	}}, res.Events[1].Notes)
}

func TestParseEndpointRejectsShortInput(t *testing.T) {
	resp := doJSON(t, http.MethodPost, "/parse", model.ParseRequestBody{Text: "e|----|"})

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	errResp := decodeBody[model.ErrorResponse](t, resp)
	assert.NotEmpty(errResp.Error)
}

func TestEncodeEndpointRoundTrip(t *testing.T) {
	placements := []model.Placement{
		{String: 4, Step: 1, Fret: 0},
		{String: 5, Step: 2, Fret: 12},
	}
	resp := doJSON(t, http.MethodPost, "/encode", model.EncodeRequestBody{
		Placements: placements,
		TotalSteps: 4,
	})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	encoded := decodeBody[model.EncodeResponse](t, resp)

	resp = doJSON(t, http.MethodPost, "/parse", model.ParseRequestBody{Text: encoded.Text})
	assert.Equal(200, resp.StatusCode)
	res := decodeBody[model.ParseResult](t, resp)
	assert.Equal(4, res.Steps)
	assert.Equal(45, res.Events[1].Notes[0].Midi)
	assert.Equal(52, res.Events[2].Notes[0].Midi)
}

func TestEncodeEndpointValidates(t *testing.T) {
	resp := doJSON(t, http.MethodPost, "/encode", model.EncodeRequestBody{
		Placements: []model.Placement{{String: 0, Step: 0, Fret: 25}},
		TotalSteps: 1,
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestTabLibraryCRUD(t *testing.T) {
	assert := assert.New(t)

	resp := doJSON(t, http.MethodPost, "/tabs", model.TabRequestBody{Name: "riff", Text: testTab})
	assert.Equal(201, resp.StatusCode)
	created := decodeBody[model.Tab](t, resp)
	assert.NotEmpty(created.ID)

	resp = doJSON(t, http.MethodGet, "/tabs/"+created.ID, nil)
	assert.Equal(200, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, "/tabs/"+created.ID, model.TabRequestBody{Name: "renamed"})
	assert.Equal(200, resp.StatusCode)
	updated := decodeBody[model.Tab](t, resp)
	assert.Equal("renamed", updated.Name)

	resp = doJSON(t, http.MethodGet, "/tabs", nil)
	assert.Equal(200, resp.StatusCode)
	tabs := decodeBody[[]model.Tab](t, resp)
	assert.NotEmpty(tabs)

	resp = doJSON(t, http.MethodDelete, "/tabs/"+created.ID, nil)
	assert.Equal(204, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, "/tabs/"+created.ID, nil)
	assert.Equal(404, resp.StatusCode)
}
