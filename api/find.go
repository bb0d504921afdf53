package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"

	"github.com/hoodca/statedb/record"
)

// find runs a filtered full scan over the dataset and streams matches as
// JSON lines.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	params := struct {
		Filter map[string]interface{} `json:"filter"`
		Skip   int64                  `json:"skip"`
		Limit  int64                  `json:"limit"`
	}{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  100,
	}
	err := json.NewDecoder(r.Body).Decode(&params)
	if err != nil && err != io.EOF {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return err
	}

	s := GetServicer(ctx)
	datasetName := box.GetUrlParameter(ctx, "datasetName")

	w.Header().Set("Content-Type", "application/x-ndjson")

	return s.Find(datasetName, params.Filter, params.Skip, params.Limit, func(rec record.Record) {
		json2.MarshalWrite(w, rec) // todo: handle error
		w.Write([]byte("\n"))
	})
}
