package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
)

// getState writes the state's records as JSON lines. An unknown state code
// is not an error, the body is just empty.
func getState(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)

	datasetName := box.GetUrlParameter(ctx, "datasetName")
	stateCode := box.GetUrlParameter(ctx, "stateCode")

	records, err := s.Lookup(datasetName, stateCode)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/x-ndjson")

	for _, rec := range records {
		err := json2.MarshalWrite(w, rec)
		if err != nil {
			return err
		}
		w.Write([]byte("\n"))
	}

	return nil
}
