package api

import (
	"context"

	"github.com/hoodca/statedb/service"
)

func listDatasets(ctx context.Context) ([]*service.DatasetSummary, error) {
	s := GetServicer(ctx)
	return s.ListDatasets(), nil
}
