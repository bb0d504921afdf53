package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/hoodca/statedb/service"
)

func getDataset(ctx context.Context) (*service.DatasetSummary, error) {

	s := GetServicer(ctx)

	datasetName := box.GetUrlParameter(ctx, "datasetName")

	summary, err := s.GetDataset(datasetName)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
