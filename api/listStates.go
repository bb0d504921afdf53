package api

import (
	"context"

	"github.com/fulldump/box"
)

type stateEntry struct {
	State string `json:"state"`
	Total int    `json:"total"`
}

func listStates(ctx context.Context) ([]stateEntry, error) {

	s := GetServicer(ctx)

	datasetName := box.GetUrlParameter(ctx, "datasetName")

	keys, err := s.Keys(datasetName)
	if err != nil {
		return nil, err
	}

	result := []stateEntry{}
	for _, key := range keys {
		total, err := s.Count(datasetName, key)
		if err != nil {
			return nil, err
		}
		result = append(result, stateEntry{
			State: key,
			Total: total,
		})
	}

	return result, nil
}
