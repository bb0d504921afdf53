package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/hoodca/statedb/service"
	"github.com/hoodca/statedb/statics"
)

func Build(s service.Servicer, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		injectServicer(s),
	)

	v1.Resource("/version").
		WithActions(
			box.Get(func() string {
				return version
			}),
		)

	v1.Resource("/datasets").
		WithActions(
			box.Get(listDatasets),
		)

	v1.Resource("/datasets/{datasetName}").
		WithActions(
			box.Get(getDataset),
			box.ActionPost(find),
		)

	v1.Resource("/datasets/{datasetName}/states").
		WithActions(
			box.Get(listStates),
		)

	v1.Resource("/datasets/{datasetName}/states/{stateCode}").
		WithActions(
			box.Get(getState),
		)

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
