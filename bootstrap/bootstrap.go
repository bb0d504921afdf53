package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/hoodca/statedb/api"
	"github.com/hoodca/statedb/cli"
	"github.com/hoodca/statedb/configuration"
	"github.com/hoodca/statedb/loader"
	"github.com/hoodca/statedb/record"
	"github.com/hoodca/statedb/service"
	"github.com/hoodca/statedb/store"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	forceString := c.ForceStringFields()
	if forceString == nil {
		forceString = record.DefaultForceString
	}

	extra := record.ExtraDrop
	if c.ExtraPolicy == "collect" {
		extra = record.ExtraCollect
	}

	s := store.NewStore(&store.Config{
		Dir:   c.Dir,
		Input: c.Input,
		Loader: &loader.Options{
			KeyField:      c.KeyField,
			ForceString:   forceString,
			Trim:          c.Trim,
			Extra:         extra,
			NormalizeKeys: c.NormalizeKeys,
			SortBy:        c.SortBy,
		},
	})

	if c.Interactive {
		return bootstrapConsole(c, s)
	}

	return bootstrapServer(c, s)
}

func bootstrapConsole(c *configuration.Configuration, s *store.Store) (start, stop func()) {

	stop = func() {
		s.Stop()
	}

	start = func() {
		err := s.Load()
		if err != nil {
			fmt.Println("ERROR:", err.Error())
			os.Exit(-1)
		}

		dataset := c.Dataset
		if dataset == "" {
			if len(s.Datasets) != 1 {
				fmt.Println("ERROR: choose a dataset with -dataset, loaded:", len(s.Datasets))
				os.Exit(-1)
			}
			for name := range s.Datasets {
				dataset = name
			}
		}

		console := &cli.Console{
			Servicer: service.NewService(s),
			Dataset:  dataset,
			In:       os.Stdin,
			Out:      os.Stdout,
		}
		err = console.Run()
		if err != nil {
			fmt.Println("ERROR:", err.Error())
		}
	}

	return
}

func bootstrapServer(c *configuration.Configuration, s *store.Store) (start, stop func()) {

	b := api.Build(service.NewService(s), c.Statics, VERSION)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.PrettyErrorInterceptor,
		api.InterceptorUnavailable(s),
		api.RecoverFromPanic,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		s.Stop()
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Start()
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := server.Serve(ln)
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}
