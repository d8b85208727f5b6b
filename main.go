package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/PKS106552/ContactManagementSystem/cli/api"
	"github.com/PKS106552/ContactManagementSystem/cli/logger"
	"github.com/PKS106552/ContactManagementSystem/handlers"
)

const title = "Contact Management"

// set at build time with -ldflags "-X main.version=..."
var (
	version  = "dev"
	revision = ""
	created  = ""
)

// Options for the CLI. Pass flags or set `SERVICE_*` env vars, e.g. `SERVICE_PORT`.
type Options struct {
	api.ServerOptions
	api.RouterOptions
	logger.Options
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log := logger.New(&options.Options)

		store, err := api.NewStore(log)
		if err != nil {
			log.Error("failed to seed the store", "err", err)
			os.Exit(1)
		}

		srv := api.NewServer(&options.ServerOptions,
			api.NewRouter(&options.RouterOptions, title, version, revision, created, store, log),
			log,
		)
		hooks.OnStart(func() {
			log.Info("listening", "addr", srv.Addr)
			err := srv.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
		})
		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			err := srv.Shutdown(ctx)
			if err != nil {
				log.Warn("could not shutdown the server", "err", err)
			}
		})
	})

	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := humago.New(http.NewServeMux(), huma.DefaultConfig(title, version))
			huma.AutoRegister(doc, &handlers.Contacts{})
			b, err := doc.OpenAPI().YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	})

	cli.Run()
}
