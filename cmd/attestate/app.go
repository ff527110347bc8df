package main

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/avast/retry-go"
	"github.com/the127/attestate/internal/commands"
	"github.com/the127/attestate/internal/config"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/services/clock"
	"github.com/the127/attestate/internal/setup"
)

var provider *ioc.DependencyProvider

func initApp() {
	dc := ioc.NewDependencyCollection()

	clockService := clock.NewSystemService()
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) clock.Service {
		return clockService
	})

	database := setup.Database(dc, config.C.Database, clockService)

	err := retry.Do(
		func() error {
			return database.Migrate()
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			logging.Logger.Warnf("failed to migrate workspace: %s, retrying in 1 second", err)
		}),
	)
	if err != nil {
		logging.Logger.Panicf("failed to migrate workspace: %s", err)
	}

	setup.Mediator(dc)

	provider = dc.BuildProvider()
}

// run executes f inside a fresh scope.
func run(ctx context.Context, name string, f middlewares.RunFunc) error {
	return middlewares.Chain(f,
		middlewares.RecoverMiddleware(),
		middlewares.LoggingMiddleware(name),
		middlewares.ScopeMiddleware(provider),
	)(ctx)
}

// importAndSave imports a class file into the workspace and stores it.
func importAndSave(ctx context.Context, path string, label string) (ids.ID, error) {
	mediator := ioc.GetDependency[mediatr.Mediator](middlewares.GetScope(ctx))

	delimiter, dateFormat := csvParams()
	imported, err := mediatr.Send[*commands.ImportClassResponse](ctx, mediator, commands.ImportClass{
		Path:       path,
		Label:      label,
		Delimiter:  delimiter,
		DateFormat: dateFormat,
	})
	if err != nil {
		return ids.Empty, err
	}

	_, err = mediatr.Send[*commands.SaveChangesResponse](ctx, mediator, commands.SaveChanges{})
	if err != nil {
		return ids.Empty, err
	}

	return imported.ClassId, nil
}

// csvParams reads the csv section of the configuration. config.Init has
// already checked that the delimiter is a single character.
func csvParams() (rune, string) {
	delimiter, _ := utf8.DecodeRuneInString(config.C.Csv.Delimiter)
	return delimiter, config.C.Csv.DateFormat
}
