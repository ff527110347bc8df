package setup

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/config"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/database/inmemory"
	"github.com/the127/attestate/internal/services/clock"
)

// Database registers the workspace. Every scope shares one database
// context, so commands sent within a scope form a single unit of work.
func Database(dc *ioc.DependencyCollection, c config.DatabaseConfig, clockService clock.Service) database.Database {
	db := connectToDatabase(c, clockService)

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) database.Factory {
		return database.NewDbFactory(db)
	})

	ioc.RegisterScoped(dc, func(dp *ioc.DependencyProvider) database.Context {
		dbContext, err := ioc.GetDependency[database.Factory](dp).NewDbContext(context.Background())
		if err != nil {
			panic(fmt.Errorf("failed to create database context: %w", err))
		}
		return dbContext
	})

	return db
}

func connectToDatabase(c config.DatabaseConfig, clockService clock.Service) database.Database {
	switch c.Mode {
	case config.DatabaseModeInMemory:
		return inmemory.NewInMemoryDatabase(clockService)

	default:
		panic(fmt.Errorf("unsupported database mode: %s", c.Mode))
	}
}
