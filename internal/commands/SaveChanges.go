package commands

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/middlewares"
)

type SaveChanges struct{}

type SaveChangesResponse struct{}

func HandleSaveChanges(ctx context.Context, _ SaveChanges) (*SaveChangesResponse, error) {
	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	err := dbContext.SaveChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save changes: %w", err)
	}

	return &SaveChangesResponse{}, nil
}
