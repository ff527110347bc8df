package commands

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/classcsv"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/repositories"
	"github.com/the127/attestate/internal/utils/validate"
)

type ExportClass struct {
	ClassId    ids.ID
	Path       string `validate:"required"`
	Delimiter  rune   `validate:"required"`
	DateFormat string `validate:"required"`
}

type ExportClassResponse struct{}

func HandleExportClass(ctx context.Context, command ExportClass) (*ExportClassResponse, error) {
	err := validate.Validate(command)
	if err != nil {
		return nil, err
	}

	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	class, err := dbContext.Classes().Single(ctx, repositories.NewClassFilter().ById(command.ClassId))
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	err = classcsv.WriteFile(command.Path, class, classcsv.Params{
		Delimiter:  command.Delimiter,
		DateFormat: command.DateFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export class: %w", err)
	}

	return &ExportClassResponse{}, nil
}
