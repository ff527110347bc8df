package commands

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/classcsv"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/utils/validate"
)

type ImportClass struct {
	Path       string `validate:"required"`
	Label      string
	Delimiter  rune   `validate:"required"`
	DateFormat string `validate:"required"`
}

type ImportClassResponse struct {
	ClassId       ids.ID
	PlanId        ids.ID
	StudentsCount int
	SubjectsCount int
}

// HandleImportClass reads a class file and adds the class and its plan to
// the workspace. The result is stored on the next SaveChanges.
func HandleImportClass(ctx context.Context, command ImportClass) (*ImportClassResponse, error) {
	err := validate.Validate(command)
	if err != nil {
		return nil, err
	}

	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	class, err := classcsv.ReadFile(command.Path, classcsv.Params{
		Delimiter:  command.Delimiter,
		DateFormat: command.DateFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import class: %w", err)
	}

	if command.Label != "" {
		class.SetClassId(command.Label)
	}

	plan := class.GetSubjectsPlan()
	dbContext.SubjectsPlans().Insert(plan)
	dbContext.Classes().Insert(class)

	logging.Logger.Infof("imported class %s from %s", class.GetId(), command.Path)

	return &ImportClassResponse{
		ClassId:       class.GetId(),
		PlanId:        plan.GetId(),
		StudentsCount: class.StudentsCount(),
		SubjectsCount: plan.SubjectsCount(),
	}, nil
}
