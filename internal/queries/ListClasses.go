package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/repositories"
)

type ListClasses struct {
	Label string
}

type ListClassesResponse struct {
	Items []ListClassesResponseItem
	Count int
}

type ListClassesResponseItem struct {
	Id            ids.ID
	Label         string
	StudentsCount int
	SavedAt       time.Time
}

func HandleListClasses(ctx context.Context, query ListClasses) (*ListClassesResponse, error) {
	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	filter := repositories.NewClassFilter()
	if query.Label != "" {
		filter = filter.ByLabel(query.Label)
	}

	classes, count, err := dbContext.Classes().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	items := make([]ListClassesResponseItem, len(classes))
	for i, class := range classes {
		savedAt, err := dbContext.Classes().SavedAt(ctx, class.GetId())
		if err != nil {
			return nil, fmt.Errorf("failed to get class save time: %w", err)
		}

		items[i] = ListClassesResponseItem{
			Id:            class.GetId(),
			Label:         class.GetClassId(),
			StudentsCount: class.StudentsCount(),
			SavedAt:       savedAt,
		}
	}

	return &ListClassesResponse{
		Items: items,
		Count: count,
	}, nil
}
