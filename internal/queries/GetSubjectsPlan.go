package queries

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/repositories"
	"github.com/the127/attestate/internal/utils/modelError"
)

type GetSubjectsPlan struct {
	ClassId ids.ID
}

type GetSubjectsPlanResponse struct {
	Id       ids.ID
	Name     string
	Subjects []SubjectInfo
}

type SubjectInfo struct {
	Id            ids.ID
	Name          string
	ShortenedName string
}

func HandleGetSubjectsPlan(ctx context.Context, query GetSubjectsPlan) (*GetSubjectsPlanResponse, error) {
	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	class, err := dbContext.Classes().Single(ctx, repositories.NewClassFilter().ById(query.ClassId))
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	plan := class.GetSubjectsPlan()
	if plan == nil {
		return nil, fmt.Errorf("class %s has no plan: %w", query.ClassId, modelError.ErrSubjectsPlanNotFound)
	}

	subjects := plan.Subjects()
	infos := make([]SubjectInfo, len(subjects))
	for i, s := range subjects {
		infos[i] = SubjectInfo{
			Id:            s.GetId(),
			Name:          s.GetName(),
			ShortenedName: s.GetShortenedName(),
		}
	}

	return &GetSubjectsPlanResponse{
		Id:       plan.GetId(),
		Name:     plan.GetName(),
		Subjects: infos,
	}, nil
}
