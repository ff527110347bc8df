package queries

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/repositories"
	"github.com/the127/attestate/internal/validation"
)

type ValidateClass struct {
	ClassId ids.ID
}

type ValidateClassResponse struct {
	Valid    bool
	Problems []string
}

func HandleValidateClass(ctx context.Context, query ValidateClass) (*ValidateClassResponse, error) {
	scope := middlewares.GetScope(ctx)
	dbContext := ioc.GetDependency[database.Context](scope)

	class, err := dbContext.Classes().Single(ctx, repositories.NewClassFilter().ById(query.ClassId))
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	errs := validation.ValidateClass(class)
	if errs == nil {
		return &ValidateClassResponse{Valid: true}, nil
	}

	var problems []string
	for _, p := range propertyProblems(errs.Properties) {
		problems = append(problems, "class: "+p)
	}

	for i, student := range class.Students() {
		studentErrs, ok := errs.Students[student.GetId().OID()]
		if !ok {
			continue
		}

		prefix := fmt.Sprintf("student %d (%s): ", i+1, studentName(student))
		for _, p := range propertyProblems(studentErrs.Properties) {
			problems = append(problems, prefix+p)
		}
		for _, p := range gradeProblems(class.GetSubjectsPlan(), studentErrs.Grades) {
			problems = append(problems, prefix+p)
		}
	}

	return &ValidateClassResponse{
		Valid:    false,
		Problems: problems,
	}, nil
}

func propertyProblems(errs validation.PropertyErrors) []string {
	result := make([]string, 0, len(errs))
	for property, e := range errs {
		result = append(result, fmt.Sprintf("%s is %s", property, e))
	}
	slices.Sort(result)

	return result
}

func gradeProblems(plan *model.SubjectsPlan, errs validation.GradeErrors) []string {
	if plan == nil {
		return nil
	}

	var result []string
	for _, subject := range plan.Subjects() {
		e, ok := errs[subject.GetId().OID()]
		if ok {
			result = append(result, fmt.Sprintf("grade for %s is %s", subject.GetName(), e))
		}
	}

	return result
}

func studentName(s *model.Student) string {
	return strings.Join(strings.Fields(s.GetFamilyName()+" "+s.GetName()+" "+s.GetParentalName()), " ")
}
