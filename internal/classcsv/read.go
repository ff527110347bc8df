package classcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/utils/modelError"
)

// Read parses a class from csv. The header columns after the fixed ones
// name the subjects of the plan. The most frequent student issue date
// becomes the class issue date and is cleared on the students that have it.
func Read(r io.Reader, p Params) (*model.Class, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	head, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header: %w", modelError.ErrInvalidFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(head) < fixedColumns {
		return nil, fmt.Errorf("too few columns in header: %d: %w", len(head), modelError.ErrInvalidFormat)
	}

	subjects := make([]*model.Subject, 0, len(head)-fixedColumns)
	for _, name := range head[fixedColumns:] {
		subjects = append(subjects, model.NewSubjectFromDB(ids.Generate(), strings.TrimSpace(name), ""))
	}

	plan, err := model.NewSubjectsPlanFromDB(ids.Generate(), "", subjects)
	if err != nil {
		return nil, err
	}

	var rows []model.StudentData
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if len(record) != len(head) {
			return nil, fmt.Errorf("line %d has %d columns, expected %d: %w", line, len(record), len(head), modelError.ErrInvalidFormat)
		}

		rows = append(rows, parseStudent(record, subjects, p))
	}

	issueDate := mostFrequentIssueDate(rows)
	students := make([]*model.Student, len(rows))
	for i, data := range rows {
		if issueDate != nil && data.IssueDate != nil && *data.IssueDate == *issueDate {
			data.IssueDate = nil
		}
		students[i] = model.NewStudentFromDB(ids.Generate(), data)
	}

	c, err := model.NewClassFromDB(ids.Generate(), model.ClassData{
		IssueDate: issueDate,
	}, students, plan)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debugf("read class with %d students and %d subjects", len(students), len(subjects))
	return c, nil
}

func ReadFile(path string, p Params) (*model.Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return c, nil
}

func parseStudent(record []string, subjects []*model.Subject, p Params) model.StudentData {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	values := make(map[ids.OID]grades.Value)
	for i, subject := range subjects {
		v := record[fixedColumns+i]
		if v != "" {
			values[subject.GetId().OID()] = grades.Value(v)
		}
	}

	var birthDate civil.Date
	if d := parseDate(record[posBirthDate], p.DateFormat); d != nil {
		birthDate = *d
	}

	return model.StudentData{
		FamilyName:   record[posFamilyName],
		Name:         record[posName],
		ParentalName: record[posParentalName],
		BirthDate:    birthDate,
		Grades:       model.NewSubjectsGrades(values),
		AttestateId:  record[posAttestateId],
		IssueDate:    parseDate(record[posIssueDate], p.DateFormat),
	}
}

func parseDate(value string, layout string) *civil.Date {
	if value == "" {
		return nil
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		logging.Logger.Debugf("ignoring date %q: %s", value, err)
		return nil
	}

	d := civil.DateOf(t)
	return &d
}

// mostFrequentIssueDate picks the earliest of the most frequent dates.
func mostFrequentIssueDate(rows []model.StudentData) *civil.Date {
	counts := make(map[civil.Date]int)
	for _, r := range rows {
		if r.IssueDate != nil {
			counts[*r.IssueDate]++
		}
	}

	var result *civil.Date
	best := 0
	for d, n := range counts {
		if n > best || (n == best && d.Before(*result)) {
			date := d
			result = &date
			best = n
		}
	}

	return result
}
