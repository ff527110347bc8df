package classcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/model"
)

// Write stores the class as csv. Students without their own issue date get
// the class issue date.
func Write(w io.Writer, c *model.Class, p Params) error {
	writer := csv.NewWriter(w)
	writer.Comma = p.Delimiter

	plan := c.GetSubjectsPlan()
	head := header()
	var subjects []*model.Subject
	if plan != nil {
		subjects = plan.Subjects()
	}
	for _, s := range subjects {
		head = append(head, s.GetName())
	}

	err := writer.Write(head)
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range c.Students() {
		err := writer.Write(studentRecord(c, s, subjects, p))
		if err != nil {
			return fmt.Errorf("writing student %d: %w", i, err)
		}
	}

	writer.Flush()
	err = writer.Error()
	if err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	logging.Logger.Debugf("wrote class with %d students", c.StudentsCount())
	return nil
}

func WriteFile(path string, c *model.Class, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	err = Write(f, c, p)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

func studentRecord(c *model.Class, s *model.Student, subjects []*model.Subject, p Params) []string {
	issueDate := s.GetIssueDate()
	if issueDate == nil {
		issueDate = c.GetIssueDate()
	}

	birthDate := s.GetBirthDate()
	record := make([]string, fixedColumns, fixedColumns+len(subjects))
	record[posAttestateId] = s.GetAttestateId()
	record[posIssueDate] = formatDate(issueDate, p.DateFormat)
	record[posFamilyName] = s.GetFamilyName()
	record[posName] = s.GetName()
	record[posParentalName] = s.GetParentalName()
	record[posBirthDate] = formatDate(&birthDate, p.DateFormat)

	for _, subject := range subjects {
		v, _ := s.Grades().Value(subject.GetId())
		record = append(record, string(v))
	}

	return record
}

func formatDate(d *civil.Date, layout string) string {
	if d == nil || !d.IsValid() {
		return ""
	}

	return d.In(time.UTC).Format(layout)
}
