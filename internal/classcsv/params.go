package classcsv

// Params controls the csv dialect. DateFormat is a time layout.
type Params struct {
	Delimiter  rune
	DateFormat string
}

func DefaultParams() Params {
	return Params{
		Delimiter:  ';',
		DateFormat: "02.01.2006",
	}
}

const (
	columnAttestateId  = "Номер аттестата"
	columnIssueDate    = "Дата выдачи"
	columnFamilyName   = "Фамилия"
	columnName         = "Имя"
	columnParentalName = "Отчество"
	columnBirthDate    = "Дата рождения"
)

const (
	posAttestateId = iota
	posIssueDate
	posFamilyName
	posName
	posParentalName
	posBirthDate
	fixedColumns
)

func header() []string {
	return []string{
		columnAttestateId,
		columnIssueDate,
		columnFamilyName,
		columnName,
		columnParentalName,
		columnBirthDate,
	}
}
