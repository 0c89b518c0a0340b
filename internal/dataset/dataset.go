// Package dataset reads the passenger manifest from its published CSV
// form (the Kaggle "train.csv" layout).
//
// Columns are matched by header name, so their order does not matter:
//
//	PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
//
// PassengerId, Survived, Pclass, Name and Sex are required. Empty Age,
// Cabin and Embarked cells are read as unknown (nil).
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/validation"
)

var requiredColumns = []string{"PassengerId", "Survived", "Pclass", "Name", "Sex"}

var passengerValidator = validation.New[types.Passenger]()

// LoadFile opens path and reads it with Read.
func LoadFile(ctx context.Context, path string) ([]types.Passenger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.LoadFile: %w", err)
	}
	defer f.Close()

	passengers, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dataset.LoadFile %s: %w", path, err)
	}
	return passengers, nil
}

// Read parses every row of r. The first error aborts the read and names
// the offending line.
func Read(ctx context.Context, r io.Reader) ([]types.Passenger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	passengers := make([]types.Passenger, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		p, err := parseRow(row{record: record, cols: cols})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		failures, err := passengerValidator.Validate(ctx, p)
		if err != nil {
			return nil, err
		}
		if len(failures) > 0 {
			return nil, fmt.Errorf("line %d: %s", line, failures[0].Message)
		}

		passengers = append(passengers, p)
	}

	return passengers, nil
}

// row gives by-name access to one CSV record.
type row struct {
	record []string
	cols   map[string]int
}

func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func parseRow(r row) (types.Passenger, error) {
	var (
		p   types.Passenger
		err error
	)

	if p.ID, err = strconv.ParseInt(r.get("PassengerId"), 10, 64); err != nil {
		return p, fmt.Errorf("PassengerId: %w", err)
	}
	if p.Survived, err = strconv.ParseBool(r.get("Survived")); err != nil {
		return p, fmt.Errorf("Survived: %w", err)
	}
	if p.Class, err = strconv.Atoi(r.get("Pclass")); err != nil {
		return p, fmt.Errorf("Pclass: %w", err)
	}
	p.Name = r.get("Name")
	p.Sex = strings.ToLower(r.get("Sex"))

	if v := r.get("Age"); v != "" {
		age, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("Age: %w", err)
		}
		p.Age = &age
	}
	if p.SibSp, err = atoiOrZero(r.get("SibSp")); err != nil {
		return p, fmt.Errorf("SibSp: %w", err)
	}
	if p.Parch, err = atoiOrZero(r.get("Parch")); err != nil {
		return p, fmt.Errorf("Parch: %w", err)
	}
	p.Ticket = r.get("Ticket")
	if v := r.get("Fare"); v != "" {
		if p.Fare, err = strconv.ParseFloat(v, 64); err != nil {
			return p, fmt.Errorf("Fare: %w", err)
		}
	}
	p.Cabin = optional(r.get("Cabin"))
	p.Embarked = optional(r.get("Embarked"))

	return p, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
