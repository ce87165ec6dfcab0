package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"supervisionlab-backend/shared/synth"
)

// ContactsCSV serializes contacts as delimited text: a leading id column
// followed by one column per property, in the fixed property order.
func ContactsCSV(contacts []synth.CRMObject) ([]byte, error) {
	return objectsCSV(contacts, synth.ContactPropertyNames, false)
}

// DealsCSV serializes deals the same way, with an additional flattened
// contact_id column carrying the first associated contact (empty when the
// deal has no contact association).
func DealsCSV(deals []synth.CRMObject) ([]byte, error) {
	return objectsCSV(deals, synth.DealPropertyNames, true)
}

func objectsCSV(objects []synth.CRMObject, propertyNames []string, withContactID bool) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := append([]string{"id"}, propertyNames...)
	if withContactID {
		header = append(header, "contact_id")
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, object := range objects {
		row := make([]string, 0, len(header))
		row = append(row, object.ID)
		for _, name := range propertyNames {
			row = append(row, object.Properties[name])
		}
		if withContactID {
			row = append(row, object.ContactID())
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadObjectsCSV parses delimited text produced by the writers above back
// into an id → column-value mapping (the id column itself is excluded from
// the inner map).
func ReadObjectsCSV(r io.Reader) (map[string]map[string]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) == 0 || header[0] != "id" {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	objects := make(map[string]map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		values := make(map[string]string, len(header)-1)
		for i := 1; i < len(header); i++ {
			values[header[i]] = row[i]
		}
		objects[row[0]] = values
	}

	return objects, nil
}
