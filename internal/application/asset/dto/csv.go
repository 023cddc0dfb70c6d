package dto

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ExportColumns is the CSV header written by export and expected by import.
var ExportColumns = []string{
	"asset_name",
	"description",
	"serial_number",
	"status",
	"device_type",
	"owner_location",
	"brand",
	"model",
	"operating_system",
}

func (f AssetFields) record() []string {
	return []string{
		f.AssetName,
		f.Description,
		f.SerialNumber,
		f.Status,
		f.DeviceType,
		f.OwnerLocation,
		f.Brand,
		f.Model,
		f.OperatingSystem,
	}
}

func (f *AssetFields) set(column, value string) {
	switch column {
	case "asset_name":
		f.AssetName = value
	case "description":
		f.Description = value
	case "serial_number":
		f.SerialNumber = value
	case "status":
		f.Status = value
	case "device_type":
		f.DeviceType = value
	case "owner_location":
		f.OwnerLocation = value
	case "brand":
		f.Brand = value
	case "model":
		f.Model = value
	case "operating_system":
		f.OperatingSystem = value
	}
}

func WriteCSV(w io.Writer, rows []AssetFields) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows keyed by the header line. Columns may appear in any
// order; unknown columns are ignored and asset_name is mandatory.
func ReadCSV(r io.Reader) ([]AssetFields, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV body is empty")
		}
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}
	for i, col := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
	}

	hasName := false
	for _, col := range header {
		if col == "asset_name" {
			hasName = true
		}
	}
	if !hasName {
		return nil, fmt.Errorf("CSV header must include asset_name")
	}

	var rows []AssetFields
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV at line %d: %w", line, err)
		}

		var row AssetFields
		for i, value := range record {
			if i < len(header) {
				row.set(header[i], strings.TrimSpace(value))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
