package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ops/backend/internal/integration/persistence/model"
)

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following shifts exist:$`, theFollowingShiftsExist)
	ctx.Step(`^the following movements exist:$`, theFollowingMovementsExist)
}

func theFollowingShiftsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		var number int
		if _, err := fmt.Sscanf(row["number"], "%d", &number); err != nil {
			return fmt.Errorf("invalid shift number '%s'", row["number"])
		}
		shift := &model.ShiftModel{
			Number:      number,
			Name:        row["name"],
			WindowStart: row["window_start"],
			WindowEnd:   row["window_end"],
		}
		if err := tc.db.Create(shift).Error; err != nil {
			return fmt.Errorf("failed to seed shift: %w", err)
		}
	}
	return nil
}

func theFollowingMovementsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		occurredAt, err := time.Parse("2006-01-02 15:04", row["occurred_at"])
		if err != nil {
			return fmt.Errorf("invalid occurred_at '%s': %w", row["occurred_at"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount '%s': %w", row["amount"], err)
		}

		var shift *int
		if raw, ok := row["shift"]; ok && raw != "" {
			var number int
			if _, err := fmt.Sscanf(raw, "%d", &number); err != nil {
				return fmt.Errorf("invalid shift '%s'", raw)
			}
			shift = &number
		}

		paymentType := row["payment_type"]
		if paymentType == "" {
			paymentType = "cash"
		}

		movement := &model.MovementModel{
			ID:          uuid.New(),
			Type:        row["type"],
			Currency:    row["currency"],
			PaymentType: paymentType,
			Amount:      amount,
			OccurredAt:  occurredAt,
			Shift:       shift,
			UserName:    row["user"],
			Concept:     row["concept"],
		}
		if err := tc.db.Create(movement).Error; err != nil {
			return fmt.Errorf("failed to seed movement: %w", err)
		}
	}
	return nil
}

// tableRows converts a godog table with a header row into column-keyed maps.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, tableRow := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range tableRow.Cells {
			if i < len(header) {
				row[header[i]] = cell.Value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
