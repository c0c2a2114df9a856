package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mealtrace/mealtrace/internal/repository"
)

// Service is a tiny façade over the order repository that produces XLSX
// bytes for exports.
type Service struct {
	ordersRepo repository.OrderRepository
	logger     *slog.Logger
}

func NewService(ordersRepo repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ordersRepo: ordersRepo, logger: logger}
}

// ExportOrdersXLSX returns an XLSX workbook (as bytes) for the given user
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all orders for the user.
func (s *Service) ExportOrdersXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.ordersRepo.ListOrders(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Order Date",
		"Order Time",
		"Restaurant",
		"Dishes",
		"Total Calories",
		"Total Price",
		"Contains Estimates",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range orders {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, o.OrderedAt.Format("2006-01-02"))
		// Exact midnight means the source mail had no order time.
		if o.OrderedAt.Hour() != 0 || o.OrderedAt.Minute() != 0 {
			write(2, o.OrderedAt.Format("15:04"))
		} else {
			write(2, "")
		}
		write(3, o.RestaurantName)

		names := make([]string, len(o.Dishes))
		for i, d := range o.Dishes {
			if d.Quantity > 1 {
				names[i] = fmt.Sprintf("%s x%d", d.Name, d.Quantity)
			} else {
				names[i] = d.Name
			}
		}
		write(4, strings.Join(names, ", "))

		if o.TotalCalories != nil {
			write(5, *o.TotalCalories)
		} else {
			write(5, "")
		}
		if o.TotalPrice != nil {
			write(6, *o.TotalPrice)
		} else {
			write(6, "")
		}
		if o.HasEstimates {
			write(7, "yes")
		} else {
			write(7, "no")
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("orders exported",
		"user_id", userID,
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
