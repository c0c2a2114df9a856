// Package server exposes the pipeline and reporting services over gRPC.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/mealtrace/mealtrace/gen/proto/mealtrace/v1"
	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/export"
	"github.com/mealtrace/mealtrace/internal/mailbox"
	"github.com/mealtrace/mealtrace/internal/pipeline"
	"github.com/mealtrace/mealtrace/internal/report"
	"github.com/mealtrace/mealtrace/internal/repository"
)

type MealtraceServer struct {
	v1.UnimplementedMealtraceServiceServer
	users       repository.UserRepository
	orders      repository.OrderRepository
	processor   *pipeline.Processor
	reports     *report.Service
	exporter    *export.Service
	mailSource  mailbox.Source
	syncWorkers int
	logger      *slog.Logger
}

func NewMealtraceServer(
	users repository.UserRepository,
	orders repository.OrderRepository,
	processor *pipeline.Processor,
	reports *report.Service,
	exporter *export.Service,
	mailSource mailbox.Source,
	syncWorkers int,
	logger *slog.Logger,
) *MealtraceServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MealtraceServer{
		users:       users,
		orders:      orders,
		processor:   processor,
		reports:     reports,
		exporter:    exporter,
		mailSource:  mailSource,
		syncWorkers: syncWorkers,
		logger:      logger,
	}
}

func (s *MealtraceServer) SyncMailbox(ctx context.Context, req *v1.SyncMailboxRequest) (*v1.SyncMailboxResponse, error) {
	email := strings.TrimSpace(req.GetUserEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required")
	}
	if s.mailSource == nil {
		return nil, status.Error(codes.FailedPrecondition, "no mailbox source configured")
	}

	var since time.Time
	if ad := strings.TrimSpace(req.GetAfterDate()); ad != "" {
		t, err := time.Parse("2006-01-02", ad)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "after_date must be YYYY-MM-DD")
		}
		since = t
	}

	user, err := s.users.GetOrCreateByEmail(ctx, email)
	if err != nil {
		s.logger.Error("sync.user_lookup_failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "user lookup failed")
	}

	stats, err := s.processor.SyncMailbox(ctx, user.ID, s.mailSource, since, s.syncWorkers)
	if err != nil {
		s.logger.Error("sync.failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "mailbox sync failed")
	}

	return &v1.SyncMailboxResponse{
		Fetched:     int32(stats.Fetched),
		Parsed:      int32(stats.Parsed),
		Duplicates:  int32(stats.Duplicates),
		Excluded:    int32(stats.Excluded),
		NotBills:    int32(stats.NotBills),
		Unparseable: int32(stats.Unparseable),
		Failed:      int32(stats.Failed),
	}, nil
}

func (s *MealtraceServer) ListOrders(ctx context.Context, req *v1.ListOrdersRequest) (*v1.ListOrdersResponse, error) {
	email := strings.TrimSpace(req.GetUserEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required")
	}

	fromPtr, toPtr, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetOrCreateByEmail(ctx, email)
	if err != nil {
		s.logger.Error("orders.user_lookup_failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "user lookup failed")
	}

	orders, err := s.orders.ListOrders(ctx, user.ID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("orders.list_failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "list orders failed")
	}

	out := make([]*v1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProtoOrder(o))
	}
	return &v1.ListOrdersResponse{Orders: out}, nil
}

func (s *MealtraceServer) GetHealthReport(ctx context.Context, req *v1.GetHealthReportRequest) (*v1.GetHealthReportResponse, error) {
	email := strings.TrimSpace(req.GetUserEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required")
	}

	user, err := s.users.GetOrCreateByEmail(ctx, email)
	if err != nil {
		s.logger.Error("report.user_lookup_failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "user lookup failed")
	}

	rep, err := s.reports.GetHealthReport(ctx, user.ID)
	if err != nil {
		s.logger.Error("report.failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "health report failed")
	}

	resp := &v1.GetHealthReportResponse{
		HealthIndex:       int32(rep.HealthIndex),
		CategoryBreakdown: map[string]float64{},
	}
	for cat, count := range rep.CategoryBreakdown {
		resp.CategoryBreakdown[string(cat)] = count
	}
	for _, d := range rep.DailyScores {
		resp.DailyScores = append(resp.DailyScores, &v1.DailyScore{
			Date:  d.Date.Format("2006-01-02"),
			Index: int32(d.Index),
		})
	}
	if rep.Narrative != nil {
		n := &v1.Narrative{
			OneLiner:         rep.Narrative.OneLiner,
			Lacking:          rep.Narrative.Lacking,
			MonthlyNarrative: rep.Narrative.MonthlyNarrative,
		}
		for _, item := range rep.Narrative.EatMoreOf {
			n.EatMoreOf = append(n.EatMoreOf, &v1.EatMoreOfItem{
				Item:      item.Item,
				IsHealthy: item.IsHealthy,
			})
		}
		resp.Narrative = n
	}
	return resp, nil
}

func (s *MealtraceServer) ExportOrders(ctx context.Context, req *v1.ExportOrdersRequest) (*v1.ExportOrdersResponse, error) {
	email := strings.TrimSpace(req.GetUserEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required")
	}

	fromPtr, toPtr, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetOrCreateByEmail(ctx, email)
	if err != nil {
		s.logger.Error("export.user_lookup_failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "user lookup failed")
	}

	xlsx, err := s.exporter.ExportOrdersXLSX(ctx, user.ID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "email", email, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportOrdersResponse{Xlsx: xlsx}, nil
}

func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	return fromPtr, toPtr, nil
}

func toProtoOrder(o *entity.Order) *v1.Order {
	out := &v1.Order{
		Id:             o.ID.String(),
		RestaurantName: o.RestaurantName,
		OrderedAt:      o.OrderedAt.Format(time.RFC3339),
		HasTime:        o.OrderedAt.Hour() != 0 || o.OrderedAt.Minute() != 0,
		TotalPrice:     o.TotalPrice,
		TotalCalories:  o.TotalCalories,
		HasEstimates:   o.HasEstimates,
	}
	for _, d := range o.Dishes {
		out.Dishes = append(out.Dishes, &v1.Dish{
			Id:          d.ID.String(),
			Name:        d.Name,
			Quantity:    int32(d.Quantity),
			UnitPrice:   d.UnitPrice,
			Calories:    d.Calories,
			IsEstimated: d.IsEstimated,
		})
	}
	return out
}
