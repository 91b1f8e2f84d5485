package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob periodically runs an assignment pass for every courier.
// Each pass stamps the orders it hands out with one shared batch timestamp.
type OrderDispatchJob struct {
	assignHandler commands.AssignOrdersCommandHandler
	idsHandler    queries.GetCourierIDsQueryHandler
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderDispatchJob creates a job that dispatches pooled orders to couriers.
func NewOrderDispatchJob(
	assignHandler commands.AssignOrdersCommandHandler,
	idsHandler queries.GetCourierIDsQueryHandler,
	logger *slog.Logger,
) *OrderDispatchJob {
	return &OrderDispatchJob{
		assignHandler: assignHandler,
		idsHandler:    idsHandler,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the dispatch job, running a pass every second.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.runPass)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}

func (j *OrderDispatchJob) runPass() {
	ctx := context.Background()

	courierIDs, err := j.idsHandler.Handle(ctx, queries.NewGetCourierIDsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order dispatch job failed to load couriers", "error", err)
		return
	}

	for _, courierID := range courierIDs {
		cmd, cmdErr := commands.NewAssignOrdersCommand(courierID, time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order dispatch job built an invalid command",
				"courier_id", courierID, "error", cmdErr)
			continue
		}

		result, handleErr := j.assignHandler.Handle(ctx, cmd)
		if handleErr != nil {
			// A courier deleted between the roster query and the pass is
			// not a system fault.
			if !errors.Is(handleErr, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Order dispatch pass failed",
					"courier_id", courierID, "error", handleErr)
			}
			continue
		}

		if len(result.OrderIDs) > 0 {
			j.logger.InfoContext(ctx, "Orders assigned",
				"courier_id", courierID,
				"order_ids", result.OrderIDs,
				"assigned_at", result.AssignedAt)
		}
	}
}
