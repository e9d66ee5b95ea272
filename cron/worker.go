package cron

import (
	"context"
	"time"

	"travelagent/config"
	"travelagent/services/tasks"
	"travelagent/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the task queue DB.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingWorker runs the booking notice worker in the background and
// returns the server so the caller can shut it down.
func InitBookingWorker() *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmed(logger))

	go func() {
		logger.Info("[BookingWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Warn("[BookingWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[BookingWorker] Max retry attempts reached, booking notices disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleBookingConfirmed(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		notice, err := tasks.ParseBookingConfirmed(task)
		if err != nil {
			logger.Error("[BookingHandler] Invalid payload", zap.Error(err))
			return err
		}

		logger.Info("[BookingHandler] Booking confirmed",
			zap.Int("bookingID", notice.BookingID),
			zap.Int("userID", notice.UserID),
			zap.String("type", notice.BookingType),
			zap.String("item", notice.ItemID),
			zap.String("paymentID", notice.PaymentID))
		return nil
	}
}
