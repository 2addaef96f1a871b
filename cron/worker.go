package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"schedly/config"
	hoursRepo "schedly/database/repository/hours"
	"schedly/services/availability"
	"schedly/utils"

	"github.com/hibiken/asynq"
)

const (
	// TypePrewarmSweep fans out one prewarm task per known tenant.
	TypePrewarmSweep = "availability:prewarm:sweep"
	// TypePrewarmTenant computes tomorrow's availability for one tenant,
	// warming the Redis response cache before the morning traffic.
	TypePrewarmTenant = "availability:prewarm:tenant"
)

// PrewarmPayload identifies one tenant/date pair to warm.
type PrewarmPayload struct {
	TenantID string `json:"tenantId"`
	Date     string `json:"date"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPrewarmWorker runs the async worker in background.
func InitPrewarmWorker(availSvc availability.AvailabilityService, hours hoursRepo.BusinessHoursRepository) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: config.AppConfig.WorkerConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePrewarmSweep, handleSweepTask(hours))
	mux.HandleFunc(TypePrewarmTenant, handleTenantTask(availSvc))

	go func() {
		log.Println("[PrewarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PrewarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PrewarmWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// StartPrewarmScheduler registers the nightly sweep on the configured cron spec.
func StartPrewarmScheduler() {
	scheduler := asynq.NewScheduler(redisOpt(), &asynq.SchedulerOpts{})
	task := asynq.NewTask(TypePrewarmSweep, nil)
	if _, err := scheduler.Register(config.AppConfig.PrewarmCronSpec, task); err != nil {
		log.Printf("[PrewarmScheduler] failed to register sweep: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[PrewarmScheduler] scheduler stopped: %v", err)
		}
	}()
}

// EnqueuePrewarm queues a single tenant/date warm-up.
func EnqueuePrewarm(client *asynq.Client, tenantID, date string) error {
	payload, err := json.Marshal(PrewarmPayload{TenantID: tenantID, Date: date})
	if err != nil {
		return err
	}
	_, err = client.Enqueue(asynq.NewTask(TypePrewarmTenant, payload), asynq.MaxRetry(3))
	return err
}

func handleSweepTask(hours hoursRepo.BusinessHoursRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		tenantIDs, err := hours.ListTenantIDs(ctx)
		if err != nil {
			return err
		}

		client := asynq.NewClient(redisOpt())
		defer client.Close()

		tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
		for _, tenantID := range tenantIDs {
			if err := EnqueuePrewarm(client, tenantID, tomorrow); err != nil {
				log.Printf("[PrewarmWorker] failed to enqueue tenant %s: %v", tenantID, err)
			}
		}
		log.Printf("[PrewarmWorker] sweep enqueued %d tenants for %s", len(tenantIDs), tomorrow)
		return nil
	}
}

func handleTenantTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PrewarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PrewarmWorker] invalid payload: %v", err)
			return err
		}

		// Generate populates the response cache as a side effect.
		if _, err := availSvc.Generate(ctx, availability.Request{TenantID: p.TenantID, Date: p.Date}); err != nil {
			log.Printf("[PrewarmWorker] failed to prewarm tenant %s date %s: %v", p.TenantID, p.Date, err)
			return err
		}
		return nil
	}
}
