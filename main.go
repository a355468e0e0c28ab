package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "sahayak/app/configs"
	"sahayak/app/core/interaction/cli"
	"sahayak/app/core/interaction/gateway"
	"sahayak/app/core/interaction/http"
	"sahayak/app/core/interaction/ws"
	"sahayak/app/core/orchestrator/agent"
	"sahayak/app/core/orchestrator/reminder"
	"sahayak/app/core/orchestrator/responses"
	"sahayak/app/core/orchestrator/task"
	"sahayak/app/core/provider"
	"sahayak/app/core/queue"
	"sahayak/app/core/scheduler"
	"sahayak/app/core/sentiment"
	"sahayak/app/pkg/logger"
)

func main() {
	if err := logger.Init("output/logs"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Sahayak starting...")

	cfgManager, err := config.NewManager(config.DefaultPath())
	if err != nil {
		logger.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	cfg := cfgManager.Get()

	taskStore := task.NewStore()
	classifier := sentiment.NewLexiconClassifier()
	picker := responses.NewPicker(cfg.Agent.RandomSeed)

	completer := provider.NewOpenAIProvider(provider.Config{
		APIKey:  os.Getenv(cfg.Provider.APIKeyEnv),
		BaseURL: cfg.Provider.BaseURL,
		Model:   cfg.Provider.Model,
		Timeout: time.Duration(cfg.Provider.TimeoutSec) * time.Second,
	})

	brain := agent.NewAgent(cfg.Agent.Name, taskStore, classifier, completer, picker)

	gw := gateway.NewGateway(brain)
	gw.SetProcessingDelay(time.Duration(cfg.Server.TypingDelayMs) * time.Millisecond)

	if cfg.Trace.Enabled {
		tracer, err := gateway.NewTraceRecorder(cfg.Trace.Dir)
		if err != nil {
			logger.Error("Failed to initialize trace recorder: %v", err)
			os.Exit(1)
		}
		gw.SetTraceRecorder(tracer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobScheduler := scheduler.New()
	if err := jobScheduler.Start(ctx); err != nil {
		logger.Error("Failed to start scheduler: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := jobScheduler.Stop(3 * time.Second); err != nil {
			logger.Error("Scheduler shutdown timeout: %v", err)
		}
	}()

	reminders := reminder.NewService(taskStore, jobScheduler, gw.DeliverDirect)
	reminders.SetMaxMinutes(cfg.Reminder.MaxMinutes)
	brain.SetReminderService(reminders)

	if cfg.Queue.Enabled {
		execQueue := queue.New(cfg.Queue.Buffer)
		if err := execQueue.Start(ctx, cfg.Queue.Workers); err != nil {
			logger.Error("Failed to start queue: %v", err)
			os.Exit(1)
		}
		defer func() {
			if err := execQueue.Stop(3 * time.Second); err != nil {
				logger.Error("Queue shutdown timeout: %v", err)
			}
		}()
		gw.SetExecutionQueue(execQueue, gateway.QueueOptions{
			Enabled:        true,
			Workers:        cfg.Queue.Workers,
			EnqueueTimeout: time.Duration(cfg.Queue.EnqueueTimeoutSec) * time.Second,
			AttemptTimeout: time.Duration(cfg.Queue.AttemptTimeoutSec) * time.Second,
			MaxRetries:     cfg.Queue.MaxRetries,
			RetryDelay:     time.Duration(cfg.Queue.RetryDelayMs) * time.Millisecond,
		})
	}

	wsChannel := ws.NewServer(cfg.Server.WSPort)
	wsChannel.SetSessionEnder(gw)
	gw.RegisterChannel(wsChannel)

	httpChannel := http.NewHTTPChannel(cfg.Server.HTTPPort)
	httpChannel.SetShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second)
	httpChannel.SetStatusProvider(func(context.Context) map[string]interface{} {
		status := gw.HealthStatus()
		return map[string]interface{}{
			"agent":              status.AgentName,
			"channels":           status.RegisteredChannels,
			"processed_messages": status.ProcessedMessages,
			"queue_enabled":      status.QueueEnabled,
		}
	})
	gw.RegisterChannel(httpChannel)

	if cfg.Server.EnableCLI {
		gw.RegisterChannel(cli.NewCLIChannel(cfg.Agent.CLIUserID))
	}

	go func() {
		if err := gw.Start(ctx); err != nil {
			logger.Error("Gateway crashed: %v", err)
			os.Exit(1)
		}
	}()

	logger.Info("Sahayak is ready to serve.")
	fmt.Printf("- WebSocket Interface: ws://localhost:%d/ws\n", cfg.Server.WSPort)
	fmt.Printf("- HTTP Interface:      http://localhost:%d/api/message (POST)\n", cfg.Server.HTTPPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received signal: %v. Sahayak shutting down...", sig)
	cancel()
}
