package usecase

import (
	"sync"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/pkg/log"
	"chat-notification-srv/pkg/push"
)

const (
	DefaultWorkers            = 8
	DefaultFallbackSenderName = "Someone"
	DefaultAttachmentBody     = "Sent an attachment"
	DefaultSound              = "default"
	TitlePrefix               = "New message from "
)

// Config tunes the dispatcher.
type Config struct {
	// Workers bounds concurrent deliveries per event; 1 means sequential.
	Workers            int
	FallbackSenderName string
	AttachmentBody     string
	Sound              string
}

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	gateway push.IPush
	alertUC alert.UseCase
	cfg     Config
	clock   func() time.Time
	async   func(func())
	alerts  sync.WaitGroup
}

// New creates the fan-out use case.
func New(l log.Logger, repo repository.Repository, gateway push.IPush, alertUC alert.UseCase, cfg Config) fanout.UseCase {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.FallbackSenderName == "" {
		cfg.FallbackSenderName = DefaultFallbackSenderName
	}
	if cfg.AttachmentBody == "" {
		cfg.AttachmentBody = DefaultAttachmentBody
	}
	if cfg.Sound == "" {
		cfg.Sound = DefaultSound
	}

	uc := &implUseCase{
		l:       l,
		repo:    repo,
		gateway: gateway,
		alertUC: alertUC,
		cfg:     cfg,
		clock:   time.Now,
	}
	uc.async = uc.goTracked
	return uc
}

// goTracked runs f in a goroutine that Shutdown waits for.
func (uc *implUseCase) goTracked(f func()) {
	uc.alerts.Add(1)
	go func() {
		defer uc.alerts.Done()
		f()
	}()
}
