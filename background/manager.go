package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/frilo-app/frilo-api/notification"
)

// Store is what the background jobs need from the database
type Store interface {
	ReconcileHelpPointsCounts() (int, error)
}

// BackgroundManager runs the task worker and the scheduled jobs
type BackgroundManager struct {
	store  Store
	pusher notification.Pusher

	taskServer *machinery.Server
	worker     *machinery.Worker
	scheduler  *cron.Cron
}

func New(store Store, pusher notification.Pusher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store,
		pusher:     pusher,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task this worker processes
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.RegisterTask(PushNotificationTask, m.PushNotification); err != nil {
		return err
	}
	return m.RegisterTask(ReconcileCategoriesTask, m.ReconcileCategories)
}

// Schedule runs the category reconciliation on a cron spec
func (m *BackgroundManager) Schedule(spec string) error {
	if m.scheduler != nil {
		return errors.New("scheduler has started")
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := m.ReconcileCategories(); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Error("scheduled reconciliation failed")
		}
	}); err != nil {
		return err
	}

	c.Start()
	m.scheduler = c
	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("frilo-worker", 5)
	return m.worker.Launch()
}

func (m *BackgroundManager) Stop() {
	if m.scheduler != nil {
		<-m.scheduler.Stop().Done()
	}
	if m.worker != nil {
		m.worker.Quit()
	}
}
