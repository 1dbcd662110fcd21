package background

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frilo-app/frilo-api/schema"
)

const pushTimeout = 30 * time.Second

// PushNotification is the worker side of PushNotificationTask
func (m *BackgroundManager) PushNotification(payload string) error {
	var n schema.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("malformed push payload")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	return m.pusher.Push(ctx, &n)
}

// ReconcileCategories fixes category counters that drifted from the
// number of active help points
func (m *BackgroundManager) ReconcileCategories() error {
	changed, err := m.store.ReconcileHelpPointsCounts()
	if err != nil {
		return err
	}

	log.WithField("prefix", logPrefix).WithField("changed", changed).Info("category counts reconciled")
	return nil
}
