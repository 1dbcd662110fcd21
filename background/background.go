package background

const (
	logPrefix = "background"

	DefaultQueue = "frilo_background"

	// PushNotificationTask delivers a stored notification to devices. Its
	// single argument is the notification encoded as json.
	PushNotificationTask = "push_notification"
	// ReconcileCategoriesTask recomputes the help point count of categories
	ReconcileCategoriesTask = "reconcile_categories"
)
