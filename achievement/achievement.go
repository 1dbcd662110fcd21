package achievement

import (
	_ "embed"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v2"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
	"github.com/frilo-app/frilo-api/utils"
)

const logPrefix = "achievement"

// achievements every new user starts tracking
var initialAchievementCodes = []string{"first_help_created", "first_help_done"}

var (
	ErrUnknownType = errors.New("unknown achievement type")
)

//go:embed achievements.yaml
var definitionsFile []byte

// Store is the persistence used by the engine
type Store interface {
	ListAchievements(includeHidden bool) ([]schema.Achievement, error)
	ListAchievementsByType(t schema.AchievementType) ([]schema.Achievement, error)
	GetAchievement(id primitive.ObjectID) (*schema.Achievement, error)
	GetAchievementByCode(code string) (*schema.Achievement, error)
	UpsertAchievement(a schema.Achievement) (*schema.Achievement, error)

	GetUserAchievement(userID, achievementID primitive.ObjectID) (*schema.UserAchievement, error)
	ListUserAchievements(userID primitive.ObjectID) ([]schema.UserAchievement, error)
	CreateUserAchievement(ua *schema.UserAchievement) error
	SetUserAchievementProgress(userID, achievementID primitive.ObjectID, progress int) error
	CompleteUserAchievement(userID, achievementID primitive.ObjectID, progress int) (bool, error)

	GetBadgeByCode(code string) (*schema.Badge, error)
	UpsertBadge(b schema.Badge) (*schema.Badge, error)
	AwardBadge(userID, badgeID primitive.ObjectID) (bool, error)
	ListUserBadges(userID primitive.ObjectID, limit int64) ([]schema.UserBadge, error)
	CountUserBadges(userID primitive.ObjectID) (int, error)

	GetUser(id primitive.ObjectID) (*schema.User, error)
	CreditPoints(userID primitive.ObjectID, points int) error
	AddUserBadge(userID, badgeID primitive.ObjectID) error
	AddUserAchievement(userID, achievementID primitive.ObjectID) error
	UnlockFeature(userID primitive.ObjectID, feature string) error
}

// ProgressCounter computes the current progress of a user per achievement type
type ProgressCounter interface {
	CountHelpPointsCreated(userID primitive.ObjectID) (int, error)
	CountHelpPointsCompleted(userID primitive.ObjectID) (int, error)
	CountMessagesSent(userID primitive.ObjectID) (int, error)
	CountReactionsReceived(userID primitive.ObjectID) (int, error)
	CountHelpProvided(userID primitive.ObjectID) (int, error)
}

// Notifier announces unlocked achievements
type Notifier interface {
	AddNotification(draft notification.Draft) (*schema.Notification, error)
}

// CheckResult lists the achievements a check completed, and the ones it
// started tracking without completing them
type CheckResult struct {
	Completed []schema.Achievement `json:"completedAchievements"`
	New       []schema.Achievement `json:"newAchievements"`
}

func (r *CheckResult) merge(other *CheckResult) {
	r.Completed = append(r.Completed, other.Completed...)
	r.New = append(r.New, other.New...)
}

func newCheckResult() *CheckResult {
	return &CheckResult{
		Completed: []schema.Achievement{},
		New:       []schema.Achievement{},
	}
}

type Engine struct {
	store    Store
	counter  ProgressCounter
	notifier Notifier
}

func NewEngine(store Store, counter ProgressCounter, notifier Notifier) *Engine {
	return &Engine{
		store:    store,
		counter:  counter,
		notifier: notifier,
	}
}

// GetAchievements returns every definition that is not hidden
func (e *Engine) GetAchievements() ([]schema.Achievement, error) {
	return e.store.ListAchievements(false)
}

func (e *Engine) GetUserAchievements(userID primitive.ObjectID) ([]schema.UserAchievement, error) {
	return e.store.ListUserAchievements(userID)
}

// findAchievement resolves a code first and an object id second
func (e *Engine) findAchievement(idOrCode string) (*schema.Achievement, error) {
	a, err := e.store.GetAchievementByCode(idOrCode)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, store.ErrAchievementNotFound) {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(idOrCode)
	if err != nil {
		return nil, store.ErrAchievementNotFound
	}
	return e.store.GetAchievement(id)
}

// UpdateAchievementProgress sets the progress of a user towards one
// achievement. Reaching the total completes the record and grants its
// rewards once; a completed record is never changed again.
func (e *Engine) UpdateAchievementProgress(userID primitive.ObjectID, idOrCode string, progress int) (*schema.UserAchievement, error) {
	a, err := e.findAchievement(idOrCode)
	if err != nil {
		return nil, err
	}

	if _, err := e.progress(userID, *a, progress); err != nil {
		return nil, err
	}

	ua, err := e.store.GetUserAchievement(userID, a.ID)
	if err != nil {
		return nil, err
	}
	ua.Achievement = a
	return ua, nil
}

type outcome int

const (
	unchanged outcome = iota
	created
	completed
)

// progress records progress on one achievement and reports what happened
func (e *Engine) progress(userID primitive.ObjectID, a schema.Achievement, progress int) (outcome, error) {
	ua, err := e.store.GetUserAchievement(userID, a.ID)
	switch {
	case errors.Is(err, store.ErrUserAchievementNotFound):
		if err := e.store.CreateUserAchievement(&schema.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			Progress:      progress,
		}); err != nil {
			return unchanged, err
		}
		if progress < a.Total {
			return created, nil
		}
	case err != nil:
		return unchanged, err
	case ua.IsCompleted:
		return unchanged, nil
	case progress < a.Total:
		if progress == ua.Progress {
			return unchanged, nil
		}
		return unchanged, e.store.SetUserAchievementProgress(userID, a.ID, progress)
	}

	done, err := e.store.CompleteUserAchievement(userID, a.ID, progress)
	if err != nil {
		return unchanged, err
	}
	if !done {
		// another request completed it first
		return unchanged, nil
	}

	e.applyRewards(userID, a)
	return completed, nil
}

// applyRewards grants what a completed achievement carries. Each step is
// best-effort so one failing reward does not block the others.
func (e *Engine) applyRewards(userID primitive.ObjectID, a schema.Achievement) {
	logger := log.WithFields(log.Fields{
		"prefix":         logPrefix,
		"user_id":        userID.Hex(),
		"achievement_id": a.ID.Hex(),
	})

	if err := e.store.AddUserAchievement(userID, a.ID); err != nil {
		logger.WithError(err).Error("fail to link achievement to user")
	}

	if !a.Rewards.Empty() {
		if a.Rewards.Badge != "" {
			if err := e.awardBadge(userID, a); err != nil {
				logger.WithError(err).Error("fail to award badge")
			}
		}

		if a.Rewards.Points > 0 {
			if err := e.store.CreditPoints(userID, a.Rewards.Points); err != nil {
				logger.WithError(err).Error("fail to credit points")
			}
		}

		if a.Rewards.UnlockFeature != "" {
			if err := e.store.UnlockFeature(userID, a.Rewards.UnlockFeature); err != nil {
				logger.WithError(err).Error("fail to unlock feature")
			}
		}
	}

	logger.Info("achievement completed")
	e.announce(userID, a)
}

func (e *Engine) awardBadge(userID primitive.ObjectID, a schema.Achievement) error {
	badge, err := e.store.GetBadgeByCode(a.Rewards.Badge)
	if errors.Is(err, store.ErrBadgeNotFound) {
		badge, err = e.store.UpsertBadge(schema.Badge{
			Code:          a.Rewards.Badge,
			Name:          a.Name,
			Description:   a.Description,
			Icon:          a.Icon,
			Color:         a.Color,
			AchievementID: a.ID,
		})
	}
	if err != nil {
		return err
	}

	awarded, err := e.store.AwardBadge(userID, badge.ID)
	if err != nil {
		return err
	}
	if !awarded {
		return nil
	}
	return e.store.AddUserBadge(userID, badge.ID)
}

func (e *Engine) announce(userID primitive.ObjectID, a schema.Achievement) {
	if e.notifier == nil {
		return
	}

	lang := ""
	if u, err := e.store.GetUser(userID); err == nil {
		lang = u.Language
	}

	if _, err := e.notifier.AddNotification(notification.Draft{
		UserIDs: []primitive.ObjectID{userID},
		Title:   utils.Translate(lang, "notification.achievement.heading", nil),
		Message: utils.Translate(lang, "notification.achievement.content", map[string]interface{}{"Name": a.Name}),
		Type:    schema.NotificationAchievement,
		Action: &schema.NotificationAction{
			Type: string(schema.NotificationAchievement),
			ID:   a.ID.Hex(),
		},
	}); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("fail to announce achievement")
	}
}

func (e *Engine) count(userID primitive.ObjectID, t schema.AchievementType) (int, error) {
	switch t {
	case schema.AchievementMarkersCreated:
		return e.counter.CountHelpPointsCreated(userID)
	case schema.AchievementMarkersCompleted:
		return e.counter.CountHelpPointsCompleted(userID)
	case schema.AchievementMessagesSent:
		return e.counter.CountMessagesSent(userID)
	case schema.AchievementReactionsReceived:
		return e.counter.CountReactionsReceived(userID)
	case schema.AchievementHelpProvided:
		return e.counter.CountHelpProvided(userID)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownType, t)
}

// CheckAchievementsByType recomputes the progress of every achievement of
// one type for a user
func (e *Engine) CheckAchievementsByType(userID primitive.ObjectID, t schema.AchievementType) (*CheckResult, error) {
	current, err := e.count(userID, t)
	if err != nil {
		return nil, err
	}

	achievements, err := e.store.ListAchievementsByType(t)
	if err != nil {
		return nil, err
	}

	result := newCheckResult()
	for _, a := range achievements {
		o, err := e.progress(userID, a, current)
		if err != nil {
			return nil, err
		}

		switch o {
		case completed:
			result.Completed = append(result.Completed, a)
		case created:
			result.New = append(result.New, a)
		}
	}

	return result, nil
}

var allTypes = []schema.AchievementType{
	schema.AchievementMarkersCreated,
	schema.AchievementMarkersCompleted,
	schema.AchievementMessagesSent,
	schema.AchievementReactionsReceived,
	schema.AchievementHelpProvided,
}

// CheckAllAchievements runs a check for every achievement type
func (e *Engine) CheckAllAchievements(userID primitive.ObjectID) (*CheckResult, error) {
	result := newCheckResult()
	for _, t := range allTypes {
		r, err := e.CheckAchievementsByType(userID, t)
		if err != nil {
			return nil, err
		}
		result.merge(r)
	}
	return result, nil
}

// InitializeUserAchievements starts tracking the introductory achievements
// of a new user
func (e *Engine) InitializeUserAchievements(userID primitive.ObjectID) {
	for _, code := range initialAchievementCodes {
		a, err := e.store.GetAchievementByCode(code)
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("code", code).Warn("initial achievement missing")
			continue
		}

		if err := e.store.CreateUserAchievement(&schema.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
		}); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("code", code).Error("fail to create initial achievement")
		}
	}
}

type definitions struct {
	Badges       []schema.Badge       `yaml:"badges"`
	Achievements []schema.Achievement `yaml:"achievements"`
}

// EnsureDefinitions upserts the built-in achievements and badges. A badge
// rewarded by an achievement is linked to it.
func (e *Engine) EnsureDefinitions() error {
	var defs definitions
	if err := yaml.Unmarshal(definitionsFile, &defs); err != nil {
		return err
	}

	rewardedBy := make(map[string]primitive.ObjectID)
	for _, a := range defs.Achievements {
		if !a.Type.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownType, a.Type)
		}
		saved, err := e.store.UpsertAchievement(a)
		if err != nil {
			return err
		}
		if !a.Rewards.Empty() && a.Rewards.Badge != "" {
			rewardedBy[a.Rewards.Badge] = saved.ID
		}
	}

	for _, b := range defs.Badges {
		b.AchievementID = rewardedBy[b.Code]
		if _, err := e.store.UpsertBadge(b); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"achievements": len(defs.Achievements),
		"badges":       len(defs.Badges),
	}).Info("achievement definitions ensured")
	return nil
}

// Summary is the dashboard view of a user's achievements
type Summary struct {
	BadgeCount      int            `json:"badgeCount"`
	RecentBadges    []schema.Badge `json:"recentBadges"`
	CompletedCount  int            `json:"completedCount"`
	NextAchievement *ProgressItem  `json:"nextAchievement,omitempty"`
}

// ProgressItem is an incomplete achievement and how far along it is
type ProgressItem struct {
	Achievement schema.Achievement `json:"achievement"`
	Progress    int                `json:"progress"`
	Total       int                `json:"total"`
	Ratio       float64            `json:"ratio"`
	Description string             `json:"description"`
}

// GetUserAchievementsSummary returns the badge count with the most recent
// badges, and the incomplete achievement closest to completion
func (e *Engine) GetUserAchievementsSummary(userID primitive.ObjectID) (*Summary, error) {
	count, err := e.store.CountUserBadges(userID)
	if err != nil {
		return nil, err
	}

	recent, err := e.store.ListUserBadges(userID, consts.RecentBadgesCount)
	if err != nil {
		return nil, err
	}

	records, err := e.store.ListUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		BadgeCount:   count,
		RecentBadges: make([]schema.Badge, 0, len(recent)),
	}
	for _, ub := range recent {
		if ub.Badge != nil {
			summary.RecentBadges = append(summary.RecentBadges, *ub.Badge)
		}
	}

	for _, r := range records {
		if r.IsCompleted {
			summary.CompletedCount++
			continue
		}
		if r.Achievement == nil || r.Achievement.Total <= 0 {
			continue
		}

		ratio := float64(r.Progress) / float64(r.Achievement.Total)
		if summary.NextAchievement == nil || ratio > summary.NextAchievement.Ratio {
			summary.NextAchievement = &ProgressItem{
				Achievement: *r.Achievement,
				Progress:    r.Progress,
				Total:       r.Achievement.Total,
				Ratio:       ratio,
				Description: fmt.Sprintf("%d/%d %s", r.Progress, r.Achievement.Total, r.Achievement.Description),
			}
		}
	}

	return summary, nil
}
