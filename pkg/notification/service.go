package notification

import (
	"context"
	"errors"
	"time"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	// ExpiryStore is the read-only inventory view the notifier consumes.
	ExpiryStore interface {
		GetExpiringBetween(ctx context.Context, start, end time.Time) ([]*entities.FoodItem, error)
		GetExpiringBetweenForUser(ctx context.Context, userID uint, start, end time.Time) ([]*entities.FoodItem, error)
		GetExpiringOn(ctx context.Context, userID uint, day time.Time) ([]*entities.FoodItem, error)
	}

	// UserStore is the read-only recipient view the notifier consumes.
	UserStore interface {
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]entities.User, error)
	}

	NotificationService interface {
		NotifyUser(ctx context.Context, userID uint) (domain.NotifyUserResponse, error)
		RunExpiringSoonJob(ctx context.Context)
		RunExpiringTodayJob(ctx context.Context)
	}

	notificationService struct {
		foodRepository ExpiryStore
		userRepository UserStore
		dispatcher     *Dispatcher
		location       *time.Location
		now            func() time.Time
	}
)

// soonWindowDays is the inclusive lookahead of the proactive alert window.
const soonWindowDays = 2

func NewNotificationService(foodRepository ExpiryStore, userRepository UserStore, dispatcher *Dispatcher, location *time.Location) NotificationService {
	return &notificationService{
		foodRepository: foodRepository,
		userRepository: userRepository,
		dispatcher:     dispatcher,
		location:       location,
		now:            time.Now,
	}
}

// today returns the current calendar date in the alert timezone, normalized
// to UTC midnight to match how expiry dates are stored.
func (s *notificationService) today() time.Time {
	n := s.now().In(s.location)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// NotifyUser runs the soon-window policy for a single user on demand.
// A user with nothing expiring gets a no-items outcome, not an error.
func (s *notificationService) NotifyUser(ctx context.Context, userID uint) (domain.NotifyUserResponse, error) {
	if userID == 0 {
		return domain.NotifyUserResponse{}, domain.ErrInvalidUserID
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotifyUserResponse{}, domain.ErrUserNotFound
		}
		return domain.NotifyUserResponse{}, err
	}

	if !domain.PhonePattern.MatchString(u.Phone) {
		return domain.NotifyUserResponse{}, domain.ErrInvalidPhone
	}

	today := s.today()
	items, err := s.foodRepository.GetExpiringBetweenForUser(ctx, userID, today, today.AddDate(0, 0, soonWindowDays))
	if err != nil {
		return domain.NotifyUserResponse{}, err
	}
	if len(items) == 0 {
		return domain.NotifyUserResponse{Status: domain.NotifyStatusNoItems}, nil
	}

	result, err := s.send(ctx, u.Phone, BuildAlertText(toAlertItems(items), u.Name, s.now()))
	if err != nil {
		return domain.NotifyUserResponse{}, err
	}
	if result.Skipped {
		return domain.NotifyUserResponse{Status: domain.NotifyStatusSkipped}, nil
	}
	return domain.NotifyUserResponse{
		Status:     domain.NotifyStatusSent,
		Channel:    result.Channel,
		MessageSID: result.MessageSID,
	}, nil
}

// RunExpiringSoonJob alerts every user owning items that expire within the
// soon window. Users with nothing qualifying are silently omitted; per-user
// dispatch failures do not stop the batch.
func (s *notificationService) RunExpiringSoonJob(ctx context.Context) {
	today := s.today()
	items, err := s.foodRepository.GetExpiringBetween(ctx, today, today.AddDate(0, 0, soonWindowDays))
	if err != nil {
		log.Errorf("expiring-soon job: inventory query failed: %v", err)
		return
	}
	if len(items) == 0 {
		log.Info("expiring-soon job: no items expiring within the next 2 days")
		return
	}

	for _, group := range groupByUser(items) {
		if !domain.PhonePattern.MatchString(group.Phone) {
			log.Warnf("expiring-soon job: skipping user %d, invalid phone %q", group.UserID, group.Phone)
			continue
		}
		log.Infof("expiring-soon job: alerting user %d (%s) for %d item(s)", group.UserID, group.Phone, len(group.Items))
		if _, err := s.send(ctx, group.Phone, BuildAlertText(group.Items, group.Name, s.now())); err != nil {
			log.Errorf("expiring-soon job: user %d: %v", group.UserID, err)
		}
	}
}

// RunExpiringTodayJob iterates every user and sends either the itemized alert
// for items expiring exactly today or the distinct nothing-expiring
// confirmation. Per-user errors are logged and the batch continues.
func (s *notificationService) RunExpiringTodayJob(ctx context.Context) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Errorf("expiring-today job: user query failed: %v", err)
		return
	}
	if len(users) == 0 {
		log.Info("expiring-today job: no users registered")
		return
	}

	today := s.today()
	for _, u := range users {
		if !domain.PhonePattern.MatchString(u.Phone) {
			log.Warnf("expiring-today job: skipping user %d, invalid phone %q", u.ID, u.Phone)
			continue
		}

		items, err := s.foodRepository.GetExpiringOn(ctx, u.ID, today)
		if err != nil {
			log.Errorf("expiring-today job: user %d: inventory query failed: %v", u.ID, err)
			continue
		}

		var text string
		if len(items) == 0 {
			text = BuildNothingExpiringText(u.Name)
		} else {
			text = BuildAlertText(toAlertItems(items), u.Name, s.now())
		}
		if _, err := s.send(ctx, u.Phone, text); err != nil {
			log.Errorf("expiring-today job: user %d: %v", u.ID, err)
		}
	}
}

// send attaches freshly computed template variables so they reflect the send
// instant, then hands the payload to the dispatcher.
func (s *notificationService) send(ctx context.Context, phone, text string) (DispatchResult, error) {
	payload := AlertPayload{
		Text:         text,
		TemplateVars: TemplateVariables(s.now().In(s.location)),
	}
	return s.dispatcher.Dispatch(ctx, phone, payload)
}

func toAlertItems(items []*entities.FoodItem) []AlertItem {
	out := make([]AlertItem, 0, len(items))
	for _, i := range items {
		out = append(out, AlertItem{ItemName: i.ItemName, Category: i.Category, ExpiryDate: i.ExpiryDate})
	}
	return out
}

// groupByUser folds items ordered by user id into per-user groups, keeping
// the per-user expiry ordering from the query. Items whose owner was not
// joined are dropped with a warning.
func groupByUser(items []*entities.FoodItem) []ExpiryGroup {
	var groups []ExpiryGroup
	for _, item := range items {
		if item.User == nil {
			log.Warnf("skipping item %d: owner %d not found", item.ID, item.UserID)
			continue
		}
		if len(groups) == 0 || groups[len(groups)-1].UserID != item.UserID {
			groups = append(groups, ExpiryGroup{
				UserID: item.UserID,
				Name:   item.User.Name,
				Phone:  item.User.Phone,
			})
		}
		last := &groups[len(groups)-1]
		last.Items = append(last.Items, AlertItem{ItemName: item.ItemName, Category: item.Category, ExpiryDate: item.ExpiryDate})
	}
	return groups
}
