package controllers_test

import (
	"context"
	"io"
	"sync"
	"time"

	"lostfound-hub/controllers"
	"lostfound-hub/models"
	"lostfound-hub/routes"
	"lostfound-hub/storage"
	"lostfound-hub/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the real route table over in-memory fakes.
func newTestRouter(items store.ItemStore, users store.UserStore, messages store.MessageStore, notifier controllers.Notifier, uploader storage.Uploader) *gin.Engine {
	if notifier == nil {
		notifier = &fakeNotifier{}
	}
	if uploader == nil {
		uploader = newFakeUploader()
	}
	h := &controllers.Handlers{
		Items:    controllers.NewItemController(items),
		Users:    controllers.NewUserController(users, notifier),
		Messages: controllers.NewMessageController(messages, notifier),
		Admin:    controllers.NewAdminController(items, users, messages),
		Upload:   controllers.NewUploadController(users, uploader),
	}
	r := gin.New()
	routes.SetupRoutes(r, h, routes.Options{CORSOrigin: "http://localhost:5173"})
	return r
}

// --- item store ---

type fakeItemStore struct {
	mu    sync.Mutex
	items []models.Item
}

func (s *fakeItemStore) List(ctx context.Context, f store.ItemFilter) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Item{}
	for _, it := range s.items {
		if f.Type != "" && it.Type != f.Type {
			continue
		}
		if f.ReportUserID != "" && it.ReportUserID != f.ReportUserID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *fakeItemStore) Create(ctx context.Context, it models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = primitive.NewObjectID()
	s.items = append(s.items, it)
	return it, nil
}

func (s *fakeItemStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			applyItemFields(&s.items[i], fields)
			return s.items[i], nil
		}
	}
	return models.Item{}, store.ErrNotFound
}

func (s *fakeItemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func applyItemFields(it *models.Item, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "name":
			it.Name, _ = v.(string)
		case "description":
			it.Description, _ = v.(string)
		case "type":
			it.Type, _ = v.(string)
		case "locationLostFound":
			it.Location, _ = v.(string)
		case "reportUserId":
			it.ReportUserID, _ = v.(string)
		case "dateLostFound":
			if t, ok := v.(time.Time); ok {
				it.DateLostFound = t
			}
		default:
			if it.Extra == nil {
				it.Extra = map[string]interface{}{}
			}
			it.Extra[k] = v
		}
	}
}

// --- user store ---

type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User{}, s.users...), nil
}

func (s *fakeUserStore) Get(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *fakeUserStore) Create(ctx context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = primitive.NewObjectID()
	s.users = append(s.users, u)
	return u, nil
}

func (s *fakeUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			applyUserFields(&s.users[i], fields)
			return s.users[i], nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *fakeUserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func applyUserFields(u *models.User, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "name":
			u.Name, _ = v.(string)
		case "email":
			u.Email, _ = v.(string)
		case "uweId":
			u.UweID, _ = v.(string)
		case "phoneNumber":
			u.PhoneNumber, _ = v.(string)
		case "avatar":
			u.Avatar, _ = v.(string)
		case "role":
			u.Role, _ = v.(string)
		case "isActive":
			if b, ok := v.(bool); ok {
				u.IsActive = b
			}
		}
	}
}

// --- message store ---

type fakeMessageStore struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (s *fakeMessageStore) Insert(ctx context.Context, m models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = primitive.NewObjectID()
	s.msgs = append(s.msgs, m)
	return m, nil
}

func (s *fakeMessageStore) Between(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Message{}
	for _, m := range s.msgs {
		if (m.SenderID == userID && m.RecipientID == otherID) ||
			(m.SenderID == otherID && m.RecipientID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) ForUser(ctx context.Context, userID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Message{}
	for _, m := range s.msgs {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) All(ctx context.Context) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message{}, s.msgs...), nil
}

func (s *fakeMessageStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.msgs {
		if s.msgs[i].ID.Hex() == id {
			s.msgs = append(s.msgs[:i], s.msgs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- notifier ---

type notification struct {
	kind string
	to   string
}

type fakeNotifier struct {
	mu   sync.Mutex
	err  error
	sent []notification
}

func (n *fakeNotifier) SendWelcome(to, name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{kind: "welcome", to: to})
	return n.err
}

func (n *fakeNotifier) SendMessageNotification(to, senderName, subject string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{kind: "message", to: to})
	return n.err
}

func (n *fakeNotifier) calls() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification{}, n.sent...)
}

// --- uploader ---

type fakeUploader struct {
	mu    sync.Mutex
	saved map[string][]byte
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{saved: map[string][]byte{}}
}

func (u *fakeUploader) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.saved[name] = data
	return "http://localhost:8080/uploads/" + name, nil
}

func (u *fakeUploader) List(ctx context.Context) ([]storage.Object, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := []storage.Object{}
	for name := range u.saved {
		out = append(out, storage.Object{Name: name})
	}
	return out, nil
}

func (u *fakeUploader) Remove(ctx context.Context, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.saved, name)
	return nil
}

func (u *fakeUploader) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.saved)
}
