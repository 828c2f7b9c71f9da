package usecases

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"reminder-api/apperrors"
	"reminder-api/db"
	"reminder-api/entities"
	"reminder-api/repositories"
	"reminder-api/services"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeDispatcher struct {
	mu       sync.Mutex
	payloads []services.EmailPayload
	err      error
}

func (f *fakeDispatcher) Send(_ context.Context, payload services.EmailPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.err
}

func (f *fakeDispatcher) sent() []services.EmailPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]services.EmailPayload(nil), f.payloads...)
}

type recordedEvent struct {
	userID uint
	kind   string
}

type fakeNotifier struct {
	events []recordedEvent
}

func (f *fakeNotifier) Publish(userID uint, eventType string, _ interface{}) {
	f.events = append(f.events, recordedEvent{userID: userID, kind: eventType})
}

type fixture struct {
	database   db.Database
	reminders  *ReminderUseCase
	users      *UserUseCase
	dispatcher *fakeDispatcher
	notifier   *fakeNotifier
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := db.OpenMemory(fmt.Sprintf("%s_%d", t.Name(), time.Now().UnixNano()))
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	notifier := &fakeNotifier{}
	logger := discardLogger()
	return &fixture{
		database:   database,
		reminders:  NewReminderUseCase(repositories.NewReminderGormRepository(database), dispatcher, notifier, logger),
		users:      NewUserUseCase(repositories.NewUserGormRepository(database), services.NewBcryptHasher(4), logger, false),
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

func (f *fixture) register(t *testing.T, username string) *entities.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), RegisterUserInput{Username: username, Password: "pass1234"})
	require.NoError(t, err)
	return user
}

func kindOf(err error) apperrors.Kind {
	return apperrors.KindOf(err)
}
