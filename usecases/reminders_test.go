package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"reminder-api/apperrors"
	"reminder-api/entities"
	"reminder-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dueDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func validInput(name string) CreateReminderInput {
	return CreateReminderInput{
		Name:        name,
		Description: "conta de luz",
		DueDate:     dueDate,
		Email:       "a@b.com",
	}
}

func TestCreateReminder(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")

	reminder, err := f.reminders.Create(context.Background(), alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	assert.NotZero(t, reminder.ID)
	assert.Equal(t, "pagar conta", reminder.NameNormalized)
	assert.Equal(t, alice.ID, reminder.UserID)
	assert.Equal(t, "a@b.com", reminder.EmailAddress())
	assert.Empty(t, f.dispatcher.sent(), "send_email is false")
	assert.Equal(t, []recordedEvent{{alice.ID, "reminder.created"}}, f.notifier.events)
}

func TestCreateReminderValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateReminderInput)
		message string
	}{
		{"digit in name", func(in *CreateReminderInput) { in.Name = "Plano 2025" }, "O nome do lembrete não pode conter números"},
		{"empty name", func(in *CreateReminderInput) { in.Name = "" }, "O nome não pode ser vazio!"},
		{"empty description", func(in *CreateReminderInput) { in.Description = "" }, "A descrição não pode ser vazia!"},
		{"empty email", func(in *CreateReminderInput) { in.Email = "" }, "O email não pode ser vazio!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			alice := f.register(t, "alice")

			in := validInput("Pagar conta")
			tc.mutate(&in)

			_, err := f.reminders.Create(context.Background(), alice.ID, in)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, kindOf(err))
			assert.Equal(t, tc.message, apperrors.MessageOf(err, ""))

			list, err := f.reminders.ListByOwner(context.Background(), alice.ID)
			require.NoError(t, err)
			assert.Empty(t, list, "no row persisted")
		})
	}
}

func TestCreateReminderDuplicateName(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	ctx := context.Background()

	_, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	_, err = f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, kindOf(err))

	// only an exact name collision conflicts
	_, err = f.reminders.Create(ctx, alice.ID, validInput("PAGAR CONTA"))
	assert.NoError(t, err)
}

func TestCreateReminderDispatchesWhenRequested(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")

	in := validInput("Pagar conta")
	in.SendEmail = true
	_, err := f.reminders.Create(context.Background(), alice.ID, in)
	require.NoError(t, err)

	sent := f.dispatcher.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, services.EmailPayload{
		Name:          "Pagar conta",
		Description:   "conta de luz",
		DueDate:       "01/01/2025",
		EmailReceiver: "a@b.com",
		Flag:          services.FlagCreate,
	}, sent[0])
}

func TestCreateReminderDispatchFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.err = apperrors.New(apperrors.KindDispatch, "down")
	alice := f.register(t, "alice")

	in := validInput("Pagar conta")
	in.SendEmail = true
	reminder, err := f.reminders.Create(context.Background(), alice.ID, in)
	require.NoError(t, err)

	stored, err := f.reminders.GetByID(context.Background(), alice.ID, reminder.ID)
	require.NoError(t, err)
	assert.True(t, stored.SendEmail)
}

func TestGetByNameIsCaseAndAccentInsensitive(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Revisão do Carro"))
	require.NoError(t, err)

	for _, query := range []string{"Revisão do Carro", "REVISAO DO CARRO", "revisão do carro", "RÉVISÃO DO CÁRRO"} {
		got, err := f.reminders.GetByName(ctx, alice.ID, query)
		require.NoError(t, err, query)
		assert.Equal(t, created.ID, got.ID, query)
	}

	_, err = f.reminders.GetByName(ctx, bob.ID, "Revisão do Carro")
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))
}

func TestGetByIDOtherOwnerIsNotFound(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	_, err = f.reminders.GetByID(ctx, bob.ID, created.ID)
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))

	_, err = f.reminders.GetByID(ctx, alice.ID, created.ID+100)
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))
}

func TestListByOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	_, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)
	_, err = f.reminders.Create(ctx, alice.ID, validInput("Comprar pão"))
	require.NoError(t, err)

	list, err := f.reminders.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.reminders.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateMergePolicy(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	ctx := context.Background()

	in := validInput("Pagar conta")
	in.Description = "D1"
	in.Recurring = true
	in.SendEmail = true
	created, err := f.reminders.Create(ctx, alice.ID, in)
	require.NoError(t, err)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.reminders.now = func() time.Time { return fixed }

	updated, err := f.reminders.Update(ctx, alice.ID, created.ID, UpdateReminderInput{
		Description: "",
		Recurring:   false,
		SendEmail:   false,
		Email:       "",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pagar conta", updated.Name, "empty name keeps the stored value")
	assert.Equal(t, "pagar conta", updated.NameNormalized)
	assert.Equal(t, "D1", updated.Description, "empty description keeps the stored value")
	assert.True(t, updated.DueDate.Equal(dueDate), "zero due date keeps the stored value")
	assert.False(t, updated.Recurring, "recurring is always overwritten")
	assert.False(t, updated.SendEmail, "send_email is always overwritten")
	assert.Equal(t, "", updated.EmailAddress(), "email is always overwritten")
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.Equal(fixed))

	stored, err := f.reminders.GetByID(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "D1", stored.Description)
	assert.False(t, stored.Recurring)
	assert.Equal(t, "", stored.EmailAddress())
}

func TestUpdateRenamesAndRecomputesNormalizedName(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	newDue := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	_, err = f.reminders.Update(ctx, alice.ID, created.ID, UpdateReminderInput{
		Name:    "Pagar Condomínio",
		DueDate: newDue,
		Email:   "a@b.com",
	})
	require.NoError(t, err)

	got, err := f.reminders.GetByName(ctx, alice.ID, "pagar condominio")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.DueDate.Equal(newDue))

	_, err = f.reminders.GetByName(ctx, alice.ID, "Pagar conta")
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))
}

func TestUpdateDispatchesWithUpdateFlag(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	f.dispatcher.err = errors.New("connection refused")
	_, err = f.reminders.Update(ctx, alice.ID, created.ID, UpdateReminderInput{SendEmail: true, Email: "x@y.com"})
	require.NoError(t, err, "dispatch failure does not fail the update")

	sent := f.dispatcher.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, services.FlagUpdate, sent[0].Flag)
	assert.Equal(t, "x@y.com", sent[0].EmailReceiver)
}

func TestUpdateErrors(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)
	_, err = f.reminders.Create(ctx, alice.ID, validInput("Comprar pão"))
	require.NoError(t, err)

	_, err = f.reminders.Update(ctx, bob.ID, created.ID, UpdateReminderInput{})
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))

	_, err = f.reminders.Update(ctx, alice.ID, created.ID, UpdateReminderInput{Name: "Conta 3"})
	assert.Equal(t, apperrors.KindValidation, kindOf(err))

	_, err = f.reminders.Update(ctx, alice.ID, created.ID, UpdateReminderInput{Name: "Comprar pão"})
	require.Error(t, err)
	assert.NotEqual(t, apperrors.KindNotFound, kindOf(err))
}

func TestDeleteReminder(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	created, err := f.reminders.Create(ctx, alice.ID, validInput("Pagar conta"))
	require.NoError(t, err)

	_, err = f.reminders.Delete(ctx, bob.ID, created.ID)
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))

	name, err := f.reminders.Delete(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pagar conta", name)

	_, err = f.reminders.GetByID(ctx, alice.ID, created.ID)
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))

	_, err = f.reminders.Delete(ctx, alice.ID, created.ID)
	assert.Equal(t, apperrors.KindNotFound, kindOf(err))

	var emails int64
	require.NoError(t, f.database.GetDB().Model(&entities.Email{}).Count(&emails).Error)
	assert.Zero(t, emails)
}
