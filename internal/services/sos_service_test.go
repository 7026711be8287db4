package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/pkg/utils"
)

type fakeSOSRepo struct {
	contacts []db_models.EmergencyContact
	alerts   []db_models.SOSAlert
}

func (f *fakeSOSRepo) CreateContact(_ context.Context, contact *db_models.EmergencyContact) error {
	contact.ID = uuid.New()
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeSOSRepo) GetContactById(_ context.Context, contactId string) (*db_models.EmergencyContact, error) {
	for i := range f.contacts {
		if f.contacts[i].ID.String() == contactId {
			return &f.contacts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSOSRepo) ListContactsByAccount(_ context.Context, accountId string) ([]db_models.EmergencyContact, error) {
	var out []db_models.EmergencyContact
	for _, c := range f.contacts {
		if c.AccountID.String() == accountId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeSOSRepo) DeleteContact(_ context.Context, contactId, accountId string) (int64, error) {
	for i, c := range f.contacts {
		if c.ID.String() == contactId && c.AccountID.String() == accountId {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSOSRepo) CreateAlert(_ context.Context, alert *db_models.SOSAlert) error {
	alert.ID = uuid.New()
	f.alerts = append(f.alerts, *alert)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	account.ID = uuid.New()
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	for _, a := range f.accounts {
		if a.Email == email {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeMailService struct {
	sent     []string
	failFor  map[string]bool
	resetTos []string
}

func (f *fakeMailService) SendMailToNotifyUser(to, _, _, _, _ string) error {
	if f.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(email, _ string) error {
	f.resetTos = append(f.resetTos, email)
	return nil
}

func sosFixture() (*fakeSOSRepo, *fakeAccountRepo, *fakeMailService, SOSServiceInterface, *db_models.Account) {
	sosRepo := &fakeSOSRepo{}
	accountRepo := &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
	mail := &fakeMailService{failFor: map[string]bool{}}

	account := &db_models.Account{Name: "Minh", Email: "minh@example.com"}
	account.ID = uuid.New()
	accountRepo.accounts[account.ID.String()] = account

	svc := NewSOSService(sosRepo, accountRepo, mail)
	return sosRepo, accountRepo, mail, svc, account
}

func TestTriggerSOSNotifiesContactsWithEmail(t *testing.T) {
	sosRepo, _, mail, svc, account := sosFixture()
	accountId := account.ID.String()

	_, err := svc.AddContact(context.Background(), accountId, request_models.CreateContactRequest{
		Name: "Lan", Phone: "0901", Email: "lan@example.com",
	})
	require.NoError(t, err)
	_, err = svc.AddContact(context.Background(), accountId, request_models.CreateContactRequest{
		Name: "Tuan", Phone: "0902",
	})
	require.NoError(t, err)

	out, err := svc.TriggerSOS(context.Background(), accountId, request_models.TriggerSOSRequest{
		Latitude: 16.0471, Longitude: 108.2062, Message: "flat tire on the pass",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.NotifiedCount)
	assert.Equal(t, []string{"lan@example.com"}, mail.sent)
	assert.Equal(t, db_models.SOSAlertStatusOpen, out.Status)
	require.Len(t, sosRepo.alerts, 1)
	assert.Equal(t, 1, sosRepo.alerts[0].NotifiedCount)
}

func TestTriggerSOSMailFailureDoesNotFailTrigger(t *testing.T) {
	sosRepo, _, mail, svc, account := sosFixture()
	accountId := account.ID.String()
	mail.failFor["lan@example.com"] = true

	_, err := svc.AddContact(context.Background(), accountId, request_models.CreateContactRequest{
		Name: "Lan", Phone: "0901", Email: "lan@example.com",
	})
	require.NoError(t, err)

	out, err := svc.TriggerSOS(context.Background(), accountId, request_models.TriggerSOSRequest{
		Latitude: 16.0471, Longitude: 108.2062,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.NotifiedCount)
	require.Len(t, sosRepo.alerts, 1)
}

func TestTriggerSOSRejectsInvalidCoordinates(t *testing.T) {
	sosRepo, _, _, svc, account := sosFixture()

	_, err := svc.TriggerSOS(context.Background(), account.ID.String(), request_models.TriggerSOSRequest{
		Latitude: 0, Longitude: 108.2062,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
	assert.Empty(t, sosRepo.alerts)
}

func TestDeleteContactScopedToOwner(t *testing.T) {
	_, accountRepo, _, svc, account := sosFixture()

	other := &db_models.Account{Name: "Khac", Email: "khac@example.com"}
	other.ID = uuid.New()
	accountRepo.accounts[other.ID.String()] = other

	created, err := svc.AddContact(context.Background(), account.ID.String(), request_models.CreateContactRequest{
		Name: "Lan", Phone: "0901",
	})
	require.NoError(t, err)

	err = svc.DeleteContact(context.Background(), created.ID, other.ID.String())
	assert.ErrorIs(t, err, utils.ErrContactNotFound)

	err = svc.DeleteContact(context.Background(), created.ID, account.ID.String())
	assert.NoError(t, err)

	contacts, err := svc.ListContacts(context.Background(), account.ID.String())
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
