package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type SOSServiceInterface interface {
	AddContact(ctx context.Context, accountId string, req request_models.CreateContactRequest) (*response_models.ContactResponse, error)
	ListContacts(ctx context.Context, accountId string) ([]response_models.ContactResponse, error)
	DeleteContact(ctx context.Context, contactId, accountId string) error
	TriggerSOS(ctx context.Context, accountId string, req request_models.TriggerSOSRequest) (*response_models.SOSAlertResponse, error)
}

type SOSService struct {
	sosRepo     repositories.SOSRepository
	accountRepo repositories.AccountRepository
	mailService IMailService
}

func NewSOSService(
	sosRepo repositories.SOSRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) SOSServiceInterface {
	return &SOSService{
		sosRepo:     sosRepo,
		accountRepo: accountRepo,
		mailService: mailService,
	}
}

func (s *SOSService) AddContact(ctx context.Context, accountId string, req request_models.CreateContactRequest) (*response_models.ContactResponse, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	contact := &db_models.EmergencyContact{
		AccountID:    accountUUID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
	}
	if err := s.sosRepo.CreateContact(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildContactResponse(contact)
	return &out, nil
}

func (s *SOSService) ListContacts(ctx context.Context, accountId string) ([]response_models.ContactResponse, error) {
	contacts, err := s.sosRepo.ListContactsByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, buildContactResponse(&contacts[i]))
	}
	return out, nil
}

func (s *SOSService) DeleteContact(ctx context.Context, contactId, accountId string) error {
	rows, err := s.sosRepo.DeleteContact(ctx, contactId, accountId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrContactNotFound
	}
	return nil
}

// TriggerSOS records the alert first, then notifies contacts on a best-effort
// basis. A failed notification never fails the trigger.
func (s *SOSService) TriggerSOS(ctx context.Context, accountId string, req request_models.TriggerSOSRequest) (*response_models.SOSAlertResponse, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if !utils.IsValidCoordinate(req.Latitude, req.Longitude) {
		return nil, utils.ErrInvalidCoordinates
	}

	account, err := s.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	contacts, err := s.sosRepo.ListContactsByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	alert := &db_models.SOSAlert{
		AccountID: accountUUID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Message:   req.Message,
		Status:    db_models.SOSAlertStatusOpen,
	}

	notified := 0
	mapURL := fmt.Sprintf("https://www.google.com/maps?q=%f,%f", req.Latitude, req.Longitude)
	subject := fmt.Sprintf("SOS alert from %s", account.Name)
	body := fmt.Sprintf("%s has triggered an SOS alert. Last known position: %.5f, %.5f.", account.Name, req.Latitude, req.Longitude)
	if req.Message != "" {
		body += " Message: " + req.Message
	}

	for _, contact := range contacts {
		if contact.Email == "" {
			continue
		}
		if err := s.mailService.SendMailToNotifyUser(contact.Email, subject, body, "Open location", mapURL); err != nil {
			log.Printf("sos mail to %s failed: %v", contact.Email, err)
			continue
		}
		notified++
	}
	alert.NotifiedCount = notified

	if err := s.sosRepo.CreateAlert(ctx, alert); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SOSAlertResponse{
		ID:            alert.ID.String(),
		Latitude:      alert.Latitude,
		Longitude:     alert.Longitude,
		Message:       alert.Message,
		Status:        alert.Status,
		NotifiedCount: alert.NotifiedCount,
		CreatedAt:     utils.FormatRFC3339VN(utils.FromUnixSecondsVN(alert.CreatedAt)),
	}, nil
}

func buildContactResponse(contact *db_models.EmergencyContact) response_models.ContactResponse {
	return response_models.ContactResponse{
		ID:           contact.ID.String(),
		Name:         contact.Name,
		Phone:        contact.Phone,
		Email:        contact.Email,
		Relationship: contact.Relationship,
	}
}
