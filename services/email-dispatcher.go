package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"reminder-api/apperrors"
	"reminder-api/entities"

	"golang.org/x/exp/slog"
)

const (
	FlagCreate = "create"
	FlagUpdate = "update"
)

// EmailPayload is the body accepted by the email service's /prepare route.
type EmailPayload struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date"`
	EmailReceiver string `json:"email_receiver"`
	Flag          string `json:"flag"`
}

// NewEmailPayload builds the payload for reminder; due_date is sent as DD/MM/YYYY.
func NewEmailPayload(reminder *entities.Reminder, flag string) EmailPayload {
	return EmailPayload{
		Name:          reminder.Name,
		Description:   reminder.Description,
		DueDate:       reminder.DueDate.Format("02/01/2006"),
		EmailReceiver: reminder.EmailAddress(),
		Flag:          flag,
	}
}

// EmailDispatcher posts reminder payloads to the downstream email service.
// There is no retry; a failed call is reported once to the caller.
type EmailDispatcher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewEmailDispatcher(url string, client *http.Client, logger *slog.Logger) *EmailDispatcher {
	if client == nil {
		client = &http.Client{}
	}
	return &EmailDispatcher{url: url, client: client, logger: logger}
}

func (d *EmailDispatcher) Send(ctx context.Context, payload EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindDispatch, "Ocorreu um erro ao enviar o email.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindDispatch, "Ocorreu um erro ao enviar o email.")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindDispatch, "Ocorreu um erro ao enviar o email.")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Wrap(fmt.Errorf("email service responded %d", resp.StatusCode),
			apperrors.KindDispatch, "Ocorreu um erro ao enviar o email.")
	}

	d.logger.Debug("email payload delivered", "flag", payload.Flag, "name", payload.Name, "status", resp.StatusCode)
	return nil
}
