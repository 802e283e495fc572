package service

import (
	"fmt"
	"strings"

	"streetshine/internal/catalog"
	"streetshine/internal/config"
	"streetshine/internal/db"
	"streetshine/internal/metrics"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends booking emails via SendGrid and SMS via Twilio.
// Every send is best-effort: failures are logged and counted, never returned
// to the booking workflow.
type NotifyService struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewNotifyService(cfg *config.Config, log zerolog.Logger) *NotifyService {
	return &NotifyService{cfg: cfg, log: log}
}

func (s *NotifyService) SendBookingReceived(b db.Booking) {
	subject := fmt.Sprintf("Booking received — %s", catalog.Label(b.ServiceType))
	body := fmt.Sprintf(
		"Hello %s,\n\nThanks for booking with LA Street Shine Auto Detailing!\n\n"+
			"Service: %s\n"+
			"Vehicle: %s\n"+
			"Preferred date: %s%s\n\n"+
			"We'll reach out shortly to confirm your appointment.\n\n"+
			"LA Street Shine Auto Detailing — we come to you, anywhere in LA County.",
		b.Name, catalog.Label(b.ServiceType), b.VehicleInfo, b.PreferredDate, timeSuffix(b.PreferredTime),
	)

	if err := s.sendEmail(b.Email, b.Name, subject, body); err != nil {
		metrics.IncNotifyFailure("email")
		s.log.Warn().Err(err).Int64("booking_id", b.ID).Msg("failed to send booking-received email")
	}
}

func (s *NotifyService) SendBookingConfirmed(b db.Booking) {
	msg := fmt.Sprintf("LA Street Shine: your %s on %s is confirmed! More details in your email.",
		catalog.Label(b.ServiceType), b.PreferredDate)
	if err := s.sendSMS(b.Phone, msg); err != nil {
		metrics.IncNotifyFailure("sms")
		s.log.Warn().Err(err).Int64("booking_id", b.ID).Msg("failed to send confirmation SMS")
	}

	subject := "Your detailing appointment is confirmed"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s is confirmed for %s%s.\n\n"+
			"Vehicle: %s\n\nSee you then!\n\nLA Street Shine Auto Detailing",
		b.Name, catalog.Label(b.ServiceType), b.PreferredDate, timeSuffix(b.PreferredTime), b.VehicleInfo,
	)
	if err := s.sendEmail(b.Email, b.Name, subject, body); err != nil {
		metrics.IncNotifyFailure("email")
		s.log.Warn().Err(err).Int64("booking_id", b.ID).Msg("failed to send confirmation email")
	}
}

func (s *NotifyService) SendBookingReminder(b db.Booking) {
	subject := "Reminder: your detailing appointment is tomorrow"
	body := fmt.Sprintf(
		"Hello %s,\n\nA quick reminder that your %s is scheduled for %s%s.\n\n"+
			"Vehicle: %s\n\nLA Street Shine Auto Detailing",
		b.Name, catalog.Label(b.ServiceType), b.PreferredDate, timeSuffix(b.PreferredTime), b.VehicleInfo,
	)
	if err := s.sendEmail(b.Email, b.Name, subject, body); err != nil {
		metrics.IncNotifyFailure("email")
		s.log.Warn().Err(err).Int64("booking_id", b.ID).Msg("failed to send reminder email")
	}
}

func (s *NotifyService) sendEmail(toEmail, toName, subject, plainBody string) error {
	if s.cfg.SendGridAPIKey == "" || s.cfg.SendGridFromEmail == "" {
		return fmt.Errorf("sendgrid not configured")
	}

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, "")

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *NotifyService) sendSMS(toNumber, messageBody string) error {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioAuthToken == "" || s.cfg.TwilioFromNumber == "" {
		return fmt.Errorf("twilio not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		s.log.Debug().Str("to", toNumber).Msg("destination number is not E.164, send may fail")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.TwilioAccountSID,
		Password: s.cfg.TwilioAuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}

func timeSuffix(preferredTime string) string {
	if preferredTime == "" {
		return ""
	}
	return " at " + preferredTime
}
