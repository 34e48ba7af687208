package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/domain"
)

type MessageType string

const (
	MessageTypeNotifySubmission MessageType = "NOTIFY_SUBMISSION"
	MessageTypeReindex          MessageType = "REINDEX"
	MessageTypeExport           MessageType = "EXPORT"
)

type Message struct {
	Type      MessageType `json:"type"`
	TenantID  string      `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`

	// Fields for submission notifications
	SubmissionID   string                `json:"submission_id,omitempty"`
	SubmissionKind domain.SubmissionKind `json:"submission_kind,omitempty"`

	// Fields for export operations
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client         *sqs.Client
	notifyQueueURL string
	indexQueueURL  string
	exportQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:         client,
		notifyQueueURL: config.NotifyQueueURL,
		indexQueueURL:  config.IndexQueueURL,
		exportQueueURL: config.ExportQueueURL,
	}
}

func (s *SQSService) SendSubmissionNotification(ctx context.Context, tenantID, submissionID string, kind domain.SubmissionKind) error {
	msg := Message{
		Type:           MessageTypeNotifySubmission,
		TenantID:       tenantID,
		SubmissionID:   submissionID,
		SubmissionKind: kind,
		Timestamp:      time.Now(),
	}

	return s.sendMessage(ctx, msg, s.notifyQueueURL)
}

func (s *SQSService) SendReindexMessage(ctx context.Context, tenantID string) error {
	msg := Message{
		Type:      MessageTypeReindex,
		TenantID:  tenantID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendExportMessage(ctx context.Context, tenantID string, from, to time.Time) error {
	msg := Message{
		Type:      MessageTypeExport,
		TenantID:  tenantID,
		From:      from,
		To:        to,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.exportQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

func (s *SQSService) IndexQueueURL() string {
	return s.indexQueueURL
}

func (s *SQSService) ExportQueueURL() string {
	return s.exportQueueURL
}
