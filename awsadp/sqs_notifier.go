package awsadp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/tandem-a2a/tandem/a2a"
)

// SQSPushNotifierConfig represents the configuration for SQSPushNotifier
type SQSPushNotifierConfig struct {
	Client    *sqs.Client
	QueueURL  string
	QueueName string       // For automatic resolution when QueueURL is not specified (Optional)
	Logger    *slog.Logger // Optional logger, defaults to slog.Default()
}

// SQSPushNotifier implements PushNotifier by publishing task completion
// notifications to an SQS queue instead of calling webhooks directly.
// A downstream consumer owns the actual delivery, which decouples agent
// execution from slow or failing notification endpoints.
type SQSPushNotifier struct {
	client   *sqs.Client
	queueURL string
	logger   *slog.Logger
}

// SQSNotification is the message body published to the queue for each
// completed task.
type SQSNotification struct {
	TaskID string                     `json:"taskId"`
	Config a2a.PushNotificationConfig `json:"config"`
	Task   *a2a.Task                  `json:"task"`
}

// NewSQSPushNotifier creates a new SQS-based push notifier
func NewSQSPushNotifier(config SQSPushNotifierConfig) (*SQSPushNotifier, error) {
	if config.Client == nil {
		return nil, errors.New("SQS Client is required")
	}

	queueURL := config.QueueURL
	if queueURL == "" && config.QueueName == "" {
		return nil, errors.New("either QueueURL or QueueName must be specified")
	}

	// Get QueueURL using GetQueueUrl when QueueName is specified
	if queueURL == "" {
		result, err := config.Client.GetQueueUrl(context.Background(), &sqs.GetQueueUrlInput{
			QueueName: aws.String(config.QueueName),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get queue URL for %s: %w", config.QueueName, err)
		}
		queueURL = *result.QueueUrl
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SQSPushNotifier{
		client:   config.Client,
		queueURL: queueURL,
		logger:   logger,
	}, nil
}

// Notify publishes the notification to the SQS queue
func (n *SQSPushNotifier) Notify(ctx context.Context, config a2a.PushNotificationConfig, task *a2a.Task) error {
	messageBody, err := json.Marshal(SQSNotification{
		TaskID: task.ID,
		Config: config,
		Task:   task,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	_, err = n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(messageBody)),
	})
	if err != nil {
		return fmt.Errorf("failed to send notification to SQS: %w", err)
	}

	n.logger.Debug("Published push notification to SQS", "taskID", task.ID, "configID", config.ID)
	return nil
}

// ValidateEndpoint accepts any endpoint; delivery policy is owned by the
// queue consumer
func (n *SQSPushNotifier) ValidateEndpoint(ctx context.Context, config a2a.PushNotificationConfig) error {
	return nil
}

// Close gracefully shuts down the notifier
func (n *SQSPushNotifier) Close() error {
	// SQS doesn't require explicit closing
	return nil
}
