package awsadp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tandem-a2a/tandem"
	"github.com/tandem-a2a/tandem/a2a"
)

// S3Storage keeps the Storage contract on S3 objects: one JSON object per
// task snapshot, one per context message log, one per push notification
// config. Concurrent writers of the same task are already serialized by the
// session manager's task locks, so plain PutObject is sufficient.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3StorageConfig configures S3Storage. Prefix namespaces all object keys,
// which keeps parallel test runs out of each other's way.
type S3StorageConfig struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

// NewS3Storage builds an S3Storage from the config.
func NewS3Storage(config S3StorageConfig) *S3Storage {
	return &S3Storage{
		client: config.Client,
		bucket: config.Bucket,
		prefix: config.Prefix,
	}
}

// key joins parts under the configured prefix.
func (s *S3Storage) key(parts ...string) string {
	joined := strings.Join(parts, "/")
	if s.prefix == "" {
		return joined
	}
	return s.prefix + "/" + joined
}

func (s *S3Storage) taskKey(taskID string) string {
	return s.key("tasks", taskID+".json")
}

func (s *S3Storage) messagesKey(contextID string) string {
	return s.key("messages", contextID+".json")
}

func (s *S3Storage) pushConfigKey(taskID, configID string) string {
	return s.key("push-configs", taskID, configID+".json")
}

func (s *S3Storage) pushConfigPrefix(taskID string) string {
	return s.key("push-configs", taskID) + "/"
}

func isNoSuchKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "NoSuchKey")
}

// getObject fetches and decodes one JSON object into out. notFound is
// returned for missing keys so callers surface their own sentinel.
func (s *S3Storage) getObject(ctx context.Context, key string, out any, notFound error) error {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return notFound
		}
		return fmt.Errorf("failed to get %s from S3: %w", key, err)
	}
	defer result.Body.Close()

	if err := json.NewDecoder(result.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) putObject(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s to S3: %w", key, err)
	}
	return nil
}

func (s *S3Storage) GetTask(ctx context.Context, taskID string, historyLength int, includeArtifacts bool) (*a2a.Task, error) {
	var task a2a.Task
	if err := s.getObject(ctx, s.taskKey(taskID), &task, tandem.ErrTaskNotFound); err != nil {
		return nil, err
	}
	tandem.TrimTaskView(&task, historyLength, includeArtifacts)
	return &task, nil
}

func (s *S3Storage) UpdateTask(ctx context.Context, event a2a.Event) (*a2a.Task, error) {
	taskID := event.TaskID()

	var current *a2a.Task
	var stored a2a.Task
	err := s.getObject(ctx, s.taskKey(taskID), &stored, tandem.ErrTaskNotFound)
	switch {
	case err == nil:
		current = &stored
	case err == tandem.ErrTaskNotFound && event.Task != nil:
		// A full snapshot may create the task.
	default:
		return nil, err
	}

	task, err := tandem.MergeTaskEvent(current, event)
	if err != nil {
		return nil, err
	}
	if err := s.putObject(ctx, s.taskKey(task.ID), task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *S3Storage) ListMessages(ctx context.Context, contextID string) ([]a2a.Message, error) {
	var messages []a2a.Message
	if err := s.getObject(ctx, s.messagesKey(contextID), &messages, tandem.ErrContextNotFound); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *S3Storage) AppendMessage(ctx context.Context, contextID string, msg a2a.Message) error {
	messages, err := s.ListMessages(ctx, contextID)
	if err != nil && err != tandem.ErrContextNotFound {
		return err
	}
	messages = append(messages, msg)
	return s.putObject(ctx, s.messagesKey(contextID), messages)
}

func (s *S3Storage) SaveTaskPushNotificationConfig(ctx context.Context, config a2a.TaskPushNotificationConfig) error {
	return s.putObject(ctx, s.pushConfigKey(config.TaskID, config.PushNotificationConfig.ID), config)
}

func (s *S3Storage) GetTaskPushNotificationConfig(ctx context.Context, taskID, configID string) (a2a.TaskPushNotificationConfig, error) {
	var config a2a.TaskPushNotificationConfig
	err := s.getObject(ctx, s.pushConfigKey(taskID, configID), &config, tandem.ErrPushNotificationConfigNotFound)
	if err != nil {
		return a2a.TaskPushNotificationConfig{}, err
	}
	return config, nil
}

func (s *S3Storage) ListTaskPushNotificationConfig(ctx context.Context, taskID string) ([]a2a.TaskPushNotificationConfig, error) {
	result, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.pushConfigPrefix(taskID)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list push notification configs: %w", err)
	}

	var configs []a2a.TaskPushNotificationConfig
	for _, obj := range result.Contents {
		configID := configIDFromKey(*obj.Key)
		if configID == "" {
			continue
		}
		if config, err := s.GetTaskPushNotificationConfig(ctx, taskID, configID); err == nil {
			configs = append(configs, config)
		}
	}
	return configs, nil
}

func (s *S3Storage) DeleteTaskPushNotificationConfig(ctx context.Context, taskID, configID string) error {
	// DeleteObject succeeds on missing keys, so probe first to surface
	// not-found.
	if _, err := s.GetTaskPushNotificationConfig(ctx, taskID, configID); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.pushConfigKey(taskID, configID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete push notification config from S3: %w", err)
	}
	return nil
}

// configIDFromKey reads the config id out of a
// ".../push-configs/{taskID}/{configID}.json" object key.
func configIDFromKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		if part == "push-configs" && i+2 < len(parts) {
			return strings.TrimSuffix(parts[i+2], ".json")
		}
	}
	return ""
}
