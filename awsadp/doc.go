// Package awsadp provides AWS adapters for tandem.
//
// It contains implementations of tandem interfaces backed by AWS services:
//   - S3Storage: tandem.Storage implementation using Amazon S3
//   - SQSPushNotifier: tandem.PushNotifier implementation using Amazon SQS
package awsadp
