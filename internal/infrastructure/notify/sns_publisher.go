package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const publishTimeout = 5 * time.Second

// SNSAPI is the part of *sns.Client the publisher uses.
type SNSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ SNSAPI = (*sns.Client)(nil)

type snsMessage struct {
	Severity   entities.Severity `json:"severity"`
	Title      string            `json:"title"`
	Detail     string            `json:"detail,omitempty"`
	DurationMS int64             `json:"duration_ms,omitempty"`
	SentAt     time.Time         `json:"sent_at"`
}

// SNSPublisher publishes notifications to an SNS topic in the background. Failures
// are logged and never reach the caller.
type SNSPublisher struct {
	client   SNSAPI
	topicARN string
	wg       sync.WaitGroup
}

var _ interfaces.INotifier = (*SNSPublisher)(nil)

func NewSNSPublisher(client SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

// ConnectSNS creates an SNS client from the shared AWS config.
func ConnectSNS(cfg aws.Config) *sns.Client {
	return sns.NewFromConfig(cfg)
}

func (p *SNSPublisher) Notify(ctx context.Context, n entities.Notification) {
	body, err := json.Marshal(snsMessage{
		Severity:   n.Severity,
		Title:      n.Title,
		Detail:     n.Detail,
		DurationMS: n.Duration.Milliseconds(),
		SentAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[notify][sns] marshal failed: %v", err)
		return
	}

	// The request may finish before the publish does.
	ctx = context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		in := &sns.PublishInput{
			TopicArn: aws.String(p.topicARN),
			Message:  aws.String(string(body)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"severity": {DataType: aws.String("String"), StringValue: aws.String(string(n.Severity))},
			},
		}
		if n.Title != "" {
			in.Subject = aws.String(subject(n.Title))
		}
		if _, err := p.client.Publish(ctx, in); err != nil {
			log.Printf("[notify][sns] publish failed topic=%s title=%q err=%v", p.topicARN, n.Title, err)
		}
	}()
}

// Wait blocks until in-flight publishes finish.
func (p *SNSPublisher) Wait() {
	p.wg.Wait()
}

// SNS subjects are limited to 100 characters.
func subject(title string) string {
	r := []rune(title)
	if len(r) > 100 {
		return string(r[:100])
	}
	return title
}
