//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"grantsync/internal/domain"
	"grantsync/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishGrantSynced() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-synced",
		RoutingKey: "grant.synced",
		QueueName:  "test-grant-sync-events",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	record := &domain.FlatGrantRecord{
		GrantID:          "grant-1",
		Title:            utils.Ptr("Community Resilience Fund"),
		Currency:         "CAD",
		Status:           "open",
		Categories:       []string{"community"},
		EligibleOrgTypes: []string{"nonprofit"},
		Province:         utils.Ptr("ON"),
		UpdatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}

	err = pub.Publish(s.ctx, record)
	s.Require().NoError(err)

	// Consume the message back through a separate connection.
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deliveries, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case delivery := <-deliveries:
		s.Equal("application/json", delivery.ContentType)

		var msg GrantSyncedMessage
		s.Require().NoError(json.Unmarshal(delivery.Body, &msg))
		s.Equal("grant-1", msg.GrantID)
		s.Equal("Community Resilience Fund", *msg.Record.Title)
		s.Equal("ON", *msg.Record.Province)
		s.False(msg.Timestamp.IsZero())
	case <-time.After(10 * time.Second):
		s.Fail("timed out waiting for message")
	}
}
