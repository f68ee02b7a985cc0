//go:build integration

package producer_test

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/you-humble/paybridge/platform/kafka/producer"
	"github.com/you-humble/paybridge/platform/logger"
)

const (
	kafkaImage = "confluentinc/confluent-local:7.5.0"
	topic      = "invoice.paid"
)

var (
	ctx     context.Context
	kafkaC  *tckafka.KafkaContainer
	brokers []string
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Kafka Producer Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("starting kafka container")
	var err error
	kafkaC, err = tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("paybridge"))
	Expect(err).NotTo(HaveOccurred())

	brokers, err = kafkaC.Brokers(ctx)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if kafkaC != nil {
		Expect(kafkaC.Terminate(ctx)).To(Succeed())
	}
})

var _ = Describe("producer", func() {
	It("delivers keyed messages to the topic", func() {
		cfg := sarama.NewConfig()
		cfg.Producer.Return.Successes = true
		cfg.Producer.RequiredAcks = sarama.WaitForAll

		sp, err := sarama.NewSyncProducer(brokers, cfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(sp.Close)

		p := producer.NewProducer(sp, topic, logger.NoopLogger{})
		Expect(p.Send(ctx, []byte("rec1"), []byte(`{"invoice_id":"rec1"}`))).To(Succeed())

		consumer, err := sarama.NewConsumer(brokers, sarama.NewConfig())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(consumer.Close)

		pc, err := consumer.ConsumePartition(topic, 0, sarama.OffsetOldest)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(pc.Close)

		var msg *sarama.ConsumerMessage
		Eventually(pc.Messages(), 30*time.Second).Should(Receive(&msg))
		Expect(string(msg.Key)).To(Equal("rec1"))
		Expect(string(msg.Value)).To(MatchJSON(`{"invoice_id":"rec1"}`))
	})
})
