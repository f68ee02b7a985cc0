package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/paybridge/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) InvoicePaidToPayload(m model.InvoicePaid) ([]byte, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice paid event: %w", err)
	}

	return payload, nil
}
