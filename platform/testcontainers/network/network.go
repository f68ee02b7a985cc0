package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"

	tc "github.com/you-humble/paybridge/platform/testcontainers"
)

// Network is a bridge network shared by the containers of one suite. It is
// labeled so leftovers from an aborted run can be found with
// `docker network ls --filter label=app=paybridge`.
type Network struct {
	network *testcontainers.DockerNetwork
	project string
}

func NewNetwork(ctx context.Context, project string) (*Network, error) {
	if project == "" {
		return nil, errors.New("network: project name is required")
	}

	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			tc.AppLabel:     tc.AppName,
			tc.ProjectLabel: project,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("network %s: create: %w", project, err)
	}

	return &Network{network: net, project: project}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Project() string {
	return n.project
}

func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return fmt.Errorf("network %s: remove: %w", n.project, err)
	}
	return nil
}
