package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/config"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
)

const (
	SubjectRequestCreated      = "petmatch.request.created"
	SubjectRequestResolved     = "petmatch.request.resolved"
	SubjectGarageItemApproved  = "petmatch.garage.item.approved"
	SubjectGarageItemRejected  = "petmatch.garage.item.rejected"
	SubjectActorApproved       = "petmatch.actor.approved"
	SubjectActorRejected       = "petmatch.actor.rejected"
	SubjectMarketplaceRedeemed = "petmatch.marketplace.redeemed"
	SubjectPetListingResolved  = "petmatch.pet.listing.resolved"
)

type Publisher struct {
	nc  *nats.Conn
	log logger.Logger
}

func NewPublisher(cfg *config.NATSConfig, log logger.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.ConnectTimeout),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warnf("NATS disconnected: %v", err)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Infof("Successfully connected to NATS at %s", nc.ConnectedUrl())

	return &Publisher{nc: nc, log: log}, nil
}

// Publish marshals the payload as JSON and fires it at the subject. Event
// delivery is best effort; callers log and continue when this fails.
func (p *Publisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}
	p.log.Debugf("Published NATS message on %s", subject)
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		if err := p.nc.Drain(); err != nil {
			p.log.Errorf("Error draining NATS connection: %v", err)
		}
		p.nc.Close()
		p.log.Info("NATS publisher connection closed")
	}
}
