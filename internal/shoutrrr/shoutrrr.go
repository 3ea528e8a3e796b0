package shoutrrr

import (
	"fmt"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"
)

// Client pushes one-line operation notifications to every configured
// shoutrrr address, titled with the default title unless the address
// sets its own.
type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	params        types.Params
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	serviceRouter, err := shoutrrr.CreateSender(settings.Addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		params:        types.Params{"title": settings.DefaultTitle},
		logger:        settings.Logger,
	}, nil
}

// Notify sends the message to every configured service. Send failures
// are logged, not returned, so a broken notification target never fails
// the operation being notified about.
func (c *Client) Notify(message string) {
	errs := c.serviceRouter.Send(message, &c.params)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}
