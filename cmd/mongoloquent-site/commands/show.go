package commands

import (
	"github.com/ajatdarojat45/mongoloquent.com/internal/config"
	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
)

// ShowCmd implements the 'config' command: the canonical configuration
// with the overlay and integrations applied, secrets redacted.
type ShowCmd struct{}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	if _, err := root.out().Write(data); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "write configuration").Build()
	}
	return nil
}
