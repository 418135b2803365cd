package main

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/jingkaihe/skillindex/pkg/catalog"
	"github.com/jingkaihe/skillindex/pkg/config"
	"github.com/jingkaihe/skillindex/pkg/logger"
	"github.com/jingkaihe/skillindex/pkg/presenter"
	"github.com/jingkaihe/skillindex/pkg/skills"
)

// buildCatalog discovers every skill under cfg.Root and folds the result
// into a catalog stamped with now.
func buildCatalog(ctx context.Context, cfg config.Config, now time.Time) (*catalog.Catalog, error) {
	opts, err := cfg.DiscoveryOptions()
	if err != nil {
		return nil, err
	}

	discovery, err := skills.NewDiscovery(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize skill discovery")
	}

	result, err := discovery.Discover(ctx)
	if err != nil {
		return nil, err
	}

	if skipErr := result.Err(); skipErr != nil {
		logger.G(ctx).WithError(skipErr).Debug("some skill directories were skipped")
	}

	return catalog.Build(result.Descriptors, now), nil
}

func runGenerate(ctx context.Context, cfg config.Config, p presenter.Presenter) error {
	c, err := buildCatalog(ctx, cfg, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to index skills")
	}

	if err := catalog.Write(cfg.Output, c); err != nil {
		return err
	}

	logger.G(ctx).WithField("output", cfg.Output).Debug("catalog written")
	p.Info(c.Summary())
	return nil
}
