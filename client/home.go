package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// HomePage bundles everything the home screen renders.
type HomePage struct {
	Banners      []Banner      `json:"banners"`
	QuickActions []QuickAction `json:"quickActions"`
	Points       UserPoints    `json:"points"`
	Categories   []Category    `json:"categories"`
	HotProducts  ProductPage   `json:"hotProducts"`
}

// LoadHomePage fetches the home screen sections concurrently. The first
// failure cancels the remaining fetches and is returned.
func (c *Client) LoadHomePage(ctx context.Context) (*HomePage, error) {
	var hp HomePage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		hp.Banners, err = c.GetBannerList(gctx)
		return err
	})
	g.Go(func() (err error) {
		hp.QuickActions, err = c.GetQuickActions(gctx)
		return err
	})
	g.Go(func() (err error) {
		hp.Points, err = c.GetUserPoints(gctx)
		return err
	})
	g.Go(func() (err error) {
		hp.Categories, err = c.GetCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		hp.HotProducts, err = c.GetHotProducts(gctx, DefaultPage)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &hp, nil
}

// SeckillPage bundles the flash-sale screen: the session banner and its products.
type SeckillPage struct {
	Info     SeckillInfo        `json:"info"`
	Products SeckillProductPage `json:"products"`
}

// LoadSeckillPage fetches the session info and the products of p concurrently.
func (c *Client) LoadSeckillPage(ctx context.Context, p SeckillProductsParams) (*SeckillPage, error) {
	var sp SeckillPage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		sp.Info, err = c.GetSeckillInfo(gctx)
		return err
	})
	g.Go(func() (err error) {
		sp.Products, err = c.GetSeckillProducts(gctx, p)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sp, nil
}
