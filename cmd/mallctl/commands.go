package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xinfuli/points-mall/client"
)

func pageFlags(cmd *cobra.Command, p *client.PageParams) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number (default 1)")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size (default 10)")
}

func newHomeCmds(o *rootOptions) []*cobra.Command {
	var hot, fresh client.PageParams

	hotCmd := &cobra.Command{
		Use:   "hot-products",
		Short: "List recommended products",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.ProductPage, error) {
			return c.GetHotProducts(ctx, hot)
		}),
	}
	pageFlags(hotCmd, &hot)

	newCmd := &cobra.Command{
		Use:   "new-products",
		Short: "List new arrivals",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.ProductPage, error) {
			return c.GetNewProducts(ctx, fresh)
		}),
	}
	pageFlags(newCmd, &fresh)

	return []*cobra.Command{
		{
			Use:   "home",
			Short: "Load every home page section concurrently",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (*client.HomePage, error) {
				return c.LoadHomePage(ctx)
			}),
		},
		{
			Use:   "banners",
			Short: "List home page banners",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]client.Banner, error) {
				return c.GetBannerList(ctx)
			}),
		},
		{
			Use:   "quick-actions",
			Short: "List home page quick actions",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]client.QuickAction, error) {
				return c.GetQuickActions(ctx)
			}),
		},
		{
			Use:   "categories",
			Short: "List home page categories",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]client.Category, error) {
				return c.GetCategories(ctx)
			}),
		},
		hotCmd,
		newCmd,
	}
}

func newCatalogCmds(o *rootOptions) []*cobra.Command {
	var catParams client.CategoryProductsParams
	catCmd := &cobra.Command{
		Use:   "category-products",
		Short: "List products of a category",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.CategoryProductPage, error) {
			return c.GetCategoryProducts(ctx, catParams)
		}),
	}
	catCmd.Flags().StringVar(&catParams.CategoryID, "category-id", "", "Category id, e.g. card")
	catCmd.Flags().IntVar(&catParams.Page, "page", 0, "Page number")
	catCmd.Flags().IntVar(&catParams.Limit, "limit", 0, "Page size")

	var seckillParams client.SeckillProductsParams
	seckillCmd := &cobra.Command{
		Use:   "seckill-products",
		Short: "List products of a flash-sale session",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.SeckillProductPage, error) {
			return c.GetSeckillProducts(ctx, seckillParams)
		}),
	}
	seckillCmd.Flags().IntVar(&seckillParams.SessionID, "session-id", 0, "Flash-sale session id")
	seckillCmd.Flags().IntVar(&seckillParams.Page, "page", 0, "Page number")
	seckillCmd.Flags().IntVar(&seckillParams.Limit, "limit", 0, "Page size")

	var pageParams client.SeckillProductsParams
	pageCmd := &cobra.Command{
		Use:   "seckill",
		Short: "Load the flash-sale session and its products concurrently",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (*client.SeckillPage, error) {
			return c.LoadSeckillPage(ctx, pageParams)
		}),
	}
	pageCmd.Flags().IntVar(&pageParams.SessionID, "session-id", 0, "Flash-sale session id")
	pageCmd.Flags().IntVar(&pageParams.Page, "page", 0, "Page number")
	pageCmd.Flags().IntVar(&pageParams.Limit, "limit", 0, "Page size")

	var searchParams client.SearchParams
	searchCmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search products by name",
		Args:  cobra.ExactArgs(1),
		RunE: call(o, func(ctx context.Context, c *client.Client, args []string) (client.SearchResult, error) {
			p := searchParams
			p.Keyword = args[0]
			return c.SearchProducts(ctx, p)
		}),
	}
	searchCmd.Flags().IntVar(&searchParams.Page, "page", 0, "Page number")
	searchCmd.Flags().IntVar(&searchParams.Limit, "limit", 0, "Page size")

	return []*cobra.Command{
		{
			Use:   "category-list",
			Short: "List category groups with their subcategories",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]client.CategoryGroup, error) {
				return c.GetCategoryList(ctx)
			}),
		},
		catCmd,
		{
			Use:   "seckill-info",
			Short: "Show the current flash-sale session",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.SeckillInfo, error) {
				return c.GetSeckillInfo(ctx)
			}),
		},
		seckillCmd,
		pageCmd,
		searchCmd,
		{
			Use:   "hot-keywords",
			Short: "List trending search keywords",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]string, error) {
				return c.GetHotKeywords(ctx)
			}),
		},
	}
}

func newCartCmds(o *rootOptions) []*cobra.Command {
	var add client.AddToCartRequest
	addCmd := &cobra.Command{
		Use:   "cart-add",
		Short: "Add a product to the cart",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.ActionAck, error) {
			return c.AddToCart(ctx, add)
		}),
	}
	addCmd.Flags().IntVar(&add.ProductID, "product-id", 0, "Product id")
	addCmd.Flags().IntVar(&add.Quantity, "quantity", 1, "Quantity")
	addCmd.Flags().StringVar(&add.Spec, "spec", "", "Product spec")
	_ = addCmd.MarkFlagRequired("product-id")

	var upd client.UpdateCartRequest
	updCmd := &cobra.Command{
		Use:   "cart-update",
		Short: "Change the quantity of a cart line",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.ActionAck, error) {
			return c.UpdateCartQuantity(ctx, upd)
		}),
	}
	updCmd.Flags().IntVar(&upd.CartItemID, "item-id", 0, "Cart line id")
	updCmd.Flags().IntVar(&upd.Quantity, "quantity", 0, "New quantity")
	_ = updCmd.MarkFlagRequired("item-id")
	_ = updCmd.MarkFlagRequired("quantity")

	return []*cobra.Command{
		{
			Use:   "cart",
			Short: "List the cart grouped by shop",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) ([]client.CartShop, error) {
				return c.GetCartList(ctx)
			}),
		},
		addCmd,
		updCmd,
		{
			Use:   "cart-delete <item-id>",
			Short: "Remove a cart line",
			Args:  cobra.ExactArgs(1),
			RunE: call(o, func(ctx context.Context, c *client.Client, args []string) (client.ActionAck, error) {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return client.ActionAck{}, fmt.Errorf("item-id must be an integer: %q", args[0])
				}
				return c.DeleteCartItem(ctx, id)
			}),
		},
	}
}

func newUserCmds(o *rootOptions) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "points",
			Short: "Show the points summary",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.UserPoints, error) {
				return c.GetUserPoints(ctx)
			}),
		},
		{
			Use:   "user-info",
			Short: "Show the user profile",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.UserInfo, error) {
				return c.GetUserInfo(ctx)
			}),
		},
		{
			Use:   "user-orders",
			Short: "Show order counts per state",
			Args:  cobra.NoArgs,
			RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.OrderCounts, error) {
				return c.GetUserOrders(ctx)
			}),
		},
	}
}

// parseOrderLine reads "productId:quantity[:spec]".
func parseOrderLine(s string) (client.OrderLine, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return client.OrderLine{}, fmt.Errorf("invalid --product %q, want productId:quantity[:spec]", s)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return client.OrderLine{}, fmt.Errorf("invalid product id in %q", s)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return client.OrderLine{}, fmt.Errorf("invalid quantity in %q", s)
	}
	line := client.OrderLine{ProductID: id, Quantity: qty}
	if len(parts) == 3 {
		line.Spec = parts[2]
	}
	return line, nil
}

func newOrderCmds(o *rootOptions) []*cobra.Command {
	var (
		lines []string
		req   client.CreateOrderRequest
	)
	createCmd := &cobra.Command{
		Use:   "order-create",
		Short: "Place an order",
		Args:  cobra.NoArgs,
		RunE: call(o, func(ctx context.Context, c *client.Client, _ []string) (client.OrderAck, error) {
			r := req
			r.Products = nil
			for _, s := range lines {
				line, err := parseOrderLine(s)
				if err != nil {
					return client.OrderAck{}, err
				}
				r.Products = append(r.Products, line)
			}
			return c.CreateOrder(ctx, r)
		}),
	}
	createCmd.Flags().StringArrayVar(&lines, "product", nil, "Order line productId:quantity[:spec], repeatable")
	createCmd.Flags().IntVar(&req.AddressID, "address-id", 0, "Delivery address id")
	createCmd.Flags().IntVar(&req.TotalPoints, "total-points", 0, "Expected total in points")
	createCmd.Flags().StringVar(&req.Remark, "remark", "", "Order remark")

	return []*cobra.Command{
		createCmd,
		{
			Use:   "order-detail <order-id>",
			Short: "Show an order",
			Args:  cobra.ExactArgs(1),
			RunE: call(o, func(ctx context.Context, c *client.Client, args []string) (client.OrderDetail, error) {
				return c.GetOrderDetail(ctx, args[0])
			}),
		},
		{
			Use:   "order-cancel <order-id>",
			Short: "Cancel an order",
			Args:  cobra.ExactArgs(1),
			RunE: call(o, func(ctx context.Context, c *client.Client, args []string) (client.ActionAck, error) {
				return c.CancelOrder(ctx, args[0])
			}),
		},
	}
}
