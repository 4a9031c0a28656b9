package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"tirona-thrift/internal/admin"
	"tirona-thrift/internal/gateway"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
	"tirona-thrift/internal/storefront"
)

type customerForm order.CustomerDetails

func listProducts(app *storefront.App, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSIZE\tPRICE")
	for _, p := range app.Catalog().List() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, p.Size, p.Price)
	}
	return tw.Flush()
}

func inquire(app *storefront.App, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: inquire <productID>", errUsage)
	}
	p, ok := app.Catalog().Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", storefront.ErrProductNotFound, args[0])
	}
	fmt.Fprintln(out, product.InquiryURL(whatsappPhone, p))
	return nil
}

func buy(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	ids, form, err := customerFlags("buy", args)
	if err != nil {
		return err
	}
	if len(ids) != 1 {
		return fmt.Errorf("%w: buy <productID> -name -email -phone -address", errUsage)
	}

	o, err := app.Checkout(ctx, ids[0], order.CustomerDetails(*form))
	if err != nil {
		return err
	}
	printConfirmation(out, o)
	return nil
}

func checkout(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	ids, form, err := customerFlags("checkout", args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: checkout <productID>... -name -email -phone -address", errUsage)
	}

	for _, id := range ids {
		p, ok := app.Catalog().Get(id)
		if !ok {
			return fmt.Errorf("%w: %s", storefront.ErrProductNotFound, id)
		}
		app.AddToCart(p)
	}
	fmt.Fprintf(out, "cart: %d items, total %d\n", app.Cart().TotalQuantity(), app.Cart().TotalPrice())

	o, err := app.CheckoutCart(ctx, order.CustomerDetails(*form))
	if err != nil {
		return err
	}
	printConfirmation(out, o)
	return nil
}

func printConfirmation(out io.Writer, o order.Order) {
	fmt.Fprintln(out, order.Confirmation(o))
	fmt.Fprintf(out, "order %s, total %d, status %s\n", o.ID, o.Total, o.Status)
	if gateway.IsLocalOrderID(o.ID) {
		fmt.Fprintln(out, "(backend offline: order recorded locally only)")
	}
}

func vibe(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: vibe <description>", errUsage)
	}
	rec, picks := app.Recommend(ctx, strings.Join(args, " "))
	fmt.Fprintln(out, rec.Commentary)
	for _, p := range picks {
		fmt.Fprintf(out, "  %s  %s (%d)\n", p.ID, p.Name, p.Price)
	}
	return nil
}

func ask(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: ask <productID> <question>", errUsage)
	}
	answer, err := app.Ask(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, answer)
	return nil
}

func login(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: login <passphrase>", errUsage)
	}
	if err := app.Login(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(out, "ACCESS GRANTED")
	return nil
}

func logout(app *storefront.App, out io.Writer) error {
	if err := app.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(out, "signed out")
	return nil
}

func requireAdmin(app *storefront.App) error {
	app.ResumeSession()
	return app.RequireAdmin()
}

func listOrders(app *storefront.App, out io.Writer) error {
	if err := requireAdmin(app); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tITEMS\tTOTAL\tDATE\tSTATUS")
	for _, o := range app.Orders().List() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n", o.ID, o.CustomerName, len(o.Items), o.Total, o.Date, o.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats := app.Orders().Stats()
	fmt.Fprintf(out, "revenue %d, items sold %d, orders %d\n", stats.Revenue, stats.ItemsSold, stats.Orders)
	return nil
}

func setStatus(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: status <orderID> <STATUS>", errUsage)
	}
	if err := requireAdmin(app); err != nil {
		return err
	}

	status, err := order.ParseStatus(args[1])
	if err != nil {
		return err
	}
	if err := app.Editor().SetOrderStatus(ctx, args[0], status); err != nil {
		return err
	}
	fmt.Fprintf(out, "order %s is now %s\n", args[0], status)
	return nil
}

func setPrice(ctx context.Context, app *storefront.App, args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: price <productID> <price>", errUsage)
	}
	if err := requireAdmin(app); err != nil {
		return err
	}

	price, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: price must be a whole number", errUsage)
	}

	p, ok := app.Catalog().Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", storefront.ErrProductNotFound, args[0])
	}

	editor := app.Editor()
	editor.BeginEdit(p)
	if err := editor.SetField(admin.FieldPrice, price); err != nil {
		editor.Cancel()
		return err
	}
	saved, err := editor.Save(ctx)
	if err != nil {
		editor.Cancel()
		return err
	}
	fmt.Fprintf(out, "%s %s now costs %d\n", saved.ID, saved.Name, saved.Price)
	return nil
}
