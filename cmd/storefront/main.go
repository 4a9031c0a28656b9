package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"tirona-thrift/internal/config"
	"tirona-thrift/internal/gateway"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/metrics"
	"tirona-thrift/internal/session"
	"tirona-thrift/internal/storefront"
	"tirona-thrift/internal/stylist"
)

const whatsappPhone = "355697645717"

var errUsage = errors.New("usage")

const usage = `usage: storefront <command> [args]

shop:
  products                          list the catalog
  inquire <productID>               WhatsApp link for a piece
  buy <productID> -name -email -phone -address
  checkout <productID>... -name -email -phone -address
  vibe <description>                AI stylist picks
  ask <productID> <question>        ask the shop owner

admin:
  login <passphrase>
  logout
  orders                            list orders with sales totals
  status <orderID> <PENDING|SHIPPED|DELIVERED>
  price <productID> <price>
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	logger.Sync()
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)

	store, err := session.OpenBolt(cfg.SessionPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := session.New(store)
	client := gateway.NewClient(cfg.APIURL, sess, gateway.WithTimeout(cfg.RequestTimeout))
	m := &metrics.Gateway{}

	app := storefront.New(storefront.Deps{
		API:     client,
		Auth:    client,
		Session: sess,
		Advisor: stylist.New(stylist.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RequestTimeout)),
		Metrics: m,
	})
	app.Start(ctx)

	err = dispatch(ctx, app, args[0], args[1:], out)

	if snap := m.Snapshot(); snap != (metrics.GatewaySnapshot{}) {
		logger.L().Debug("gateway degraded",
			zap.Uint64("degraded_reads", snap.DegradedReads),
			zap.Uint64("synthesized_orders", snap.SynthesizedOrders),
			zap.Uint64("failed_admin_writes", snap.FailedAdminWrites),
		)
	}
	return err
}

func dispatch(ctx context.Context, app *storefront.App, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "products":
		return listProducts(app, out)
	case "inquire":
		return inquire(app, args, out)
	case "buy":
		return buy(ctx, app, args, out)
	case "checkout":
		return checkout(ctx, app, args, out)
	case "vibe":
		return vibe(ctx, app, args, out)
	case "ask":
		return ask(ctx, app, args, out)
	case "login":
		return login(ctx, app, args, out)
	case "logout":
		return logout(app, out)
	case "orders":
		return listOrders(app, out)
	case "status":
		return setStatus(ctx, app, args, out)
	case "price":
		return setPrice(ctx, app, args, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// customerFlags parses the checkout form flags, which may appear before or
// after the product ids.
func customerFlags(name string, args []string) ([]string, *customerForm, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	form := &customerForm{}
	fs.StringVar(&form.Name, "name", "", "customer name")
	fs.StringVar(&form.Email, "email", "", "customer email")
	fs.StringVar(&form.Phone, "phone", "", "customer phone")
	fs.StringVar(&form.Address, "address", "", "delivery address")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, form, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
