package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - catalog:  List coffees, payment methods and delivery methods
// - order:    Place an order and follow it to completion
// - resume:   Pick up the latest unfinished order and follow it
// - history:  List past orders and the order board
// - payments: List past payments
// - profile:  Show the current user

func main() {
	catalogCmd := flag.NewFlagSet("catalog", flag.ExitOnError)
	orderCmd := flag.NewFlagSet("order", flag.ExitOnError)
	resumeCmd := flag.NewFlagSet("resume", flag.ExitOnError)
	historyCmd := flag.NewFlagSet("history", flag.ExitOnError)
	paymentsCmd := flag.NewFlagSet("payments", flag.ExitOnError)
	profileCmd := flag.NewFlagSet("profile", flag.ExitOnError)

	// order parameters
	orderCoffee := orderCmd.String("coffee", "", "Coffee ID")
	orderPayment := orderCmd.String("payment", "", "Payment method ID (card, mobile, cash)")
	orderDelivery := orderCmd.String("delivery", "", "Delivery method ID")
	orderPay := bindPaymentFlags(orderCmd)
	orderTimeout := orderCmd.Duration("timeout", 2*time.Minute, "Give up following the order after this long")

	// resume parameters
	resumePay := bindPaymentFlags(resumeCmd)
	resumeTimeout := resumeCmd.Duration("timeout", 2*time.Minute, "Give up following the order after this long")

	// history parameters
	historyLimit := historyCmd.Int("limit", 0, "Show at most this many orders (0 for all)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := brewctlFlags{
		Catalog: catalogCmd,
		Order: orderFlags{
			cmd:      orderCmd,
			coffee:   orderCoffee,
			payment:  orderPayment,
			delivery: orderDelivery,
			pay:      orderPay,
			timeout:  orderTimeout,
		},
		Resume: resumeFlags{
			cmd:     resumeCmd,
			pay:     resumePay,
			timeout: resumeTimeout,
		},
		History: historyFlags{
			cmd:   historyCmd,
			limit: historyLimit,
		},
		Payments: paymentsCmd,
		Profile:  profileCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type brewctlFlags struct {
	Catalog  *flag.FlagSet
	Order    orderFlags
	Resume   resumeFlags
	History  historyFlags
	Payments *flag.FlagSet
	Profile  *flag.FlagSet
}

type paymentFlags struct {
	card   *string
	phone  *string
	secret *string
	cash   *string
}

type orderFlags struct {
	cmd      *flag.FlagSet
	coffee   *string
	payment  *string
	delivery *string
	pay      paymentFlags
	timeout  *time.Duration
}

type resumeFlags struct {
	cmd     *flag.FlagSet
	pay     paymentFlags
	timeout *time.Duration
}

type historyFlags struct {
	cmd   *flag.FlagSet
	limit *int
}

func bindPaymentFlags(fs *flag.FlagSet) paymentFlags {
	return paymentFlags{
		card:   fs.String("card", "", "Card number (16 digits)"),
		phone:  fs.String("phone", "", "Mobile money phone number"),
		secret: fs.String("secret", "", "Mobile money secret code"),
		cash:   fs.String("cash", "", "Cash amount handed over"),
	}
}

func runSubcommand(ctx context.Context, flags *brewctlFlags) error {
	switch os.Args[1] {
	case "catalog":
		return handleCatalog(ctx, flags.Catalog)
	case "order":
		return handleOrder(ctx, &flags.Order)
	case "resume":
		return handleResume(ctx, &flags.Resume)
	case "history":
		return handleHistory(ctx, &flags.History)
	case "payments":
		return handlePayments(ctx, flags.Payments)
	case "profile":
		return handleProfile(ctx, flags.Profile)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println(`brewctl - coffee ordering client

Usage:
  brewctl <command> [flags]

Commands:
  catalog    List coffees, payment methods and delivery methods
  order      Place an order and follow it to completion
  resume     Pick up the latest unfinished order and follow it
  history    List past orders and the order board
  payments   List past payments
  profile    Show the current user

Examples:
  brewctl order -coffee 1 -payment card -delivery 3 -card 4111111111111111
  brewctl order -coffee 1 -payment mobile -delivery 3 -phone 0700000000 -secret 1234
  brewctl order -coffee 1 -payment cash -delivery 3 -cash 5000
  brewctl resume -cash 5000`)
}
