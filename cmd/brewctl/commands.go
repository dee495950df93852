package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"brew/internal/domain/entity"
	"brew/internal/usecase"
	"brew/internal/util"

	"github.com/pkg/errors"
)

func handleCatalog(ctx context.Context, fs *flag.FlagSet) error {
	if err := fs.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		c.Catalog.LoadAll(ctx)
		snapshot := c.Catalog.Snapshot()

		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "COFFEE\tNAME\tCOST\tPREP")
		for _, coffee := range snapshot.Coffees {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", coffee.ID, coffee.Name, util.FormatAmount(coffee.Cost), util.FormatDuration(time.Duration(coffee.PreparationTime)*time.Second))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "PAYMENT\tNAME\tTYPE\tAVAILABLE")
		for _, method := range snapshot.PaymentMethods {
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%t\n", method.ID, method.Icon, method.Name, method.Type, method.Available)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "DELIVERY\tNAME\tPRICE\tETA")
		for _, method := range snapshot.DeliveryMethods {
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", method.ID, method.Icon, method.Name, util.FormatAmount(method.Price), util.FormatDuration(method.EstimatedTime))
		}

		return errors.WithStack(w.Flush())
	})
}

func handleOrder(ctx context.Context, flags *orderFlags) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}
	if *flags.coffee == "" || *flags.payment == "" || *flags.delivery == "" {
		flags.cmd.Usage()

		return errors.New("-coffee, -payment and -delivery are required")
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		c.Catalog.LoadAll(ctx)

		if err := c.Selection.SelectCoffeeByID(*flags.coffee); err != nil {
			return err
		}
		if err := c.Selection.SelectPaymentByID(*flags.payment); err != nil {
			return err
		}
		if err := c.Selection.SelectDeliveryByID(*flags.delivery); err != nil {
			return err
		}

		order, err := c.Order.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Order %s placed: %s, total %s\n", order.ID, order.Coffee.Name, util.FormatAmount(order.ComputedTotal()))

		followCtx, cancel := context.WithTimeout(ctx, *flags.timeout)
		defer cancel()

		return c.follow(followCtx, order.ID, flags.pay.details())
	})
}

func handleResume(ctx context.Context, flags *resumeFlags) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		order, err := c.History.LoadActiveOrder(ctx)
		if err != nil {
			return err
		}
		if order == nil {
			fmt.Fprintln(c.out, "No active order to resume")

			return nil
		}
		fmt.Fprintf(c.out, "Resuming order %s (%s)\n", order.ID, order.Status)

		followCtx, cancel := context.WithTimeout(ctx, *flags.timeout)
		defer cancel()

		return c.follow(followCtx, order.ID, flags.pay.details())
	})
}

func handleHistory(ctx context.Context, flags *historyFlags) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		orders := c.History.LoadOrderHistory(ctx)
		if *flags.limit > 0 && len(orders) > *flags.limit {
			orders = orders[:*flags.limit]
		}

		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tCOFFEE\tSTATUS\tTOTAL\tCREATED")
		for _, order := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				order.ID, order.Coffee.Name, order.Status, util.FormatAmount(order.Total()), order.CreatedAt.Format(time.DateTime))
		}
		if err := w.Flush(); err != nil {
			return errors.WithStack(err)
		}

		board := c.History.Board()
		fmt.Fprintf(c.out, "\n%d orders, %d active, average %.0f\n",
			board.TotalOrders, board.ActiveOrders, board.AverageOrderValue)

		return nil
	})
}

func handlePayments(ctx context.Context, fs *flag.FlagSet) error {
	if err := fs.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PAYMENT\tREFERENCE\tMETHOD\tSTATUS\tAMOUNT\tDATE")
		for _, record := range c.History.LoadPaymentHistory(ctx) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				record.ID, record.TransactionReference, record.Method, record.Status,
				util.FormatAmount(record.TotalAmount), record.PaymentDate.Format(time.DateTime))
		}

		return errors.WithStack(w.Flush())
	})
}

func handleProfile(ctx context.Context, fs *flag.FlagSet) error {
	if err := fs.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	return withClient(ctx, func(ctx context.Context, c *client) error {
		profile, err := c.Profile.LoadUserProfile(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.out, "%s <%s>\n%s\n", profile.Name, profile.Email, profile.Address)

		return nil
	})
}

// details returns nil when no payment flag was given.
func (p paymentFlags) details() *usecase.PaymentDetails {
	details := usecase.PaymentDetails{
		CardNumber:  strings.TrimSpace(*p.card),
		PhoneNumber: strings.TrimSpace(*p.phone),
		SecretCode:  strings.TrimSpace(*p.secret),
		CashAmount:  strings.TrimSpace(*p.cash),
	}
	if details == (usecase.PaymentDetails{}) {
		return nil
	}

	return &details
}

func statusLine(order *entity.Order) string {
	return fmt.Sprintf("[%s] %s", time.Now().Format(time.TimeOnly), order.Status)
}
